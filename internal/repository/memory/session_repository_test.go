package memory

import (
	"testing"

	"screenprint-chatbot-be/pkg/store"

	"github.com/stretchr/testify/assert"
)

func TestSessionRepositorySaveAndGet(t *testing.T) {
	repo := NewSessionRepository()

	sess := store.NewSession("sess-1")
	sess.Order.FirstName = "Jordan"
	repo.Save(sess)

	got, found := repo.Get("sess-1")
	assert.True(t, found)
	assert.Equal(t, "Jordan", got.Order.FirstName)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestSessionRepositoryKeepsEndedSessions(t *testing.T) {
	repo := NewSessionRepository()

	sess := store.NewSession("sess-ended")
	sess.Ended = true
	repo.Save(sess)

	// Ended conversations can be reopened later, so they stay stored.
	got, found := repo.Get("sess-ended")
	assert.True(t, found)
	assert.True(t, got.Ended)
}

func TestSessionRepositoryGetMissing(t *testing.T) {
	repo := NewSessionRepository()

	got, found := repo.Get("no-such-session")
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestSessionRepositoryDelete(t *testing.T) {
	repo := NewSessionRepository()

	repo.Save(store.NewSession("sess-2"))
	repo.Delete("sess-2")

	_, found := repo.Get("sess-2")
	assert.False(t, found)
}
