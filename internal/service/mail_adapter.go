package service

import (
	"screenprint-chatbot-be/internal/pkg/logger"
	"screenprint-chatbot-be/internal/pkg/mailer"
)

// quoteMailer delivers the summary to the customer and, separately, a copy
// to the shop inbox. The two sends succeed or fail independently.
type quoteMailer struct {
	email     mailer.IEmailService
	inboxAddr string
	logger    logger.ILogger
}

func NewQuoteMailer(email mailer.IEmailService, inboxAddr string, logger logger.ILogger) *quoteMailer {
	return &quoteMailer{
		email:     email,
		inboxAddr: inboxAddr,
		logger:    logger,
	}
}

func (m *quoteMailer) Send(to, subject, body string) bool {
	if m.email == nil {
		m.logger.Warn("MAILER", "Email delivery is not configured", map[string]interface{}{
			"to": to,
		})
		return false
	}

	if err := m.email.SendQuoteSummary(to, subject, body); err != nil {
		m.logger.Error("MAILER", "Failed to send quote summary", map[string]interface{}{
			"to":    to,
			"error": err.Error(),
		})
		return false
	}

	m.logger.Info("MAILER", "Quote summary sent", map[string]interface{}{
		"to": to,
	})
	return true
}

func (m *quoteMailer) Notify(customerEmail, body string) bool {
	if m.email == nil || m.inboxAddr == "" {
		m.logger.Warn("MAILER", "Shop inbox notification is not configured", nil)
		return false
	}

	if err := m.email.SendQuoteNotification(m.inboxAddr, customerEmail, body); err != nil {
		m.logger.Error("MAILER", "Failed to notify shop inbox", map[string]interface{}{
			"inbox": m.inboxAddr,
			"error": err.Error(),
		})
		return false
	}

	m.logger.Info("MAILER", "Shop inbox notified", map[string]interface{}{
		"inbox": m.inboxAddr,
	})
	return true
}
