package uploader

import "context"

// UploadResult carries the stored file identifier and its public URL.
type UploadResult struct {
	FileID   string
	ViewLink string
	Filename string
}

// Uploader stores customer logo files and returns a viewable link.
type Uploader interface {
	Upload(ctx context.Context, file interface{}, filename string) (*UploadResult, error)
	Delete(ctx context.Context, fileID string) error
}
