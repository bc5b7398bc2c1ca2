package uploader

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	cldUploader "github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryUploader stores logo files in a Cloudinary folder.
type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
	logger *log.Logger
}

// NewCloudinaryUploader builds an uploader from a CLOUDINARY_URL style connection string.
func NewCloudinaryUploader(cloudinaryURL, folder string, logger *log.Logger) (*CloudinaryUploader, error) {
	if cloudinaryURL == "" {
		return nil, fmt.Errorf("cloudinary URL is not configured")
	}
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary client: %w", err)
	}
	if folder == "" {
		folder = "logos"
	}
	return &CloudinaryUploader{cld: cld, folder: folder, logger: logger}, nil
}

// Upload sends the file to Cloudinary and returns its public identifier and URL.
// file may be an io.Reader, a local path, or raw bytes; the client accepts all three.
func (u *CloudinaryUploader) Upload(ctx context.Context, file interface{}, filename string) (*UploadResult, error) {
	displayName := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	params := cldUploader.UploadParams{
		Folder:   u.folder,
		PublicID: displayName,
	}
	result, err := u.cld.Upload.Upload(ctx, file, params)
	if err != nil {
		return nil, fmt.Errorf("failed to upload file %q: %w", filename, err)
	}
	if result.PublicID == "" {
		return nil, fmt.Errorf("upload of %q returned no public ID", filename)
	}
	if u.logger != nil {
		u.logger.Printf("[UPLOADER] stored %s as %s", filename, result.PublicID)
	}
	return &UploadResult{
		FileID:   result.PublicID,
		ViewLink: result.SecureURL,
		Filename: filename,
	}, nil
}

// Delete removes a previously uploaded file by its public identifier.
func (u *CloudinaryUploader) Delete(ctx context.Context, fileID string) error {
	_, err := u.cld.Upload.Destroy(ctx, cldUploader.DestroyParams{PublicID: fileID})
	if err != nil {
		return fmt.Errorf("failed to delete file %q: %w", fileID, err)
	}
	return nil
}
