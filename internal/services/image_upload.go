package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const maxImageSize = 10 * 1024 * 1024 // 10MB

// ImageUploadResult carries the stored image reference back to the caller.
type ImageUploadResult struct {
	URL      string `json:"url"`      // Public URL the post stores
	Filename string `json:"filename"` // Name on disk
}

// uploadDir resolves the directory post images are written to.
func uploadDir() string {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "./web/uploads/posts"
	}
	return dir
}

// SaveImage validates and stores an uploaded post image on local disk and
// returns its URL. The rest of the app treats that URL as opaque: nothing
// ever reads the bytes back.
func SaveImage(file multipart.File, header *multipart.FileHeader) (*ImageUploadResult, error) {
	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%w: only image files are allowed", ErrValidation)
	}

	if header.Size > maxImageSize {
		return nil, fmt.Errorf("%w: image larger than 10MB", ErrValidation)
	}

	dir := uploadDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext == "" {
		ext = ".img"
	}
	name := uuid.NewString() + ext

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return nil, fmt.Errorf("write upload file: %w", err)
	}

	return &ImageUploadResult{
		URL:      "/uploads/posts/" + name,
		Filename: name,
	}, nil
}
