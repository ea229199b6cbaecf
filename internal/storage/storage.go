package storage

import (
	"fmt"
	"image"
	"io"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"storefront/internal/config"
)

// Backend is the file store behind product image uploads.
type Backend interface {
	Upload(filename string, data []byte, contentType string) (string, error)
	Delete(fileURL string) error
	FileURL(filename string) string
}

// ImageDimensions decodes width/height without decoding pixel data.
// jpeg/png/gif/webp are registered.
func ImageDimensions(r io.Reader) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		return 0, 0, fmt.Errorf("decode image config: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}

// NewBackend picks the backend from config.
func NewBackend(cfg config.StorageConfig) (Backend, error) {
	switch cfg.Type {
	case "s3":
		return NewS3Backend(cfg.S3)
	case "local":
		return NewLocalBackend(cfg.LocalDir, cfg.BaseURL)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
