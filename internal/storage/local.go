package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalBackend writes files under a directory on disk and serves them from
// a configured public prefix. Default backend for development.
type LocalBackend struct {
	dir     string
	baseURL string
}

func NewLocalBackend(dir, baseURL string) (*LocalBackend, error) {
	dir = filepath.Clean(dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	if baseURL == "" {
		baseURL = "/uploads"
	}
	return &LocalBackend{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (b *LocalBackend) Upload(filename string, data []byte, _ string) (string, error) {
	path := filepath.Join(b.dir, filepath.Base(filename))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return b.FileURL(filename), nil
}

func (b *LocalBackend) Delete(fileURL string) error {
	parts := strings.Split(fileURL, "/")
	name := parts[len(parts)-1]
	if err := os.Remove(filepath.Join(b.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}

func (b *LocalBackend) FileURL(filename string) string {
	return b.baseURL + "/" + filepath.Base(filename)
}
