package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/kaamsetu/kaamsetu-backend-go/internal/config"
)

type FileStorage interface {
	// Upload uploads a file and returns the file path/key
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	// Download retrieves a file
	Download(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes a file
	Delete(ctx context.Context, path string) error

	// GetURL generates a presigned/public URL
	GetURL(ctx context.Context, path string, expiry time.Duration) (string, error)

	// Exists checks if file exists
	Exists(ctx context.Context, path string) (bool, error)
}

// New builds the storage backend selected by STORAGE_TYPE.
func New(ctx context.Context, cfg config.StorageConfig) (FileStorage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg.BasePath, cfg.BaseURL)
	case "s3":
		return NewS3Storage(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
