package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"placehub/internal/config"
)

// Uploader persists an uploaded file and returns the URL it is served from.
type Uploader interface {
	Save(ctx context.Context, file *multipart.FileHeader, baseURL string) (string, error)
}

// New builds the uploader selected by cfg.Upload.Backend.
func New(ctx context.Context, cfg *config.Config) (Uploader, error) {
	switch cfg.Upload.Backend {
	case config.UploadBackendLocal:
		return NewLocalStore(cfg.Upload.Dir)
	case config.UploadBackendS3:
		return NewS3Store(ctx, cfg.Upload.S3Bucket, cfg.Upload.S3Region)
	default:
		return nil, fmt.Errorf("unknown upload backend %q", cfg.Upload.Backend)
	}
}

// extension keeps the client's file extension, lower-cased, when it is a
// plain one.
func extension(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if len(ext) < 2 || len(ext) > 10 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
