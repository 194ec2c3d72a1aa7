// Package storage persists generated export files and returns a URL the
// client can download them from.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go-sitebooks/internal/shared/env"
)

const (
	ProviderLocal = "local"
	ProviderGCS   = "gcs"
)

var ErrInvalidObjectName = errors.New("invalid object name")

//go:generate mockgen -source=storage.go -destination=mock/storage_mock.go -package=mock
type Storage interface {
	Save(ctx context.Context, name, contentType string, data []byte) (string, error)
}

// NewFromEnv picks the provider named by STORAGE_PROVIDER.
func NewFromEnv(ctx context.Context) (Storage, error) {
	switch strings.ToLower(env.String("STORAGE_PROVIDER", ProviderLocal)) {
	case ProviderGCS:
		return NewGCSStorage(ctx, env.String("GCS_BUCKET", ""), env.String("GCS_CREDENTIALS_JSON", ""))
	case ProviderLocal:
		return NewLocalStorage(
			env.String("EXPORT_STORAGE_DIR", filepath.Join("storage", "exports")),
			env.String("EXPORT_PUBLIC_BASE_URL", "/files/exports"),
		), nil
	default:
		return nil, fmt.Errorf("unknown STORAGE_PROVIDER %q", env.String("STORAGE_PROVIDER", ""))
	}
}

type LocalStorage struct {
	dir     string
	baseURL string
}

func NewLocalStorage(dir, baseURL string) *LocalStorage {
	return &LocalStorage{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *LocalStorage) Dir() string {
	return s.dir
}

func (s *LocalStorage) Save(_ context.Context, name, _ string, data []byte) (string, error) {
	clean, err := cleanName(name)
	if err != nil {
		return "", err
	}
	path := filepath.Join(s.dir, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return s.baseURL + "/" + clean, nil
}

// cleanName rejects absolute paths and parent references.
func cleanName(name string) (string, error) {
	name = strings.TrimSpace(strings.ReplaceAll(name, "\\", "/"))
	if name == "" || strings.HasPrefix(name, "/") {
		return "", ErrInvalidObjectName
	}
	for _, part := range strings.Split(name, "/") {
		if part == "" || part == "." || part == ".." {
			return "", ErrInvalidObjectName
		}
	}
	return name, nil
}
