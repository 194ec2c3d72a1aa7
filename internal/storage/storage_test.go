package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalStorage_Save(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir, "https://files.example.com/exports/")

	url, err := s.Save(context.Background(), "company-1/statement.csv", "text/csv", []byte("a,b\n"))
	assert.NoError(t, err)
	assert.Equal(t, "https://files.example.com/exports/company-1/statement.csv", url)

	data, err := os.ReadFile(filepath.Join(dir, "company-1", "statement.csv"))
	assert.NoError(t, err)
	assert.Equal(t, "a,b\n", string(data))
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	s := NewLocalStorage(t.TempDir(), "/files")
	for _, name := range []string{"../x.csv", "/etc/passwd", "a//b.csv", ""} {
		_, err := s.Save(context.Background(), name, "text/csv", []byte("x"))
		assert.ErrorIs(t, err, ErrInvalidObjectName, name)
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("STORAGE_PROVIDER", "local")
	t.Setenv("EXPORT_STORAGE_DIR", t.TempDir())
	s, err := NewFromEnv(context.Background())
	assert.NoError(t, err)
	assert.IsType(t, &LocalStorage{}, s)

	t.Setenv("STORAGE_PROVIDER", "ftp")
	_, err = NewFromEnv(context.Background())
	assert.Error(t, err)

	t.Setenv("STORAGE_PROVIDER", "gcs")
	t.Setenv("GCS_BUCKET", "")
	_, err = NewFromEnv(context.Background())
	assert.Error(t, err)
}
