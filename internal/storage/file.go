// Package storage persists uploaded file blobs on disk. Storage paths are
// server-assigned and collision-resistant; the client-supplied filename is
// never used to name a file on disk.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileStore saves uploaded files under a base directory.
type FileStore struct {
	basePath string
}

// NewFileStore creates the base directory if missing.
func NewFileStore(basePath string) (*FileStore, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, fmt.Errorf("storage base path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &FileStore{basePath: basePath}, nil
}

// Save writes the stream to a new file and returns its opaque path,
// relative to the base directory.
func (f *FileStore) Save(r io.Reader) (string, error) {
	name := uuid.NewString() + ".pdf"
	target := filepath.Join(f.basePath, name)

	out, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, r); err != nil {
		os.Remove(target)
		return "", fmt.Errorf("write file: %w", err)
	}

	return name, nil
}

// Open returns a reader over a previously saved file.
func (f *FileStore) Open(path string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(f.basePath, filepath.Base(path)))
}

// Remove deletes a previously saved file. Removing a missing file is not
// an error.
func (f *FileStore) Remove(path string) error {
	err := os.Remove(filepath.Join(f.basePath, filepath.Base(path)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
