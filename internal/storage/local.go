package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// URLPrefix is the public path under which uploaded files are served.
const URLPrefix = "/uploads"

// Local stores uploaded files on the local filesystem. Filenames are derived
// from the upload timestamp plus the original extension, so concurrent
// uploads do not collide.
type Local struct {
	basePath string
}

// NewLocal creates the storage directory when absent and returns the store.
func NewLocal(basePath string) (*Local, error) {
	if basePath == "" {
		basePath = "uploads"
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &Local{basePath: basePath}, nil
}

// Save writes the reader's content under a timestamp-derived filename and
// returns the public URL path for the stored file.
func (s *Local) Save(originalName string, src io.Reader) (string, error) {
	name := fmt.Sprintf("%d%s", time.Now().UnixMilli(), filepath.Ext(originalName))

	dst, err := os.Create(filepath.Join(s.basePath, name))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return URLPrefix + "/" + name, nil
}

// Delete removes a previously stored file by its public URL path. A missing
// file is not an error.
func (s *Local) Delete(urlPath string) error {
	name := filepath.Base(urlPath)
	if err := os.Remove(filepath.Join(s.basePath, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete file: %w", err)
	}
	return nil
}

// Dir returns the directory files are stored in, for static serving.
func (s *Local) Dir() string {
	return s.basePath
}
