// Package uploads stores image blobs behind a small interface so the
// handlers do not care whether files land on local disk or elsewhere.
package uploads

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrUnsupportedFormat — расширение файла не из списка разрешённых
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Store saves blobs and removes them by the path it returned.
type Store interface {
	Save(filename string, src io.Reader) (string, error)
	Remove(path string) error
}

// DiskStore keeps blobs in a local directory, served under /uploads.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Save writes the blob under a random name, keeping the original
// extension. The returned path is what goes into the DB row.
func (s *DiskStore) Save(filename string, src io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".webp" {
		return "", ErrUnsupportedFormat
	}
	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}

// Remove deletes the blob a previous Save returned. Only the base name
// is used, so a stored path can never escape the upload dir.
func (s *DiskStore) Remove(path string) error {
	if path == "" {
		return nil
	}
	return os.Remove(filepath.Join(s.dir, filepath.Base(path)))
}
