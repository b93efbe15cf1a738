// Package storage saves uploaded media under a local directory that is
// mirrored into the served asset tree.
package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore writes uploads to Dir. Filenames get a uuid prefix so two
// uploads sharing a client filename never overwrite each other.
type LocalStore struct {
	Dir string
}

// NewLocalStore creates the upload directory if needed.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{Dir: dir}, nil
}

// Save writes src to disk and returns the stored filename.
func (s *LocalStore) Save(filename string, src io.Reader) (string, error) {
	name := uuid.NewString() + "_" + sanitize(filename)
	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return name, nil
}

// sanitize strips path components and characters that do not belong in
// a stored filename.
func sanitize(filename string) string {
	base := filepath.Base(filename)
	if base == "." || base == ".." {
		return "upload"
	}
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "upload"
	}
	return b.String()
}
