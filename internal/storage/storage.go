package storage

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Store is the object store behind user-content uploads. Objects are written
// under a bucket-relative path and served back through a public URL.
type Store interface {
	Save(path string, data []byte) error
	PublicURL(path string) string
}

// LocalStore keeps objects on disk and derives public URLs against the
// configured base, mirroring the hosted-bucket contract.
type LocalStore struct {
	dir     string
	baseURL string
}

func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("storage directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	return &LocalStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (s *LocalStore) Save(path string, data []byte) error {
	full := filepath.Join(s.dir, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("create object directory: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return fmt.Errorf("write object %s: %w", path, err)
	}
	return nil
}

func (s *LocalStore) PublicURL(path string) string {
	escaped := make([]string, 0, 4)
	for _, part := range strings.Split(path, "/") {
		escaped = append(escaped, url.PathEscape(part))
	}
	return fmt.Sprintf("%s/storage/%s", s.baseURL, strings.Join(escaped, "/"))
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return unsafeFilenameChars.ReplaceAllString(filename, "_")
}

// UniqueFilename builds a collision-free object path from the original name.
func UniqueFilename(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s/%s-%s-%s", folder, timestamp, uuid.New().String(), sanitizeFilename(originalFilename))
}
