// Package storage persists uploaded profile pictures to the local
// filesystem and hands the stored filename back to the registration flow.
package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const DefaultMaxSize = 10 << 20 // 10MB

var allowedMimeTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
}

var ErrFileTooLarge = errors.New("file exceeds maximum size")
var ErrUnsupportedType = errors.New("only image/jpeg, image/jpg and image/png are allowed")

// LocalStore writes uploads under a base directory using random names.
type LocalStore struct {
	dir     string
	maxSize int64
}

// NewLocalStore creates the base directory if needed. maxSize defaults
// to 10MB when non-positive.
func NewLocalStore(dir string, maxSize int64) (*LocalStore, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir, maxSize: maxSize}, nil
}

// Save validates the upload's declared mimetype and size, stores it
// under a uuid-based name, and returns the stored filename.
func (s *LocalStore) Save(fh *multipart.FileHeader) (string, error) {
	if fh.Size > s.maxSize {
		return "", ErrFileTooLarge
	}
	contentType := fh.Header.Get("Content-Type")
	if _, ok := allowedMimeTypes[contentType]; !ok {
		return "", ErrUnsupportedType
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(src, s.maxSize)); err != nil {
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("write upload: %w", err)
	}
	return name, nil
}

// Remove deletes a previously stored file. Used to roll back an upload
// when the registration it belongs to fails.
func (s *LocalStore) Remove(name string) error {
	if name == "" {
		return nil
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove upload: %w", err)
	}
	return nil
}
