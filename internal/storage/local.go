package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore keeps one file per object under a single root directory.
type LocalStore struct {
	root string
}

// NewLocalStore creates the root directory if needed.
func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{root: root}, nil
}

// Root returns the store's root directory.
func (s *LocalStore) Root() string {
	return s.root
}

// objectPath resolves an object name inside the root, rejecting anything
// that could escape it.
func (s *LocalStore) objectPath(object string) (string, error) {
	if object == "" ||
		object != filepath.Base(object) ||
		strings.ContainsAny(object, `/\`) ||
		strings.Contains(object, "..") {
		return "", fmt.Errorf("invalid object name %q", object)
	}
	return filepath.Join(s.root, object), nil
}

// PutObject writes an object to disk. An existing object is never overwritten.
func (s *LocalStore) PutObject(ctx context.Context, object string, reader io.Reader, size int64, opts PutOptions) error {
	path, err := s.objectPath(object)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, reader); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

// GetObject opens an object for reading.
func (s *LocalStore) GetObject(ctx context.Context, object string) (io.ReadCloser, ObjectInfo, error) {
	path, err := s.objectPath(object)
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, ObjectInfo{}, err
	}
	return f, ObjectInfo{ObjectName: object, Size: stat.Size()}, nil
}

// StatObject returns object metadata without opening it.
func (s *LocalStore) StatObject(ctx context.Context, object string) (ObjectInfo, error) {
	path, err := s.objectPath(object)
	if err != nil {
		return ObjectInfo{}, err
	}
	stat, err := os.Stat(path)
	if err != nil {
		return ObjectInfo{}, err
	}
	return ObjectInfo{ObjectName: object, Size: stat.Size()}, nil
}

// RemoveObject deletes an object. A missing object is not an error.
func (s *LocalStore) RemoveObject(ctx context.Context, object string) error {
	path, err := s.objectPath(object)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
