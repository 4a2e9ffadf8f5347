package storage

import (
	"io"
	"os"
	"path/filepath"
)

// FileStorage is the blob-store boundary used for show artwork.
type FileStorage interface {
	Save(path string, data io.Reader) error
	Get(path string) (io.ReadCloser, error)
	Delete(path string) error
	Exists(path string) bool
}

type fileStorage struct {
	basePath string
}

func NewFileStorage(basePath string) FileStorage {
	return &fileStorage{basePath: basePath}
}

func (s *fileStorage) Save(path string, data io.Reader) error {
	fullPath := filepath.Join(s.basePath, path)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(file, data)
	return err
}

func (s *fileStorage) Get(path string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.basePath, path))
}

func (s *fileStorage) Delete(path string) error {
	return os.Remove(filepath.Join(s.basePath, path))
}

func (s *fileStorage) Exists(path string) bool {
	_, err := os.Stat(filepath.Join(s.basePath, path))
	return !os.IsNotExist(err)
}
