package infrastructure

import (
	"os"
	"path/filepath"
)

// LocalBlobStore keeps attachment payloads on disk under a base directory.
// Paths handed back are relative to the base so records stay portable.
type LocalBlobStore struct {
	baseDir string
}

func NewLocalBlobStore(baseDir string) *LocalBlobStore {
	return &LocalBlobStore{baseDir: baseDir}
}

func (s *LocalBlobStore) Save(filePath string, data []byte) (string, error) {
	fullPath := filepath.Join(s.baseDir, filepath.FromSlash(filePath))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", err
	}
	return filePath, nil
}

func (s *LocalBlobStore) Delete(filePath string) error {
	err := os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(filePath)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
