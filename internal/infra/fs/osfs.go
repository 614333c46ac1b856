package fs

import (
	"errors"
	"io/fs"
	"os"
)

type OSFS struct{}

// ReadLog reads the whole file. A log the copy utility has not created yet
// reads as empty.
func (OSFS) ReadLog(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}

func (OSFS) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (OSFS) TempDir() string {
	return os.TempDir()
}

func (OSFS) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
