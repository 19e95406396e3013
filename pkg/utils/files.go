package utils

import (
	"os"
	"path/filepath"
)

// GetPathInfo resolves relPath to an absolute path and its parent directory.
func GetPathInfo(relPath string) (fullPath string, parentDir string, err error) {
	fullPath, err = filepath.Abs(relPath)
	if err != nil {
		return "", "", err
	}
	parentDir = filepath.Dir(fullPath)
	return fullPath, parentDir, nil
}

// ReadSource reads the whole file at path into a string.
func ReadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteText overwrites the file at path with contents.
func WriteText(path string, contents string) error {
	return os.WriteFile(path, []byte(contents), 0o644)
}
