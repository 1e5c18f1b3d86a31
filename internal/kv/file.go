package kv

import (
	"fmt"
	"os"
	"path/filepath"
)

// File keeps one document per key under a directory, written atomically.
type File struct {
	dir string
}

func NewFile(dir string) (*File, error) {
	if dir == "" {
		return nil, fmt.Errorf("kv: empty data directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("kv: create data dir: %w", err)
	}
	return &File{dir: dir}, nil
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *File) Get(key string) ([]byte, bool, error) {
	if err := checkKey(key); err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("kv: read %s: %w", key, err)
	}
	return data, true, nil
}

func (f *File) Set(key string, value []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := atomicWriteFile(f.path(key), value); err != nil {
		return fmt.Errorf("kv: write %s: %w", key, err)
	}
	return nil
}

func (f *File) Close() error { return nil }

func atomicWriteFile(filePath string, data []byte) error {
	tempFile := filePath + ".tmp"
	fh, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	if _, err := fh.Write(data); err != nil {
		fh.Close()
		os.Remove(tempFile)
		return err
	}

	if err := fh.Sync(); err != nil {
		fh.Close()
		os.Remove(tempFile)
		return err
	}

	if err := fh.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, filePath)
}
