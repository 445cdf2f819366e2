package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileKV keeps each key in its own JSON file under dir.
type FileKV struct {
	dir string
}

func OpenFileKV(dir string) (*FileKV, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("storage: empty data directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileKV{dir: dir}, nil
}

func (f *FileKV) Path() string {
	return f.dir
}

func (f *FileKV) Close() error {
	return nil
}

func (f *FileKV) fileFor(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("storage: invalid key %q", key)
	}
	return filepath.Join(f.dir, key+".json"), nil
}

func (f *FileKV) Get(_ context.Context, key string) ([]byte, error) {
	path, err := f.fileFor(key)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return raw, nil
}

func (f *FileKV) Put(_ context.Context, key string, value []byte) error {
	path, err := f.fileFor(key)
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (f *FileKV) Delete(_ context.Context, key string) error {
	path, err := f.fileFor(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
