package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage keeps one file per key under basePath.
type LocalStorage struct {
	basePath string
}

func NewLocalStorage(basePath string) (*LocalStorage, error) {
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage directory: %w", err)
	}
	if err := os.MkdirAll(abs, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStorage{basePath: abs}, nil
}

func (s *LocalStorage) pathFor(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("invalid blob key: %q", key)
	}
	fullPath := filepath.Join(s.basePath, key+".json")

	// Ensure file is within basePath
	if filepath.Dir(fullPath) != s.basePath {
		return "", fmt.Errorf("invalid blob key: %q", key)
	}
	return fullPath, nil
}

func (s *LocalStorage) Get(ctx context.Context, key string) ([]byte, error) {
	fullPath, err := s.pathFor(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read blob %s: %w", key, err)
	}
	return data, nil
}

func (s *LocalStorage) Put(ctx context.Context, key string, value []byte) error {
	fullPath, err := s.pathFor(key)
	if err != nil {
		return err
	}
	return writeAtomic(fullPath, value)
}

// PutAll writes every entry to a temp file first and renames them into place
// only when all writes succeeded.
func (s *LocalStorage) PutAll(ctx context.Context, entries map[string][]byte) error {
	staged := make(map[string]string, len(entries))
	cleanup := func() {
		for tmp := range staged {
			os.Remove(tmp)
		}
	}

	for key, value := range entries {
		fullPath, err := s.pathFor(key)
		if err != nil {
			cleanup()
			return err
		}
		tmp, err := writeTemp(fullPath, value)
		if err != nil {
			cleanup()
			return err
		}
		staged[tmp] = fullPath
	}

	for tmp, fullPath := range staged {
		if err := os.Rename(tmp, fullPath); err != nil {
			cleanup()
			return fmt.Errorf("failed to commit blob: %w", err)
		}
		delete(staged, tmp)
	}
	return nil
}

func (s *LocalStorage) Close() error {
	return nil
}

func writeAtomic(fullPath string, value []byte) error {
	tmp, err := writeTemp(fullPath, value)
	if err != nil {
		return err
	}
	if err := os.Rename(tmp, fullPath); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to commit blob: %w", err)
	}
	return nil
}

func writeTemp(fullPath string, value []byte) (string, error) {
	f, err := os.CreateTemp(filepath.Dir(fullPath), filepath.Base(fullPath)+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := f.Write(value); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return f.Name(), nil
}
