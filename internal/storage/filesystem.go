package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileSystem stores blobs under baseDir. As a KV each key lives in <key>.json.
type FileSystem struct {
	baseDir string
}

func NewFileSystem(baseDir string) *FileSystem {
	return &FileSystem{
		baseDir: filepath.Clean(baseDir),
	}
}

// BaseDir is the directory every path is resolved against.
func (fsys *FileSystem) BaseDir() string {
	return fsys.baseDir
}

// escapesBase reports whether a cleaned relative path climbs out of its root.
// After Clean a ".." element can only lead the path.
func escapesBase(cleaned string) bool {
	return cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator))
}

// sanitizePath rejects anything that would resolve outside baseDir
func (fsys *FileSystem) sanitizePath(path string) (string, error) {
	cleaned := filepath.Clean(path)

	if escapesBase(cleaned) {
		return "", fmt.Errorf("invalid path: contains parent directory reference")
	}

	if filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("invalid path: absolute paths not allowed")
	}

	fullPath := filepath.Join(fsys.baseDir, cleaned)

	if !strings.HasPrefix(fullPath, fsys.baseDir+string(filepath.Separator)) && fullPath != fsys.baseDir {
		return "", fmt.Errorf("invalid path: outside base directory")
	}

	return fullPath, nil
}

func (fsys *FileSystem) Save(ctx context.Context, path string, data []byte) error {
	fullPath, err := fsys.sanitizePath(path)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	// Temp file plus rename: readers never observe a partial value.
	tmp, err := os.CreateTemp(filepath.Dir(fullPath), "."+filepath.Base(fullPath)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpName, fullPath); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing file: %w", err)
	}

	return nil
}

func (fsys *FileSystem) Load(ctx context.Context, path string) ([]byte, error) {
	fullPath, err := fsys.sanitizePath(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	return data, nil
}

func (fsys *FileSystem) List(ctx context.Context, pattern string) ([]string, error) {
	// Wildcards survive Clean; only traversal and absolute patterns are refused.
	cleaned := filepath.Clean(pattern)
	if escapesBase(cleaned) {
		return nil, fmt.Errorf("invalid pattern: contains parent directory reference")
	}
	if filepath.IsAbs(cleaned) {
		return nil, fmt.Errorf("invalid pattern: absolute paths not allowed")
	}

	matches, err := filepath.Glob(filepath.Join(fsys.baseDir, cleaned))
	if err != nil {
		return nil, fmt.Errorf("listing files: %w", err)
	}

	var results []string
	for _, match := range matches {
		if !strings.HasPrefix(match, fsys.baseDir+string(filepath.Separator)) && match != fsys.baseDir {
			continue
		}

		rel, err := filepath.Rel(fsys.baseDir, match)
		if err != nil {
			continue
		}
		results = append(results, rel)
	}

	return results, nil
}

func (fsys *FileSystem) Exists(ctx context.Context, path string) bool {
	fullPath, err := fsys.sanitizePath(path)
	if err != nil {
		return false
	}

	_, err = os.Stat(fullPath)
	return err == nil
}

func (fsys *FileSystem) Remove(ctx context.Context, path string) error {
	fullPath, err := fsys.sanitizePath(path)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	if err := os.Remove(fullPath); err != nil {
		return fmt.Errorf("deleting file: %w", err)
	}

	return nil
}

func keyFile(key string) string {
	return key + ".json"
}

// Get returns the value stored under key, or ErrNotFound.
func (fsys *FileSystem) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := fsys.Load(ctx, keyFile(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	return data, err
}

// Put replaces the value stored under key.
func (fsys *FileSystem) Put(ctx context.Context, key string, value []byte) error {
	return fsys.Save(ctx, keyFile(key), value)
}

// Delete removes key. Deleting a missing key is not an error.
func (fsys *FileSystem) Delete(ctx context.Context, key string) error {
	err := fsys.Remove(ctx, keyFile(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
