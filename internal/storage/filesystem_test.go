package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileSystemSecurity(t *testing.T) {
	parent := t.TempDir()
	baseDir := filepath.Join(parent, "data")
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		t.Fatal(err)
	}

	outsideFile := filepath.Join(parent, "outside.json")
	if err := os.WriteFile(outsideFile, []byte(`"secret"`), 0o644); err != nil {
		t.Fatal(err)
	}

	fsys := NewFileSystem(baseDir)
	ctx := context.Background()

	t.Run("Save prevents directory traversal", func(t *testing.T) {
		tests := []struct {
			name string
			path string
			want bool // true if should succeed
		}{
			{"normal path", "test.txt", true},
			{"subdirectory", "exports/test.txt", true},
			{"parent traversal", "../test.txt", false},
			{"complex traversal", "exports/../../test.txt", false},
			{"absolute path", "/etc/passwd", false},
			{"hidden traversal", "exports/../../../etc/passwd", false},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := fsys.Save(ctx, tt.path, []byte("test"))
				if tt.want && err != nil {
					t.Errorf("expected success, got error: %v", err)
				}
				if !tt.want && err == nil {
					t.Errorf("expected error for path %q, got none", tt.path)
				}
			})
		}
	})

	t.Run("Load prevents directory traversal", func(t *testing.T) {
		if err := os.WriteFile(filepath.Join(baseDir, "valid.txt"), []byte("valid"), 0o644); err != nil {
			t.Fatal(err)
		}

		tests := []struct {
			name string
			path string
			want bool
		}{
			{"normal path", "valid.txt", true},
			{"parent traversal", "../outside.json", false},
			{"absolute path", outsideFile, false},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := fsys.Load(ctx, tt.path)
				if tt.want && err != nil {
					t.Errorf("expected success, got error: %v", err)
				}
				if !tt.want && err == nil {
					t.Errorf("expected error for path %q, got none", tt.path)
				}
			})
		}
	})

	t.Run("Get cannot escape through the key", func(t *testing.T) {
		if _, err := fsys.Get(ctx, "../outside"); err == nil {
			t.Error("expected error for traversing key")
		}
	})

	t.Run("List prevents directory traversal", func(t *testing.T) {
		tests := []struct {
			name    string
			pattern string
			want    bool
		}{
			{"normal pattern", "*.txt", true},
			{"subdirectory pattern", "exports/*.txt", true},
			{"parent traversal", "../*", false},
			{"absolute pattern", "/etc/*", false},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := fsys.List(ctx, tt.pattern)
				if tt.want && err != nil {
					t.Errorf("expected success, got error: %v", err)
				}
				if !tt.want && err == nil {
					t.Errorf("expected error for pattern %q, got none", tt.pattern)
				}
			})
		}
	})
}

func TestSanitizePath(t *testing.T) {
	tempDir := t.TempDir()
	fsys := NewFileSystem(tempDir)

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"simple file", "file.txt", false},
		{"nested file", "dir/file.txt", false},
		{"dot file", ".hidden", false},
		{"parent directory", "../file.txt", true},
		{"sneaky parent", "dir/../../../etc/passwd", true},
		{"absolute path", "/etc/passwd", true},
		{"empty path", "", false},
		{"dot path", ".", false},
		{"double dot", "..", true},
		{"dotted name", "some/..thing/file", false},
		{"trailing dots in name", "Wait..._what.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fsys.sanitizePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("sanitizePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
				return
			}
			if err == nil && !strings.HasPrefix(got, fsys.BaseDir()) {
				t.Errorf("sanitizePath(%q) = %q, not under base directory %q", tt.path, got, tempDir)
			}
		})
	}
}

func TestFileSystemKeyLayout(t *testing.T) {
	dir := t.TempDir()
	fsys := NewFileSystem(dir)
	ctx := context.Background()

	if err := fsys.Put(ctx, "aetherial_quill_lang", []byte("de")); err != nil {
		t.Fatalf("Put: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "aetherial_quill_lang.json"))
	if err != nil {
		t.Fatalf("expected key file on disk: %v", err)
	}
	if string(raw) != "de" {
		t.Errorf("file content = %q, want %q", raw, "de")
	}

	leftovers, err := fsys.List(ctx, ".*")
	if err != nil {
		t.Fatal(err)
	}
	if len(leftovers) != 0 {
		t.Errorf("temp files left behind: %v", leftovers)
	}
}
