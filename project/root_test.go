package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shipq/namecase/internal/config"
)

func writeConfig(t *testing.T, dir string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, config.ConfigFilename), []byte("[app]\n"), 0644); err != nil {
		t.Fatalf("failed to create %s: %v", config.ConfigFilename, err)
	}
}

func TestFindRootFrom(t *testing.T) {
	t.Run("finds root in current directory", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeConfig(t, tmpDir)

		root, err := FindRootFrom(tmpDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if root != tmpDir {
			t.Errorf("got %q, want %q", root, tmpDir)
		}
	})

	t.Run("finds root in parent directory", func(t *testing.T) {
		tmpDir := t.TempDir()
		writeConfig(t, tmpDir)

		subDir := filepath.Join(tmpDir, "sub", "deep")
		if err := os.MkdirAll(subDir, 0755); err != nil {
			t.Fatalf("failed to create subdirectory: %v", err)
		}

		root, err := FindRootFrom(subDir)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if root != tmpDir {
			t.Errorf("got %q, want %q", root, tmpDir)
		}
	})

	t.Run("ignores a directory named like the config", func(t *testing.T) {
		tmpDir := t.TempDir()
		if err := os.Mkdir(filepath.Join(tmpDir, config.ConfigFilename), 0755); err != nil {
			t.Fatal(err)
		}
		if HasConfig(tmpDir) {
			t.Error("expected a directory not to count as config")
		}
	})
}

func TestFindRootFrom_NotFound(t *testing.T) {
	// t.TempDir lives under the system temp dir, which has no namecase.ini
	// above it in any sane environment.
	_, err := FindRootFrom(t.TempDir())
	if !errors.Is(err, ErrNoConfig) {
		t.Errorf("expected ErrNoConfig, got %v", err)
	}
}

func TestName(t *testing.T) {
	if got := Name("/home/me/blog-api"); got != "blog-api" {
		t.Errorf("got %q, want %q", got, "blog-api")
	}
}
