// Package project locates the namecase project a command runs in.
package project

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/shipq/namecase/internal/config"
)

var ErrNoConfig = errors.New("not in a namecase project (no " + config.ConfigFilename + " found)")

// FindRoot walks up from the current working directory looking for
// namecase.ini.
func FindRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return FindRootFrom(cwd)
}

// FindRootFrom walks up from the given directory looking for namecase.ini.
// Returns the directory containing it, or ErrNoConfig.
func FindRootFrom(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if HasConfig(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoConfig
		}
		dir = parent
	}
}

// HasConfig returns true if the given directory contains namecase.ini.
func HasConfig(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, config.ConfigFilename))
	return err == nil && !info.IsDir()
}

// Name returns the folder name of the project root, used as the default
// application name.
func Name(root string) string {
	return filepath.Base(root)
}
