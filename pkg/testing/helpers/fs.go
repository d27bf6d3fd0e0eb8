// APK Launcher
// Copyright (c) 2025 The APK Launcher Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of APK Launcher.
//
// APK Launcher is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// APK Launcher is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with APK Launcher.  If not, see <http://www.gnu.org/licenses/>.

package helpers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// FSHelper provides utilities for filesystem mocking in tests
type FSHelper struct {
	Fs afero.Fs
}

// NewMemoryFS creates a new in-memory filesystem for testing
func NewMemoryFS() *FSHelper {
	return &FSHelper{
		Fs: afero.NewMemMapFs(),
	}
}

// NewOSFS creates a filesystem helper using the real filesystem (for integration tests)
func NewOSFS() *FSHelper {
	return &FSHelper{
		Fs: afero.NewOsFs(),
	}
}

// ReadOnly returns a helper over a read-only view of the same filesystem,
// for exercising write failures.
func (h *FSHelper) ReadOnly() *FSHelper {
	return &FSHelper{
		Fs: afero.NewReadOnlyFs(h.Fs),
	}
}

// WriteLines writes lines to path, each terminated by a newline, creating
// parent directories as needed.
func (h *FSHelper) WriteLines(path string, lines ...string) error {
	content := ""
	if len(lines) > 0 {
		content = strings.Join(lines, "\n") + "\n"
	}
	return h.WriteFile(path, content)
}

// WriteFile writes content to path, creating parent directories as needed.
func (h *FSHelper) WriteFile(path, content string) error {
	if err := h.Fs.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := afero.WriteFile(h.Fs, path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ReadFile returns the content of path as a string.
func (h *FSHelper) ReadFile(path string) (string, error) {
	data, err := afero.ReadFile(h.Fs, path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// CreateGameFolders creates basePath with one subdirectory per name and a
// placeholder file in each, plus a stray file at the top level which must
// never show up as a folder.
func (h *FSHelper) CreateGameFolders(basePath string, names ...string) error {
	if err := h.Fs.MkdirAll(basePath, 0o755); err != nil {
		return fmt.Errorf("failed to create base directory: %w", err)
	}

	for _, name := range names {
		folder := filepath.Join(basePath, name)
		if err := h.Fs.MkdirAll(folder, 0o755); err != nil {
			return fmt.Errorf("failed to create game folder %s: %w", folder, err)
		}
		apk := filepath.Join(folder, "base.apk")
		if err := afero.WriteFile(h.Fs, apk, []byte{}, 0o644); err != nil {
			return fmt.Errorf("failed to create %s: %w", apk, err)
		}
	}

	stray := filepath.Join(basePath, "readme.txt")
	if err := afero.WriteFile(h.Fs, stray, []byte("not a game"), 0o644); err != nil {
		return fmt.Errorf("failed to create %s: %w", stray, err)
	}

	return nil
}
