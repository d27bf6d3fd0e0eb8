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

// Package basedir persists the base directory, the folder whose immediate
// subdirectories are offered as launch targets. The value lives in a plain
// text file holding a single line.
package basedir

import (
	"errors"
	"fmt"
	"strings"

	"github.com/apklauncher/apklauncher/pkg/helpers/fsutil"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// ErrIO is returned when the base directory file can't be read or written.
var ErrIO = errors.New("base directory file i/o failure")

const filePerm = 0o600

// Config is the loaded base directory. Valid is false when the path is
// unset or doesn't point at an existing directory; callers should treat
// both the same way but may still show Path to the user.
type Config struct {
	Path  string
	Valid bool
}

// Store reads and writes the base directory file.
type Store struct {
	fs   afero.Fs
	path string
}

// NewStore creates a store for the file at path.
func NewStore(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the base directory. A missing file is not an error and
// returns an unset Config.
func (s *Store) Load() (Config, error) {
	exists, err := fsutil.FileExists(s.fs, s.path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrIO, err)
	}
	if !exists {
		log.Debug().Str("file", s.path).Msg("base directory not set")
		return Config{}, nil
	}

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: failed to read %s: %w", ErrIO, s.path, err)
	}

	line, _, _ := strings.Cut(string(data), "\n")
	cfg := Config{Path: strings.TrimSpace(line)}
	cfg.Valid = fsutil.IsDir(s.fs, cfg.Path)

	if cfg.Path != "" && !cfg.Valid {
		log.Warn().Str("path", cfg.Path).Msg("base directory does not exist")
	}

	return cfg, nil
}

// Save replaces the stored base directory with path, as given.
func (s *Store) Save(path string) error {
	if err := fsutil.WriteFileAtomic(s.fs, s.path, []byte(path), filePerm); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	log.Info().Str("path", path).Msg("saved base directory")
	return nil
}

// LoadOrDefault loads the stored base directory, falling back to fallback
// when nothing has been saved yet. The fallback is validated the same way
// but never written to disk.
func (s *Store) LoadOrDefault(fallback string) (Config, error) {
	cfg, err := s.Load()
	if err != nil {
		return cfg, err
	}
	if cfg.Path != "" || fallback == "" {
		return cfg, nil
	}
	return Config{Path: fallback, Valid: fsutil.IsDir(s.fs, fallback)}, nil
}
