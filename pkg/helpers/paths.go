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
	"os"
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"
	"github.com/apklauncher/apklauncher/pkg/config"
)

// UserDir is the portable install directory. When it exists next to the
// launcher binary, all settings and logs live inside it.
const UserDir = "user"

// Dirs are the per-user directories the launcher writes to.
type Dirs struct {
	Config string
	Data   string
}

var (
	userDirOnce   sync.Once
	userDirCache  string
	userDirExists bool
)

// HasUserDir checks for a portable user directory next to the running
// binary. The result is cached after the first call.
func HasUserDir() (string, bool) {
	userDirOnce.Do(func() {
		exe, err := os.Executable()
		if err != nil {
			return
		}
		dir, ok := userDirIn(filepath.Dir(exe))
		userDirCache = dir
		userDirExists = ok
	})
	return userDirCache, userDirExists
}

func userDirIn(parent string) (string, bool) {
	userDir := filepath.Join(parent, UserDir)
	info, err := os.Stat(userDir)
	if err != nil || !info.IsDir() {
		return "", false
	}
	return userDir, true
}

// DefaultDirs returns the XDG locations for the launcher, or the portable
// user directory when present.
func DefaultDirs() Dirs {
	if v, ok := HasUserDir(); ok {
		return Dirs{Config: v, Data: v}
	}
	return Dirs{
		Config: filepath.Join(xdg.ConfigHome, config.AppName),
		Data:   filepath.Join(xdg.DataHome, config.AppName),
	}
}

// EnsureDirectories creates the config and data directories.
func EnsureDirectories(dirs Dirs) error {
	for _, dir := range []string{dirs.Config, dirs.Data} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
