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

// Package catalog lists the game folders found under a base directory and
// tracks which one is selected.
package catalog

import (
	"github.com/apklauncher/apklauncher/pkg/helpers/fsutil"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Entry is a selectable game folder, identified by its directory name.
type Entry struct {
	Name string
}

// List returns the immediate subdirectories of base, sorted by name in
// byte order. An empty or missing base yields an empty list, never an
// error; read failures are logged and also yield an empty list.
func List(fs afero.Fs, base string) []Entry {
	entries := make([]Entry, 0)
	if !fsutil.IsDir(fs, base) {
		return entries
	}

	// afero.ReadDir sorts by name
	infos, err := afero.ReadDir(fs, base)
	if err != nil {
		log.Error().Err(err).Str("path", base).Msg("failed to read base directory")
		return entries
	}

	for _, info := range infos {
		if !info.IsDir() {
			continue
		}
		entries = append(entries, Entry{Name: info.Name()})
	}

	log.Debug().Str("path", base).Int("folders", len(entries)).Msg("listed game folders")
	return entries
}

// Names returns the folder names of entries, in order.
func Names(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}
