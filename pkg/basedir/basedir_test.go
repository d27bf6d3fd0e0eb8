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

package basedir

import (
	"os"
	"testing"

	testhelpers "github.com/apklauncher/apklauncher/pkg/testing/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const storePath = "/config/basedir.txt"

func TestStore_Load(t *testing.T) {
	t.Parallel()

	t.Run("missing_file_is_unset", func(t *testing.T) {
		t.Parallel()

		fsh := testhelpers.NewMemoryFS()
		store := NewStore(fsh.Fs, storePath)

		cfg, err := store.Load()

		require.NoError(t, err)
		assert.Equal(t, Config{}, cfg)
	})

	t.Run("existing_directory_is_valid", func(t *testing.T) {
		t.Parallel()

		fsh := testhelpers.NewMemoryFS()
		require.NoError(t, fsh.CreateGameFolders("/games/apks", "1.0"))
		require.NoError(t, fsh.WriteFile(storePath, "  /games/apks  \n"))

		cfg, err := NewStore(fsh.Fs, storePath).Load()

		require.NoError(t, err)
		assert.Equal(t, Config{Path: "/games/apks", Valid: true}, cfg)
	})

	t.Run("missing_directory_keeps_raw_path", func(t *testing.T) {
		t.Parallel()

		fsh := testhelpers.NewMemoryFS()
		require.NoError(t, fsh.WriteFile(storePath, "/does/not/exist"))

		cfg, err := NewStore(fsh.Fs, storePath).Load()

		require.NoError(t, err)
		assert.Equal(t, Config{Path: "/does/not/exist", Valid: false}, cfg)
	})

	t.Run("file_path_is_not_a_directory", func(t *testing.T) {
		t.Parallel()

		fsh := testhelpers.NewMemoryFS()
		require.NoError(t, fsh.WriteFile("/games/file.apk", "x"))
		require.NoError(t, fsh.WriteFile(storePath, "/games/file.apk"))

		cfg, err := NewStore(fsh.Fs, storePath).Load()

		require.NoError(t, err)
		assert.False(t, cfg.Valid)
	})

	t.Run("only_first_line_is_used", func(t *testing.T) {
		t.Parallel()

		fsh := testhelpers.NewMemoryFS()
		require.NoError(t, fsh.WriteFile(storePath, "/games\r\n/other\n"))
		require.NoError(t, fsh.Fs.MkdirAll("/games", 0o755))

		cfg, err := NewStore(fsh.Fs, storePath).Load()

		require.NoError(t, err)
		assert.Equal(t, Config{Path: "/games", Valid: true}, cfg)
	})

	t.Run("empty_file_is_unset", func(t *testing.T) {
		t.Parallel()

		fsh := testhelpers.NewMemoryFS()
		require.NoError(t, fsh.WriteFile(storePath, "\n"))

		cfg, err := NewStore(fsh.Fs, storePath).Load()

		require.NoError(t, err)
		assert.Equal(t, Config{}, cfg)
	})
}

func TestStore_Save(t *testing.T) {
	t.Parallel()

	t.Run("writes_exact_string", func(t *testing.T) {
		t.Parallel()

		fsh := testhelpers.NewMemoryFS()
		require.NoError(t, fsh.Fs.MkdirAll("/config", 0o755))
		store := NewStore(fsh.Fs, storePath)

		require.NoError(t, store.Save("/games/my apks"))

		content, err := fsh.ReadFile(storePath)
		require.NoError(t, err)
		assert.Equal(t, "/games/my apks", content)
	})

	t.Run("replaces_previous_value", func(t *testing.T) {
		t.Parallel()

		fsh := testhelpers.NewMemoryFS()
		require.NoError(t, fsh.WriteFile(storePath, "/old/path/that/was/longer"))
		require.NoError(t, fsh.Fs.MkdirAll("/new", 0o755))
		store := NewStore(fsh.Fs, storePath)

		require.NoError(t, store.Save("/new"))
		cfg, err := store.Load()

		require.NoError(t, err)
		assert.Equal(t, Config{Path: "/new", Valid: true}, cfg)
	})

	t.Run("write_failure_is_io_error", func(t *testing.T) {
		t.Parallel()

		fsh := testhelpers.NewMemoryFS()
		require.NoError(t, fsh.WriteFile(storePath, "/old"))
		store := NewStore(fsh.ReadOnly().Fs, storePath)

		err := store.Save("/new")

		require.ErrorIs(t, err, ErrIO)
		content, err := fsh.ReadFile(storePath)
		require.NoError(t, err)
		assert.Equal(t, "/old", content)
	})
}

func TestStore_LoadOrDefault(t *testing.T) {
	t.Parallel()

	t.Run("uses_fallback_when_unset", func(t *testing.T) {
		t.Parallel()

		fsh := testhelpers.NewMemoryFS()
		require.NoError(t, fsh.Fs.MkdirAll("apks", 0o755))

		cfg, err := NewStore(fsh.Fs, storePath).LoadOrDefault("apks")

		require.NoError(t, err)
		assert.Equal(t, Config{Path: "apks", Valid: true}, cfg)
		_, err = fsh.Fs.Stat(storePath)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("stored_value_wins", func(t *testing.T) {
		t.Parallel()

		fsh := testhelpers.NewMemoryFS()
		require.NoError(t, fsh.WriteFile(storePath, "/stored"))

		cfg, err := NewStore(fsh.Fs, storePath).LoadOrDefault("apks")

		require.NoError(t, err)
		assert.Equal(t, "/stored", cfg.Path)
	})
}
