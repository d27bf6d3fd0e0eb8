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

package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, contents string) string {
	t.Helper()
	cfgPath := filepath.Join(dir, CfgFile)
	require.NoError(t, os.WriteFile(cfgPath, []byte(contents), 0o600))
	return cfgPath
}

func TestNewConfig_CreatesDefaultFile(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested")
	cfg, err := NewConfig(dir, BaseDefaults())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, CfgFile), cfg.Path())
	assert.FileExists(t, cfg.Path())
	assert.Equal(t, DefaultExecutable(), cfg.Executable())
	assert.Equal(t, DefaultOptionsFile, cfg.OptionsFile())
	assert.Equal(t, DefaultBaseDir, cfg.DefaultBaseDir())
	assert.Equal(t, filepath.Join(dir, BaseDirFile), cfg.BaseDirFile())
	assert.Equal(t, time.Duration(0), cfg.LaunchTimeout())
	assert.Equal(t, "default", cfg.TUITheme())
	assert.True(t, cfg.TUIMouse())
	assert.False(t, cfg.ErrorReporting())

	data, err := os.ReadFile(cfg.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "config_schema = 1")
}

func TestNewConfig_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "custom", "settings.toml")
	t.Setenv(CfgEnv, cfgPath)

	cfg, err := NewConfig(t.TempDir(), BaseDefaults())
	require.NoError(t, err)

	assert.Equal(t, cfgPath, cfg.Path())
	assert.FileExists(t, cfgPath)
	assert.Equal(t, filepath.Join(dir, "custom", BaseDirFile), cfg.BaseDirFile())
}

func TestLoad_MergesDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, `config_schema = 1
debug_logging = true

[launcher]
executable = "/opt/ninecraft/ninecraft"
launch_timeout = "2h"
base_dir_file = "/srv/games/basedir.txt"
`)

	cfg, err := NewConfig(dir, BaseDefaults())
	require.NoError(t, err)

	assert.True(t, cfg.DebugLogging())
	assert.Equal(t, "/opt/ninecraft/ninecraft", cfg.Executable())
	assert.Equal(t, 2*time.Hour, cfg.LaunchTimeout())
	assert.Equal(t, "/srv/games/basedir.txt", cfg.BaseDirFile())
	assert.Equal(t, DefaultOptionsFile, cfg.OptionsFile(), "missing keys keep defaults")
	assert.Equal(t, "default", cfg.TUITheme())
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		contents string
		wantErr  string
	}{
		{
			name:     "schema_mismatch",
			contents: "config_schema = 99\n",
			wantErr:  "schema version mismatch",
		},
		{
			name:     "bad_toml",
			contents: "config_schema = \n",
			wantErr:  "failed to unmarshal config",
		},
		{
			name:     "bad_timeout",
			contents: "config_schema = 1\n[launcher]\nexecutable = \"x\"\nlaunch_timeout = \"soon\"\n",
			wantErr:  "launcher.launch_timeout must be a positive duration",
		},
		{
			name:     "empty_executable",
			contents: "config_schema = 1\n[launcher]\nexecutable = \"\"\n",
			wantErr:  "launcher.executable is required",
		},
		{
			name:     "unknown_theme",
			contents: "config_schema = 1\n[tui]\ntheme = \"neon\"\n",
			wantErr:  "tui.theme must be one of",
		},
		{
			name:     "bad_dsn",
			contents: "config_schema = 1\n[telemetry]\ndsn = \"not a url\"\n",
			wantErr:  "telemetry.dsn must be a valid URL",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			writeConfig(t, dir, tt.contents)

			_, err := NewConfig(dir, BaseDefaults())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_SchemaMismatchSentinel(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, "config_schema = 2\n")

	_, err := NewConfig(dir, BaseDefaults())
	require.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestSave_RoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg, err := NewConfig(dir, BaseDefaults())
	require.NoError(t, err)

	cfg.SetExecutable("/usr/local/bin/ninecraft")
	cfg.SetOptionsFile("/home/player/.ninecraft/options.txt")
	cfg.SetLaunchTimeout(90 * time.Minute)
	cfg.SetDebugLogging(true)
	cfg.SetTUITheme("nord")
	cfg.SetErrorReporting(true)
	require.NoError(t, cfg.Save())

	reloaded, err := NewConfig(dir, BaseDefaults())
	require.NoError(t, err)

	assert.Equal(t, "/usr/local/bin/ninecraft", reloaded.Executable())
	assert.Equal(t, "/home/player/.ninecraft/options.txt", reloaded.OptionsFile())
	assert.Equal(t, 90*time.Minute, reloaded.LaunchTimeout())
	assert.True(t, reloaded.DebugLogging())
	assert.Equal(t, "nord", reloaded.TUITheme())
	assert.False(t, reloaded.ErrorReporting(), "reporting needs a dsn")
}

func TestSave_ReplacesFileWhole(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg, err := NewConfig(dir, BaseDefaults())
	require.NoError(t, err)

	cfg.SetExecutable("/opt/ninecraft/ninecraft")
	require.NoError(t, cfg.Save())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file left behind")
	assert.Equal(t, CfgFile, entries[0].Name())

	if runtime.GOOS != "windows" {
		info, err := os.Stat(cfg.Path())
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}
}

func TestSave_MissingDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "cfg")
	cfg, err := NewConfig(dir, BaseDefaults())
	require.NoError(t, err)
	require.NoError(t, os.RemoveAll(dir))

	require.Error(t, cfg.Save())
	assert.NoDirExists(t, dir)
}

func TestSetLaunchTimeout_ZeroClears(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(t.TempDir(), BaseDefaults())
	require.NoError(t, err)

	cfg.SetLaunchTimeout(time.Minute)
	assert.Equal(t, time.Minute, cfg.LaunchTimeout())

	cfg.SetLaunchTimeout(0)
	assert.Equal(t, time.Duration(0), cfg.LaunchTimeout())
}

func TestErrorReporting_RequiresDSN(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, `config_schema = 1

[telemetry]
error_reporting = true
dsn = "https://key@sentry.example.com/1"
`)

	cfg, err := NewConfig(dir, BaseDefaults())
	require.NoError(t, err)

	assert.True(t, cfg.ErrorReporting())
	assert.Equal(t, "https://key@sentry.example.com/1", cfg.TelemetryDSN())
}

func TestValidate_CollectsAllFields(t *testing.T) {
	t.Parallel()

	vals := BaseDefaults()
	vals.Launcher.Executable = ""
	vals.Options.File = ""

	err := Validate(&vals)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Fields, 2)
	assert.Equal(t,
		"invalid config: launcher.executable is required; options.file is required",
		ve.Error())
}
