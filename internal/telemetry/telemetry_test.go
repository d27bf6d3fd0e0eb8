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

package telemetry

import (
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "no username in path",
			input:    "/usr/local/bin/ninecraft",
			expected: "/usr/local/bin/ninecraft",
		},
		{
			name:     "linux home path",
			input:    "/home/sam/games/apks/0.10.5",
			expected: "/home/<user>/games/apks/0.10.5",
		},
		{
			name:     "linux home path uppercase",
			input:    "/Home/Sam/games/apks",
			expected: "/home/<user>/games/apks",
		},
		{
			name:     "macos users path",
			input:    "/Users/sam/Library/Application Support/apklauncher/launcher.toml",
			expected: "/Users/<user>/Library/Application Support/apklauncher/launcher.toml",
		},
		{
			name:     "windows path",
			input:    "C:\\Users\\sam\\AppData\\Local\\apklauncher\\launcher.toml",
			expected: "C:\\Users\\<user>\\AppData\\Local\\apklauncher\\launcher.toml",
		},
		{
			name:     "windows path different drive",
			input:    "D:\\Users\\admin\\apks\\Beta 1",
			expected: "C:\\Users\\<user>\\apks\\Beta 1",
		},
		{
			name:     "launch error with path",
			input:    "fork/exec /home/sam/bin/ninecraft: permission denied",
			expected: "fork/exec /home/<user>/bin/ninecraft: permission denied",
		},
		{
			name:     "multiple paths in message",
			input:    "copying /home/alice/apks to /home/bob/apks",
			expected: "copying /home/<user>/apks to /home/<user>/apks",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := sanitizePath(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSanitizeEvent(t *testing.T) {
	t.Parallel()

	event := &sentry.Event{
		ServerName: "sams-laptop",
		Message:    "failed to save /home/sam/.config/apklauncher/basedir.txt",
		Exception: []sentry.Exception{{
			Value: "open /home/sam/games/options.txt: permission denied",
			Stacktrace: &sentry.Stacktrace{Frames: []sentry.Frame{{
				AbsPath:  "/home/sam/src/apklauncher/pkg/options/document.go",
				Filename: "pkg/options/document.go",
			}}},
		}},
		Extra: map[string]any{
			"game":  "/home/sam/games/apks/0.10.5",
			"count": 3,
		},
	}

	got := sanitizeEvent(event)

	assert.Empty(t, got.ServerName)
	assert.Equal(t, "failed to save /home/<user>/.config/apklauncher/basedir.txt", got.Message)
	assert.Equal(t, "open /home/<user>/games/options.txt: permission denied", got.Exception[0].Value)
	assert.Equal(t,
		"/home/<user>/src/apklauncher/pkg/options/document.go",
		got.Exception[0].Stacktrace.Frames[0].AbsPath)
	assert.Equal(t, "/home/<user>/games/apks/0.10.5", got.Extra["game"])
	assert.Equal(t, 3, got.Extra["count"])
}

func TestInitDisabled(t *testing.T) {
	t.Parallel()

	require.NoError(t, Init(Options{Enabled: false, DSN: "https://key@example.com/1"}))
	assert.False(t, Enabled(), "telemetry should be disabled by default")
}

func TestInitWithoutDSN(t *testing.T) {
	t.Parallel()

	err := Init(Options{Enabled: true})
	require.ErrorIs(t, err, ErrNoDSN)
	assert.False(t, Enabled())
}

func TestCloseWhenDisabled(t *testing.T) {
	t.Parallel()

	// Should not panic when called while disabled
	Close()
}

func TestFlushWhenDisabled(t *testing.T) {
	t.Parallel()

	// Should not panic when called while disabled
	Flush()
}
