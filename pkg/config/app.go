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
)

var AppVersion = "DEVELOPMENT"

const (
	AppName            = "apklauncher"
	LogFile            = "apklauncher.log"
	CfgFile            = "launcher.toml"
	BaseDirFile        = "basedir.txt"
	LockFile           = "apklauncher.lock"
	DefaultOptionsFile = "options.txt"
	DefaultBaseDir     = "apks"
)

// DefaultExecutable is the game executable used when none is configured.
// It is looked for next to the launcher binary first, then on PATH.
func DefaultExecutable() string {
	if runtime.GOOS == "windows" {
		return "ninecraft.exe"
	}
	return "ninecraft"
}

// resolveExecutable returns the copy of a bare executable name that sits
// next to the launcher binary, if there is one. Anything else is returned
// unchanged for the PATH lookup.
func resolveExecutable(name string) string {
	if name == "" || filepath.Base(name) != name {
		return name
	}
	exe, err := os.Executable()
	if err != nil {
		return name
	}
	return executableIn(filepath.Dir(exe), name)
}

func executableIn(dir, name string) string {
	candidate := filepath.Join(dir, name)
	info, err := os.Stat(candidate)
	if err != nil || info.IsDir() {
		return name
	}
	return candidate
}
