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

package tui

import (
	"github.com/apklauncher/apklauncher/pkg/helpers/syncutil"
	"github.com/apklauncher/apklauncher/pkg/launcher"
)

// Session holds TUI state shared between pages and the launch goroutine.
// It is safe for concurrent use and can be created per-test.
type Session struct {
	lastOutcome *launcher.Outcome
	baseDir     string
	launching   bool
	mu          syncutil.RWMutex
}

// NewSession creates a session for the given base directory.
func NewSession(baseDir string) *Session {
	return &Session{baseDir: baseDir}
}

// BaseDir returns the directory folders are listed from.
func (s *Session) BaseDir() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.baseDir
}

// SetBaseDir replaces the base directory.
func (s *Session) SetBaseDir(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.baseDir = dir
}

// BeginLaunch marks a launch as running. It returns false if one is
// already running.
func (s *Session) BeginLaunch() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.launching {
		return false
	}
	s.launching = true
	return true
}

// EndLaunch records the outcome of the running launch.
func (s *Session) EndLaunch(o launcher.Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.launching = false
	s.lastOutcome = &o
}

// Launching reports whether a launch is running.
func (s *Session) Launching() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.launching
}

// LastOutcome returns the outcome of the most recent launch, if any.
func (s *Session) LastOutcome() (launcher.Outcome, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastOutcome == nil {
		return launcher.Outcome{}, false
	}
	return *s.lastOutcome, true
}
