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

package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/apklauncher/apklauncher/pkg/config"
	"github.com/gofrs/flock"
	"github.com/rs/zerolog/log"
)

var ErrAlreadyRunning = errors.New("another launcher instance is running")

// InstanceLock keeps a second launcher from starting a game or editing
// settings at the same time.
type InstanceLock struct {
	fileLock *flock.Flock
}

// NewInstanceLock returns a lock backed by a file in dir.
func NewInstanceLock(dir string) *InstanceLock {
	return &InstanceLock{
		fileLock: flock.New(filepath.Join(dir, config.LockFile)),
	}
}

// Acquire takes the lock without waiting. It fails with ErrAlreadyRunning
// when another process holds it.
func (l *InstanceLock) Acquire() error {
	locked, err := l.fileLock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to lock %s: %w", l.fileLock.Path(), err)
	}
	if !locked {
		return ErrAlreadyRunning
	}
	log.Debug().Str("path", l.fileLock.Path()).Msg("acquired instance lock")
	return nil
}

// Release gives the lock up. Safe to call when not held.
func (l *InstanceLock) Release() {
	if l.fileLock == nil || !l.fileLock.Locked() {
		return
	}
	if err := l.fileLock.Unlock(); err != nil {
		log.Warn().Err(err).Msg("failed to release instance lock")
	}
}
