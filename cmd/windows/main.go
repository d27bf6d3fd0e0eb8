//go:build windows

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

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/apklauncher/apklauncher/internal/telemetry"
	"github.com/apklauncher/apklauncher/pkg/cli"
	"github.com/apklauncher/apklauncher/pkg/config"
	"github.com/apklauncher/apklauncher/pkg/helpers/command"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const platformID = "windows"

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags := cli.SetupFlags()
	flags.Pre(platformID)

	cfg, dirs := cli.Setup(
		platformID,
		config.BaseDefaults(),
		flags.LogWriters(),
	)
	defer telemetry.Close()

	defer func() {
		if err := recover(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Panic: %s\n", err)
			log.Fatal().Msgf("panic: %v", err)
		}
	}()

	env := cli.NewEnv(afero.NewOsFs(), cfg, &command.RealExecutor{})
	lock := cli.NewInstanceLock(dirs.Data)

	flags.Post(env, lock)

	if err := flags.RunTUI(env, lock); err != nil {
		if errors.Is(err, cli.ErrAlreadyRunning) {
			return errors.New("another launcher window is already open")
		}
		return err
	}
	return nil
}
