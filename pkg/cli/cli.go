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
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/apklauncher/apklauncher/internal/telemetry"
	"github.com/apklauncher/apklauncher/pkg/config"
	"github.com/apklauncher/apklauncher/pkg/helpers"
	"github.com/apklauncher/apklauncher/pkg/ui/tui"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

type Flags struct {
	Version   *bool
	List      *bool
	Headless  *bool
	Launch    *string
	SetBase   *string
	Options   *string
	GetOption *string
	SetOption *string
}

// SetupFlags defines all common CLI flags between platforms.
func SetupFlags() *Flags {
	return &Flags{
		Version: flag.Bool(
			"version",
			false,
			"print version and exit",
		),
		List: flag.Bool(
			"list",
			false,
			"print the game folders in the base directory",
		),
		Headless: flag.Bool(
			"headless",
			false,
			"log to stderr and never start the text ui",
		),
		Launch: flag.String(
			"launch",
			"",
			"launch the named game folder and wait for it to exit",
		),
		SetBase: flag.String(
			"set-base",
			"",
			"save the base directory game folders are listed from",
		),
		Options: flag.String(
			"options",
			"",
			"options file to edit (defaults to the configured file)",
		),
		GetOption: flag.String(
			"get-option",
			"",
			"print the value of an option",
		),
		SetOption: flag.String(
			"set-option",
			"",
			"change an existing option, as key=value",
		),
	}
}

func isFlagPassed(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// Pre runs flag parsing and actions any immediate flags that don't
// require environment setup. Add any custom flags before running this.
func (f *Flags) Pre(platformID string) {
	flag.Parse()

	if *f.Version {
		_, _ = fmt.Printf("APK Launcher v%s (%s)\n", config.AppVersion, platformID)
		os.Exit(0)
	}
}

// LogWriters returns the extra log outputs for the selected mode.
func (f *Flags) LogWriters() []io.Writer {
	if *f.Headless {
		return []io.Writer{os.Stderr}
	}
	return nil
}

// OptionsPath returns the options file the option flags act on.
func (f *Flags) OptionsPath(cfg *config.Instance) string {
	if *f.Options != "" {
		return *f.Options
	}
	return cfg.OptionsFile()
}

func exitWith(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	telemetry.Flush()
	code := 1
	var launchErr *LaunchError
	if errors.As(err, &launchErr) {
		code = launchErr.Code
	}
	os.Exit(code)
}

// Post actions all remaining common flags that require the environment to
// be set up. It exits when a headless command was run and returns
// otherwise. Logging is allowed.
func (f *Flags) Post(env *Env, lock *InstanceLock) {
	switch {
	case *f.List:
		if err := env.ListFolders(os.Stdout); err != nil {
			log.Error().Err(err).Msg("error listing folders")
			exitWith(err)
		}
		os.Exit(0)
	case isFlagPassed("set-base"):
		if err := env.SetBaseDir(os.Stderr, *f.SetBase); err != nil {
			log.Error().Err(err).Msg("error saving base directory")
			exitWith(err)
		}
		os.Exit(0)
	case isFlagPassed("get-option"):
		if err := env.GetOption(os.Stdout, f.OptionsPath(env.Cfg), *f.GetOption); err != nil {
			log.Error().Err(err).Msg("error reading option")
			exitWith(err)
		}
		os.Exit(0)
	case isFlagPassed("set-option"):
		if err := env.SetOption(f.OptionsPath(env.Cfg), *f.SetOption); err != nil {
			log.Error().Err(err).Msg("error saving option")
			exitWith(err)
		}
		os.Exit(0)
	case isFlagPassed("launch"):
		if *f.Launch == "" {
			_, _ = fmt.Fprint(os.Stderr, "Error: launch flag requires a value\n")
			os.Exit(1)
		}
		if err := lock.Acquire(); err != nil {
			exitWith(err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		err := env.LaunchFolder(ctx, *f.Launch)
		stop()
		lock.Release()
		if err != nil {
			log.Error().Err(err).Msg("error launching game")
			exitWith(err)
		}
		os.Exit(0)
	}
}

// RunTUI starts the text UI: the options editor when an options file was
// passed, the folder picker otherwise. It blocks until the UI exits.
func (f *Flags) RunTUI(env *Env, lock *InstanceLock) error {
	if *f.Headless {
		return errors.New("no command given in headless mode")
	}

	if err := lock.Acquire(); err != nil {
		return err
	}
	defer lock.Release()

	base, err := env.BaseDir()
	if err != nil {
		log.Warn().Err(err).Msg("error loading base directory")
	}
	deps := env.TUIDeps(base.Path)

	var app *tview.Application
	if isFlagPassed("options") {
		app, err = tui.BuildOptionsApp(deps, *f.Options)
	} else {
		app, err = tui.BuildMain(deps)
	}
	if err != nil {
		log.Error().Err(err).Msg("error building UI")
		return fmt.Errorf("error building UI: %w", err)
	}

	if err := app.Run(); err != nil {
		log.Error().Err(err).Msg("error running UI")
		return fmt.Errorf("error running UI: %w", err)
	}
	return nil
}

// Setup initializes the user config and logging. Returns a user config
// object and the directories in use.
//
//nolint:gocritic // config struct copied for immutability
func Setup(
	platformID string,
	defaultConfig config.Values,
	writers []io.Writer,
) (*config.Instance, helpers.Dirs) {
	dirs := helpers.DefaultDirs()

	// Ensure directories exist before logging initialization
	err := helpers.EnsureDirectories(dirs)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error creating directories: %v\n", err)
		os.Exit(1)
	}

	err = helpers.InitLogging(dirs.Data, writers)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.NewConfig(dirs.Config, defaultConfig)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	helpers.SetDebugLogging(cfg.DebugLogging())

	// Initialize error reporting (opt-in)
	if err := telemetry.Init(telemetry.Options{
		Enabled:    cfg.ErrorReporting(),
		DSN:        cfg.TelemetryDSN(),
		AppVersion: config.AppVersion,
		Platform:   platformID,
	}); err != nil {
		log.Warn().Err(err).Msg("failed to initialize error reporting")
	}

	log.Info().
		Str("version", config.AppVersion).
		Str("platform", platformID).
		Str("config", cfg.Path()).
		Msg("apk launcher started")

	return cfg, dirs
}
