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
	"fmt"
	"io"
	"strings"

	"github.com/apklauncher/apklauncher/pkg/basedir"
	"github.com/apklauncher/apklauncher/pkg/catalog"
	"github.com/apklauncher/apklauncher/pkg/config"
	"github.com/apklauncher/apklauncher/pkg/helpers/command"
	"github.com/apklauncher/apklauncher/pkg/launcher"
	"github.com/apklauncher/apklauncher/pkg/options"
	"github.com/apklauncher/apklauncher/pkg/ui/tui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

var ErrInvalidAssignment = errors.New("expected key=value")

// LaunchError is returned when a game launch didn't succeed. Code is the
// exit code the launcher itself should exit with.
type LaunchError struct {
	Outcome launcher.Outcome
	Code    int
}

func (e *LaunchError) Error() string {
	return e.Outcome.UserMessage()
}

// Env holds the services shared by the headless commands and the TUI.
type Env struct {
	Fs       afero.Fs
	Cfg      *config.Instance
	Store    *basedir.Store
	Pipeline *launcher.Pipeline
}

// NewEnv wires the launcher services from the user's settings.
func NewEnv(fs afero.Fs, cfg *config.Instance, executor command.Executor) *Env {
	return &Env{
		Fs:    fs,
		Cfg:   cfg,
		Store: basedir.NewStore(fs, cfg.BaseDirFile()),
		Pipeline: launcher.NewPipeline(
			executor,
			launcher.WithTimeout(cfg.LaunchTimeout()),
			launcher.WithWorkingDir(cfg.WorkingDir()),
		),
	}
}

// BaseDir returns the saved base directory, or the configured default
// when none has been saved.
func (e *Env) BaseDir() (basedir.Config, error) {
	//nolint:wrapcheck // basedir errors already carry context
	return e.Store.LoadOrDefault(e.Cfg.DefaultBaseDir())
}

// TUIDeps returns the dependencies for building the TUI.
func (e *Env) TUIDeps(baseDir string) tui.Deps {
	return tui.Deps{
		Fs:       e.Fs,
		Cfg:      e.Cfg,
		Store:    e.Store,
		Pipeline: e.Pipeline,
		Session:  tui.NewSession(baseDir),
		Watch:    true,
	}
}

// ListFolders prints one game folder name per line.
func (e *Env) ListFolders(w io.Writer) error {
	base, err := e.BaseDir()
	if err != nil {
		return err
	}
	if !base.Valid {
		log.Warn().Str("path", base.Path).Msg("base directory is not a directory")
	}
	for _, name := range catalog.Names(catalog.List(e.Fs, base.Path)) {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return fmt.Errorf("failed to write folder list: %w", err)
		}
	}
	return nil
}

// LaunchFolder starts the game for folder and blocks until it exits.
func (e *Env) LaunchFolder(ctx context.Context, folder string) error {
	base, err := e.BaseDir()
	if err != nil {
		return err
	}

	outcome := e.Pipeline.Launch(ctx, e.Cfg.Executable(), base.Path, folder)
	if outcome.Success() {
		return nil
	}

	code := 1
	if outcome.Kind == launcher.OutcomeNonZeroExit && outcome.ExitCode > 0 {
		code = outcome.ExitCode
	}
	return &LaunchError{Outcome: outcome, Code: code}
}

// SetBaseDir saves dir as the base directory. A path that isn't a
// directory is still saved, with a warning.
func (e *Env) SetBaseDir(w io.Writer, dir string) error {
	dir = strings.TrimSpace(dir)
	if err := e.Store.Save(dir); err != nil {
		//nolint:wrapcheck // basedir errors already carry context
		return err
	}
	saved, err := e.Store.Load()
	if err != nil {
		//nolint:wrapcheck // basedir errors already carry context
		return err
	}
	if !saved.Valid {
		_, _ = fmt.Fprintf(w, "Warning: %s is not a directory\n", dir)
	}
	return nil
}

// GetOption prints the value of key from the options file at path.
func (e *Env) GetOption(w io.Writer, path, key string) error {
	doc, err := options.Load(e.Fs, path)
	if err != nil {
		//nolint:wrapcheck // options errors already carry context
		return err
	}
	entry, ok := doc.Get(key)
	if !ok {
		return fmt.Errorf("%w: %s", options.ErrUnknownKey, key)
	}
	_, err = fmt.Fprintln(w, entry.Value)
	if err != nil {
		return fmt.Errorf("failed to write option: %w", err)
	}
	return nil
}

// SetOption applies a key=value assignment to the options file at path.
// Only existing keys can be changed.
func (e *Env) SetOption(path, assignment string) error {
	key, value, ok := strings.Cut(assignment, "=")
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidAssignment, assignment)
	}

	doc, err := options.Load(e.Fs, path)
	if err != nil {
		//nolint:wrapcheck // options errors already carry context
		return err
	}

	key = strings.TrimSpace(key)
	if _, ok := doc.Get(key); !ok {
		return fmt.Errorf("%w: %s", options.ErrUnknownKey, key)
	}

	editor := options.NewEditor(doc)
	//nolint:wrapcheck // options errors already carry context
	return editor.Commit(map[string]string{key: value})
}
