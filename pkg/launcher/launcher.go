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

// Package launcher starts the game executable for a selected folder, waits
// for it to exit and classifies the result.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/apklauncher/apklauncher/pkg/helpers/command"
	"github.com/apklauncher/apklauncher/pkg/helpers/syncutil"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// GameFlag is the flag the game executable takes the folder path with.
const GameFlag = "--game"

var (
	// ErrNoSelection is returned when there is no base directory or no
	// folder to launch.
	ErrNoSelection = errors.New("no selection")
	// ErrBusy is returned when a launch is already running on the pipeline.
	ErrBusy = errors.New("launch already in progress")
)

// Request is a single, immutable launch invocation.
type Request struct {
	ExecutablePath  string
	TargetDirectory string
}

// NewRequest builds the request for launching folder inside base. The
// target directory is made absolute so the game doesn't depend on the
// launcher's working directory.
func NewRequest(executable, base, folder string) (Request, error) {
	if base == "" || folder == "" {
		return Request{}, ErrNoSelection
	}

	target, err := filepath.Abs(filepath.Join(base, folder))
	if err != nil {
		return Request{}, fmt.Errorf("failed to resolve game folder: %w", err)
	}

	return Request{
		ExecutablePath:  executable,
		TargetDirectory: target,
	}, nil
}

// Args returns the command line arguments passed to the executable. The
// path is a single argument, so spaces survive without manual quoting.
func (r Request) Args() []string {
	return []string{GameFlag, r.TargetDirectory}
}

// State is the launch state machine. A pipeline starts Idle, enters
// Launching for each attempt and rests in the terminal state of the last
// attempt until the next one.
type State int

const (
	StateIdle State = iota
	StateLaunching
	StateSucceeded
	StateFailedExitCode
	StateFailedNotFound
	StateFailedOther
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLaunching:
		return "launching"
	case StateSucceeded:
		return "succeeded"
	case StateFailedExitCode:
		return "failed_exit_code"
	case StateFailedNotFound:
		return "failed_not_found"
	case StateFailedOther:
		return "failed_other"
	default:
		return "unknown"
	}
}

func stateFor(o Outcome) State {
	switch o.Kind {
	case OutcomeSuccess:
		return StateSucceeded
	case OutcomeNonZeroExit:
		return StateFailedExitCode
	case OutcomeExecutableNotFound:
		return StateFailedNotFound
	case OutcomeLaunchFailed, OutcomeTimedOut:
		return StateFailedOther
	default:
		return StateFailedOther
	}
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithTimeout kills the game if it runs longer than d. Zero, the default,
// waits forever.
func WithTimeout(d time.Duration) Option {
	return func(p *Pipeline) {
		p.timeout = d
	}
}

// WithWorkingDir runs the game from dir instead of the launcher's working
// directory.
func WithWorkingDir(dir string) Option {
	return func(p *Pipeline) {
		p.workingDir = dir
	}
}

// Pipeline launches games one at a time.
type Pipeline struct {
	executor   command.Executor
	workingDir string
	timeout    time.Duration
	state      State
	mu         syncutil.Mutex
}

// NewPipeline creates a pipeline that starts processes with executor.
func NewPipeline(executor command.Executor, opts ...Option) *Pipeline {
	p := &Pipeline{executor: executor}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// State returns the current state.
func (p *Pipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Pipeline) begin() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == StateLaunching {
		return false
	}
	p.state = StateLaunching
	return true
}

func (p *Pipeline) finish(o Outcome) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = stateFor(o)
}

// Launch starts executable with folder inside base as the game directory
// and blocks until it exits. An empty base or folder fails with
// ErrNoSelection without starting anything.
func (p *Pipeline) Launch(ctx context.Context, executable, base, folder string) Outcome {
	req, err := NewRequest(executable, base, folder)
	if err != nil {
		log.Warn().Err(err).Str("base", base).Str("folder", folder).Msg("launch rejected")
		return launchFailedOutcome(err.Error())
	}
	return p.Run(ctx, req)
}

// Run executes a prepared request and blocks until the process exits.
func (p *Pipeline) Run(ctx context.Context, req Request) Outcome {
	if !p.begin() {
		return launchFailedOutcome(ErrBusy.Error())
	}

	id := uuid.New().String()
	logger := log.With().
		Str("launch", id).
		Str("exe", req.ExecutablePath).
		Str("game", req.TargetDirectory).
		Logger()
	logger.Info().Msg("launching game")

	runCtx := ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	started := time.Now()
	err := p.executor.RunWithOptions(
		runCtx,
		command.RunOptions{
			Dir:             p.workingDir,
			HideWindow:      true,
			AllowWorkingDir: true,
		},
		req.ExecutablePath,
		req.Args()...,
	)
	outcome := p.classify(runCtx, req, err)
	p.finish(outcome)

	ev := logger.Info()
	if !outcome.Success() {
		ev = logger.Error().Err(err)
	}
	ev.Stringer("outcome", outcome.Kind).
		Int("code", outcome.ExitCode).
		Dur("ran", time.Since(started)).
		Msg("game exited")

	return outcome
}

func (p *Pipeline) classify(ctx context.Context, req Request, err error) Outcome {
	if err == nil {
		return successOutcome()
	}

	if p.timeout > 0 && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return Outcome{Kind: OutcomeTimedOut, Message: p.timeout.String()}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nonZeroExitOutcome(exitErr.ExitCode(), exitErr.Error())
	}

	if executableMissing(req, err) {
		return notFoundOutcome(req.ExecutablePath)
	}

	return launchFailedOutcome(err.Error())
}

// executableMissing reports whether err means the executable itself
// couldn't be found. A missing working directory or script interpreter
// also surfaces as ENOENT, but names another path or leaves the
// executable in place.
func executableMissing(req Request, err error) bool {
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}

	var pathErr *fs.PathError
	if !errors.As(err, &pathErr) || !errors.Is(pathErr.Err, fs.ErrNotExist) {
		return false
	}
	if pathErr.Op != "fork/exec" && pathErr.Op != "exec" {
		return false
	}
	if pathErr.Path != req.ExecutablePath {
		return false
	}
	_, statErr := os.Stat(pathErr.Path)
	return errors.Is(statErr, fs.ErrNotExist)
}
