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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/apklauncher/apklauncher/pkg/helpers/fsutil"
	"github.com/apklauncher/apklauncher/pkg/helpers/syncutil"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	SchemaVersion = 1
	CfgEnv        = "APKLAUNCHER_CFG"
)

var ErrSchemaMismatch = errors.New("schema version mismatch")

type Values struct {
	Launcher     Launcher  `toml:"launcher"`
	Options      Options   `toml:"options"`
	Telemetry    Telemetry `toml:"telemetry"`
	TUI          TUI       `toml:"tui"`
	ConfigSchema int       `toml:"config_schema"`
	DebugLogging bool      `toml:"debug_logging"`
}

type Launcher struct {
	Executable     string `toml:"executable" validate:"required"`
	WorkingDir     string `toml:"working_dir,omitempty"`
	BaseDirFile    string `toml:"base_dir_file,omitempty"`
	DefaultBaseDir string `toml:"default_base_dir"`
	LaunchTimeout  string `toml:"launch_timeout,omitempty" validate:"duration"`
}

type Options struct {
	File string `toml:"file" validate:"required"`
}

type Telemetry struct {
	DSN            string `toml:"dsn,omitempty" validate:"omitempty,url"`
	ErrorReporting bool   `toml:"error_reporting"`
}

type TUI struct {
	Theme string `toml:"theme" validate:"omitempty,oneof=default high_contrast dracula nord gruvbox monogreen"`
	Mouse bool   `toml:"mouse"`
}

// BaseDefaults returns the settings written to a fresh launcher.toml.
func BaseDefaults() Values {
	return Values{
		ConfigSchema: SchemaVersion,
		Launcher: Launcher{
			Executable:     DefaultExecutable(),
			DefaultBaseDir: DefaultBaseDir,
		},
		Options: Options{
			File: DefaultOptionsFile,
		},
		TUI: TUI{
			Theme: "default",
			Mouse: true,
		},
	}
}

type Instance struct {
	cfgPath  string
	vals     Values
	defaults Values
	mu       syncutil.RWMutex
}

//nolint:gocritic // config struct copied for immutability
func NewConfig(configDir string, defaults Values) (*Instance, error) {
	cfgPath := os.Getenv(CfgEnv)
	log.Debug().Msgf("env config path: %s", cfgPath)

	if cfgPath == "" {
		cfgPath = filepath.Join(configDir, CfgFile)
	}

	cfg := Instance{
		mu:       syncutil.RWMutex{},
		cfgPath:  cfgPath,
		vals:     defaults,
		defaults: defaults,
	}

	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		log.Info().Msg("saving new default config to disk")

		err := os.MkdirAll(filepath.Dir(cfgPath), 0o750)
		if err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		err = cfg.Save()
		if err != nil {
			return nil, err
		}
	}

	err := cfg.Load()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Instance) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	data, err := os.ReadFile(c.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Fields missing from the file keep their default values.
	newVals := c.defaults
	err = toml.Unmarshal(data, &newVals)
	if err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if newVals.ConfigSchema != SchemaVersion {
		log.Error().Msgf(
			"schema version mismatch: got %d, expecting %d",
			newVals.ConfigSchema,
			SchemaVersion,
		)
		return ErrSchemaMismatch
	}

	if err := Validate(&newVals); err != nil {
		return err
	}

	c.vals = newVals
	return nil
}

func (c *Instance) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfgPath == "" {
		return errors.New("config path not set")
	}

	c.vals.ConfigSchema = SchemaVersion

	data, err := toml.Marshal(&c.vals)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := fsutil.WriteFileAtomic(afero.NewOsFs(), c.cfgPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Path returns the location of launcher.toml.
func (c *Instance) Path() string {
	return c.cfgPath
}

func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}

func (c *Instance) SetDebugLogging(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.DebugLogging = enabled
}

// Executable returns the game executable to start. A bare name is
// resolved against the launcher's own directory before PATH.
func (c *Instance) Executable() string {
	c.mu.RLock()
	name := c.vals.Launcher.Executable
	c.mu.RUnlock()
	return resolveExecutable(name)
}

func (c *Instance) SetExecutable(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Launcher.Executable = path
}

// WorkingDir is the directory the game is started in. Empty means the
// launcher's own working directory.
func (c *Instance) WorkingDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Launcher.WorkingDir
}

// BaseDirFile returns the path of the file holding the saved base
// directory. A relative setting is resolved against the config directory.
func (c *Instance) BaseDirFile() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p := c.vals.Launcher.BaseDirFile
	if p == "" {
		p = BaseDirFile
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(filepath.Dir(c.cfgPath), p)
}

func (c *Instance) DefaultBaseDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Launcher.DefaultBaseDir
}

// LaunchTimeout returns the maximum run time of a launched game, 0 when
// unbounded. The value is validated on load.
func (c *Instance) LaunchTimeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.vals.Launcher.LaunchTimeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.vals.Launcher.LaunchTimeout)
	if err != nil {
		log.Warn().Err(err).Msg("invalid launch timeout, ignoring")
		return 0
	}
	return d
}

func (c *Instance) SetLaunchTimeout(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if d <= 0 {
		c.vals.Launcher.LaunchTimeout = ""
		return
	}
	c.vals.Launcher.LaunchTimeout = d.String()
}

func (c *Instance) OptionsFile() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Options.File
}

func (c *Instance) SetOptionsFile(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Options.File = path
}

// ErrorReporting reports whether crash reports may be sent. It requires
// both the opt-in flag and a DSN.
func (c *Instance) ErrorReporting() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Telemetry.ErrorReporting && c.vals.Telemetry.DSN != ""
}

func (c *Instance) SetErrorReporting(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Telemetry.ErrorReporting = enabled
}

func (c *Instance) TelemetryDSN() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Telemetry.DSN
}

func (c *Instance) TUITheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.TUI.Theme == "" {
		return "default"
	}
	return c.vals.TUI.Theme
}

func (c *Instance) SetTUITheme(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.TUI.Theme = name
}

func (c *Instance) TUIMouse() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.TUI.Mouse
}
