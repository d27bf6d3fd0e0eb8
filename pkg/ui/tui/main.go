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
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/apklauncher/apklauncher/pkg/basedir"
	"github.com/apklauncher/apklauncher/pkg/catalog"
	"github.com/apklauncher/apklauncher/pkg/config"
	"github.com/apklauncher/apklauncher/pkg/helpers/fsutil"
	"github.com/apklauncher/apklauncher/pkg/launcher"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	labelLaunch    = "Launch"
	labelLaunching = "Running..."
)

// Deps are the services the TUI drives.
type Deps struct {
	Fs       afero.Fs
	Cfg      *config.Instance
	Store    *basedir.Store
	Pipeline *launcher.Pipeline
	Session  *Session
	// Watch enables refreshing the folder list when the base directory
	// changes on disk. It needs a real filesystem.
	Watch bool
}

type mainPage struct {
	app          *tview.Application
	pages        *tview.Pages
	selection    *catalog.Selection
	form         *tview.Form
	baseField    *tview.InputField
	folders      *tview.DropDown
	status       *tview.TextView
	launchButton *tview.Button
	watcher      *catalog.Watcher
	deps         Deps
}

// buildMainPage adds the folder picker page to pages and lists the folders
// of the session's base directory.
func buildMainPage(deps Deps, pages *tview.Pages, app *tview.Application) *mainPage {
	m := &mainPage{
		app:       app,
		pages:     pages,
		deps:      deps,
		selection: catalog.NewSelection(),
	}

	m.baseField = tview.NewInputField().
		SetLabel("Base directory").
		SetText(deps.Session.BaseDir()).
		SetFieldWidth(0)
	m.folders = tview.NewDropDown().
		SetLabel("Game folder")

	m.form = tview.NewForm().
		AddFormItem(m.baseField).
		AddFormItem(m.folders).
		AddButton(labelLaunch, m.launch).
		AddButton("Set base", m.saveBase).
		AddButton("Options", m.openOptions).
		AddButton("Exit", m.exit)
	m.form.SetItemPadding(1)
	m.launchButton = m.form.GetButton(m.form.GetButtonIndex(labelLaunch))
	m.form.SetCancelFunc(m.exit)

	m.status = tview.NewTextView().SetDynamicColors(true)

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(m.form, 0, 1, true).
		AddItem(m.status, 2, 0, false)
	layout.SetTitle(" APK Launcher v" + config.AppVersion + " ").
		SetTitleAlign(tview.AlignCenter)

	m.refresh()
	m.watch()

	pageDefaults(PageMain, pages, layout)
	return m
}

// refresh relists the base directory and keeps the selected folder when it
// still exists.
func (m *mainPage) refresh() {
	base := m.deps.Session.BaseDir()
	entries := catalog.List(m.deps.Fs, base)
	m.selection.Refresh(entries)

	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = tview.Escape(e.Name)
	}
	m.folders.SetOptions(labels, func(_ string, index int) {
		m.selection.SelectIndex(index)
	})
	m.folders.SetCurrentOption(m.selection.Index())

	switch {
	case base == "":
		m.status.SetText(statusText(false, "No base directory set."))
	case !fsutil.IsDir(m.deps.Fs, base):
		m.status.SetText(statusText(false, "Base directory not found: "+base))
	case len(entries) == 0:
		m.status.SetText(statusText(false, "No game folders in "+base))
	default:
		m.status.SetText(fmt.Sprintf("%d game folder(s) in %s", len(entries), tview.Escape(base)))
	}
}

// watch (re)starts the directory watcher on the current base directory.
func (m *mainPage) watch() {
	m.closeWatcher()
	if !m.deps.Watch {
		return
	}

	base := m.deps.Session.BaseDir()
	if !fsutil.IsDir(m.deps.Fs, base) {
		return
	}

	w, err := catalog.NewWatcher(base, catalog.DefaultDebounce, func() {
		m.app.QueueUpdateDraw(m.refresh)
	})
	if err != nil {
		log.Warn().Err(err).Msg("folder list won't refresh automatically")
		return
	}
	m.watcher = w
}

func (m *mainPage) closeWatcher() {
	if m.watcher == nil {
		return
	}
	if err := m.watcher.Close(); err != nil {
		log.Warn().Err(err).Msg("error closing folder watcher")
	}
	m.watcher = nil
}

func (m *mainPage) saveBase() {
	path := strings.TrimSpace(m.baseField.GetText())
	if err := m.deps.Store.Save(path); err != nil {
		log.Error().Err(err).Msg("error saving base directory")
		showMessage(m.pages, "Error", "Failed to save base directory:\n"+err.Error(), nil)
		return
	}
	m.baseField.SetText(path)
	m.deps.Session.SetBaseDir(path)
	m.refresh()
	m.watch()
}

func (m *mainPage) launch() {
	if !m.deps.Session.BeginLaunch() {
		return
	}
	m.setLaunching(true)

	base := m.deps.Session.BaseDir()
	folder := ""
	if entry, ok := m.selection.Current(); ok {
		folder = entry.Name
	}
	exe := m.deps.Cfg.Executable()

	go func() {
		outcome := m.deps.Pipeline.Launch(context.Background(), exe, base, folder)
		m.deps.Session.EndLaunch(outcome)
		m.app.QueueUpdateDraw(func() {
			m.setLaunching(false)
			m.showOutcome(folder, outcome)
		})
	}()
}

func (m *mainPage) setLaunching(running bool) {
	if running {
		m.launchButton.SetLabel(labelLaunching)
		m.launchButton.SetDisabled(true)
		m.status.SetText("Running " + tview.Escape(m.deps.Cfg.Executable()) + "...")
		return
	}
	m.launchButton.SetLabel(labelLaunch)
	m.launchButton.SetDisabled(false)
}

func (m *mainPage) showOutcome(folder string, outcome launcher.Outcome) {
	switch {
	case outcome.Success():
		m.status.SetText(statusText(true, folder+": "+outcome.UserMessage()))
	case outcome.Kind == launcher.OutcomeLaunchFailed && outcome.Message == launcher.ErrNoSelection.Error():
		m.refresh()
		showMessage(m.pages, "No selection", outcome.UserMessage(), nil)
	default:
		m.status.SetText(statusText(false, folder+": launch failed"))
		showMessage(m.pages, "Error", outcome.UserMessage(), nil)
	}
}

func (m *mainPage) openOptions() {
	BuildOptionsPage(m.deps, m.pages, m.deps.Cfg.OptionsFile(), func() {
		m.pages.SwitchToPage(PageMain)
		m.pages.RemovePage(PageOptions)
	})
}

func (m *mainPage) exit() {
	if m.deps.Session.Launching() {
		showMessage(m.pages, "Busy", "Wait for the game to exit first.", nil)
		return
	}
	m.closeWatcher()
	m.app.Stop()
}

func newApp(deps Deps) *tview.Application {
	SetCurrentTheme(deps.Cfg.TUITheme())
	app := tview.NewApplication()
	app.EnableMouse(deps.Cfg.TUIMouse())
	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyCtrlC && deps.Session.Launching() {
			// ignored while a game is running
			return nil
		}
		return event
	})
	return app
}

// BuildMain builds the launcher application with the folder picker as its
// first page.
func BuildMain(deps Deps) (*tview.Application, error) {
	if deps.Cfg == nil || deps.Store == nil || deps.Pipeline == nil {
		return nil, errors.New("tui: missing dependencies")
	}
	if deps.Session == nil {
		deps.Session = NewSession("")
	}

	app := newApp(deps)
	pages := tview.NewPages()
	buildMainPage(deps, pages, app)

	centeredPages := CenterWidget(76, 16, pages)
	return app.SetRoot(centeredPages, true), nil
}

// BuildOptionsApp builds an application that only edits the options file
// at path and exits when the editor is closed.
func BuildOptionsApp(deps Deps, path string) (*tview.Application, error) {
	if deps.Cfg == nil {
		return nil, errors.New("tui: missing config")
	}
	if deps.Session == nil {
		deps.Session = NewSession("")
	}

	app := newApp(deps)
	pages := tview.NewPages()
	BuildOptionsPage(deps, pages, path, app.Stop)

	centeredPages := CenterWidget(76, 22, pages)
	return app.SetRoot(centeredPages, true), nil
}
