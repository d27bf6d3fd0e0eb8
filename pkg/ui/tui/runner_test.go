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
	"strings"
	"testing"
	"time"

	"github.com/apklauncher/apklauncher/pkg/helpers/syncutil"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/require"
)

// testRunner runs a tview app on a simulation screen for the length of a
// test.
type testRunner struct {
	app     *tview.Application
	screen  tcell.SimulationScreen
	done    chan struct{}
	t       *testing.T
	stopMu  syncutil.Mutex
	stopped bool
}

func newTestRunner(t *testing.T, app *tview.Application, width, height int) *testRunner {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(width, height)
	app.SetScreen(screen)

	return &testRunner{
		app:    app,
		screen: screen,
		done:   make(chan struct{}),
		t:      t,
	}
}

// start runs the app in the background until the test ends.
func (r *testRunner) start() {
	go func() {
		defer close(r.done)
		_ = r.app.Run()
	}()
	r.t.Cleanup(r.stop)
	time.Sleep(20 * time.Millisecond)
}

func (r *testRunner) stop() {
	r.stopMu.Lock()
	already := r.stopped
	r.stopped = true
	r.stopMu.Unlock()

	if !already {
		r.app.Stop()
	}
	select {
	case <-r.done:
	case <-time.After(time.Second):
		r.t.Log("app did not stop in time")
	}
}

// exited reports whether the app stopped on its own.
func (r *testRunner) exited() bool {
	select {
	case <-r.done:
		return true
	default:
		return false
	}
}

func (r *testRunner) injectKey(key tcell.Key) {
	r.screen.InjectKey(key, 0, tcell.ModNone)
}

func (r *testRunner) injectString(s string) {
	for _, c := range s {
		r.screen.InjectKey(tcell.KeyRune, c, tcell.ModNone)
	}
}

func (r *testRunner) screenText() string {
	cells, width, height := r.screen.GetContents()
	var sb strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cell := cells[y*width+x]
			if len(cell.Runes) > 0 {
				sb.WriteRune(cell.Runes[0])
			} else {
				sb.WriteRune(' ')
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}

// waitFor polls until cond holds or the timeout passes.
func waitFor(cond func() bool, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

// waitForText redraws until text is on screen.
func (r *testRunner) waitForText(text string) bool {
	return waitFor(func() bool {
		r.app.Draw()
		return strings.Contains(r.screenText(), text)
	}, 2*time.Second)
}
