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
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Theme defines the colors used by the launcher pages.
type Theme struct {
	Name             string
	DisplayName      string
	ErrorColorName   string
	SuccessColorName string
	Background       tcell.Color
	Contrast         tcell.Color
	Border           tcell.Color
	Text             tcell.Color
	Secondary        tcell.Color
	Inverse          tcell.Color
	FieldBackground  tcell.Color
}

var ThemeDefault = Theme{
	Name:             "default",
	DisplayName:      "Default (Dark Blue)",
	ErrorColorName:   "red",
	SuccessColorName: "green",
	Background:       tcell.ColorDarkBlue,
	Contrast:         tcell.ColorBlue,
	Border:           tcell.ColorLightYellow,
	Text:             tcell.ColorWhite,
	Secondary:        tcell.ColorYellow,
	Inverse:          tcell.ColorDarkBlue,
	FieldBackground:  tcell.ColorBlue,
}

var ThemeHighContrast = Theme{
	Name:             "high_contrast",
	DisplayName:      "High Contrast",
	ErrorColorName:   "red",
	SuccessColorName: "lime",
	Background:       tcell.ColorBlack,
	Contrast:         tcell.ColorYellow,
	Border:           tcell.ColorWhite,
	Text:             tcell.ColorWhite,
	Secondary:        tcell.ColorYellow,
	Inverse:          tcell.ColorBlack,
	FieldBackground:  tcell.ColorDarkSlateGray,
}

var ThemeDracula = Theme{
	Name:             "dracula",
	DisplayName:      "Dracula",
	ErrorColorName:   "#ff5555",
	SuccessColorName: "#50fa7b",
	Background:       tcell.NewHexColor(0x282a36),
	Contrast:         tcell.NewHexColor(0x44475a),
	Border:           tcell.NewHexColor(0xbd93f9),
	Text:             tcell.NewHexColor(0xf8f8f2),
	Secondary:        tcell.NewHexColor(0xff79c6),
	Inverse:          tcell.NewHexColor(0x282a36),
	FieldBackground:  tcell.NewHexColor(0x44475a),
}

var ThemeNord = Theme{
	Name:             "nord",
	DisplayName:      "Nord",
	ErrorColorName:   "#bf616a",
	SuccessColorName: "#a3be8c",
	Background:       tcell.NewHexColor(0x2e3440),
	Contrast:         tcell.NewHexColor(0x3b4252),
	Border:           tcell.NewHexColor(0x88c0d0),
	Text:             tcell.NewHexColor(0xeceff4),
	Secondary:        tcell.NewHexColor(0x81a1c1),
	Inverse:          tcell.NewHexColor(0x2e3440),
	FieldBackground:  tcell.NewHexColor(0x434c5e),
}

var ThemeGruvbox = Theme{
	Name:             "gruvbox",
	DisplayName:      "Gruvbox",
	ErrorColorName:   "#fb4934",
	SuccessColorName: "#b8bb26",
	Background:       tcell.NewHexColor(0x282828),
	Contrast:         tcell.NewHexColor(0x3c3836),
	Border:           tcell.NewHexColor(0xfabd2f),
	Text:             tcell.NewHexColor(0xebdbb2),
	Secondary:        tcell.NewHexColor(0xfe8019),
	Inverse:          tcell.NewHexColor(0x282828),
	FieldBackground:  tcell.NewHexColor(0x504945),
}

var ThemeMonogreen = Theme{
	Name:             "monogreen",
	DisplayName:      "Mono Green",
	ErrorColorName:   "red",
	SuccessColorName: "lime",
	Background:       tcell.ColorBlack,
	Contrast:         tcell.ColorDarkGreen,
	Border:           tcell.ColorGreen,
	Text:             tcell.ColorGreen,
	Secondary:        tcell.ColorLime,
	Inverse:          tcell.ColorBlack,
	FieldBackground:  tcell.ColorDarkGreen,
}

// AvailableThemes maps theme names to theme definitions. The names are the
// accepted values of the tui.theme setting.
var AvailableThemes = map[string]*Theme{
	"default":       &ThemeDefault,
	"high_contrast": &ThemeHighContrast,
	"dracula":       &ThemeDracula,
	"nord":          &ThemeNord,
	"gruvbox":       &ThemeGruvbox,
	"monogreen":     &ThemeMonogreen,
}

var (
	currentTheme = &ThemeDefault
	appliedTheme *Theme
	themeMu      syncutil.RWMutex
)

// CurrentTheme returns the currently active theme.
func CurrentTheme() *Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// SetCurrentTheme activates a theme by name and applies it to tview's
// global styles. Unknown names leave the current theme in place.
func SetCurrentTheme(name string) bool {
	theme, ok := AvailableThemes[name]
	if !ok {
		return false
	}
	themeMu.Lock()
	defer themeMu.Unlock()
	currentTheme = theme
	if appliedTheme != theme {
		ApplyTheme(theme, &tview.Styles)
		appliedTheme = theme
	}
	return true
}

// ApplyTheme copies theme colors into a tview style set.
func ApplyTheme(theme *Theme, styles *tview.Theme) {
	styles.PrimitiveBackgroundColor = theme.Background
	styles.ContrastBackgroundColor = theme.Contrast
	styles.MoreContrastBackgroundColor = theme.FieldBackground
	styles.BorderColor = theme.Border
	styles.TitleColor = theme.Border
	styles.PrimaryTextColor = theme.Text
	styles.SecondaryTextColor = theme.Secondary
	styles.ContrastSecondaryTextColor = theme.Secondary
	styles.InverseTextColor = theme.Inverse
}
