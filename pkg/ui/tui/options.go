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
	"path/filepath"
	"strconv"

	"github.com/apklauncher/apklauncher/pkg/options"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

type optionsField struct {
	checkbox *tview.Checkbox
	input    *tview.InputField
	key      string
}

// optionsForm renders options entries as tview form items.
type optionsForm struct {
	form   *tview.Form
	fields []optionsField
}

func newOptionsForm(form *tview.Form) *optionsForm {
	return &optionsForm{form: form}
}

func (f *optionsForm) AddToggle(key string, checked bool) {
	cb := tview.NewCheckbox().
		SetLabel(tview.Escape(key)).
		SetChecked(checked)
	f.form.AddFormItem(cb)
	f.fields = append(f.fields, optionsField{key: key, checkbox: cb})
}

func (f *optionsForm) AddText(key, value string) {
	in := tview.NewInputField().
		SetLabel(tview.Escape(key)).
		SetText(value).
		SetFieldWidth(0)
	f.form.AddFormItem(in)
	f.fields = append(f.fields, optionsField{key: key, input: in})
}

// Values returns the current value of every control, keyed by option key.
func (f *optionsForm) Values() map[string]string {
	values := make(map[string]string, len(f.fields))
	for _, field := range f.fields {
		switch {
		case field.checkbox != nil:
			values[field.key] = strconv.FormatBool(field.checkbox.IsChecked())
		case field.input != nil:
			values[field.key] = field.input.GetText()
		}
	}
	return values
}

// BuildOptionsPage loads the options file at path and shows an editor
// form for it. done is called when the editor is closed.
func BuildOptionsPage(deps Deps, pages *tview.Pages, path string, done func()) {
	name := filepath.Base(path)

	doc, err := options.Load(deps.Fs, path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("error loading options")
		showMessage(pages, "Error", "Failed to load "+name+":\n"+err.Error(), done)
		return
	}

	editor := options.NewEditor(doc)
	form := tview.NewForm()
	fb := newOptionsForm(form)
	editor.Populate(fb)

	if doc.Len() == 0 {
		form.AddTextView("", "No options found in "+tview.Escape(name)+".", 0, 1, false, false)
	}

	form.AddButton("Save", func() {
		if err := editor.Commit(fb.Values()); err != nil {
			log.Error().Err(err).Str("path", path).Msg("error saving options")
			showMessage(pages, "Error", "Failed to save "+name+":\n"+err.Error(), nil)
			return
		}
		showMessage(pages, "Saved", "Options saved successfully.", done)
	})
	form.AddButton("Cancel", done)
	form.SetCancelFunc(done)
	form.SetTitle(" Edit Options: " + tview.Escape(name) + " ").
		SetTitleAlign(tview.AlignCenter)

	pageDefaults(PageOptions, pages, form)
}
