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

package options

import (
	"fmt"
	"strings"
)

// FormBuilder is implemented by whatever renders the options for editing.
// Each entry becomes either a toggle or a free-text field, keyed by the
// entry's key.
type FormBuilder interface {
	AddToggle(key string, checked bool)
	AddText(key, value string)
}

// Editor connects a Document to a FormBuilder.
type Editor struct {
	doc *Document
}

// NewEditor creates an editor for doc.
func NewEditor(doc *Document) *Editor {
	return &Editor{doc: doc}
}

// Document returns the document being edited.
func (e *Editor) Document() *Document {
	return e.doc
}

// Populate adds one control per entry, in document order.
func (e *Editor) Populate(fb FormBuilder) {
	for _, entry := range e.doc.entries {
		switch entry.Type {
		case TypeBool:
			fb.AddToggle(entry.Key, entry.Bool())
		case TypeText:
			fb.AddText(entry.Key, entry.Value)
		}
	}
}

// Commit applies the values read back from the form and saves the
// document. Text values are trimmed, keys the document doesn't know are
// ignored. If any value is rejected or the save fails, the document is
// left as it was before the call.
func (e *Editor) Commit(values map[string]string) error {
	before := e.doc.Entries()

	for _, entry := range before {
		v, ok := values[entry.Key]
		if !ok {
			continue
		}
		if entry.Type == TypeText {
			v = strings.TrimSpace(v)
		}
		if err := e.doc.Set(entry.Key, v); err != nil {
			e.doc.replace(before)
			return fmt.Errorf("invalid value for %s: %w", entry.Key, err)
		}
	}

	if err := e.doc.Save(); err != nil {
		e.doc.replace(before)
		return err
	}

	return nil
}
