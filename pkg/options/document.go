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

	"github.com/apklauncher/apklauncher/pkg/helpers/fsutil"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const filePerm = 0o644

// Document is an ordered set of entries backed by a file.
type Document struct {
	fs      afero.Fs
	index   map[string]int
	path    string
	entries []Entry
}

// NewDocument creates a document from already parsed entries. Entries are
// normalised the same way Parse would read them back from disk.
func NewDocument(fs afero.Fs, path string, entries []Entry) *Document {
	d := &Document{fs: fs, path: path}
	d.replace(Parse(Serialize(entries)))
	return d
}

// Load reads and parses the options file at path.
func Load(fs afero.Fs, path string) (*Document, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", ErrIO, path, err)
	}

	d := &Document{fs: fs, path: path}
	d.replace(Parse(splitLines(string(data))))

	log.Debug().
		Str("path", path).
		Int("entries", len(d.entries)).
		Msg("loaded options file")

	return d, nil
}

func (d *Document) replace(entries []Entry) {
	d.entries = entries
	d.index = make(map[string]int, len(entries))
	for i, e := range entries {
		d.index[e.Key] = i
	}
}

// Path returns the backing file path.
func (d *Document) Path() string {
	return d.path
}

// Len returns the number of entries.
func (d *Document) Len() int {
	return len(d.entries)
}

// Entries returns a copy of the entries in document order.
func (d *Document) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Get returns the entry for key.
func (d *Document) Get(key string) (Entry, bool) {
	i, ok := d.index[key]
	if !ok {
		return Entry{}, false
	}
	return d.entries[i], true
}

// Set changes the value of an existing entry, keeping its type. Boolean
// entries only accept "true" or "false" in any case. Values can't contain
// line breaks.
func (d *Document) Set(key, value string) error {
	i, ok := d.index[key]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	if strings.ContainsAny(value, "\r\n") {
		return fmt.Errorf("%w: %s=%q", ErrLineBreak, key, value)
	}

	if d.entries[i].Type == TypeBool {
		b, ok := parseBool(value)
		if !ok {
			return fmt.Errorf("%w: %s=%q", ErrNotBoolean, key, value)
		}
		d.entries[i].Value = formatBool(b)
		return nil
	}

	d.entries[i].Value = value
	return nil
}

// SetBool changes the value of an existing boolean entry.
func (d *Document) SetBool(key string, value bool) error {
	return d.Set(key, formatBool(value))
}

// Save writes all entries back to the backing file, replacing it as a
// whole.
func (d *Document) Save() error {
	data := joinLines(Serialize(d.entries))
	if err := fsutil.WriteFileAtomic(d.fs, d.path, []byte(data), filePerm); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	log.Info().
		Str("path", d.path).
		Int("entries", len(d.entries)).
		Msg("saved options file")

	return nil
}
