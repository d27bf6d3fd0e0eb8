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

// Package options reads and writes flat "key:value" option files, the
// format used by the game's options.txt. Each line becomes a typed Entry;
// lines that are blank or have no delimiter are dropped on read and are not
// written back.
package options

import (
	"errors"
	"strings"
)

// Delimiter separates a key from its value on a line.
const Delimiter = ":"

var (
	// ErrIO is returned when the backing file can't be read or written.
	ErrIO = errors.New("options file i/o failure")
	// ErrUnknownKey is returned when setting a key the document doesn't have.
	ErrUnknownKey = errors.New("unknown option key")
	// ErrNotBoolean is returned when a boolean entry is given a non-boolean value.
	ErrNotBoolean = errors.New("value is not a boolean")
	// ErrLineBreak is returned when a value would span more than one line.
	ErrLineBreak = errors.New("value contains a line break")
)

// Type is the inferred type of an entry's value.
type Type int

const (
	TypeText Type = iota
	TypeBool
)

func (t Type) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeText:
		return "text"
	default:
		return "unknown"
	}
}

// Entry is a single parsed option. Boolean values are always stored in
// their canonical lowercase form.
type Entry struct {
	Key   string
	Value string
	Type  Type
}

// Bool returns the boolean value of a TypeBool entry. It is false for text
// entries.
func (e Entry) Bool() bool {
	return e.Type == TypeBool && e.Value == "true"
}

// Line renders the entry as it is written to disk.
func (e Entry) Line() string {
	return e.Key + Delimiter + e.Value
}

// parseBool matches "true" and "false" case-insensitively and nothing else.
func parseBool(s string) (value, ok bool) {
	switch {
	case strings.EqualFold(s, "true"):
		return true, true
	case strings.EqualFold(s, "false"):
		return false, true
	default:
		return false, false
	}
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func newEntry(key, value string) Entry {
	if b, ok := parseBool(value); ok {
		return Entry{Key: key, Value: formatBool(b), Type: TypeBool}
	}
	return Entry{Key: key, Value: value, Type: TypeText}
}

// Parse converts lines into entries. A line is split on the first
// delimiter only, so values may contain the delimiter themselves. When a key
// repeats, the entry keeps the position of its first occurrence and takes
// the value of its last.
func Parse(lines []string) []Entry {
	entries := make([]Entry, 0, len(lines))
	seen := make(map[string]int, len(lines))

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, value, found := strings.Cut(line, Delimiter)
		if !found {
			continue
		}

		entry := newEntry(strings.TrimSpace(key), strings.TrimSpace(value))
		if i, ok := seen[entry.Key]; ok {
			entries[i] = entry
			continue
		}
		seen[entry.Key] = len(entries)
		entries = append(entries, entry)
	}

	return entries
}

// Serialize renders entries back to lines in their current order. Values
// are written as stored, without trimming or escaping.
func Serialize(entries []Entry) []string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.Line())
	}
	return lines
}

// splitLines splits file content into lines, accepting both LF and CRLF.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(content, "\n")
}

// joinLines is the inverse of splitLines; every line is newline-terminated.
func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
