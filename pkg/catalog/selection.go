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

package catalog

// Selection holds the current folder selection. At most one entry is
// selected; when the list is non-empty there is always a selection.
type Selection struct {
	entries []Entry
	index   int
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{index: -1}
}

// Refresh replaces the list of entries. The previous selection is kept if
// an entry with the same name is still present, otherwise the first entry
// is selected.
func (s *Selection) Refresh(entries []Entry) {
	prev, hadPrev := s.Current()

	s.entries = entries
	s.index = -1
	if len(entries) == 0 {
		return
	}

	if hadPrev {
		for i, e := range entries {
			if e.Name == prev.Name {
				s.index = i
				return
			}
		}
	}
	s.index = 0
}

// Entries returns the entries the selection was last refreshed with.
func (s *Selection) Entries() []Entry {
	return s.entries
}

// Current returns the selected entry.
func (s *Selection) Current() (Entry, bool) {
	if s.index < 0 || s.index >= len(s.entries) {
		return Entry{}, false
	}
	return s.entries[s.index], true
}

// Index returns the index of the selected entry, or -1.
func (s *Selection) Index() int {
	return s.index
}

// Select selects the entry with the given name. It returns false and keeps
// the current selection if no such entry exists.
func (s *Selection) Select(name string) bool {
	for i, e := range s.entries {
		if e.Name == name {
			s.index = i
			return true
		}
	}
	return false
}

// SelectIndex selects the entry at i. It returns false and keeps the
// current selection if i is out of range.
func (s *Selection) SelectIndex(i int) bool {
	if i < 0 || i >= len(s.entries) {
		return false
	}
	s.index = i
	return true
}
