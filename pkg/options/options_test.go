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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
		want  []Entry
	}{
		{
			name:  "boolean_lowercase",
			lines: []string{"fullscreen:true"},
			want:  []Entry{{Key: "fullscreen", Value: "true", Type: TypeBool}},
		},
		{
			name:  "boolean_uppercase_is_canonicalised",
			lines: []string{"fullscreen:TRUE"},
			want:  []Entry{{Key: "fullscreen", Value: "true", Type: TypeBool}},
		},
		{
			name:  "boolean_mixed_case_false",
			lines: []string{"vsync:False"},
			want:  []Entry{{Key: "vsync", Value: "false", Type: TypeBool}},
		},
		{
			name:  "text_starting_with_true_is_not_boolean",
			lines: []string{"name:true story"},
			want:  []Entry{{Key: "name", Value: "true story", Type: TypeText}},
		},
		{
			name:  "splits_on_first_delimiter_only",
			lines: []string{"server:127.0.0.1:19132"},
			want:  []Entry{{Key: "server", Value: "127.0.0.1:19132", Type: TypeText}},
		},
		{
			name:  "trims_key_and_value",
			lines: []string{"  mp_username :  Steve  "},
			want:  []Entry{{Key: "mp_username", Value: "Steve", Type: TypeText}},
		},
		{
			name:  "empty_value_is_text",
			lines: []string{"skin:"},
			want:  []Entry{{Key: "skin", Value: "", Type: TypeText}},
		},
		{
			name:  "drops_malformed_and_blank_lines",
			lines: []string{"# comment", "", "novalue", "   "},
			want:  []Entry{},
		},
		{
			name:  "keeps_order",
			lines: []string{"b:1", "a:2", "c:true"},
			want: []Entry{
				{Key: "b", Value: "1", Type: TypeText},
				{Key: "a", Value: "2", Type: TypeText},
				{Key: "c", Value: "true", Type: TypeBool},
			},
		},
		{
			name:  "duplicate_key_keeps_first_position_last_value",
			lines: []string{"a:1", "b:2", "a:false"},
			want: []Entry{
				{Key: "a", Value: "false", Type: TypeBool},
				{Key: "b", Value: "2", Type: TypeText},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Parse(tt.lines)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_MalformedLinesDoNotRoundTrip(t *testing.T) {
	t.Parallel()

	entries := Parse([]string{"# comment", "", "novalue"})

	assert.Empty(t, entries)
	assert.Empty(t, Serialize(entries))
}

func TestSerialize(t *testing.T) {
	t.Parallel()

	t.Run("round_trips_well_formed_content", func(t *testing.T) {
		t.Parallel()

		lines := []string{
			"mp_username:Steve",
			"gfx_fancygraphics:true",
			"ctrl_sensitivity:0.5",
			"server:127.0.0.1:19132",
			"gfx_lowquality:false",
		}

		assert.Equal(t, lines, Serialize(Parse(lines)))
	})

	t.Run("does_not_escape_embedded_delimiter", func(t *testing.T) {
		t.Parallel()

		entries := []Entry{{Key: "a", Value: "b:c", Type: TypeText}}

		assert.Equal(t, []string{"a:b:c"}, Serialize(entries))
	})

	t.Run("writes_text_values_verbatim", func(t *testing.T) {
		t.Parallel()

		entries := []Entry{{Key: "a", Value: "  padded ", Type: TypeText}}

		assert.Equal(t, []string{"a:  padded "}, Serialize(entries))
	})
}

func TestEntry_Bool(t *testing.T) {
	t.Parallel()

	entries := Parse([]string{"a:TRUE", "b:false", "c:true story"})
	require.Len(t, entries, 3)

	assert.True(t, entries[0].Bool())
	assert.False(t, entries[1].Bool())
	assert.False(t, entries[2].Bool())
}

func TestType_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "bool", TypeBool.String())
	assert.Equal(t, "text", TypeText.String())
	assert.Equal(t, "unknown", Type(42).String())
}

func TestSplitLines(t *testing.T) {
	t.Parallel()

	assert.Nil(t, splitLines(""))
	assert.Equal(t, []string{"a:1", "b:2"}, splitLines("a:1\r\nb:2\r\n"))
	assert.Equal(t, []string{"a:1", "", "b:2"}, splitLines("a:1\n\nb:2"))
	assert.Equal(t, "a:1\nb:2\n", joinLines([]string{"a:1", "b:2"}))
	assert.Empty(t, joinLines(nil))
}
