// Herodex Core
// Copyright (c) 2026 The Herodex Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Herodex Core.
//
// Herodex Core is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Herodex Core is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Herodex Core.  If not, see <http://www.gnu.org/licenses/>.

package tags

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToTagArray(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  []string
	}{
		{
			name:  "string slice passes through",
			value: []string{"a", "b"},
			want:  []string{"a", "b"},
		},
		{
			name:  "single string wrapped",
			value: "solo",
			want:  []string{"solo"},
		},
		{
			name:  "empty string",
			value: "",
			want:  []string{},
		},
		{
			name:  "nil",
			value: nil,
			want:  []string{},
		},
		{
			name:  "untyped array of strings",
			value: []any{"a", "b"},
			want:  []string{"a", "b"},
		},
		{
			name:  "untyped array skips non-strings",
			value: []any{"a", 1.0, "b", nil},
			want:  []string{"a", "b"},
		},
		{
			name:  "number",
			value: 42,
			want:  []string{},
		},
		{
			name:  "bool",
			value: true,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ToTagArray(tt.value))
		})
	}
}

// TestToTagArrayFromJSON covers the shapes the tags field actually takes
// in decoded mod metadata.
func TestToTagArrayFromJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{
			name: "array field",
			doc:  `{"tags": ["outfit", "weapon"]}`,
			want: []string{"outfit", "weapon"},
		},
		{
			name: "string field",
			doc:  `{"tags": "outfit"}`,
			want: []string{"outfit"},
		},
		{
			name: "null field",
			doc:  `{"tags": null}`,
			want: []string{},
		},
		{
			name: "absent field",
			doc:  `{}`,
			want: []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var meta map[string]any
			require.NoError(t, json.Unmarshal([]byte(tt.doc), &meta))
			assert.Equal(t, tt.want, ToTagArray(meta["tags"]))
		})
	}
}

func TestToTagArrayPreservesOrderAndIdentity(t *testing.T) {
	t.Parallel()

	in := []string{"b", "a", "b"}
	out := ToTagArray(in)
	// Sequences pass through untouched: same order, duplicates intact.
	assert.Equal(t, []string{"b", "a", "b"}, out)
}
