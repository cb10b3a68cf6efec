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

package herodefs

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Bundled IDs must have the shape the filename detection rule extracts, or
// a hero could never be matched from a filename.
var reHeroID = regexp.MustCompile(`^10[1-6]\d$`)

func TestBundledTableIntegrity(t *testing.T) {
	t.Parallel()

	heroes := BundledHeroes()
	require.NotEmpty(t, heroes, "bundled table must decode")

	seen := make(map[string]string, len(heroes))
	for _, hero := range heroes {
		assert.Regexp(t, reHeroID, hero.ID, "hero %q has malformed ID", hero.Name)
		assert.NotEmpty(t, hero.Name, "hero %s must have a name", hero.ID)
		assert.NotEmpty(t, hero.Codename, "hero %s must have a codename", hero.ID)

		if prev, dup := seen[hero.ID]; dup {
			assert.Fail(t, "duplicate hero ID",
				"ID %s used by both %s and %s", hero.ID, prev, hero.Name)
		}
		seen[hero.ID] = hero.Name
	}
}

func TestBundledHeroesLoadedOnce(t *testing.T) {
	t.Parallel()

	first := BundledHeroes()
	second := BundledHeroes()
	require.NotEmpty(t, first)
	// Same backing array, not a fresh decode.
	assert.Same(t, &first[0], &second[0])
}

func TestGetHero(t *testing.T) {
	t.Parallel()

	table := []Hero{
		{ID: "1021", Name: "Seren", Codename: "Emberfall"},
		{ID: "1021", Name: "Shadow"},
		{ID: "1034", Name: "Tamsin", Codename: "Voltaic"},
	}

	hero, err := GetHero(table, "1021")
	require.NoError(t, err)
	assert.Equal(t, "Seren", hero.Name, "first matching record wins")

	hero, err = GetHero(table, "1034")
	require.NoError(t, err)
	assert.Equal(t, "Tamsin", hero.Name)

	_, err = GetHero(table, "9999")
	require.Error(t, err)

	_, err = GetHero(nil, "1021")
	require.Error(t, err)
}

func TestGetHeroBundled(t *testing.T) {
	t.Parallel()

	hero, err := GetHero(BundledHeroes(), "1021")
	require.NoError(t, err)
	assert.Equal(t, "Seren", hero.Name)
	assert.Equal(t, "Emberfall", hero.Codename)
}
