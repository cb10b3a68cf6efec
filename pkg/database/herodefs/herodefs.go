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
	"encoding/json"
	"fmt"
	"sync"

	"github.com/HerodexProject/herodex-core/pkg/assets"
	"github.com/rs/zerolog/log"
)

// A Hero is a single entry in a character table: a 4-digit numeric ID as it
// appears inside game asset paths, plus the display name players know the
// character by. Tables are ordered; when two entries share an ID the first
// one wins on lookup.

type Hero struct {
	ID       string `csv:"id"       json:"id"`
	Name     string `csv:"name"     json:"name"`
	Codename string `csv:"codename" json:"codename,omitempty"`
}

var (
	bundledOnce sync.Once
	bundled     []Hero
)

// BundledHeroes returns the character table embedded in the binary. The
// table is decoded once on first use and shared by every caller; treat it
// as read-only.
func BundledHeroes() []Hero {
	bundledOnce.Do(func() {
		if err := json.Unmarshal(assets.Characters, &bundled); err != nil {
			// Unreachable with a well-formed embedded table, which
			// TestBundledTableIntegrity guarantees.
			log.Error().Err(err).Msg("failed to decode bundled character table")
		}
	})
	return bundled
}

// GetHero looks up a hero by exact ID in table order, first match wins.
func GetHero(table []Hero, id string) (*Hero, error) {
	for i := range table {
		if table[i].ID == id {
			return &table[i], nil
		}
	}
	return nil, fmt.Errorf("unknown hero: %s", id)
}
