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

// Package heroscanner extracts hero IDs from archive content listings and
// resolves them to display names. Detection is pure string matching over
// slash-separated paths; it never touches the filesystem, so it is safe to
// call concurrently.
package heroscanner

import (
	"regexp"
	"strings"

	"github.com/HerodexProject/herodex-core/pkg/database/herodefs"
	"github.com/rs/zerolog/log"
)

// Package-level compiled regexes for hero detection.
// These are compiled once at initialization for optimal performance.
var (
	// A character directory: Characters/, Hero_ST/ or Hero/ followed by a
	// run of exactly 4 digits. Archives arrive in mixed or lower case, so
	// the segment names match case-insensitively. Hero_ST must precede
	// Hero in the alternation or it can never win.
	reHeroPath = regexp.MustCompile(`(?i)(?:^|/)(?:Characters|Hero_ST|Hero)/(\d{4})(?:\D|$)`)

	// A character asset filename: a 7-digit run whose first 4 digits are a
	// hero ID (10[1-6]x), anchored at a '_' or '/'. Only '_' can occur in
	// a bare filename; the '/' alternative is kept for callers that match
	// against a full path.
	reHeroFile = regexp.MustCompile(`[_/](10[1-6]\d)\d{3}`)
)

// Filenames with this prefix are shared material instances, not
// character-specific assets, and never count as a detection.
const genericAssetPrefix = "mi_"

// DetectHeroes scans archive paths and returns the unique display names of
// every hero they imply, resolved against the bundled character table.
func DetectHeroes(paths []string) []string {
	return detect(paths, herodefs.BundledHeroes())
}

// DetectHeroesWith is DetectHeroes with a caller-supplied character table.
// Detection rules are identical; only resolution differs.
func DetectHeroesWith(paths []string, table []herodefs.Hero) []string {
	return detect(paths, table)
}

// DetectHeroIDs returns the deduplicated candidate IDs in the order they
// were first seen, before any table resolution.
func DetectHeroIDs(paths []string) []string {
	return extractIDs(paths)
}

func detect(paths []string, table []herodefs.Hero) []string {
	ids := extractIDs(paths)

	names := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		hero, err := herodefs.GetHero(table, id)
		if err != nil {
			log.Debug().Str("id", id).Msg("no character record for detected id")
			continue
		}
		if _, dup := seen[hero.Name]; dup {
			continue
		}
		seen[hero.Name] = struct{}{}
		names = append(names, hero.Name)
	}
	return names
}

// extractIDs applies both detection rules to every path and collects
// candidate IDs as an insertion-ordered set.
func extractIDs(paths []string) []string {
	ids := make([]string, 0, len(paths))
	seen := make(map[string]struct{}, len(paths))
	add := func(id string) {
		if _, dup := seen[id]; dup {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	for _, path := range paths {
		// A character directory match wins outright: filenames under it
		// often embed unrelated digit runs from shared assets.
		if m := reHeroPath.FindStringSubmatch(path); m != nil {
			add(m[1])
			continue
		}

		filename := path
		if i := strings.LastIndexByte(path, '/'); i >= 0 {
			filename = path[i+1:]
		}
		if strings.HasPrefix(strings.ToLower(filename), genericAssetPrefix) {
			continue
		}
		if m := reHeroFile.FindStringSubmatch(filename); m != nil {
			add(m[1])
		}
	}

	return ids
}
