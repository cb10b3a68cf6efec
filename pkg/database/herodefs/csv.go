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
	"fmt"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// LoadCSV reads a character table from a CSV file with id/name/codename
// columns. Games patch in new characters faster than we cut releases, so
// users can point Herodex at an up-to-date table without waiting for a new
// bundled one.
func LoadCSV(fsys afero.Fs, path string) ([]Hero, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open hero table: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("failed to close hero table")
		}
	}()

	var heroes []Hero
	if err := gocsv.Unmarshal(file, &heroes); err != nil {
		return nil, fmt.Errorf("failed to parse hero table %s: %w", path, err)
	}
	return heroes, nil
}
