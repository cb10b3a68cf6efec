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

package assets

import (
	_ "embed"
)

// Characters is the raw bundled character table shipped with the binary.
// It is decoded once by the herodefs package and must never be mutated.
//
//go:embed characters.json
var Characters []byte
