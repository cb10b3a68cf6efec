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

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-playground/validator/v10"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	AppVersion    = "0.3.1"
	SchemaVersion = 1
	CfgFile       = "config.toml"
	CfgEnv        = "HERODEX_CFG"
)

type Values struct {
	Scan         Scan `toml:"scan,omitempty"`
	ConfigSchema int  `toml:"config_schema"           validate:"required,min=1"`
	DebugLogging bool `toml:"debug_logging"`
}

type Scan struct {
	// HeroTable overrides the bundled character table with a CSV file.
	HeroTable string `toml:"hero_table,omitempty"`
	// Extensions limits which walked files are fed to the detector.
	Extensions []string `toml:"extensions,omitempty,multiline" validate:"omitempty,dive,startswith=."`
}

var BaseDefaults = Values{
	ConfigSchema: SchemaVersion,
	Scan: Scan{
		Extensions: []string{".uasset", ".uexp", ".ubulk", ".umap", ".png"},
	},
}

var validate = validator.New(validator.WithRequiredStructEnabled())

type Instance struct {
	fs      afero.Fs
	cfgPath string
	vals    Values
	mu      sync.RWMutex
}

// NewConfig loads the config file under configDir, creating it with
// defaults when missing. The HERODEX_CFG env var overrides the path.
//
//nolint:gocritic // config struct copied for immutability
func NewConfig(fsys afero.Fs, configDir string, defaults Values) (*Instance, error) {
	cfgPath := os.Getenv(CfgEnv)
	if cfgPath == "" {
		cfgPath = filepath.Join(configDir, CfgFile)
	}

	cfg := Instance{
		fs:      fsys,
		cfgPath: cfgPath,
		vals:    defaults,
	}

	if _, err := fsys.Stat(cfgPath); os.IsNotExist(err) {
		log.Info().Msg("saving new default config to disk")

		if err := fsys.MkdirAll(filepath.Dir(cfgPath), 0o750); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}
		if err := cfg.Save(); err != nil {
			return nil, err
		}
	}

	if err := cfg.Load(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Instance) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := afero.ReadFile(c.fs, c.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var newVals Values
	if err := toml.Unmarshal(data, &newVals); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := validate.Struct(&newVals); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	c.vals = newVals
	return nil
}

func (c *Instance) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := toml.Marshal(c.vals)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := afero.WriteFile(c.fs, c.cfgPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (c *Instance) DebugLogging() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.DebugLogging
}

func (c *Instance) HeroTable() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Scan.HeroTable
}

func (c *Instance) ScanExtensions() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	exts := make([]string, len(c.vals.Scan.Extensions))
	copy(exts, c.vals.Scan.Extensions)
	return exts
}
