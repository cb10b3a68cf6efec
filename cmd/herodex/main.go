/*
Herodex Core
Copyright (c) 2026 The Herodex Project Contributors.

This file is part of Herodex Core.

Herodex Core is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Herodex Core is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Herodex Core.  If not, see <http://www.gnu.org/licenses/>.
*/

package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/HerodexProject/herodex-core/pkg/config"
	"github.com/HerodexProject/herodex-core/pkg/database/herodefs"
	"github.com/HerodexProject/herodex-core/pkg/database/heroscanner"
	"github.com/charlievieth/fastwalk"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	listPath := flag.String(
		"list",
		"",
		"read archive paths from a manifest file, one per line",
	)
	dirPath := flag.String(
		"dir",
		"",
		"scan a directory tree of extracted archive files",
	)
	tablePath := flag.String(
		"table",
		"",
		"load the character table from a CSV file instead of the bundled one",
	)
	showIDs := flag.Bool(
		"ids",
		false,
		"also print detected IDs with no character record",
	)
	debug := flag.Bool(
		"debug",
		false,
		"enable debug logging",
	)
	version := flag.Bool(
		"version",
		false,
		"print version and exit",
	)
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if *version {
		_, _ = fmt.Printf("Herodex v%s\n", config.AppVersion)
		return nil
	}

	fsys := afero.NewOsFs()

	cfgDir, err := os.UserConfigDir()
	if err != nil {
		return fmt.Errorf("failed to find config directory: %w", err)
	}
	cfg, err := config.NewConfig(fsys, filepath.Join(cfgDir, "herodex"), config.BaseDefaults)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if *debug || cfg.DebugLogging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var paths []string
	switch {
	case *listPath != "":
		paths, err = readManifest(fsys, *listPath)
	case *dirPath != "":
		paths, err = walkDir(*dirPath, cfg.ScanExtensions())
	default:
		return fmt.Errorf("one of -list or -dir is required")
	}
	if err != nil {
		return err
	}
	log.Debug().Int("paths", len(paths)).Msg("collected archive paths")

	table := herodefs.BundledHeroes()
	csvPath := *tablePath
	if csvPath == "" {
		csvPath = cfg.HeroTable()
	}
	if csvPath != "" {
		table, err = herodefs.LoadCSV(fsys, csvPath)
		if err != nil {
			return err
		}
		log.Debug().Int("heroes", len(table)).Str("path", csvPath).Msg("loaded character table")
	}

	for _, name := range heroscanner.DetectHeroesWith(paths, table) {
		_, _ = fmt.Println(name)
	}

	if *showIDs {
		for _, id := range unresolvedIDs(paths, table) {
			_, _ = fmt.Printf("%s (no character record)\n", id)
		}
	}

	return nil
}

// readManifest loads an archive content listing, one path per line. Blank
// lines and #-comments are skipped.
func readManifest(fsys afero.Fs, path string) ([]string, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var paths []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		paths = append(paths, line)
	}
	return paths, nil
}

// walkDir collects slash-normalized relative paths under root, filtered by
// extension. The walk callback runs concurrently, so results are sorted
// afterwards for stable output.
func walkDir(root string, exts []string) ([]string, error) {
	var (
		mu    sync.Mutex
		paths []string
	)

	conf := fastwalk.Config{}
	err := fastwalk.Walk(&conf, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("skipping unreadable path")
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if len(exts) > 0 && !hasExtension(path, exts) {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}

		mu.Lock()
		paths = append(paths, filepath.ToSlash(rel))
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	sort.Strings(paths)
	return paths, nil
}

func hasExtension(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

// unresolvedIDs returns detected IDs that have no record in table.
func unresolvedIDs(paths []string, table []herodefs.Hero) []string {
	var missing []string
	for _, id := range heroscanner.DetectHeroIDs(paths) {
		if _, err := herodefs.GetHero(table, id); err != nil {
			missing = append(missing, id)
		}
	}
	return missing
}
