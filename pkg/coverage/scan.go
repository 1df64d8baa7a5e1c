// Create Files Cameras
// Copyright (c) 2026 The Create Files Cameras Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Create Files Cameras.
//
// Create Files Cameras is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Create Files Cameras is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Create Files Cameras.  If not, see <http://www.gnu.org/licenses/>.

// Package coverage lists which cameras have recordings on the share and
// merges those lists into one master list.
package coverage

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/haxsokol/create-files-cameras/pkg/cameras"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// DefaultPattern keeps folders whose name starts with a Latin letter.
const DefaultPattern = "^[A-Za-z]"

var DefaultExtensions = []string{".avi", ".mkv", ".mp4"}

// FolderPredicate decides whether a video's parent folder names a camera.
type FolderPredicate func(name string) bool

// PatternPredicate matches folder names against a regular expression.
func PatternPredicate(pattern string) (FolderPredicate, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid folder pattern %q: %w", pattern, err)
	}
	return re.MatchString, nil
}

// LatinFolder is the default predicate: names starting with a Latin letter.
var LatinFolder FolderPredicate = regexp.MustCompile(DefaultPattern).MatchString

// AnyFolder accepts every folder. Pass it explicitly to turn filtering off.
func AnyFolder(string) bool { return true }

// Scan looks inside each immediate subdirectory of root for video files
// at any depth and returns the camera ids of their parent folders,
// lower-cased, deduplicated and sorted. A nil keep means LatinFolder.
func Scan(fs afero.Fs, root string, exts []string, keep FolderPredicate) ([]string, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	if keep == nil {
		keep = LatinFolder
	}
	want := make([]string, len(exts))
	for i, e := range exts {
		want[i] = strings.ToLower(e)
	}

	entries, err := afero.ReadDir(fs, root)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", root, err)
	}

	found := make(map[string]struct{})
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		dir := filepath.Join(root, entry.Name())
		log.Debug().Str("path", dir).Msg("scanning folder")

		err := afero.Walk(fs, dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				log.Warn().Err(err).Str("path", path).Msg("skipping unreadable path")
				if info != nil && info.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if info.IsDir() || !slices.Contains(want, strings.ToLower(filepath.Ext(path))) {
				return nil
			}

			parent := filepath.Base(filepath.Dir(path))
			if !keep(parent) {
				return nil
			}
			if id := cameras.MatchKey(parent); id != "" {
				found[id] = struct{}{}
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
		}
	}

	return sortedKeys(found), nil
}

// ScanRoots scans every root in order and unions the results.
func ScanRoots(fs afero.Fs, roots, exts []string, keep FolderPredicate) ([]string, error) {
	lists := make([][]string, 0, len(roots))
	for _, root := range roots {
		ids, err := Scan(fs, root, exts, keep)
		if err != nil {
			return nil, err
		}
		log.Info().Msgf("found %d cameras with video under %s", len(ids), root)
		lists = append(lists, ids)
	}
	return Union(lists...), nil
}

// Union merges lists into one sorted list without duplicates. Blank
// values are dropped.
func Union(lists ...[]string) []string {
	set := make(map[string]struct{})
	for _, list := range lists {
		for _, v := range list {
			v = strings.TrimSpace(v)
			if v != "" {
				set[v] = struct{}{}
			}
		}
	}
	return sortedKeys(set)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
