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

package catalog

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/haxsokol/create-files-cameras/pkg/cameras"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Rename records what happened to one camera folder during normalization.
type Rename struct {
	Err     error
	From    string
	To      string
	Skipped bool
}

// NormalizeFolders renames every immediate subfolder of root to its camera
// id, dropping the free-text description after the first space. A rename
// whose target already exists is skipped with a warning; nothing is ever
// overwritten and a failed rename does not stop the others.
func NormalizeFolders(fs afero.Fs, root string) ([]Rename, error) {
	entries, err := afero.ReadDir(fs, root)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", root, err)
	}

	var renames []Rename
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || !strings.Contains(name, " ") {
			continue
		}

		target := cameras.FolderCameraID(name)
		r := Rename{From: name, To: target}

		switch {
		case target == "":
			r.Skipped = true
			log.Warn().Str("folder", name).Msg("folder name starts with a space, not renaming")
		case targetExists(fs, filepath.Join(root, target)):
			r.Skipped = true
			log.Warn().
				Str("folder", name).
				Str("target", target).
				Msg("cannot rename folder, target already exists")
		default:
			if err := fs.Rename(filepath.Join(root, name), filepath.Join(root, target)); err != nil {
				r.Skipped = true
				r.Err = err
				log.Warn().Err(err).Str("folder", name).Msg("failed to rename folder")
			} else {
				log.Info().Msgf("renamed folder %s -> %s", name, target)
			}
		}

		renames = append(renames, r)
	}

	return renames, nil
}

func targetExists(fs afero.Fs, path string) bool {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		// An unreadable target counts as taken.
		return true
	}
	return exists
}
