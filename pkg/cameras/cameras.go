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

// Package cameras derives camera identifiers from folder names and holds the
// set of cameras a run is allowed to touch.
//
// A camera folder is named "<id> <free text>", for example
// "PHP-URSK-ShV1-K5 Склад кислот". The id is everything before the first
// space. Display keeps the original case; matching is case-insensitive.
package cameras

import (
	"errors"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var ErrEmptyValidSet = errors.New("camera list is empty")

// FolderCameraID returns the part of a folder name before the first space.
// Names are NFC-normalized first so ids typed on different systems compare
// equal.
func FolderCameraID(name string) string {
	name = norm.NFC.String(name)
	if i := strings.IndexByte(name, ' '); i >= 0 {
		return name[:i]
	}
	return name
}

// MatchKey is the lower-cased FolderCameraID used for set membership.
func MatchKey(name string) string {
	return strings.ToLower(FolderCameraID(name))
}

// FrameSlug makes a folder name safe to embed in a frame file name.
func FrameSlug(folderName string) string {
	return strings.ReplaceAll(folderName, " ", "_")
}

// ValidSet is the set of camera match keys a run may process.
type ValidSet map[string]struct{}

// NewValidSet builds a set from raw identifiers. Blank values are dropped
// and every value goes through MatchKey.
func NewValidSet(ids ...string) ValidSet {
	set := make(ValidSet, len(ids))
	for _, id := range ids {
		set.Add(id)
	}
	return set
}

func (s ValidSet) Add(id string) {
	key := MatchKey(strings.TrimSpace(id))
	if key == "" {
		return
	}
	s[key] = struct{}{}
}

// Contains reports whether the folder name's match key is in the set.
func (s ValidSet) Contains(folderName string) bool {
	_, ok := s[MatchKey(folderName)]
	return ok
}

func (s ValidSet) Len() int {
	return len(s)
}

func (s ValidSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
