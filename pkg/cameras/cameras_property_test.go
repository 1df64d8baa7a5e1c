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

package cameras

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/unicode/norm"
	"pgregory.net/rapid"
)

// TestPropertyFolderCameraIDHasNoSpace verifies the id never contains a space.
func TestPropertyFolderCameraIDHasNoSpace(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		name := rapid.String().Draw(t, "name")
		assert.NotContains(t, FolderCameraID(name), " ")
	})
}

// TestPropertyFolderCameraIDIsPrefix verifies the id is a prefix of the
// normalized folder name.
func TestPropertyFolderCameraIDIsPrefix(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		id := rapid.StringMatching(`[A-Za-z0-9-]{1,20}`).Draw(t, "id")
		rest := rapid.StringMatching(`[а-яА-Я0-9 ,.+]{0,30}`).Draw(t, "rest")

		folder := id + " " + rest
		assert.Equal(t, id, FolderCameraID(folder))
		assert.True(t, strings.HasPrefix(norm.NFC.String(folder), FolderCameraID(folder)))
	})
}

// TestPropertyMatchKeyIdempotent verifies matching keys are stable.
func TestPropertyMatchKeyIdempotent(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		name := rapid.StringMatching(`[A-Za-zА-Яа-яЁё0-9 -]{0,30}`).Draw(t, "name")
		key := MatchKey(name)
		assert.Equal(t, key, MatchKey(key))
	})
}

// TestPropertyValidSetMembership verifies every added id is found again
// regardless of case or trailing description.
func TestPropertyValidSetMembership(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		ids := rapid.SliceOfN(rapid.StringMatching(`[A-Za-z][A-Za-z0-9-]{0,12}`), 1, 20).Draw(t, "ids")
		set := NewValidSet(ids...)

		for _, id := range ids {
			assert.True(t, set.Contains(strings.ToUpper(id)+" описание"))
		}
		assert.LessOrEqual(t, set.Len(), len(ids))
	})
}
