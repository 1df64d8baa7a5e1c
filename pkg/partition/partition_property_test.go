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

package partition

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func recordGen() *rapid.Generator[Record] {
	return rapid.Custom(func(t *rapid.T) Record {
		shop := rapid.OneOf(
			rapid.Just(UnsetShop),
			rapid.StringMatching(`[А-Яа-я0-9 <>:"/\\|?*]{0,12}`),
		).Draw(t, "shop")
		return Record{
			CameraName: rapid.StringMatching(`CAM-[0-9]{1,5}`).Draw(t, "camera"),
			Production: rapid.StringMatching(`[А-Яа-я0-9 <>:"/\\|?*]{0,12}`).Draw(t, "production"),
			Shop:       shop,
		}
	})
}

// TestPropertyGroupKeyIsLegalFileName verifies no reserved character survives.
func TestPropertyGroupKeyIsLegalFileName(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		r := recordGen().Draw(t, "record")
		key := GroupKey(r, UnsetShop)
		assert.False(t, strings.ContainsAny(key, `<>:"/\|?*`), "key %q", key)
	})
}

// TestPropertyUnsetShopUsesProduction verifies the unset-shop substitution.
func TestPropertyUnsetShopUsesProduction(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		prod := rapid.StringMatching(`[А-Яа-я0-9 ]{1,12}`).Draw(t, "production")
		r := Record{CameraName: "CAM", Production: prod, Shop: UnsetShop}
		assert.True(t, strings.HasPrefix(GroupKey(r, UnsetShop), prod+"_"+prod))
	})
}

// TestPropertyPartitionIsSetPartition verifies every camera lands in exactly
// one group and nothing is added or lost.
func TestPropertyPartitionIsSetPartition(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		records := rapid.SliceOf(recordGen()).Draw(t, "records")
		for i := range records {
			records[i].CameraName = fmt.Sprintf("CAM-%d", i)
		}
		groups := Partition(records, UnsetShop)

		want := make(map[string]int)
		for _, r := range records {
			want[r.CameraName]++
		}

		got := make(map[string]int)
		owner := make(map[string]string)
		seenKeys := make(map[string]bool)
		for _, g := range groups {
			assert.False(t, seenKeys[g.Key], "duplicate key %q", g.Key)
			seenKeys[g.Key] = true
			for _, c := range g.Cameras {
				got[c]++
				_, dup := owner[c]
				assert.False(t, dup, "camera %q in two groups", c)
				owner[c] = g.Key
			}
		}
		assert.Equal(t, want, got)

		for i := 1; i < len(groups); i++ {
			assert.GreaterOrEqual(t, len(groups[i-1].Cameras), len(groups[i].Cameras))
		}
	})
}
