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

package frames

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// TestPropertyFitWithinBounds verifies any image fits the box.
func TestPropertyFitWithinBounds(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		w := rapid.IntRange(1, 8000).Draw(t, "w")
		h := rapid.IntRange(1, 8000).Draw(t, "h")

		got := FitWithin(w, h, MaxWidth, MaxHeight)
		assert.LessOrEqual(t, got.Width, MaxWidth)
		assert.LessOrEqual(t, got.Height, MaxHeight)
		assert.GreaterOrEqual(t, got.Width, 1)
		assert.GreaterOrEqual(t, got.Height, 1)
		assert.True(t, got.Width == MaxWidth || got.Height == MaxHeight, "one side touches the box")
	})
}

// TestPropertyFitWithinAspect verifies camera-shaped frames, portrait or
// landscape, keep their aspect ratio rounded to two decimals.
func TestPropertyFitWithinAspect(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		h := rapid.IntRange(100, 2200).Draw(t, "h")
		// from 1:2 portrait to 2:1 landscape
		w := rapid.IntRange((h+1)/2, 2*h).Draw(t, "w")

		got := FitWithin(w, h, MaxWidth, MaxHeight)
		in := math.Round(float64(w) / float64(h) * 100)
		out := math.Round(float64(got.Width) / float64(got.Height) * 100)
		assert.Equal(t, in, out, "%dx%d -> %dx%d", w, h, got.Width, got.Height)
		assert.True(t, got.Width == MaxWidth || got.Height == MaxHeight, "one side touches the box")
	})
}
