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
	"github.com/hbollon/go-edlib"
	"github.com/rs/zerolog/log"
)

// MinSuggestSimilarity is the Jaro-Winkler score a listed camera needs to be
// offered as a likely typo of an unmatched folder.
const MinSuggestSimilarity float32 = 0.85

// Suggest returns the listed camera closest to the folder's match key, if
// any is close enough. Ties go to the alphabetically first candidate.
func Suggest(folderName string, set ValidSet) (string, bool) {
	query := MatchKey(folderName)
	if query == "" {
		return "", false
	}

	var (
		best      string
		bestScore float32
	)
	for _, candidate := range set.Sorted() {
		if candidate == query {
			return candidate, true
		}

		score := edlib.JaroWinklerSimilarity(query, candidate)
		if score > bestScore {
			best, bestScore = candidate, score
		}
	}

	if bestScore < MinSuggestSimilarity {
		return "", false
	}

	log.Debug().
		Str("query", query).
		Str("candidate", best).
		Float32("similarity", bestScore).
		Msg("closest listed camera")

	return best, true
}
