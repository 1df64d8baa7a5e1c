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
	"fmt"

	"github.com/haxsokol/create-files-cameras/pkg/sheets"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// LoadValidSet reads camera ids from the first column of a spreadsheet.
// The first row is a header and is not part of the set. An empty sheet
// name selects the first sheet.
func LoadValidSet(fs afero.Fs, path, sheet string) (ValidSet, error) {
	values, err := sheets.ReadFirstColumn(fs, path, sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to load camera list: %w", err)
	}

	set := NewValidSet(values...)
	if set.Len() == 0 {
		return nil, ErrEmptyValidSet
	}

	log.Info().Msgf("loaded %d cameras from %s", set.Len(), path)
	return set, nil
}
