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
	"path/filepath"

	"github.com/haxsokol/create-files-cameras/pkg/sheets"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

type Options struct {
	Source           string
	Sheet            string
	OutputDir        string
	Format           sheets.Format
	CameraColumn     string
	ProductionColumn string
	ShopColumn       string
	UnsetShop        string
}

type Result struct {
	Files   []string
	Records int
}

// Load reads inventory records, failing with a MissingColumnError when one
// of the three expected columns is absent.
func Load(fs afero.Fs, opts Options) ([]Record, error) {
	schema := sheets.Require(opts.Sheet, opts.CameraColumn, opts.ProductionColumn, opts.ShopColumn)
	tbl, err := sheets.Read(fs, opts.Source, schema)
	if err != nil {
		return nil, err
	}

	cam := tbl.Index(opts.CameraColumn)
	prod := tbl.Index(opts.ProductionColumn)
	shop := tbl.Index(opts.ShopColumn)

	records := make([]Record, 0, len(tbl.Rows))
	for _, row := range tbl.Rows {
		records = append(records, Record{
			CameraName: row[cam],
			Production: row[prod],
			Shop:       row[shop],
		})
	}
	return records, nil
}

// Run writes one single-column file per group key into OutputDir. Files
// from a previous run with the same key are replaced.
func Run(fs afero.Fs, opts Options) (Result, error) {
	records, err := Load(fs, opts)
	if err != nil {
		return Result{}, err
	}
	log.Info().Msgf("loaded %d camera records from %s", len(records), opts.Source)

	format := opts.Format
	if format == "" {
		format = sheets.FormatXLSX
	}

	res := Result{Records: len(records)}
	for _, g := range Partition(records, opts.UnsetShop) {
		path := filepath.Join(opts.OutputDir, g.Key+"."+string(format))
		if err := sheets.WriteColumn(fs, path, opts.CameraColumn, g.Cameras); err != nil {
			return res, fmt.Errorf("failed to write partition %q: %w", g.Key, err)
		}

		log.Info().Str("key", g.Key).Int("cameras", len(g.Cameras)).Msg("partition written")
		res.Files = append(res.Files, path)
	}

	return res, nil
}
