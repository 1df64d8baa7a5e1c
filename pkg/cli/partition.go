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

package cli

import (
	"errors"
	"path/filepath"

	"github.com/haxsokol/create-files-cameras/pkg/config"
	"github.com/haxsokol/create-files-cameras/pkg/partition"
	"github.com/haxsokol/create-files-cameras/pkg/pickers"
	"github.com/haxsokol/create-files-cameras/pkg/sheets"
)

// RunPartition splits the camera inventory into one file per production
// and shop. A relative output dir is placed next to the source file.
func RunPartition(env Env, cfg config.Partition, paths pickers.PathProvider) (partition.Result, error) {
	source := cfg.Source
	if source == "" {
		var err error
		source, err = paths.File(TitleInventory, pickers.SpreadsheetFilter)
		if err != nil {
			return partition.Result{}, fail(MsgNoInventory, err)
		}
	}

	outDir := cfg.OutputDir
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(filepath.Dir(source), outDir)
	}

	res, err := partition.Run(env.Fs, partition.Options{
		Source:           source,
		Sheet:            cfg.Sheet,
		OutputDir:        outDir,
		Format:           sheets.Format(cfg.Format),
		CameraColumn:     cfg.CameraColumn,
		ProductionColumn: cfg.ProductionColumn,
		ShopColumn:       cfg.ShopColumn,
		UnsetShop:        cfg.UnsetShop,
	})
	if errors.Is(err, sheets.ErrMissingColumn) {
		return res, fail(MsgMissingColumn, err)
	}
	if err != nil {
		return res, fail(MsgPartitionFailed, err)
	}

	for _, f := range res.Files {
		env.printf("Создан файл: %s", f)
	}
	env.printf("Всего файлов: %d, записей: %d", len(res.Files), res.Records)
	env.info(outDir)
	return res, nil
}
