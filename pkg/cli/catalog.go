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
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/haxsokol/create-files-cameras/pkg/cameras"
	"github.com/haxsokol/create-files-cameras/pkg/catalog"
	"github.com/haxsokol/create-files-cameras/pkg/config"
	"github.com/haxsokol/create-files-cameras/pkg/frames"
	"github.com/haxsokol/create-files-cameras/pkg/pickers"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// CatalogOutput places a relative output name next to the videos folder.
func CatalogOutput(root, name string) string {
	if name == "" {
		return catalog.DefaultOutput(root)
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(filepath.Dir(filepath.Clean(root)), name)
}

// RunCatalog asks for the videos folder and the camera list, then builds
// the thumbnail workbook. An extractor that implements frames.Checker is
// checked first, before any dialog opens.
func RunCatalog(
	ctx context.Context,
	env Env,
	cfg config.Catalog,
	paths pickers.PathProvider,
	extractor frames.Extractor,
) (*catalog.Report, error) {
	if checker, ok := extractor.(frames.Checker); ok {
		version, err := checker.Check(ctx)
		if err != nil {
			return nil, fail(MsgNoFFmpeg, err)
		}
		log.Info().Msgf("using %s", version)
	}

	root, err := paths.Folder(TitleVideos)
	if err != nil {
		return nil, fail(MsgNoFolder, err)
	}
	if ok, err := afero.IsDir(env.Fs, root); err != nil || !ok {
		return nil, fail(MsgNotDirectory, fmt.Errorf("%w: %s", catalog.ErrNotDirectory, root))
	}

	listPath, err := paths.File(TitleCameraList, pickers.SpreadsheetFilter)
	if err != nil {
		return nil, fail(MsgNoCameraList, err)
	}
	valid, err := cameras.LoadValidSet(env.Fs, listPath, "")
	if err != nil {
		return nil, fail(MsgEmptyCameraList, err)
	}

	report, err := catalog.Build(ctx, env.Fs, catalog.Options{
		Extractor: extractor,
		Clock:     env.Clock,
		Valid:     valid,
		Root:      root,
		Output:    CatalogOutput(root, cfg.OutputName),
		Offset:    cfg.FrameOffset,
		Layout: catalog.Layout{
			SheetName:       cfg.SheetName,
			ValidationSheet: cfg.ValidationSheet,
			TableName:       cfg.TableName,
			TableStyle:      cfg.TableStyle,
		},
		Extensions:    cfg.Extensions,
		MaxWidth:      cfg.MaxWidth,
		MaxHeight:     cfg.MaxHeight,
		RenameFolders: cfg.RenameFolders,
		KeepFrames:    cfg.KeepFrames,
	})
	switch {
	case errors.Is(err, catalog.ErrNoVideos):
		return report, fail(MsgNoVideos, err)
	case errors.Is(err, catalog.ErrNoMatchingCameras):
		return report, fail(MsgNoMatching, err)
	case err != nil:
		return report, fail(MsgCatalogFailed, err)
	}

	for _, r := range report.Renames {
		if !r.Skipped && r.Err == nil {
			env.printf("Переименована папка: %s -> %s", filepath.Base(r.From), filepath.Base(r.To))
		}
	}
	for _, it := range report.Items {
		if it.Status == catalog.StatusSkipped && it.Suggestion != "" {
			env.printf("Камера %s не найдена в списке, похожая: %s", it.Camera, it.Suggestion)
		}
	}

	msg := "Excel-файл создан: " + report.Output
	env.printf("%s", msg)
	env.printf(
		"Обработано: %d, пропущено: %d, ошибок: %d",
		report.Count(catalog.StatusProcessed),
		report.Count(catalog.StatusSkipped),
		report.Count(catalog.StatusFailed),
	)
	env.info(msg)
	return report, nil
}
