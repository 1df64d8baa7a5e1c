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
	"fmt"

	"github.com/haxsokol/create-files-cameras/pkg/config"
	"github.com/haxsokol/create-files-cameras/pkg/coverage"
	"github.com/haxsokol/create-files-cameras/pkg/pickers"
	"github.com/haxsokol/create-files-cameras/pkg/sheets"
)

// RunCoverage scans the configured roots, or asks for one, and writes the
// camera list plus the merged master list.
func RunCoverage(env Env, cfg config.Coverage, paths pickers.PathProvider) (*coverage.Report, error) {
	roots := cfg.Roots
	if len(roots) == 0 {
		root, err := paths.Folder(PromptFolder)
		if err != nil {
			return nil, fail(MsgNoFolder, err)
		}
		roots = []string{root}
	}

	pred, err := coverage.PatternPredicate(cfg.FolderPattern)
	if err != nil {
		return nil, fail(MsgCoverageFailed, err)
	}

	report, err := coverage.Run(env.Fs, coverage.Options{
		Predicate:    pred,
		Clock:        env.Clock,
		Output:       cfg.Output,
		Column:       cfg.Column,
		MasterOutput: cfg.MasterOutput,
		MasterColumn: cfg.MasterColumn,
		Roots:        roots,
		Extensions:   cfg.Extensions,
		Sources:      cfg.Sources,
	})
	switch {
	case errors.Is(err, coverage.ErrNoRoots):
		return report, fail(MsgNoFolder, err)
	case errors.Is(err, sheets.ErrMissingColumn):
		return report, fail(MsgMissingColumn, err)
	case err != nil:
		return report, fail(MsgCoverageFailed, err)
	}

	env.printf("Камер с видео: %d -> %s", len(report.Entries), report.Output)
	if report.MasterOutput != "" {
		env.printf("Всего камер: %d -> %s", len(report.Master), report.MasterOutput)
	}
	env.info(fmt.Sprintf("Камер с видео: %d", len(report.Entries)))
	return report, nil
}
