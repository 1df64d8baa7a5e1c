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

package coverage

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/haxsokol/create-files-cameras/pkg/sheets"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

var ErrNoRoots = errors.New("no folders to scan")

type Options struct {
	// Predicate filters parent folders; nil keeps names starting with a Latin letter.
	Predicate    FolderPredicate
	Clock        clockwork.Clock
	Output       string
	Column       string
	MasterOutput string
	MasterColumn string
	Roots        []string
	Extensions   []string
	Sources      []string
}

type Report struct {
	StartedAt    time.Time
	FinishedAt   time.Time
	Output       string
	MasterOutput string
	Entries      []string
	Master       []string
}

// Run scans the roots, writes the found ids to Output, then merges Output
// with every Sources list into MasterOutput. Each list must have a Column
// header. Without a MasterOutput the merge step is skipped.
func Run(fs afero.Fs, opts Options) (*Report, error) {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	report := &Report{StartedAt: opts.Clock.Now()}
	defer func() { report.FinishedAt = opts.Clock.Now() }()

	if len(opts.Roots) == 0 {
		return report, ErrNoRoots
	}

	entries, err := ScanRoots(fs, opts.Roots, opts.Extensions, opts.Predicate)
	if err != nil {
		return report, err
	}
	report.Entries = entries

	if err := sheets.WriteColumn(fs, opts.Output, opts.Column, entries); err != nil {
		return report, err
	}
	report.Output = opts.Output
	log.Info().Msgf("wrote %d cameras to %s", len(entries), opts.Output)

	if opts.MasterOutput == "" {
		return report, nil
	}

	lists := make([][]string, 0, len(opts.Sources)+1)
	for _, path := range mergeInputs(opts.Output, opts.Sources) {
		tbl, err := sheets.Read(fs, path, sheets.Require("", opts.Column))
		if err != nil {
			return report, fmt.Errorf("failed to read camera list: %w", err)
		}
		ids, err := tbl.Column(opts.Column)
		if err != nil {
			return report, err
		}
		lists = append(lists, ids)
	}

	report.Master = Union(lists...)
	if err := sheets.WriteColumn(fs, opts.MasterOutput, opts.MasterColumn, report.Master); err != nil {
		return report, err
	}
	report.MasterOutput = opts.MasterOutput
	log.Info().Msgf("wrote %d cameras to %s", len(report.Master), opts.MasterOutput)

	return report, nil
}

// mergeInputs lists the sources followed by the fresh output, each path once.
func mergeInputs(output string, sources []string) []string {
	seen := make(map[string]bool, len(sources)+1)
	out := make([]string, 0, len(sources)+1)
	for _, p := range append(append([]string{}, sources...), output) {
		key := filepath.Clean(p)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	return out
}
