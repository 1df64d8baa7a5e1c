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
	"path/filepath"
	"testing"
	"time"

	"github.com/haxsokol/create-files-cameras/pkg/sheets"
	"github.com/haxsokol/create-files-cameras/pkg/testing/helpers"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func latin(t *testing.T) FolderPredicate {
	t.Helper()
	p, err := PatternPredicate(DefaultPattern)
	require.NoError(t, err)
	return p
}

func shareFixture(t *testing.T) *helpers.FSHelper {
	t.Helper()

	h := helpers.NewMemoryFS()
	require.NoError(t, h.CreateDirectoryStructure("/share/СИЗ", map[string]any{
		"Цех 1": map[string]any{
			"PHP-URSK-ShV1-K5 Склад кислот": map[string]any{"a.avi": "x", "b.mkv": "x"},
			"php-ursk-shv1-k5":              map[string]any{"c.MP4": "x"},
			"Камера без имени":              map[string]any{"d.mp4": "x"},
			"CAM7": map[string]any{
				"2024": map[string]any{"e.mp4": "x"},
			},
		},
		"LSR-01 вход": map[string]any{"f.mp4": "x", "notes.txt": "x"},
		"CAM9":        map[string]any{"readme.txt": "x"},
		"loose.mp4":   "x",
	}))
	return h
}

func TestScan(t *testing.T) {
	t.Parallel()

	h := shareFixture(t)

	got, err := Scan(h.Fs, "/share/СИЗ", nil, latin(t))
	require.NoError(t, err)

	// "2024" is the direct parent of e.mp4 and starts with a digit.
	assert.Equal(t, []string{"lsr-01", "php-ursk-shv1-k5"}, got)
}

func TestScan_AnyFolder(t *testing.T) {
	t.Parallel()

	h := shareFixture(t)

	got, err := Scan(h.Fs, "/share/СИЗ", nil, AnyFolder)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024", "lsr-01", "php-ursk-shv1-k5", "камера"}, got)
}

func TestScan_NilPredicateKeepsLatinFolders(t *testing.T) {
	t.Parallel()

	h := shareFixture(t)

	got, err := Scan(h.Fs, "/share/СИЗ", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"lsr-01", "php-ursk-shv1-k5"}, got)
}

func TestScan_MissingRoot(t *testing.T) {
	t.Parallel()

	_, err := Scan(helpers.NewMemoryFS().Fs, "/nope", nil, nil)
	require.Error(t, err)
}

func TestPatternPredicate(t *testing.T) {
	t.Parallel()

	keep := latin(t)
	assert.True(t, keep("CAM1"))
	assert.True(t, keep("php-1"))
	assert.False(t, keep("Камера"))
	assert.False(t, keep("2024"))
	assert.False(t, keep(""))

	_, err := PatternPredicate("^[A-Z")
	require.Error(t, err)
}

func TestUnion(t *testing.T) {
	t.Parallel()

	got := Union([]string{"a", "b"}, []string{"b", "c"}, []string{"c", "d"})
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)

	assert.Equal(t, []string{"x"}, Union([]string{" x ", "", "  "}, nil))
	assert.Empty(t, Union())
}

func TestRun(t *testing.T) {
	t.Parallel()

	h := shareFixture(t)
	require.NoError(t, h.WriteWorkbook("/lists/training.xlsx", "", [][]string{{"folder"}, {"cam1"}, {"lsr-01"}}))
	require.NoError(t, h.WriteWorkbook("/lists/transfer.xlsx", "", [][]string{{"folder"}, {"cam2"}, {"cam1"}}))

	start := time.Date(2025, 1, 20, 8, 0, 0, 0, time.UTC)
	report, err := Run(h.Fs, Options{
		Roots:        []string{"/share/СИЗ"},
		Predicate:    latin(t),
		Output:       "/lists/experiments.xlsx",
		Column:       "folder",
		Sources:      []string{"/lists/training.xlsx", "/lists/transfer.xlsx", "/lists/experiments.xlsx"},
		MasterOutput: "/lists/master.xlsx",
		MasterColumn: "CamName",
		Clock:        clockwork.NewFakeClockAt(start),
	})
	require.NoError(t, err)

	assert.Equal(t, start, report.StartedAt)
	assert.Equal(t, []string{"lsr-01", "php-ursk-shv1-k5"}, report.Entries)
	assert.Equal(t, []string{"cam1", "cam2", "lsr-01", "php-ursk-shv1-k5"}, report.Master)

	written, err := sheets.Read(h.Fs, "/lists/experiments.xlsx", sheets.Require("", "folder"))
	require.NoError(t, err)
	assert.Len(t, written.Rows, 2)

	master, err := sheets.Read(h.Fs, "/lists/master.xlsx", sheets.Require("", "CamName"))
	require.NoError(t, err)
	ids, err := master.Column("CamName")
	require.NoError(t, err)
	assert.Equal(t, report.Master, ids)
}

func TestRun_ThreeSourceUnion(t *testing.T) {
	t.Parallel()

	h := helpers.NewMemoryFS()
	require.NoError(t, h.CreateDirectoryStructure("/share", map[string]any{"empty": nil}))
	require.NoError(t, h.WriteWorkbook("/lists/1.xlsx", "", [][]string{{"folder"}, {"a"}, {"b"}}))
	require.NoError(t, h.WriteWorkbook("/lists/2.xlsx", "", [][]string{{"folder"}, {"b"}, {"c"}}))
	require.NoError(t, h.WriteWorkbook("/lists/3.xlsx", "", [][]string{{"folder"}, {"c"}, {"d"}}))

	report, err := Run(h.Fs, Options{
		Roots:        []string{"/share"},
		Output:       "/lists/scan.csv",
		Column:       "folder",
		Sources:      []string{"/lists/1.xlsx", "/lists/2.xlsx", "/lists/3.xlsx"},
		MasterOutput: "/lists/master.csv",
		MasterColumn: "CamName",
	})
	require.NoError(t, err)

	assert.Empty(t, report.Entries)
	assert.Equal(t, []string{"a", "b", "c", "d"}, report.Master)
}

func TestRun_SourceMissingColumn(t *testing.T) {
	t.Parallel()

	h := shareFixture(t)
	require.NoError(t, h.WriteWorkbook("/lists/old.xlsx", "", [][]string{{"CamName"}, {"cam1"}}))

	_, err := Run(h.Fs, Options{
		Roots:        []string{"/share/СИЗ"},
		Output:       "/lists/scan.xlsx",
		Column:       "folder",
		Sources:      []string{"/lists/old.xlsx"},
		MasterOutput: "/lists/master.xlsx",
		MasterColumn: "CamName",
	})

	var mce *sheets.MissingColumnError
	require.ErrorAs(t, err, &mce)
	assert.Equal(t, "folder", mce.Column)
	assert.False(t, h.FileExists("/lists/master.xlsx"))
}

func TestRun_MissingSource(t *testing.T) {
	t.Parallel()

	h := shareFixture(t)

	_, err := Run(h.Fs, Options{
		Roots:        []string{"/share/СИЗ"},
		Output:       "/lists/scan.xlsx",
		Column:       "folder",
		Sources:      []string{"/lists/gone.xlsx"},
		MasterOutput: "/lists/master.xlsx",
		MasterColumn: "CamName",
	})
	require.Error(t, err)
	assert.True(t, h.FileExists("/lists/scan.xlsx"), "scan output is written before merging")
}

func TestRun_NoRoots(t *testing.T) {
	t.Parallel()

	_, err := Run(helpers.NewMemoryFS().Fs, Options{Output: "/x.xlsx", Column: "folder"})
	require.ErrorIs(t, err, ErrNoRoots)
}

func TestRun_SkipsMergeWithoutMasterOutput(t *testing.T) {
	t.Parallel()

	h := shareFixture(t)

	report, err := Run(h.Fs, Options{
		Roots:  []string{"/share/СИЗ", filepath.Join("/share/СИЗ", "Цех 1")},
		Output: "/lists/scan.xlsx",
		Column: "folder",
	})
	require.NoError(t, err)
	assert.Empty(t, report.MasterOutput)
	assert.Equal(t, []string{"lsr-01", "php-ursk-shv1-k5"}, report.Entries)
}

func TestMergeInputs(t *testing.T) {
	t.Parallel()

	got := mergeInputs("/lists/scan.xlsx", []string{"/lists/a.xlsx", "/lists/./scan.xlsx"})
	assert.Equal(t, []string{"/lists/a.xlsx", "/lists/./scan.xlsx"}, got)

	got = mergeInputs("/lists/scan.xlsx", nil)
	assert.Equal(t, []string{"/lists/scan.xlsx"}, got)
}

func TestScanRoots(t *testing.T) {
	t.Parallel()

	h := shareFixture(t)
	require.NoError(t, h.CreateDirectoryStructure("/share2", map[string]any{
		"Цех 2": map[string]any{
			"LSR-01":  map[string]any{"g.mp4": "x"},
			"ZED-100": map[string]any{"h.avi": "x"},
		},
	}))

	got, err := ScanRoots(h.Fs, []string{"/share/СИЗ", "/share2"}, nil, latin(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"lsr-01", "php-ursk-shv1-k5", "zed-100"}, got)
}

func TestScanRoots_MissingRoot(t *testing.T) {
	t.Parallel()

	h := shareFixture(t)

	_, err := ScanRoots(h.Fs, []string{"/share/СИЗ", "/nowhere"}, nil, latin(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/nowhere")
}
