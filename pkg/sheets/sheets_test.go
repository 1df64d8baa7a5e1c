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

package sheets

import (
	"errors"
	"testing"

	"github.com/haxsokol/create-files-cameras/pkg/testing/helpers"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{path: "/data/list.xlsx", want: FormatXLSX},
		{path: "/data/LIST.XLSX", want: FormatXLSX},
		{path: "/data/macro.xlsm", want: FormatXLSX},
		{path: "/data/list.csv", want: FormatCSV},
		{path: "/data/legacy.xls", wantErr: true},
		{path: "/data/noext", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRead_XLSX(t *testing.T) {
	t.Parallel()

	h := helpers.NewMemoryFS()
	require.NoError(t, h.WriteWorkbook("/in/cams.xlsx", "Список камер", [][]string{
		{" Имя камеры ", "Производство", "Цех"},
		{"CAM1", "ЛСР", "Цех 1"},
		{"CAM2", "ЛСР"},
	}))

	tbl, err := Read(h.Fs, "/in/cams.xlsx", Require("Список камер", "Имя камеры", "Цех"))
	require.NoError(t, err)

	assert.Equal(t, "Список камер", tbl.Sheet)
	assert.Equal(t, []string{"Имя камеры", "Производство", "Цех"}, tbl.Header)
	assert.Equal(t, [][]string{
		{"CAM1", "ЛСР", "Цех 1"},
		{"CAM2", "ЛСР", ""},
	}, tbl.Rows)

	shops, err := tbl.Column("Цех")
	require.NoError(t, err)
	assert.Equal(t, []string{"Цех 1", ""}, shops)
}

func TestRead_FirstSheetByDefault(t *testing.T) {
	t.Parallel()

	h := helpers.NewMemoryFS()
	require.NoError(t, h.WriteWorkbook("/in/list.xlsx", "Камеры", [][]string{{"id"}, {"a"}}))

	tbl, err := Read(h.Fs, "/in/list.xlsx", Schema{})
	require.NoError(t, err)
	assert.Equal(t, "Камеры", tbl.Sheet)
}

func TestRead_SheetNotFound(t *testing.T) {
	t.Parallel()

	h := helpers.NewMemoryFS()
	require.NoError(t, h.WriteWorkbook("/in/list.xlsx", "", [][]string{{"id"}}))

	_, err := Read(h.Fs, "/in/list.xlsx", Schema{Sheet: "Список камер"})
	require.ErrorIs(t, err, ErrSheetNotFound)
}

func TestRead_MissingColumn(t *testing.T) {
	t.Parallel()

	h := helpers.NewMemoryFS()
	require.NoError(t, h.WriteWorkbook("/in/list.xlsx", "", [][]string{{"camera"}, {"a"}}))

	_, err := Read(h.Fs, "/in/list.xlsx", Require("", "folder"))
	require.Error(t, err)

	var mce *MissingColumnError
	require.ErrorAs(t, err, &mce)
	assert.Equal(t, "folder", mce.Column)
	assert.Equal(t, "/in/list.xlsx", mce.Path)
	assert.True(t, errors.Is(err, ErrMissingColumn))
}

func TestRead_CSV(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	body := "\ufefffolder,note\ncam1,first\ncam2\n\"cam 3\",\"with, comma\"\n"
	require.NoError(t, afero.WriteFile(fs, "/in/list.csv", []byte(body), 0o644))

	tbl, err := Read(fs, "/in/list.csv", Require("", "folder"))
	require.NoError(t, err)

	assert.Equal(t, []string{"folder", "note"}, tbl.Header)
	assert.Equal(t, [][]string{
		{"cam1", "first"},
		{"cam2", ""},
		{"cam 3", "with, comma"},
	}, tbl.Rows)
}

func TestRead_Errors(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/in/broken.xlsx", []byte("not a zip"), 0o644))

	_, err := Read(fs, "/in/missing.xlsx", Schema{})
	require.Error(t, err)

	_, err = Read(fs, "/in/broken.xlsx", Schema{})
	require.Error(t, err)

	_, err = Read(fs, "/in/list.ods", Schema{})
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestReadFirstColumn(t *testing.T) {
	t.Parallel()

	h := helpers.NewMemoryFS()
	require.NoError(t, h.WriteWorkbook("/in/list.xlsx", "", [][]string{
		{"Камера", "Комментарий"},
		{"CAM1", "x"},
		{"", "y"},
		{"cam2"},
	}))

	got, err := ReadFirstColumn(h.Fs, "/in/list.xlsx", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"CAM1", "", "cam2"}, got)
}

func TestReadFirstColumn_Empty(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/in/empty.csv", nil, 0o644))

	got, err := ReadFirstColumn(fs, "/in/empty.csv", "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestWriteColumn_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"/out/nested/Производство_Цех.xlsx", "/out/nested/Производство_Цех.csv"} {
		t.Run(path, func(t *testing.T) {
			t.Parallel()

			fs := afero.NewMemMapFs()
			require.NoError(t, WriteColumn(fs, path, "Имя камеры", []string{"CAM1", "cam2"}))

			tbl, err := Read(fs, path, Require("", "Имя камеры"))
			require.NoError(t, err)
			assert.Equal(t, []string{"Имя камеры"}, tbl.Header)
			assert.Equal(t, [][]string{{"CAM1"}, {"cam2"}}, tbl.Rows)
		})
	}
}

func TestWriteColumn_Overwrites(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, WriteColumn(fs, "/out/list.csv", "folder", []string{"a", "b", "c"}))
	require.NoError(t, WriteColumn(fs, "/out/list.csv", "folder", []string{"z"}))

	got, err := ReadFirstColumn(fs, "/out/list.csv", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"z"}, got)
}

func TestWriteTable_UnsupportedFormat(t *testing.T) {
	t.Parallel()

	err := WriteTable(afero.NewMemMapFs(), "/out/list.txt", []string{"a"}, nil)
	require.ErrorIs(t, err, ErrUnsupportedFormat)
}
