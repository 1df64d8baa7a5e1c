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
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/spf13/afero"
	"github.com/xuri/excelize/v2"
)

const utf8BOM = "\ufeff"

// Read loads a table and checks it against the schema. The first row is
// the header. Cells are returned as displayed, with surrounding whitespace
// removed from header cells only.
func Read(fs afero.Fs, path string, schema Schema) (*Table, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var (
		rows  [][]string
		sheet string
	)
	switch format {
	case FormatCSV:
		rows, err = readCSV(f)
	default:
		rows, sheet, err = readXLSX(f, schema.Sheet)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	t := newTable(path, sheet, rows)
	for _, col := range schema.Columns {
		if col.Required && t.Index(col.Name) < 0 {
			return nil, &MissingColumnError{Column: col.Name, Path: path}
		}
	}

	return t, nil
}

// ReadFirstColumn returns the data values of the leftmost column, header
// excluded.
func ReadFirstColumn(fs afero.Fs, path, sheet string) ([]string, error) {
	t, err := Read(fs, path, Schema{Sheet: sheet})
	if err != nil {
		return nil, err
	}
	if len(t.Header) == 0 {
		return nil, nil
	}

	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[0]
	}
	return out, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := gocsv.LazyCSVReader(r)
	if cr, ok := reader.(*csv.Reader); ok {
		cr.FieldsPerRecord = -1
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv: %w", err)
	}
	return rows, nil
}

func readXLSX(r io.Reader, sheet string) ([][]string, string, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = wb.Close() }()

	list := wb.GetSheetList()
	switch {
	case sheet == "" && len(list) > 0:
		sheet = list[0]
	case !slices.Contains(list, sheet):
		return nil, "", fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
	}

	rows, err := wb.GetRows(sheet)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return rows, sheet, nil
}

func newTable(path, sheet string, rows [][]string) *Table {
	t := &Table{Path: path, Sheet: sheet}
	if len(rows) == 0 {
		return t
	}

	header := slices.Clone(rows[0])
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	t.Header = header

	width := len(header)
	for _, row := range rows[1:] {
		if len(row) > width {
			row = row[:width]
		}
		padded := make([]string, width)
		copy(padded, row)
		t.Rows = append(t.Rows, padded)
	}
	return t
}
