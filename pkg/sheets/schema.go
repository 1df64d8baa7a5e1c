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

// Package sheets reads and writes the small single-table spreadsheets the
// camera tools exchange, as .xlsx workbooks or .csv files.
package sheets

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	ErrMissingColumn     = errors.New("column not found")
	ErrSheetNotFound     = errors.New("sheet not found")
	ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")
)

type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xltx":
		return FormatXLSX, nil
	case ".csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Column names one header cell a reader expects.
type Column struct {
	Name     string
	Required bool
}

// Schema describes what a caller expects to find in a file. An empty Sheet
// means the first sheet of a workbook; it is ignored for CSV.
type Schema struct {
	Sheet   string
	Columns []Column
}

// Require builds a schema where every named column must be present.
func Require(sheet string, names ...string) Schema {
	s := Schema{Sheet: sheet, Columns: make([]Column, 0, len(names))}
	for _, n := range names {
		s.Columns = append(s.Columns, Column{Name: n, Required: true})
	}
	return s
}

// MissingColumnError reports a required header absent from a file.
type MissingColumnError struct {
	Column string
	Path   string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("column %q not found in %s", e.Column, e.Path)
}

func (*MissingColumnError) Unwrap() error {
	return ErrMissingColumn
}
