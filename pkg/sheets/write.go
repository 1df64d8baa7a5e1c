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
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/spf13/afero"
	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the sheet name used for single-table workbooks.
const DefaultSheet = "Sheet1"

// WriteColumn writes a one-column table. Existing files are replaced.
func WriteColumn(fs afero.Fs, path, header string, values []string) error {
	rows := make([][]string, len(values))
	for i, v := range values {
		rows[i] = []string{v}
	}
	return WriteTable(fs, path, []string{header}, rows)
}

// WriteTable writes a header and rows in the format implied by path,
// creating the parent directory if needed.
func WriteTable(fs afero.Fs, path string, header []string, rows [][]string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	out, err := fs.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	switch format {
	case FormatCSV:
		err = writeCSV(out, header, rows)
	default:
		err = writeXLSX(out, header, rows)
	}
	if err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

func writeCSV(out afero.File, header []string, rows [][]string) error {
	// Excel only detects UTF-8 in a CSV when it starts with a BOM.
	if _, err := out.WriteString(utf8BOM); err != nil {
		return err
	}

	w := gocsv.DefaultCSVWriter(out)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeXLSX(out afero.File, header []string, rows [][]string) error {
	wb := excelize.NewFile()
	defer func() { _ = wb.Close() }()

	if err := setRow(wb, DefaultSheet, 1, header); err != nil {
		return err
	}
	for i, row := range rows {
		if err := setRow(wb, DefaultSheet, i+2, row); err != nil {
			return err
		}
	}

	_, err := wb.WriteTo(out)
	return err
}

func setRow(wb *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return wb.SetSheetRow(sheet, cell, &values)
}
