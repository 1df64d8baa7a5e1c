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

package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/xuri/excelize/v2"
)

var ErrEmptyCatalog = errors.New("catalog has no rows")

// Headers are the catalog columns. Everything after the frame is filled in
// by hand during review.
var Headers = []string{
	"Имя камеры", "Кадр с камеры", "Камеру в СОВА?",
	"СИЗ-перчатки", "СИЗ-перчатки-описание",
	"СИЗ-очки", "СИЗ-очки-описание",
	"СИЗ-распиратор", "СИЗ-распиратор-описание",
	"СИЗ-газоанализатор", "СИЗ-газоан.-описание",
	"СИЗ-самоспасатель", "СИЗ-самосп.-описание",
	"Опасная зона", "Опасная зона-описание",
}

// ChoiceColumns get a yes/no dropdown.
var ChoiceColumns = []string{"C", "D", "F", "H", "J", "L", "N"}

// Choices are the dropdown values, kept on the hidden validation sheet.
var Choices = []string{"Да", "Нет"}

const (
	headerWidth  = 20
	frameColumn  = "B"
	frameWidth   = 88
	frameRowHigh = 280
)

// Layout names the parts of the catalog workbook.
type Layout struct {
	SheetName       string
	ValidationSheet string
	TableName       string
	TableStyle      string
}

func DefaultLayout() Layout {
	return Layout{
		SheetName:       "Камеры",
		ValidationSheet: "Validation",
		TableName:       "ТаблицаКамер",
		TableStyle:      "TableStyleMedium15",
	}
}

// Workbook assembles the catalog spreadsheet one camera row at a time.
type Workbook struct {
	file   *excelize.File
	layout Layout
	next   int
}

func NewWorkbook(layout Layout) (*Workbook, error) {
	f := excelize.NewFile()
	w := &Workbook{file: f, layout: layout, next: 2}

	if err := w.init(); err != nil {
		_ = f.Close()
		return nil, err
	}
	return w, nil
}

func (w *Workbook) init() error {
	f := w.file
	sheet := w.layout.SheetName

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	if _, err := f.NewSheet(w.layout.ValidationSheet); err != nil {
		return fmt.Errorf("failed to add validation sheet: %w", err)
	}
	for i, choice := range Choices {
		if err := f.SetCellStr(w.layout.ValidationSheet, "A"+strconv.Itoa(i+1), choice); err != nil {
			return fmt.Errorf("failed to write choice: %w", err)
		}
	}

	headers := Headers
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	last := lastColumn()
	if err := f.SetColWidth(sheet, "A", last, headerWidth); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.SetColWidth(sheet, frameColumn, frameColumn, frameWidth); err != nil {
		return fmt.Errorf("failed to set frame column width: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", last+"1", style); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	return nil
}

// Rows returns the number of camera rows added so far.
func (w *Workbook) Rows() int {
	return w.next - 2
}

// AddRow appends a camera with its frame anchored in the frame column. The
// picture goes in first so a bad image leaves no half-written row.
func (w *Workbook) AddRow(camera string, png []byte, pictureName string) error {
	sheet := w.layout.SheetName
	row := strconv.Itoa(w.next)

	err := w.file.AddPictureFromBytes(sheet, frameColumn+row, &excelize.Picture{
		Extension: ".png",
		File:      png,
		Format: &excelize.GraphicOptions{
			AltText:         pictureName,
			LockAspectRatio: true,
			Positioning:     "oneCell",
		},
		InsertType: excelize.PictureInsertTypePlaceOverCells,
	})
	if err != nil {
		return fmt.Errorf("failed to embed frame: %w", err)
	}

	if err := w.file.SetCellStr(sheet, "A"+row, camera); err != nil {
		return fmt.Errorf("failed to write camera name: %w", err)
	}
	if err := w.file.SetRowHeight(sheet, w.next, frameRowHigh); err != nil {
		return fmt.Errorf("failed to set row height: %w", err)
	}

	w.next++
	return nil
}

// Finalize turns the rows into a styled table without filter buttons, adds
// the yes/no dropdowns, and hides the validation sheet behind the main one.
func (w *Workbook) Finalize() error {
	if w.Rows() == 0 {
		return ErrEmptyCatalog
	}

	f := w.file
	sheet := w.layout.SheetName
	lastRow := strconv.Itoa(w.next - 1)

	stripes := true
	err := f.AddTable(sheet, &excelize.Table{
		Range:          "A1:" + lastColumn() + lastRow,
		Name:           w.layout.TableName,
		StyleName:      w.layout.TableStyle,
		ShowRowStripes: &stripes,
	})
	if err != nil {
		return fmt.Errorf("failed to add table: %w", err)
	}
	w.removeTableFilters()

	for _, col := range ChoiceColumns {
		dv := excelize.NewDataValidation(true)
		dv.SetSqref(col + "2:" + col + lastRow)
		dv.SetSqrefDropList(choiceRange(w.layout.ValidationSheet))
		dv.SetError(excelize.DataValidationErrorStyleStop, "Недопустимое значение", "Выберите значение из списка")
		if err := f.AddDataValidation(sheet, dv); err != nil {
			return fmt.Errorf("failed to add dropdown to column %s: %w", col, err)
		}
	}

	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return fmt.Errorf("failed to find sheet %q: %w", sheet, err)
	}
	f.SetActiveSheet(idx)

	if err := f.SetSheetVisible(w.layout.ValidationSheet, false); err != nil {
		return fmt.Errorf("failed to hide validation sheet: %w", err)
	}

	return nil
}

var (
	autoFilterRe = regexp.MustCompile(`(?s)<autoFilter[^>]*?(/>|>.*?</autoFilter>)`)
	plainSheetRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// removeTableFilters drops the autoFilter element excelize always writes
// into table parts, which is what hides the header filter buttons.
func (w *Workbook) removeTableFilters() {
	w.file.Pkg.Range(func(k, v any) bool {
		name, ok := k.(string)
		if !ok || !strings.HasPrefix(name, "xl/tables/table") {
			return true
		}
		if data, ok := v.([]byte); ok {
			w.file.Pkg.Store(name, autoFilterRe.ReplaceAll(data, nil))
		}
		return true
	})
}

// WriteTo writes the workbook as .xlsx.
func (w *Workbook) WriteTo(out io.Writer) (int64, error) {
	n, err := w.file.WriteTo(out)
	if err != nil {
		return n, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return n, nil
}

// Save writes the workbook to path, replacing any existing file.
func (w *Workbook) Save(fs afero.Fs, path string) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	out, err := fs.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if _, err := w.WriteTo(out); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

func (w *Workbook) Close() error {
	//nolint:wrapcheck // nothing to add to excelize's close error
	return w.file.Close()
}

func lastColumn() string {
	name, _ := excelize.ColumnNumberToName(len(Headers))
	return name
}

func choiceRange(sheet string) string {
	ref := fmt.Sprintf("$A$1:$A$%d", len(Choices))
	if plainSheetRe.MatchString(sheet) {
		return sheet + "!" + ref
	}
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'!" + ref
}
