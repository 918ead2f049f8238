// Package workbook keeps tabular data in a single xlsx file.
//
// Readers open the file per call under a shared lock. Writers hold the
// exclusive lock, write the whole workbook to a temporary file in the same
// directory and rename it over the original, so a failed save never leaves a
// half-written workbook behind.
package workbook

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/xuri/excelize/v2"
)

var (
	ErrSheetNotFound = errors.New("sheet not found")
	ErrNotWorkbook   = errors.New("not a readable xlsx workbook")
	ErrEmptyWorkbook = errors.New("workbook has no sheets")
)

// Sheet is a named sheet with its rows, used to create workbooks.
type Sheet struct {
	Name string
	Rows [][]string
}

type Workbook struct {
	path string
	mu   sync.RWMutex
}

// Open checks that path is a readable workbook and returns a handle to it.
func Open(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close workbook %s: %w", path, err)
	}
	return &Workbook{path: path}, nil
}

// Create writes a new workbook at path containing sheets in the given order.
func Create(path string, sheets []Sheet) error {
	if len(sheets) == 0 {
		return ErrEmptyWorkbook
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheets[0].Name); err != nil {
		return fmt.Errorf("failed to name sheet %s: %w", sheets[0].Name, err)
	}
	for _, sheet := range sheets[1:] {
		if _, err := f.NewSheet(sheet.Name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", sheet.Name, err)
		}
	}
	for _, sheet := range sheets {
		for i, row := range sheet.Rows {
			if err := setRow(f, sheet.Name, i+1, row); err != nil {
				return err
			}
		}
	}

	return save(f, path)
}

func (w *Workbook) Path() string {
	return w.path
}

// EnsureSheets creates the workbook if it does not exist and adds any missing
// sheet with its rows. Existing sheets are left untouched.
func EnsureSheets(path string, sheets []Sheet) (*Workbook, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := Create(path, sheets); err != nil {
			return nil, err
		}
		return &Workbook{path: path}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat workbook %s: %w", path, err)
	}

	w, err := Open(path)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", w.path, err)
	}
	defer f.Close()

	changed := false
	for _, sheet := range sheets {
		if idx, _ := f.GetSheetIndex(sheet.Name); idx >= 0 {
			continue
		}
		if _, err := f.NewSheet(sheet.Name); err != nil {
			return nil, fmt.Errorf("failed to create sheet %s: %w", sheet.Name, err)
		}
		for i, row := range sheet.Rows {
			if err := setRow(f, sheet.Name, i+1, row); err != nil {
				return nil, err
			}
		}
		changed = true
	}

	if changed {
		if err := save(f, w.path); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// Rows returns every row of sheet. Trailing empty cells are trimmed per row.
func (w *Workbook) Rows(sheet string) ([][]string, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", w.path, err)
	}
	defer f.Close()

	return readRows(f, sheet)
}

// Column returns cell col (zero-based) of every row in sheet. Rows too short
// to have the cell yield "".
func (w *Workbook) Column(sheet string, col int) ([]string, error) {
	rows, err := w.Rows(sheet)
	if err != nil {
		return nil, err
	}
	return column(rows, col), nil
}

// AppendRow adds values as a new row after the last non-empty row of sheet.
func (w *Workbook) AppendRow(sheet string, values []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return fmt.Errorf("failed to open workbook %s: %w", w.path, err)
	}
	defer f.Close()

	rows, err := readRows(f, sheet)
	if err != nil {
		return err
	}
	if err := setRow(f, sheet, len(rows)+1, values); err != nil {
		return err
	}

	return save(f, w.path)
}

// FirstColumn reads the first column of the first sheet of an uploaded
// workbook. Blank cells come back as empty strings.
func FirstColumn(r io.Reader) ([]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotWorkbook, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyWorkbook
	}

	rows, err := readRows(f, sheets[0])
	if err != nil {
		return nil, err
	}
	return column(rows, 0), nil
}

func readRows(f *excelize.File, sheet string) ([][]string, error) {
	if idx, _ := f.GetSheetIndex(sheet); idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, sheet)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	return rows, nil
}

func column(rows [][]string, col int) []string {
	values := make([]string, 0, len(rows))
	for _, row := range rows {
		if col < len(row) {
			values = append(values, row[col])
		} else {
			values = append(values, "")
		}
	}
	return values
}

func setRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("invalid row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d of sheet %s: %w", row, sheet, err)
	}
	return nil
}

func save(f *excelize.File, path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".workbook-*.xlsx")
	if err != nil {
		return fmt.Errorf("failed to create temp workbook: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := f.WriteTo(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to sync workbook: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp workbook: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace workbook %s: %w", path, err)
	}
	return nil
}
