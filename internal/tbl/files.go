//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tbl

import (
	"encoding/csv"
	"fmt"
	"github.com/fc9399/ForksAndWords/internal/vv"
	"github.com/xuri/excelize/v2"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

//
// FLAT FILES: .csv and .xlsx
//

// Read - pick a reader by extension
func Read(fn string) (*Table, error) {
	switch ext(fn) {
	case ".xlsx", ".xlsm":
		return ReadXLSX(fn)
	case ".csv", ".txt":
		f, err := os.Open(fn)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		t, err := ReadCSV(f)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", fn, err)
		}
		return t, nil
	default:
		return nil, fmt.Errorf("do not know how to read '%s'", fn)
	}
}

// Write - pick a writer by extension; parent folders are created as needed
func Write(fn string, t *Table) error {
	if err := os.MkdirAll(filepath.Dir(fn), vv.DIRPERMS); err != nil {
		return err
	}

	switch ext(fn) {
	case ".xlsx", ".xlsm":
		return WriteXLSX(fn, t)
	case ".csv", ".txt":
		f, err := os.Create(fn)
		if err != nil {
			return err
		}
		if err = WriteCSV(f, t); err != nil {
			_ = f.Close()
			return fmt.Errorf("writing %s: %w", fn, err)
		}
		return f.Close()
	default:
		return fmt.Errorf("do not know how to write '%s'", fn)
	}
}

func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	raw, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return FromRows(raw), nil
}

func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return err
	}
	return cw.Error()
}

// ReadXLSX - the first sheet of the workbook; raw values so that numbers are not reformatted
func ReadXLSX(fn string) (*Table, error) {
	f, err := excelize.OpenFile(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s has no sheets", fn)
	}

	raw, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", fn, err)
	}
	return FromRows(raw), nil
}

// WriteXLSX - one sheet; integers and floats become numeric cells
func WriteXLSX(fn string, t *Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := vv.DEFAULTXLSXTAB

	put := func(r int, cells []string) error {
		anchor, err := excelize.CoordinatesToCellName(1, r)
		if err != nil {
			return err
		}
		row := make([]interface{}, len(cells))
		for i := range cells {
			row[i] = typedcell(cells[i])
		}
		return f.SetSheetRow(sheet, anchor, &row)
	}

	if err := put(1, t.Header); err != nil {
		return err
	}
	for i := range t.Rows {
		if err := put(i+2, t.Rows[i]); err != nil {
			return err
		}
	}
	return f.SaveAs(fn)
}

// typedcell - "3" ==> 3, "40.71" ==> 40.71; anything that would not print back the same stays a string ("01234", "+1212...")
func typedcell(s string) interface{} {
	if s == "" || strings.TrimSpace(s) != s {
		return s
	}
	if i, err := strconv.Atoi(s); err == nil && strconv.Itoa(i) == s {
		return i
	}
	if x, err := strconv.ParseFloat(s, 64); err == nil && strconv.FormatFloat(x, 'f', -1, 64) == s {
		return x
	}
	return s
}

func ext(fn string) string {
	return strings.ToLower(filepath.Ext(fn))
}
