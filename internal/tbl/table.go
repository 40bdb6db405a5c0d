//    ForksAndWords
//    Copyright: Group K 2025
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tbl

import (
	"fmt"
	"slices"
	"strings"
)

// Table - a header and rows of cells; every row is exactly as wide as the header
type Table struct {
	Header []string
	Rows   [][]string
}

// MissingColumnError - a file lacks columns that a stage cannot do without
type MissingColumnError struct {
	File    string
	Columns []string
}

func (e *MissingColumnError) Error() string {
	f := e.File
	if f == "" {
		f = "table"
	}
	return fmt.Sprintf("%s is missing required column(s): %s", f, strings.Join(e.Columns, ", "))
}

func New(header ...string) *Table {
	return &Table{Header: slices.Clone(header)}
}

// FromRows - first row is the header; short rows are padded and long rows are cut
func FromRows(raw [][]string) *Table {
	t := &Table{}
	if len(raw) == 0 {
		return t
	}
	t.Header = make([]string, len(raw[0]))
	for i, h := range raw[0] {
		t.Header[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}
	for _, r := range raw[1:] {
		if blankrow(r) {
			continue
		}
		t.Append(r)
	}
	return t
}

func (t *Table) Len() int {
	return len(t.Rows)
}

// Col - index of a column or -1
func (t *Table) Col(name string) int {
	return slices.Index(t.Header, name)
}

func (t *Table) Has(name string) bool {
	return t.Col(name) >= 0
}

// Require - fail with a *MissingColumnError naming every absent column
func (t *Table) Require(file string, cols ...string) error {
	var missing []string
	for _, c := range cols {
		if !t.Has(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnError{File: file, Columns: missing}
	}
	return nil
}

// Get - cell value or "" when the column does not exist
func (t *Table) Get(row int, name string) string {
	c := t.Col(name)
	if c < 0 {
		return ""
	}
	return t.Rows[row][c]
}

func (t *Table) Column(name string) []string {
	c := t.Col(name)
	if c < 0 {
		return nil
	}
	out := make([]string, len(t.Rows))
	for i := range t.Rows {
		out[i] = t.Rows[i][c]
	}
	return out
}

// SetColumn - replace the named column or append it on the right; vals must match Len()
func (t *Table) SetColumn(name string, vals []string) error {
	if len(vals) != len(t.Rows) {
		return fmt.Errorf("column %s has %d values for %d rows", name, len(vals), len(t.Rows))
	}
	c := t.Col(name)
	if c < 0 {
		t.Header = append(t.Header, name)
		for i := range t.Rows {
			t.Rows[i] = append(t.Rows[i], vals[i])
		}
		return nil
	}
	for i := range t.Rows {
		t.Rows[i][c] = vals[i]
	}
	return nil
}

func (t *Table) DropColumn(name string) {
	c := t.Col(name)
	if c < 0 {
		return
	}
	t.Header = slices.Delete(t.Header, c, c+1)
	for i := range t.Rows {
		t.Rows[i] = slices.Delete(t.Rows[i], c, c+1)
	}
}

// Append - copy a row in, padded or cut to the header width
func (t *Table) Append(row []string) {
	r := make([]string, len(t.Header))
	copy(r, row)
	t.Rows = append(t.Rows, r)
}

// Clone - deep copy
func (t *Table) Clone() *Table {
	c := &Table{Header: slices.Clone(t.Header), Rows: make([][]string, len(t.Rows))}
	for i := range t.Rows {
		c.Rows[i] = slices.Clone(t.Rows[i])
	}
	return c
}

func blankrow(r []string) bool {
	for _, c := range r {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
