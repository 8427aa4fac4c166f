package dataset

import (
	"strconv"
	"strings"
)

// Table is an immutable columnar view over the loaded dataset. Cells are
// kept as raw strings; numeric interpretation happens at access time.
type Table struct {
	headers []string
	index   map[string]int
	rows    [][]string
}

// FromRecords builds a Table from an already-parsed header + rows. Rows
// shorter than the header are padded with empty cells.
func FromRecords(headers []string, rows [][]string) *Table {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}
	padded := make([][]string, 0, len(rows))
	for _, row := range rows {
		if len(row) < len(headers) {
			grown := make([]string, len(headers))
			copy(grown, row)
			row = grown
		}
		padded = append(padded, row)
	}
	return &Table{headers: headers, index: index, rows: padded}
}

func (t *Table) Len() int { return len(t.rows) }

func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Value returns the raw cell. ok is false when the column does not exist in
// the source; an empty string with ok=true means the cell is blank.
func (t *Table) Value(row int, col string) (string, bool) {
	i, ok := t.index[col]
	if !ok {
		return "", false
	}
	return t.rows[row][i], true
}

// Float parses the cell as a number. Blank, absent, or unparseable cells
// come back nil and are treated as missing by the aggregation.
func (t *Table) Float(row int, col string) *float64 {
	raw, ok := t.Value(row, col)
	if !ok {
		return nil
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &f
}

func (t *Table) trimColumn(col string) {
	i, ok := t.index[col]
	if !ok {
		return
	}
	for _, row := range t.rows {
		row[i] = strings.TrimSpace(row[i])
	}
}
