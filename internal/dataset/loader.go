package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Load reads the source CSV and normalizes the classification columns.
// The header row must match the original sheet verbatim (quoted headers may
// span multiple lines); columns the file does not carry are simply absent
// and downstream stages degrade accordingly.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses CSV content from r into a normalized Table.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse dataset csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("parse dataset csv: no header row")
	}

	t := FromRecords(records[0], records[1:])
	for _, col := range ClassificationColumns {
		t.trimColumn(col)
	}
	return t, nil
}
