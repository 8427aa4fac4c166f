package dataset

import (
	"strings"
	"testing"
)

func TestReadTrimsClassificationColumns(t *testing.T) {
	t.Parallel()

	csv := `"` + ColCapabilityL1 + `","` + ColCapabilityL2 + `","free text"
"  Surveillance systems ","2. Data sharing  ","  keep me  "
`
	table, err := Read(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if table.Len() != 1 {
		t.Fatalf("unexpected row count: got=%d want=1", table.Len())
	}

	l1, ok := table.Value(0, ColCapabilityL1)
	if !ok || l1 != "Surveillance systems" {
		t.Fatalf("L1 not trimmed: got=%q ok=%v", l1, ok)
	}
	l2, _ := table.Value(0, ColCapabilityL2)
	if l2 != "2. Data sharing" {
		t.Fatalf("L2 not trimmed: got=%q", l2)
	}

	// Non-classification columns keep their whitespace.
	free, _ := table.Value(0, "free text")
	if free != "  keep me  " {
		t.Fatalf("free text was trimmed: got=%q", free)
	}
}

func TestReadQuotedHeaderWithNewline(t *testing.T) {
	t.Parallel()

	// The intermediate outcome header carries a trailing newline in the
	// source sheet; a quoted CSV header must round-trip it.
	csv := "\"" + ColIntermediateOutcome + "\",x\nvalue,1\n"
	table, err := Read(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !table.HasColumn(ColIntermediateOutcome) {
		t.Fatal("intermediate outcome column not found by exact header")
	}
	v, ok := table.Value(0, ColIntermediateOutcome)
	if !ok || v != "value" {
		t.Fatalf("unexpected cell: got=%q ok=%v", v, ok)
	}
}

func TestValueMissingColumn(t *testing.T) {
	t.Parallel()

	table := FromRecords([]string{"a"}, [][]string{{"1"}})
	if table.HasColumn("missing") {
		t.Fatal("HasColumn reported a column that does not exist")
	}
	if _, ok := table.Value(0, "missing"); ok {
		t.Fatal("Value reported ok for a missing column")
	}
}

func TestFloatParsing(t *testing.T) {
	t.Parallel()

	table := FromRecords(
		[]string{"n"},
		[][]string{{"2.5"}, {""}, {"  3 "}, {"not-a-number"}},
	)

	if v := table.Float(0, "n"); v == nil || *v != 2.5 {
		t.Fatalf("parse 2.5: got=%v", v)
	}
	if v := table.Float(1, "n"); v != nil {
		t.Fatalf("blank cell should be nil: got=%v", *v)
	}
	if v := table.Float(2, "n"); v == nil || *v != 3 {
		t.Fatalf("padded numeric should parse: got=%v", v)
	}
	if v := table.Float(3, "n"); v != nil {
		t.Fatalf("unparseable cell should be nil: got=%v", *v)
	}
}

func TestFromRecordsPadsShortRows(t *testing.T) {
	t.Parallel()

	table := FromRecords([]string{"a", "b"}, [][]string{{"only-a"}})
	b, ok := table.Value(0, "b")
	if !ok || b != "" {
		t.Fatalf("short row not padded: got=%q ok=%v", b, ok)
	}
}
