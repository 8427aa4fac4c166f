package chart

import "testing"

func TestYRowKeyRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []struct{ l1, l2 string }{
		{"Surveillance systems", "2. Data sharing"},
		{"Workforce & governance", "10. Workforce"},
		{"Ünïcode Ñame", "3) dotted paren"},
	}
	for _, tc := range cases {
		key := YRowKey(tc.l1, tc.l2)
		l1, l2, ok := ParseYRowKey(key)
		if !ok || l1 != tc.l1 || l2 != tc.l2 {
			t.Fatalf("round trip failed: key=%q got=(%q,%q,%v)", key, l1, l2, ok)
		}
	}
}

func TestXColKeyRoundTrip(t *testing.T) {
	t.Parallel()

	key := XColKey("Final Outcomes", "Reduced AMR incidence")
	tier, name, ok := ParseXColKey(key)
	if !ok || tier != "Final Outcomes" || name != "Reduced AMR incidence" {
		t.Fatalf("round trip failed: got=(%q,%q,%v)", tier, name, ok)
	}
}

func TestHeaderKeysAreNotClickable(t *testing.T) {
	t.Parallel()

	if IsYRowKey(YHeaderKey("Surveillance systems")) {
		t.Fatal("Y header key classified as clickable")
	}
	if IsXColKey(XHeaderKey("Impact")) {
		t.Fatal("X header key classified as clickable")
	}
	if _, _, ok := ParseYRowKey(YHeaderKey("Surveillance systems")); ok {
		t.Fatal("header key should not parse as a row key")
	}
}

func TestParseRejectsForeignKeys(t *testing.T) {
	t.Parallel()

	if _, _, ok := ParseYRowKey("plain string"); ok {
		t.Fatal("parsed a key without the row prefix")
	}
	if _, _, ok := ParseXColKey(YRowKey("a", "b")); ok {
		t.Fatal("parsed a Y key as an X key")
	}
	// A key whose payload lacks the separator cannot be split.
	if _, _, ok := ParseYRowKey(yRowPrefix + "no separator here"); ok {
		t.Fatal("parsed a key without the separator")
	}
}

func TestSeparatorInsideFieldSplitsAtFirst(t *testing.T) {
	t.Parallel()

	// Known fragility: fields containing the literal separator cannot
	// round-trip; the parse splits at the first occurrence.
	key := YRowKey("A || B", "C")
	l1, l2, ok := ParseYRowKey(key)
	if !ok {
		t.Fatal("parse failed")
	}
	if l1 != "A" || l2 != "B || C" {
		t.Fatalf("unexpected split: got=(%q,%q)", l1, l2)
	}
}
