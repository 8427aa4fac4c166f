package chart

import (
	"regexp"
	"strings"
)

const (
	labelIndent = "\u2003\u2003" // two EM spaces
	labelBullet = "•"

	// Sub-capabilities without a leading "<n>." / "<n>)" prefix sort after
	// every numbered one.
	noPrefixSentinel = 9999
)

var numPrefixRe = regexp.MustCompile(`^\s*(\d+)[.)]`)

// WrapLines greedily word-wraps s to the given rune width. When the wrap
// would exceed maxLines, the overflow is collapsed (space-joined) into the
// last line rather than truncated.
func WrapLines(s string, width, maxLines int) string {
	lines := wrap(s, width)
	if len(lines) > maxLines {
		collapsed := strings.Join(lines[maxLines-1:], " ")
		lines = append(lines[:maxLines-1:maxLines-1], collapsed)
	}
	return strings.Join(lines, "\n")
}

// RowLabel renders a clickable tick label: indented, bulleted, wrapped.
func RowLabel(s string, width, maxLines int) string {
	return labelIndent + labelBullet + " " + WrapLines(s, width, maxLines)
}

// NumericPrefix parses the leading "<n>." or "<n>)" ordering prefix from a
// sub-capability label.
func NumericPrefix(s string) int {
	m := numPrefixRe.FindStringSubmatch(s)
	if m == nil {
		return noPrefixSentinel
	}
	n := 0
	for _, r := range m[1] {
		n = n*10 + int(r-'0')
	}
	return n
}

func wrap(s string, width int) []string {
	if width < 1 {
		width = 1
	}
	var lines []string
	current := ""
	currentLen := 0
	flush := func() {
		if current != "" {
			lines = append(lines, current)
			current = ""
			currentLen = 0
		}
	}
	for _, word := range strings.Fields(s) {
		runes := []rune(word)
		// Break words longer than a full line into width-sized chunks.
		for len(runes) > width {
			flush()
			lines = append(lines, string(runes[:width]))
			runes = runes[width:]
		}
		switch {
		case currentLen == 0:
			current = string(runes)
			currentLen = len(runes)
		case currentLen+1+len(runes) <= width:
			current += " " + string(runes)
			currentLen += 1 + len(runes)
		default:
			flush()
			current = string(runes)
			currentLen = len(runes)
		}
	}
	flush()
	return lines
}
