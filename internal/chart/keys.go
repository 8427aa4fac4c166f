// Package chart builds the hierarchical bubble-chart specification: synthetic
// axis keys, wrapped tick labels, category ordering and the Plotly figure.
package chart

import "strings"

// Synthetic key prefixes. Header keys lay out the two-level axes and are not
// clickable; row/col keys carry the group identity the detail resolver parses
// back out. The separator is assumed not to occur inside taxonomy or outcome
// names; a name containing " || " would split at the first occurrence.
const (
	yHeaderPrefix = "__HDR__"
	yRowPrefix    = "__ROW__"
	xHeaderPrefix = "__XHDR__"
	xColPrefix    = "__XCOL__"

	keySeparator = " || "
)

func YHeaderKey(l1 string) string { return yHeaderPrefix + l1 }

func YRowKey(l1, l2 string) string { return yRowPrefix + l1 + keySeparator + l2 }

func XHeaderKey(tier string) string { return xHeaderPrefix + tier }

func XColKey(tier, name string) string { return xColPrefix + tier + keySeparator + name }

func IsYRowKey(key string) bool { return strings.HasPrefix(key, yRowPrefix) }

func IsXColKey(key string) bool { return strings.HasPrefix(key, xColPrefix) }

// ParseYRowKey recovers (L1, L2) from a clickable Y key.
func ParseYRowKey(key string) (l1, l2 string, ok bool) {
	rest, found := strings.CutPrefix(key, yRowPrefix)
	if !found {
		return "", "", false
	}
	l1, l2, ok = strings.Cut(rest, keySeparator)
	return l1, l2, ok
}

// ParseXColKey recovers (outcome tier, outcome name) from a clickable X key.
func ParseXColKey(key string) (tier, name string, ok bool) {
	rest, found := strings.CutPrefix(key, xColPrefix)
	if !found {
		return "", "", false
	}
	tier, name, ok = strings.Cut(rest, keySeparator)
	return tier, name, ok
}
