package chart

import (
	"sort"
	"strings"

	"github.com/onehealthlab/evidence-map/internal/evidence"
)

// Axis is an ordered category axis: Order holds the synthetic keys (headers
// interleaved with clickable entries), TickText the display label per key.
// HeaderKeys lists the header entries in emit order for annotation placement.
type Axis struct {
	Order      []string
	TickText   []string
	HeaderKeys []string
}

// BuildYAxis lays out the two-level intervention axis: one header per L1
// capability followed by one clickable entry per unique (L1, L2). L1 groups
// whose name starts with "surveillance" (any case) come first; the rest keep
// first-seen order. Within a group, L2 entries sort by their numeric label
// prefix. The emitted order is reversed because the Y axis renders bottom-up.
func BuildYAxis(agg []evidence.AggregateRow, wrapWidth, maxLines int) Axis {
	var l1Order []string
	l2ByL1 := map[string][]string{}
	l2Seen := map[string]map[string]bool{}
	for _, row := range agg {
		if row.CapabilityL1 == "" {
			continue
		}
		if l2Seen[row.CapabilityL1] == nil {
			l1Order = append(l1Order, row.CapabilityL1)
			l2Seen[row.CapabilityL1] = map[string]bool{}
		}
		if row.CapabilityL2 == "" || l2Seen[row.CapabilityL1][row.CapabilityL2] {
			continue
		}
		l2Seen[row.CapabilityL1][row.CapabilityL2] = true
		l2ByL1[row.CapabilityL1] = append(l2ByL1[row.CapabilityL1], row.CapabilityL2)
	}

	var surveillance, others []string
	for _, l1 := range l1Order {
		if strings.HasPrefix(strings.ToLower(l1), "surveillance") {
			surveillance = append(surveillance, l1)
		} else {
			others = append(others, l1)
		}
	}
	l1Order = append(surveillance, others...)

	var axis Axis
	for _, l1 := range l1Order {
		hdr := YHeaderKey(l1)
		axis.Order = append(axis.Order, hdr)
		axis.TickText = append(axis.TickText, " ")
		axis.HeaderKeys = append(axis.HeaderKeys, hdr)

		subs := l2ByL1[l1]
		sort.SliceStable(subs, func(i, j int) bool {
			return NumericPrefix(subs[i]) < NumericPrefix(subs[j])
		})
		for _, l2 := range subs {
			axis.Order = append(axis.Order, YRowKey(l1, l2))
			axis.TickText = append(axis.TickText, RowLabel(l2, wrapWidth, maxLines))
		}
	}

	reverse(axis.Order)
	reverse(axis.TickText)
	return axis
}

// BuildXAxis lays out the outcome axis: tiers in fixed causal-chain order,
// each tier header followed by its outcome names alphabetically. Headers are
// emitted even for tiers with no data. The second return value maps each
// tier to its clickable keys, in axis order, for the block-title annotations.
func BuildXAxis(agg []evidence.AggregateRow, wrapWidth, maxLines int) (Axis, map[string][]string) {
	namesByTier := map[string]map[string]bool{}
	for _, row := range agg {
		if namesByTier[row.OutcomeType] == nil {
			namesByTier[row.OutcomeType] = map[string]bool{}
		}
		namesByTier[row.OutcomeType][row.OutcomeName] = true
	}

	var axis Axis
	itemsByTier := map[string][]string{}
	for _, tier := range evidence.TierOrder {
		hdr := XHeaderKey(tier)
		axis.Order = append(axis.Order, hdr)
		axis.TickText = append(axis.TickText, "")
		axis.HeaderKeys = append(axis.HeaderKeys, hdr)

		names := make([]string, 0, len(namesByTier[tier]))
		for name := range namesByTier[tier] {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			key := XColKey(tier, name)
			itemsByTier[tier] = append(itemsByTier[tier], key)
			axis.Order = append(axis.Order, key)
			axis.TickText = append(axis.TickText, RowLabel(name, wrapWidth, maxLines))
		}
	}
	return axis, itemsByTier
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
