package evidence

import "github.com/onehealthlab/evidence-map/internal/types"

type groupKey struct {
	l1, l2, outcomeType, outcomeName string
}

// Aggregate groups the long table by (L1, L2, outcome tier, outcome name)
// and computes per-group counts and mean scores. Missing scores are excluded
// from the means, not counted as zero. Group order is first appearance in
// the long table.
func Aggregate(long []*types.Article) []AggregateRow {
	var order []groupKey
	groups := map[groupKey]*AggregateRow{}
	strengthSums := map[groupKey]*meanAcc{}
	signSums := map[groupKey]*meanAcc{}

	for _, a := range long {
		key := groupKey{a.CapabilityL1, a.CapabilityL2, a.OutcomeType, a.OutcomeName}
		row, ok := groups[key]
		if !ok {
			row = &AggregateRow{
				CapabilityL1: a.CapabilityL1,
				CapabilityL2: a.CapabilityL2,
				OutcomeType:  a.OutcomeType,
				OutcomeName:  a.OutcomeName,
			}
			groups[key] = row
			strengthSums[key] = &meanAcc{}
			signSums[key] = &meanAcc{}
			order = append(order, key)
		}
		row.N++
		strengthSums[key].add(a.Strength)
		signSums[key].add(a.Sign)
	}

	out := make([]AggregateRow, 0, len(order))
	for _, key := range order {
		row := groups[key]
		row.MeanStrength = strengthSums[key].mean()
		row.MeanDirection = signSums[key].mean()
		row.StrengthLabel = StrengthLabel(row.MeanStrength)
		row.DirectionLabel = DirectionLabel(row.MeanDirection)
		out = append(out, *row)
	}
	return out
}

type meanAcc struct {
	sum float64
	n   int
}

func (m *meanAcc) add(v *float64) {
	if v == nil {
		return
	}
	m.sum += *v
	m.n++
}

func (m *meanAcc) mean() *float64 {
	if m.n == 0 {
		return nil
	}
	v := m.sum / float64(m.n)
	return &v
}
