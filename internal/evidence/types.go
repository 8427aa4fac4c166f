// Package evidence holds the long-form transform, the group aggregation and
// the ordinal label mappings over the loaded review dataset.
package evidence

// Outcome tiers, in causal-chain order. The strings double as the
// outcome_type values on long rows and axis keys, so they must stay stable.
const (
	TierIntermediate = "Intermediate Outcomes"
	TierFinal        = "Final Outcomes"
	TierImpact       = "Impact"
)

var TierOrder = []string{TierIntermediate, TierFinal, TierImpact}

// AggregateRow is one bubble: a unique (L1, L2, outcome tier, outcome name)
// group with its article count and mean scores. Means are nil when every
// contributing row was missing the score.
type AggregateRow struct {
	CapabilityL1 string
	CapabilityL2 string
	OutcomeType  string
	OutcomeName  string

	N             int
	MeanStrength  *float64
	MeanDirection *float64

	StrengthLabel  string
	DirectionLabel string
}
