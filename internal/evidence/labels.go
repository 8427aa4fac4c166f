package evidence

const labelNA = "N/A"

// StrengthLabel maps a mean evidence-quality score (domain roughly 0.5–3)
// to its ordinal label.
func StrengthLabel(x *float64) string {
	if x == nil {
		return labelNA
	}
	switch v := *x; {
	case v >= 2.6:
		return "high"
	case v >= 2.4:
		return "moderate"
	case v >= 1.5:
		return "low-moderate"
	case v >= 1.0:
		return "low"
	default:
		return "very low"
	}
}

// DirectionLabel maps a mean direction score to its ordinal label. Scores
// land in [-1, 1] when the source data is well-formed; anything outside
// that range labels as N/A rather than being clamped into a bucket.
func DirectionLabel(x *float64) string {
	if x == nil {
		return labelNA
	}
	switch v := *x; {
	case v == 1.0:
		return "positive"
	case v > 0.5 && v < 1:
		return "mostly positive"
	case v > -0.5 && v <= 0.5:
		return "inconclusive/mixed"
	case v > -1 && v <= -0.5:
		return "mostly negative"
	case v == -1.0:
		return "negative"
	default:
		return labelNA
	}
}
