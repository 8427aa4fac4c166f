package evidence

import (
	"fmt"
	"strings"

	"github.com/onehealthlab/evidence-map/internal/dataset"
	"github.com/onehealthlab/evidence-map/internal/types"
)

type tierColumns struct {
	tier        string
	outcomeCol  string
	strengthCol string
	signCol     string
	optional    bool
}

var tierSpecs = []tierColumns{
	{
		tier:        TierIntermediate,
		outcomeCol:  dataset.ColIntermediateOutcome,
		strengthCol: dataset.ColIntermediateStrength,
		signCol:     dataset.ColIntermediateSign,
	},
	{
		tier:        TierFinal,
		outcomeCol:  dataset.ColFinalOutcome,
		strengthCol: dataset.ColFinalStrength,
		signCol:     dataset.ColFinalSign,
	},
	{
		// The impact block was added to the sheet late; older exports lack
		// it entirely, so its contribution may be empty.
		tier:        TierImpact,
		outcomeCol:  dataset.ColImpactOutcome,
		strengthCol: dataset.ColImpactStrength,
		signCol:     dataset.ColImpactSign,
		optional:    true,
	},
}

// BuildLongTable reshapes the wide sheet into one row per
// (article, populated outcome tier). A row makes it into a tier's block only
// when capability L1, L2 and the tier's outcome classification are all
// non-blank. The optional impact block contributes nothing when its columns
// are absent from the source.
func BuildLongTable(t *dataset.Table) ([]*types.Article, error) {
	if !t.HasColumn(dataset.ColCapabilityL1) || !t.HasColumn(dataset.ColCapabilityL2) {
		return nil, fmt.Errorf("dataset missing intervention taxonomy columns %q / %q",
			dataset.ColCapabilityL1, dataset.ColCapabilityL2)
	}

	var long []*types.Article
	for _, spec := range tierSpecs {
		hasAll := t.HasColumn(spec.outcomeCol) && t.HasColumn(spec.strengthCol) && t.HasColumn(spec.signCol)
		if !hasAll {
			if spec.optional {
				continue
			}
			return nil, fmt.Errorf("dataset missing %s columns", spec.tier)
		}
		long = append(long, buildTierBlock(t, spec)...)
	}
	return long, nil
}

func buildTierBlock(t *dataset.Table, spec tierColumns) []*types.Article {
	var block []*types.Article
	for i := 0; i < t.Len(); i++ {
		l1, _ := t.Value(i, dataset.ColCapabilityL1)
		l2, _ := t.Value(i, dataset.ColCapabilityL2)
		outcome, _ := t.Value(i, spec.outcomeCol)
		if l1 == "" || l2 == "" || outcome == "" {
			continue
		}

		strength := t.Float(i, spec.strengthCol)
		sign := t.Float(i, spec.signCol)

		a := &types.Article{
			CapabilityL1:     l1,
			CapabilityL2:     l2,
			OutcomeType:      spec.tier,
			OutcomeName:      outcome,
			Strength:         strength,
			Sign:             sign,
			Title:            textCell(t, i, dataset.ColTitle),
			Year:             textCell(t, i, dataset.ColYear),
			Geography:        textCell(t, i, dataset.ColGeography),
			InterventionText: textCell(t, i, dataset.ColInterventionText),
			IntermediateText: textCell(t, i, dataset.ColIntermediateText),
			OutcomeText:      textCell(t, i, dataset.ColOutcomeText),
			ImpactText:       textCell(t, i, dataset.ColImpactText),
		}
		switch spec.tier {
		case TierIntermediate:
			a.IntermediateStrength = strength
			a.IntermediateSign = sign
		case TierFinal:
			a.FinalStrength = strength
			a.FinalSign = sign
		case TierImpact:
			a.ImpactStrength = strength
			a.ImpactSign = sign
		}
		block = append(block, a)
	}
	return block
}

func textCell(t *dataset.Table, row int, col string) *string {
	v, ok := t.Value(row, col)
	if !ok {
		return nil
	}
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return &v
}
