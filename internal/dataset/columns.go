package dataset

// Exact column headers of the source extraction sheet. Several headers carry
// trailing newlines or zero-width spaces (U+200B) from the original
// spreadsheet export; the loader matches them verbatim, so they must not be
// "cleaned up" here.
const (
	ColCapabilityL1 = "INTERVENTION_Level 1_One Health Capability"
	ColCapabilityL2 = "INTERVENTION_Level 2"

	ColIntermediateOutcome = "INTERMEDIATE OUTCOME_Classification (dropdown)\n"
	ColFinalOutcome        = "OUTCOME_Classification (dropdown)\n\n"

	ColIntermediateStrength = "_strength"
	ColFinalStrength        = "_strength_final"
	ColIntermediateSign     = "_sign"
	ColFinalSign            = "_sign_final"

	ColImpactOutcome  = "IMPACT_Classification (dropdown)\nAMR burden reduced = Impact"
	ColImpactStrength = "_strength_impact"
	ColImpactSign     = "_sign_impact"
	ColImpactText     = "IMPACT TEXT (verbatim)"

	ColTitle            = "Title\u200b \n(213 articles)"
	ColYear             = "Publication Year\u200b"
	ColGeography        = "Geography\u200b_Location"
	ColIntermediateText = "INTERMEDIATE OUTCOME TEXT (verbatim)"
	ColInterventionText = "INTERVENTION TEXT (verbatim)\n"
	ColOutcomeText      = "OUTCOME TEXT (verbatim)"
)

// ClassificationColumns are trimmed of surrounding whitespace at load time.
// Key parsing and group filtering compare these values verbatim, so a stray
// trailing space in the sheet would otherwise split one category into two.
var ClassificationColumns = []string{
	ColCapabilityL1,
	ColCapabilityL2,
	ColIntermediateOutcome,
	ColFinalOutcome,
	ColImpactOutcome,
}
