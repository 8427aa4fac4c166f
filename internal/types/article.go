package types

// Article is one long-form row: a single (article, outcome tier)
// observation. Strength and Sign duplicate the tier-specific columns so the
// aggregation can read them uniformly; the tier-specific fields keep the
// detail table shape of the original sheet (only the row's own tier is
// populated, the other tiers stay null).
type Article struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"-"`

	CapabilityL1 string `gorm:"column:capability_l1;not null;index:idx_article_group,priority:1" json:"-"`
	CapabilityL2 string `gorm:"column:capability_l2;not null;index:idx_article_group,priority:2" json:"-"`
	OutcomeType  string `gorm:"column:outcome_type;not null;index:idx_article_group,priority:3" json:"-"`
	OutcomeName  string `gorm:"column:outcome_name;not null;index:idx_article_group,priority:4" json:"-"`

	Strength *float64 `gorm:"column:strength" json:"-"`
	Sign     *float64 `gorm:"column:sign" json:"-"`

	Title            *string `gorm:"column:title" json:"title"`
	Year             *string `gorm:"column:year" json:"year"`
	Geography        *string `gorm:"column:geography" json:"location"`
	InterventionText *string `gorm:"column:intervention_text" json:"intervention"`
	IntermediateText *string `gorm:"column:intermediate_text" json:"intermediate_outcome"`
	OutcomeText      *string `gorm:"column:outcome_text" json:"final_outcome"`
	ImpactText       *string `gorm:"column:impact_text" json:"impact"`

	IntermediateStrength *float64 `gorm:"column:intermediate_strength" json:"intermediate_strength"`
	IntermediateSign     *float64 `gorm:"column:intermediate_sign" json:"intermediate_sign"`
	FinalStrength        *float64 `gorm:"column:final_strength" json:"final_strength"`
	FinalSign            *float64 `gorm:"column:final_sign" json:"final_sign"`
	ImpactStrength       *float64 `gorm:"column:impact_strength" json:"impact_strength"`
	ImpactSign           *float64 `gorm:"column:impact_sign" json:"impact_sign"`
}

func (Article) TableName() string { return "article" }
