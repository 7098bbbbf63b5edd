package models

// FactorResult is one factor's contribution to a score, expressed on the
// weight profile's scale.
type FactorResult struct {
	Factor   string  `json:"factor"`
	Raw      float64 `json:"raw"`
	Weighted float64 `json:"weighted"`
}

// ScoreBreakdown is the auditable output of scoring a single item: the
// bounded total plus every factor's raw and weighted value, in profile
// order, and the names of the boosts that were applied.
type ScoreBreakdown struct {
	ItemID  string         `json:"item_id"`
	Total   float64        `json:"total"`
	Factors []FactorResult `json:"factors"`
	Boosts  []string       `json:"boosts,omitempty"`
}
