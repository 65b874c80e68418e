package models

import (
	"encoding/json"
	"math"
)

// Change statuses assigned by the compare engine. Statuses are derived from
// the percentage count change against a fixed descending ladder; NEW always
// wins for paths absent from the baseline.
const (
	StatusNew                 = "NEW"
	StatusCriticalIncrease    = "CRITICAL_INCREASE"
	StatusSignificantIncrease = "SIGNIFICANT_INCREASE"
	StatusIncrease            = "INCREASE"
	StatusSlightIncrease      = "SLIGHT_INCREASE"
	StatusStable              = "STABLE"
	StatusSlightDecrease      = "SLIGHT_DECREASE"
	StatusDecrease            = "DECREASE"
	StatusCriticalDecrease    = "CRITICAL_DECREASE"
	StatusDisappeared         = "DISAPPEARED"
)

// CompareInput carries the two datasets to diff.
type CompareInput struct {
	CurrentData  []Record
	BaselineData []Record
	Fields       []string
	// Query, when set, pre-filters both datasets identically.
	Query Query
}

// CompareOptions configures change detection and the pattern filters applied
// to both sides before diffing.
type CompareOptions struct {
	// StatisticalSignificance requests a secondary statistical comparison
	// for every path present in both datasets.
	StatisticalSignificance bool
	// ChangeThreshold is the relative change fraction above which a change
	// is significant; 0 means the 0.15 default.
	ChangeThreshold float64
	MinPercentage   float64
	MaxPercentage   float64
	MinCount        int
	MaxCount        int
	MinDepth        int
	MaxDepth        int
	Contains        string
	Exclude         []string
	Regex           string
	Limit           int
	SortBy          string
	Reverse         *bool
}

// SignificanceResult is the structured output of the statistics collaborator
// for one current/baseline count pair.
type SignificanceResult struct {
	ZScore          float64 `json:"z_score"`
	PValue          float64 `json:"p_value"`
	ChiSquare       float64 `json:"chi_square"`
	ChiSquarePValue float64 `json:"chi_square_p_value"`
	Significant     bool    `json:"significant"`
	ConfidenceLevel float64 `json:"confidence_level"`
}

// ChangeItem is one detected change for a pattern path. Items are computed
// once per comparison from the union of current and baseline paths and never
// mutated afterward.
type ChangeItem struct {
	Path          string `json:"path"`
	CurrentCount  int    `json:"current_count"`
	BaselineCount int    `json:"baseline_count"`
	CountChange   int    `json:"count_change"`
	// CountChangePercentage is +Inf for paths new in the current period.
	CountChangePercentage float64 `json:"count_change_percentage"`
	// RelativeChange is CountChange/BaselineCount as a ratio; used for the
	// significance threshold test.
	RelativeChange     float64 `json:"relative_change"`
	CurrentPercentage  float64 `json:"current_percentage"`
	BaselinePercentage float64 `json:"baseline_percentage"`
	PercentageChange   float64 `json:"percentage_change"`
	Status             string  `json:"status"`
	IsNew              bool    `json:"is_new"`
	IsDisappeared      bool    `json:"is_disappeared"`
	IsSignificant      bool    `json:"is_significant"`
	Depth              int     `json:"depth"`
	// StatisticalSignificance is set only when requested and both counts
	// are nonzero.
	StatisticalSignificance *SignificanceResult `json:"statistical_significance,omitempty"`
}

// MarshalJSON emits null for infinite change percentages, which JSON cannot
// represent.
func (c ChangeItem) MarshalJSON() ([]byte, error) {
	type alias ChangeItem
	out := struct {
		alias
		CountChangePercentage *float64 `json:"count_change_percentage"`
		RelativeChange        *float64 `json:"relative_change"`
	}{alias: alias(c)}
	if !math.IsInf(c.CountChangePercentage, 0) {
		v := c.CountChangePercentage
		out.CountChangePercentage = &v
	}
	if !math.IsInf(c.RelativeChange, 0) {
		v := c.RelativeChange
		out.RelativeChange = &v
	}
	return json.Marshal(out)
}

// ComparisonStatistics summarizes a comparison run. Totals reflect the raw
// input sizes before query pre-filtering.
type ComparisonStatistics struct {
	CurrentTotal       int `json:"current_total"`
	BaselineTotal      int `json:"baseline_total"`
	PatternsCompared   int `json:"patterns_compared"`
	SignificantChanges int `json:"significant_changes"`
}

// CompareOutput is the result of a compare() call. The categorized slices
// are non-exclusive views over Changes.
type CompareOutput struct {
	Changes                 []ChangeItem         `json:"changes"`
	StablePatterns          []ChangeItem         `json:"stable_patterns"`
	NewPatterns             []ChangeItem         `json:"new_patterns"`
	DisappearedPatterns     []ChangeItem         `json:"disappeared_patterns"`
	IncreasedPatterns       []ChangeItem         `json:"increased_patterns"`
	DecreasedPatterns       []ChangeItem         `json:"decreased_patterns"`
	Statistics              ComparisonStatistics `json:"statistics"`
	FieldsAnalyzed          []string             `json:"fields_analyzed"`
	ChangeThreshold         float64              `json:"change_threshold"`
	StatisticalSignificance bool                 `json:"statistical_significance"`
}
