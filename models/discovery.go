package models

// DiscoverInput carries the data for an automatic pattern discovery call.
// Fields are not specified; discovery detects and ranks them itself.
type DiscoverInput struct {
	Data  []Record
	Query Query
}

// DiscoverOptions bounds the combinatorial search and filters its patterns.
type DiscoverOptions struct {
	// MaxFields is the largest field combination size tried; 0 means 3.
	MaxFields int
	// MaxCombinations caps the combinations executed per combination size;
	// 0 means 10.
	MaxCombinations int
	// MinPercentage is the concentration floor applied to combination
	// results; 0 means 10. Field scoring always uses a lowered 5% floor so
	// weak signals still contribute to ranking.
	MinPercentage float64
	MaxPercentage float64
	MinCount      int
	MaxCount      int
	MinDepth      int
	MaxDepth      int
	Contains      string
	Exclude       []string
	Regex         string
	Limit         int
	SortBy        string
	Reverse       *bool
}

// FieldRanking pairs a detected field with its concentration-potential score.
type FieldRanking struct {
	Field string  `json:"field"`
	Score float64 `json:"score"`
}

// CombinationTried records one field list the discovery engine analyzed.
type CombinationTried struct {
	Fields        []string `json:"fields"`
	PatternsFound int      `json:"patterns_found"`
}

// DiscoveryStatistics summarizes a discovery run.
type DiscoveryStatistics struct {
	TotalRecords       int     `json:"total_records"`
	FieldsAnalyzed     int     `json:"fields_analyzed"`
	CombinationsTried  int     `json:"combinations_tried"`
	PatternsDiscovered int     `json:"patterns_discovered"`
	BestConcentration  float64 `json:"best_concentration"`
}

// DiscoverOutput is the result of a discover() call.
type DiscoverOutput struct {
	// TopPatterns are the best findings across all combinations, deduplicated
	// by path and capped at 20.
	TopPatterns []Pattern `json:"top_patterns"`
	// FieldRanking lists detected fields by descending score.
	FieldRanking []FieldRanking `json:"field_ranking"`
	// CombinationsTried lists every field list analyzed, in attempt order.
	CombinationsTried []CombinationTried  `json:"combinations_tried"`
	Statistics        DiscoveryStatistics `json:"statistics"`
	// FieldsAnalyzed are the fields that passed categorical detection.
	FieldsAnalyzed []string `json:"fields_analyzed"`
}
