package models

// AnalyzeInput carries the data and grouping hierarchy for an analyze() call.
type AnalyzeInput struct {
	Data   []Record
	Fields []string
	Query  Query
}

// AnalyzeOptions mirrors FindOptions; analyze() runs the same pattern search
// and layers statistics and insights on top.
type AnalyzeOptions struct {
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

// Statistics summarizes the dataset and the pattern search.
type Statistics struct {
	TotalRecords     int     `json:"total_records"`
	FilteredRecords  int     `json:"filtered_records"`
	FilterRatio      float64 `json:"filter_ratio"`
	PatternsFound    int     `json:"patterns_found"`
	MaxConcentration float64 `json:"max_concentration"`
	AvgConcentration float64 `json:"avg_concentration"`
}

// Insights describes the concentration landscape of the findings.
type Insights struct {
	PatternsFound             int     `json:"patterns_found"`
	MaxConcentration          float64 `json:"max_concentration"`
	AvgConcentration          float64 `json:"avg_concentration"`
	ConcentrationDistribution string  `json:"concentration_distribution"`
}

// ValueCount is one observed field value with its occurrence count.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// FieldStats describes the value distribution of one analyzed field.
type FieldStats struct {
	Field        string       `json:"field"`
	TotalValues  int          `json:"total_values"`
	NullValues   int          `json:"null_values"`
	UniqueValues int          `json:"unique_values"`
	TopValues    []ValueCount `json:"top_values"`
}

// AnalyzeOutput is the result of an analyze() call.
type AnalyzeOutput struct {
	Patterns   []Pattern    `json:"patterns"`
	Statistics Statistics   `json:"statistics"`
	Insights   Insights     `json:"insights"`
	FieldStats []FieldStats `json:"field_stats"`
	// TopPatterns are the first five patterns in filter order.
	TopPatterns    []Pattern `json:"top_patterns"`
	FieldsAnalyzed []string  `json:"fields_analyzed"`
}
