package models

// Sort fields accepted by FindOptions.SortBy.
const (
	SortByPercentage = "percentage"
	SortByCount      = "count"
	SortByDepth      = "depth"
)

// FindInput carries the data and grouping hierarchy for a find() call.
type FindInput struct {
	// Data is the record collection to analyze.
	Data []Record
	// Fields is the ordered list of field names defining tree depth order.
	Fields []string
	// Query optionally pre-filters Data before the tree is built.
	Query Query
}

// FindOptions is the fully-enumerated filter configuration applied to the
// extracted patterns. The zero value of each field means "no constraint";
// zero FindOptions passes every pattern through unchanged.
type FindOptions struct {
	// MinPercentage / MaxPercentage bound the pattern concentration (0-100).
	MinPercentage float64
	MaxPercentage float64
	// MinCount / MaxCount bound the pattern record count.
	MinCount int
	MaxCount int
	// MinDepth / MaxDepth bound the number of path segments.
	MinDepth int
	MaxDepth int
	// Contains keeps only paths containing the substring (case-sensitive).
	Contains string
	// Exclude rejects paths containing any of the listed substrings.
	Exclude []string
	// Regex keeps only paths matched (partially) by the expression. An
	// invalid expression fails the call with a QueryError.
	Regex string
	// Limit truncates the result after sorting; 0 means unlimited.
	Limit int
	// SortBy orders results by "percentage", "count" or "depth". Unset
	// sorts by percentage.
	SortBy string
	// Reverse controls sort direction. Nil or true sorts descending (most
	// concentrated first); explicit false sorts ascending.
	Reverse *bool
}

// FindOutput is the result of a find() call.
type FindOutput struct {
	// Patterns are the findings that survived filtering, in filter order.
	Patterns []Pattern `json:"patterns"`
	// TotalRecords is the record count after query pre-filtering; all
	// pattern percentages are relative to it.
	TotalRecords int `json:"total_records"`
	// TotalPatterns is len(Patterns).
	TotalPatterns int `json:"total_patterns"`
}
