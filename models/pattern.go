package models

// Record is a single input row: an ordered mapping from field name to a
// scalar value (string, number, boolean, or nil). Records are owned by the
// caller and never mutated by the analyzers.
type Record map[string]any

// Query pre-filters raw records before analysis. Each entry maps a field
// name to either a literal value (equality) or a []any of acceptable values
// (membership). An empty or nil query matches every record.
type Query map[string]any

// Preprocessor transforms a raw field value before it is grouped into the
// concentration tree. Registering a second preprocessor for the same field
// replaces the first.
type Preprocessor func(value any) any

// Pattern is one concentration finding: a field-value path together with how
// many records share it and what share of the analyzed total that is.
type Pattern struct {
	// Path is the ordered conjunction of field=value segments from the tree
	// root to this node, joined by " > ".
	Path string `json:"path"`
	// Count is the number of filtered records matching the full path.
	Count int `json:"count"`
	// Percentage is Count relative to the total filtered records, 0-100,
	// rounded to two decimals. It is a global ratio, not relative to the
	// parent level.
	Percentage float64 `json:"percentage"`
	// Depth is the number of field assignments in the path.
	Depth int `json:"depth"`
	// Samples holds up to three matching records in first-seen input order.
	Samples []Record `json:"samples"`
}
