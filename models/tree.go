package models

// TreeInput carries the data and grouping hierarchy for a tree() call.
type TreeInput struct {
	Data   []Record
	Fields []string
	Query  Query
}

// TreeOptions configures the rendered tree. MinValue/MaxValue bound node
// record counts; the remaining filters match FindOptions.
type TreeOptions struct {
	// Top keeps only the N highest-percentage children per level; 0 means 5.
	Top           int
	MinValue      int
	MaxValue      int
	MinPercentage float64
	MaxPercentage float64
	MinDepth      int
	MaxDepth      int
	Contains      string
	Exclude       []string
	Regex         string
}

// TreeNode is one node of the rendered hierarchy.
type TreeNode struct {
	// Name is the node label, e.g. "country=US".
	Name string `json:"name"`
	// Value is the record count for this node.
	Value int `json:"value"`
	// Percentage is the node's share of the total filtered records.
	Percentage float64 `json:"percentage"`
	// Node is the pre-order identifier assigned during rendering.
	Node     int        `json:"node"`
	Children []TreeNode `json:"children,omitempty"`
}

// TreeStatistics summarizes a tree() call.
type TreeStatistics struct {
	TotalRecords    int `json:"total_records"`
	FilteredRecords int `json:"filtered_records"`
	PatternsFound   int `json:"patterns_found"`
	FieldsAnalyzed  int `json:"fields_analyzed"`
}

// TreeOutput is the rendered tree. The synthetic root always reports the
// total filtered record count at 100%.
type TreeOutput struct {
	Name           string         `json:"name"`
	Children       []TreeNode     `json:"children"`
	Value          int            `json:"value"`
	Percentage     float64        `json:"percentage"`
	Node           int            `json:"node"`
	Top            int            `json:"top"`
	Statistics     TreeStatistics `json:"statistics"`
	FieldsAnalyzed []string       `json:"fields_analyzed"`
}
