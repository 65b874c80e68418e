package analyzers

import (
	"math"

	"github.com/KaramelBytes/dataspot-cli/models"
)

// ExtractPatterns flattens a concentration tree into one Pattern per
// non-root node. Traversal is depth-first in child first-encounter order;
// ordering of the result is otherwise the filter pipeline's concern.
func ExtractPatterns(root *treeNode, totalRecords int) []models.Pattern {
	var patterns []models.Pattern
	var walk func(n *treeNode, path string, depth int)
	walk = func(n *treeNode, path string, depth int) {
		for _, key := range n.order {
			child := n.children[key]
			childPath := child.label
			if path != "" {
				childPath = path + PathSeparator + child.label
			}
			patterns = append(patterns, models.Pattern{
				Path:       childPath,
				Count:      child.count,
				Percentage: percentage(child.count, totalRecords),
				Depth:      depth + 1,
				Samples:    child.samples,
			})
			walk(child, childPath, depth+1)
		}
	}
	walk(root, "", 0)
	return patterns
}

// percentage is count relative to total as 0-100, rounded to two decimals.
// A zero total yields 0, never a division fault.
func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(count) / float64(total) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
