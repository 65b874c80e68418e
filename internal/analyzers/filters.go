package analyzers

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/KaramelBytes/dataspot-cli/models"
)

// ValidateOptions checks option values before any analysis runs. A violation
// is a QueryError; analyses never start with a half-valid configuration.
func ValidateOptions(o models.FindOptions) error {
	if o.MinPercentage < 0 || o.MinPercentage > 100 {
		return &QueryError{Msg: fmt.Sprintf("min percentage %v out of range 0-100", o.MinPercentage)}
	}
	if o.MaxPercentage < 0 || o.MaxPercentage > 100 {
		return &QueryError{Msg: fmt.Sprintf("max percentage %v out of range 0-100", o.MaxPercentage)}
	}
	if o.MinCount < 0 || o.MaxCount < 0 {
		return &QueryError{Msg: "count bounds must not be negative"}
	}
	if o.MinDepth < 0 || o.MaxDepth < 0 {
		return &QueryError{Msg: "depth bounds must not be negative"}
	}
	if o.Limit < 0 {
		return &QueryError{Msg: "limit must not be negative"}
	}
	switch o.SortBy {
	case "", models.SortByPercentage, models.SortByCount, models.SortByDepth:
	default:
		return &QueryError{Msg: fmt.Sprintf("unknown sort field %q", o.SortBy)}
	}
	if o.Regex != "" {
		if _, err := regexp.Compile(o.Regex); err != nil {
			return &QueryError{Msg: fmt.Sprintf("regex %q", o.Regex), Err: err}
		}
	}
	return nil
}

// ApplyFilters runs the filter pipeline: every set option is an independent
// predicate ANDed with the rest, then a stable sort, then the limit. Conflicting bounds are not an error; they simply match nothing.
// The caller is expected to have validated the options already.
func ApplyFilters(patterns []models.Pattern, o models.FindOptions) ([]models.Pattern, error) {
	var re *regexp.Regexp
	if o.Regex != "" {
		var err error
		re, err = regexp.Compile(o.Regex)
		if err != nil {
			return nil, &QueryError{Msg: fmt.Sprintf("regex %q", o.Regex), Err: err}
		}
	}

	kept := make([]models.Pattern, 0, len(patterns))
	for _, p := range patterns {
		if !matchesFilters(p, o, re) {
			continue
		}
		kept = append(kept, p)
	}

	// Default ordering is percentage descending, extraction order on ties.
	sortBy := o.SortBy
	if sortBy == "" {
		sortBy = models.SortByPercentage
	}
	descending := o.Reverse == nil || *o.Reverse
	sort.SliceStable(kept, func(i, j int) bool {
		a, b := sortKey(kept[i], sortBy), sortKey(kept[j], sortBy)
		if descending {
			return a > b
		}
		return a < b
	})

	if o.Limit > 0 && len(kept) > o.Limit {
		kept = kept[:o.Limit]
	}
	return kept, nil
}

func matchesFilters(p models.Pattern, o models.FindOptions, re *regexp.Regexp) bool {
	if p.Percentage < o.MinPercentage {
		return false
	}
	if o.MaxPercentage > 0 && p.Percentage > o.MaxPercentage {
		return false
	}
	if p.Count < o.MinCount {
		return false
	}
	if o.MaxCount > 0 && p.Count > o.MaxCount {
		return false
	}
	if p.Depth < o.MinDepth {
		return false
	}
	if o.MaxDepth > 0 && p.Depth > o.MaxDepth {
		return false
	}
	if o.Contains != "" && !strings.Contains(p.Path, o.Contains) {
		return false
	}
	for _, ex := range o.Exclude {
		if strings.Contains(p.Path, ex) {
			return false
		}
	}
	if re != nil && !re.MatchString(p.Path) {
		return false
	}
	return true
}

func sortKey(p models.Pattern, field string) float64 {
	switch field {
	case models.SortByCount:
		return float64(p.Count)
	case models.SortByDepth:
		return float64(p.Depth)
	default:
		return p.Percentage
	}
}
