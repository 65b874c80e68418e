package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/dataspot-cli/models"
)

// filterFlags holds the pattern filter options shared by the analysis
// subcommands.
type filterFlags struct {
	minPercentage float64
	maxPercentage float64
	minCount      int
	maxCount      int
	minDepth      int
	maxDepth      int
	contains      string
	exclude       []string
	regex         string
	limit         int
	sortBy        string
	reverse       bool
}

func addFilterFlags(cmd *cobra.Command, f *filterFlags) {
	cmd.Flags().Float64Var(&f.minPercentage, "min-percentage", 0, "minimum concentration percentage (0-100)")
	cmd.Flags().Float64Var(&f.maxPercentage, "max-percentage", 0, "maximum concentration percentage (0 = unbounded)")
	cmd.Flags().IntVar(&f.minCount, "min-count", 0, "minimum record count per pattern")
	cmd.Flags().IntVar(&f.maxCount, "max-count", 0, "maximum record count per pattern (0 = unbounded)")
	cmd.Flags().IntVar(&f.minDepth, "min-depth", 0, "minimum pattern depth")
	cmd.Flags().IntVar(&f.maxDepth, "max-depth", 0, "maximum pattern depth (0 = unbounded)")
	cmd.Flags().StringVar(&f.contains, "contains", "", "keep only patterns whose path contains this text")
	cmd.Flags().StringSliceVar(&f.exclude, "exclude", nil, "drop patterns whose path contains any of these texts")
	cmd.Flags().StringVar(&f.regex, "regex", "", "keep only patterns whose path matches this regular expression")
	cmd.Flags().IntVar(&f.limit, "limit", 0, "maximum number of patterns returned (0 = unlimited)")
	cmd.Flags().StringVar(&f.sortBy, "sort-by", "", "sort field: percentage | count | depth")
	cmd.Flags().BoolVar(&f.reverse, "reverse", true, "sort descending (use --reverse=false for ascending)")
}

// findOptions converts the flags into engine options, filling unset bounds
// from config.
func (f *filterFlags) findOptions(cmd *cobra.Command) models.FindOptions {
	opts := models.FindOptions{
		MinPercentage: f.minPercentage,
		MaxPercentage: f.maxPercentage,
		MinCount:      f.minCount,
		MaxCount:      f.maxCount,
		MinDepth:      f.minDepth,
		MaxDepth:      f.maxDepth,
		Contains:      f.contains,
		Exclude:       f.exclude,
		Regex:         f.regex,
		Limit:         f.limit,
		SortBy:        f.sortBy,
	}
	c := activeConfig()
	if !cmd.Flags().Changed("min-percentage") {
		opts.MinPercentage = c.MinPercentage
	}
	if !cmd.Flags().Changed("min-count") {
		opts.MinCount = c.MinCount
	}
	if !cmd.Flags().Changed("limit") {
		opts.Limit = c.Limit
	}
	// Only an explicit --reverse overrides the engine's default ordering.
	if cmd.Flags().Changed("reverse") {
		opts.Reverse = &f.reverse
	}
	return opts
}

// parseQuery turns repeated field=value pairs into a query. Repeating a
// field means "any of these values".
func parseQuery(pairs []string) (models.Query, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	q := make(models.Query, len(pairs))
	for _, pair := range pairs {
		field, value, ok := strings.Cut(pair, "=")
		if !ok || field == "" {
			return nil, fmt.Errorf("invalid --query %q (want field=value)", pair)
		}
		switch cur := q[field].(type) {
		case nil:
			q[field] = value
		case string:
			q[field] = []string{cur, value}
		case []string:
			q[field] = append(cur, value)
		}
	}
	return q, nil
}
