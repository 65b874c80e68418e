package cmd

import (
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/dataspot-cli/dataspot"
	"github.com/KaramelBytes/dataspot-cli/internal/loader"
)

var (
	cmpFields    []string
	cmpQuery     []string
	cmpOutput    string
	cmpStats     bool
	cmpThreshold float64
	cmpFilters   filterFlags
)

var compareCmd = &cobra.Command{
	Use:   "compare <current-file> <baseline-file>",
	Short: "Compare two datasets and classify how each pattern changed",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := loader.LoadFile(args[0])
		if err != nil {
			return err
		}
		baseline, err := loader.LoadFile(args[1])
		if err != nil {
			return err
		}
		query, err := parseQuery(cmpQuery)
		if err != nil {
			return err
		}
		debugf("loaded %d current and %d baseline records", len(current), len(baseline))

		threshold := cmpThreshold
		if !cmd.Flags().Changed("change-threshold") {
			threshold = activeConfig().ChangeThreshold
		}

		fo := cmpFilters.findOptions(cmd)
		out, err := dataspot.Compare(
			dataspot.CompareInput{
				CurrentData:  current,
				BaselineData: baseline,
				Fields:       cmpFields,
				Query:        query,
			},
			dataspot.CompareOptions{
				StatisticalSignificance: cmpStats,
				ChangeThreshold:         threshold,
				MinPercentage:           fo.MinPercentage,
				MaxPercentage:           fo.MaxPercentage,
				MinCount:                fo.MinCount,
				MaxCount:                fo.MaxCount,
				MinDepth:                fo.MinDepth,
				MaxDepth:                fo.MaxDepth,
				Contains:                fo.Contains,
				Exclude:                 fo.Exclude,
				Regex:                   fo.Regex,
				Limit:                   fo.Limit,
				SortBy:                  fo.SortBy,
				Reverse:                 fo.Reverse,
			},
		)
		if err != nil {
			return err
		}
		return writeResult("compare", args, out, cmpOutput)
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().StringSliceVarP(&cmpFields, "fields", "f", nil, "fields to group by, in hierarchy order (comma-separated)")
	_ = compareCmd.MarkFlagRequired("fields")
	compareCmd.Flags().StringArrayVarP(&cmpQuery, "query", "q", nil, "pre-filter condition field=value, applied to both datasets (repeatable)")
	compareCmd.Flags().StringVarP(&cmpOutput, "output", "o", "", "optional path to write the JSON result")
	compareCmd.Flags().BoolVar(&cmpStats, "stats", false, "attach z-test and chi-square significance to each change")
	compareCmd.Flags().Float64Var(&cmpThreshold, "change-threshold", 0.15, "relative change ratio that counts as significant")
	addFilterFlags(compareCmd, &cmpFilters)
}
