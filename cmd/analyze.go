package cmd

import (
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/dataspot-cli/dataspot"
	"github.com/KaramelBytes/dataspot-cli/internal/loader"
)

var (
	anaFields  []string
	anaQuery   []string
	anaOutput  string
	anaFilters filterFlags
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a dataset: patterns plus statistics, insights and field distributions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := loader.LoadFile(args[0])
		if err != nil {
			return err
		}
		query, err := parseQuery(anaQuery)
		if err != nil {
			return err
		}
		debugf("loaded %d records from %s", len(records), args[0])

		fo := anaFilters.findOptions(cmd)
		out, err := dataspot.Analyze(
			dataspot.AnalyzeInput{Data: records, Fields: anaFields, Query: query},
			dataspot.AnalyzeOptions{
				MinPercentage: fo.MinPercentage,
				MaxPercentage: fo.MaxPercentage,
				MinCount:      fo.MinCount,
				MaxCount:      fo.MaxCount,
				MinDepth:      fo.MinDepth,
				MaxDepth:      fo.MaxDepth,
				Contains:      fo.Contains,
				Exclude:       fo.Exclude,
				Regex:         fo.Regex,
				Limit:         fo.Limit,
				SortBy:        fo.SortBy,
				Reverse:       fo.Reverse,
			},
		)
		if err != nil {
			return err
		}
		return writeResult("analyze", args, out, anaOutput)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringSliceVarP(&anaFields, "fields", "f", nil, "fields to group by, in hierarchy order (comma-separated)")
	_ = analyzeCmd.MarkFlagRequired("fields")
	analyzeCmd.Flags().StringArrayVarP(&anaQuery, "query", "q", nil, "pre-filter condition field=value (repeatable)")
	analyzeCmd.Flags().StringVarP(&anaOutput, "output", "o", "", "optional path to write the JSON result")
	addFilterFlags(analyzeCmd, &anaFilters)
}
