package cmd

import (
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/dataspot-cli/dataspot"
	"github.com/KaramelBytes/dataspot-cli/internal/loader"
)

var (
	treeFields        []string
	treeQuery         []string
	treeOutput        string
	treeTop           int
	treeMinValue      int
	treeMaxValue      int
	treeMinPercentage float64
	treeMaxPercentage float64
	treeMinDepth      int
	treeMaxDepth      int
	treeContains      string
	treeExclude       []string
	treeRegex         string
)

var treeCmd = &cobra.Command{
	Use:   "tree <file>",
	Short: "Render the concentration hierarchy as a tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := loader.LoadFile(args[0])
		if err != nil {
			return err
		}
		query, err := parseQuery(treeQuery)
		if err != nil {
			return err
		}
		debugf("loaded %d records from %s", len(records), args[0])

		top := treeTop
		if !cmd.Flags().Changed("top") {
			top = activeConfig().TreeTop
		}

		out, err := dataspot.Tree(
			dataspot.TreeInput{Data: records, Fields: treeFields, Query: query},
			dataspot.TreeOptions{
				Top:           top,
				MinValue:      treeMinValue,
				MaxValue:      treeMaxValue,
				MinPercentage: treeMinPercentage,
				MaxPercentage: treeMaxPercentage,
				MinDepth:      treeMinDepth,
				MaxDepth:      treeMaxDepth,
				Contains:      treeContains,
				Exclude:       treeExclude,
				Regex:         treeRegex,
			},
		)
		if err != nil {
			return err
		}
		return writeResult("tree", args, out, treeOutput)
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().StringSliceVarP(&treeFields, "fields", "f", nil, "fields to group by, in hierarchy order (comma-separated)")
	_ = treeCmd.MarkFlagRequired("fields")
	treeCmd.Flags().StringArrayVarP(&treeQuery, "query", "q", nil, "pre-filter condition field=value (repeatable)")
	treeCmd.Flags().StringVarP(&treeOutput, "output", "o", "", "optional path to write the JSON result")
	treeCmd.Flags().IntVar(&treeTop, "top", 5, "highest-percentage children kept per level")
	treeCmd.Flags().IntVar(&treeMinValue, "min-value", 0, "minimum record count per node")
	treeCmd.Flags().IntVar(&treeMaxValue, "max-value", 0, "maximum record count per node (0 = unbounded)")
	treeCmd.Flags().Float64Var(&treeMinPercentage, "min-percentage", 0, "minimum concentration percentage (0-100)")
	treeCmd.Flags().Float64Var(&treeMaxPercentage, "max-percentage", 0, "maximum concentration percentage (0 = unbounded)")
	treeCmd.Flags().IntVar(&treeMinDepth, "min-depth", 0, "minimum node depth")
	treeCmd.Flags().IntVar(&treeMaxDepth, "max-depth", 0, "maximum node depth (0 = unbounded)")
	treeCmd.Flags().StringVar(&treeContains, "contains", "", "keep only branches whose path contains this text")
	treeCmd.Flags().StringSliceVar(&treeExclude, "exclude", nil, "drop branches whose path contains any of these texts")
	treeCmd.Flags().StringVar(&treeRegex, "regex", "", "keep only branches whose path matches this regular expression")
}
