package cmd

import (
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/dataspot-cli/dataspot"
	"github.com/KaramelBytes/dataspot-cli/internal/loader"
)

var (
	findFields  []string
	findQuery   []string
	findOutput  string
	findFilters filterFlags
)

var findCmd = &cobra.Command{
	Use:   "find <file>",
	Short: "Find concentration patterns for a field hierarchy",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := loader.LoadFile(args[0])
		if err != nil {
			return err
		}
		query, err := parseQuery(findQuery)
		if err != nil {
			return err
		}
		debugf("loaded %d records from %s", len(records), args[0])

		out, err := dataspot.Find(
			dataspot.FindInput{Data: records, Fields: findFields, Query: query},
			findFilters.findOptions(cmd),
		)
		if err != nil {
			return err
		}
		return writeResult("find", args, out, findOutput)
	},
}

func init() {
	rootCmd.AddCommand(findCmd)
	findCmd.Flags().StringSliceVarP(&findFields, "fields", "f", nil, "fields to group by, in hierarchy order (comma-separated)")
	_ = findCmd.MarkFlagRequired("fields")
	findCmd.Flags().StringArrayVarP(&findQuery, "query", "q", nil, "pre-filter condition field=value (repeatable; repeating a field means any of its values)")
	findCmd.Flags().StringVarP(&findOutput, "output", "o", "", "optional path to write the JSON result")
	addFilterFlags(findCmd, &findFilters)
}
