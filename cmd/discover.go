package cmd

import (
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/dataspot-cli/dataspot"
	"github.com/KaramelBytes/dataspot-cli/internal/loader"
)

var (
	discQuery           []string
	discOutput          string
	discMaxFields       int
	discMaxCombinations int
	discFilters         filterFlags
)

var discoverCmd = &cobra.Command{
	Use:   "discover <file>",
	Short: "Discover the most concentrated field combinations automatically",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := loader.LoadFile(args[0])
		if err != nil {
			return err
		}
		query, err := parseQuery(discQuery)
		if err != nil {
			return err
		}
		debugf("loaded %d records from %s", len(records), args[0])

		c := activeConfig()
		maxFields := discMaxFields
		if !cmd.Flags().Changed("max-fields") {
			maxFields = c.DiscoverMaxFields
		}
		maxCombos := discMaxCombinations
		if !cmd.Flags().Changed("max-combinations") {
			maxCombos = c.DiscoverMaxCombinations
		}

		fo := discFilters.findOptions(cmd)
		out, err := dataspot.Discover(
			dataspot.DiscoverInput{Data: records, Query: query},
			dataspot.DiscoverOptions{
				MaxFields:       maxFields,
				MaxCombinations: maxCombos,
				MinPercentage:   fo.MinPercentage,
				MaxPercentage:   fo.MaxPercentage,
				MinCount:        fo.MinCount,
				MaxCount:        fo.MaxCount,
				MinDepth:        fo.MinDepth,
				MaxDepth:        fo.MaxDepth,
				Contains:        fo.Contains,
				Exclude:         fo.Exclude,
				Regex:           fo.Regex,
				Limit:           fo.Limit,
				SortBy:          fo.SortBy,
				Reverse:         fo.Reverse,
			},
		)
		if err != nil {
			return err
		}
		return writeResult("discover", args, out, discOutput)
	},
}

func init() {
	rootCmd.AddCommand(discoverCmd)
	discoverCmd.Flags().StringArrayVarP(&discQuery, "query", "q", nil, "pre-filter condition field=value (repeatable)")
	discoverCmd.Flags().StringVarP(&discOutput, "output", "o", "", "optional path to write the JSON result")
	discoverCmd.Flags().IntVar(&discMaxFields, "max-fields", 3, "largest field combination size tried")
	discoverCmd.Flags().IntVar(&discMaxCombinations, "max-combinations", 10, "combinations executed per combination size")
	addFilterFlags(discoverCmd, &discFilters)
}
