package cmd

import (
	"fmt"
	"strconv"

	cfgpkg "github.com/KaramelBytes/dataspot-cli/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set Dataspot configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := activeConfig()
		fmt.Printf("min_percentage: %.2f\n", c.MinPercentage)
		fmt.Printf("min_count: %d\n", c.MinCount)
		fmt.Printf("limit: %d\n", c.Limit)
		fmt.Printf("discover_max_fields: %d\n", c.DiscoverMaxFields)
		fmt.Printf("discover_max_combinations: %d\n", c.DiscoverMaxCombinations)
		fmt.Printf("change_threshold: %.2f\n", c.ChangeThreshold)
		fmt.Printf("tree_top: %d\n", c.TreeTop)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "min_percentage":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f < 0 || f > 100 {
				return fmt.Errorf("invalid percentage for min_percentage: %v", val)
			}
			cfg.MinPercentage = f
		case "min_count":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for min_count: %v", val)
			}
			cfg.MinCount = i
		case "limit":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for limit: %v", val)
			}
			cfg.Limit = i
		case "discover_max_fields":
			i, err := strconv.Atoi(val)
			if err != nil || i < 1 {
				return fmt.Errorf("invalid int for discover_max_fields: %v", val)
			}
			cfg.DiscoverMaxFields = i
		case "discover_max_combinations":
			i, err := strconv.Atoi(val)
			if err != nil || i < 1 {
				return fmt.Errorf("invalid int for discover_max_combinations: %v", val)
			}
			cfg.DiscoverMaxCombinations = i
		case "change_threshold":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f < 0 {
				return fmt.Errorf("invalid float for change_threshold: %v", val)
			}
			cfg.ChangeThreshold = f
		case "tree_top":
			i, err := strconv.Atoi(val)
			if err != nil || i < 1 {
				return fmt.Errorf("invalid int for tree_top: %v", val)
			}
			cfg.TreeTop = i
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
