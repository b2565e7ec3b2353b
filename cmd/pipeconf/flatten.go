package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var flattenCmd = &cobra.Command{
	Use:   "flatten [config_file]",
	Short: "Print every configured value as section.field=value lines",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig(cmd, args)
		if err != nil {
			return err
		}

		flat := cfg.FlatMap()
		keys := make([]string, 0, len(flat))
		for k := range flat {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		out := cmd.OutOrStdout()
		for _, k := range keys {
			fmt.Fprintf(out, "%s=%s\n", k, flat[k])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(flattenCmd)
}
