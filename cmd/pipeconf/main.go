package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quantrail/pipeconf/pkg/pipeconf"
)

var version = "dev"

var (
	overrideFiles []string
	logLevel      string
	jsonLog       bool
)

var rootCmd = &cobra.Command{
	Version: version,
	Use:     "pipeconf [config_file]",
	Short:   "Load and inspect a pipeline configuration file",
	Long: `pipeconf loads the declarative configuration of the derivatives
data-processing pipeline and prints a compact summary.

The positional argument names the configuration file (default: config.json).
Files passed via --override are loaded and merged on top, left to right.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, path, err := loadConfig(cmd, args)
		if err != nil {
			return err
		}
		printSummary(cmd, path, cfg)
		return nil
	},
}

// loadConfig resolves the config path, loads it, and merges any overrides.
// Shared by the root and flatten commands.
func loadConfig(cmd *cobra.Command, args []string) (*pipeconf.Config, string, error) {
	path := "config.json"
	if len(args) > 0 {
		path = args[0]
	}

	loader := newLoader()
	cfg, err := loader.LoadFile(cmd.Context(), path)
	if err != nil {
		return nil, "", err
	}

	for _, ov := range overrideFiles {
		overlay, err := loader.LoadFile(cmd.Context(), ov)
		if err != nil {
			return nil, "", err
		}
		if err := pipeconf.Merge(cfg, overlay); err != nil {
			return nil, "", err
		}
	}

	return cfg, path, nil
}

// printSummary writes the plain-text summary of the loaded configuration to
// the command's stdout.
func printSummary(cmd *cobra.Command, path string, cfg *pipeconf.Config) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Configuration loaded from: %s\n", path)
	if p := cfg.Paths; p != nil {
		fmt.Fprintln(out, "Paths:")
		fmt.Fprintf(out, " - derivatives_root: %s\n", p.DerivativesRoot)
		fmt.Fprintf(out, " - spot_root: %s\n", p.SpotRoot)
		fmt.Fprintf(out, " - export_root: %s\n", p.ExportRoot)
		fmt.Fprintf(out, " - log_root: %s\n", p.LogRoot)
	}

	if s := cfg.Scope; s != nil {
		fmt.Fprintln(out, "Scope:")
		fmt.Fprintf(out, " - underlyings count: %d\n", len(s.Underlyings))
		fmt.Fprintf(out, " - date_from: %s\n", s.DateFrom)
		fmt.Fprintf(out, " - date_to: %s\n", s.DateTo)
	}

	if r := cfg.SymbolRegistry; r != nil {
		fmt.Fprintf(out, "Symbol registry groups: %d\n", len(r.Mappings))
	}

	fmt.Fprintln(out, "Done.")
}

func init() {
	rootCmd.PersistentFlags().StringArrayVar(&overrideFiles, "override", nil,
		"extra config file merged on top of the base (repeatable)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn",
		"log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&jsonLog, "json-log", false,
		"emit logs as JSON instead of colorized text")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
