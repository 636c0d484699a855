package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/FernBytes/sheetnorm-cli/internal/config"
)

var (
	// Global flags
	cfgFile        string
	flagSampleSize int
	flagDelimiter  string

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "sheetnorm",
	Short: "sheetnorm: map messy spreadsheets onto a fixed canonical schema",
	Long: `sheetnorm infers how arbitrary tabular data maps onto a fixed canonical
10-column schema, reassembles name/address fields split across columns, and
validates the result. It is built to be driven by an external agent, either
over the CLI or through the JSON tool server (see "sheetnorm serve").`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.sheetnorm/config.yaml)")
	rootCmd.PersistentFlags().IntVar(&flagSampleSize, "sample-size", 0, "rows sampled per column during analysis (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab' (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c

	f := rootCmd.PersistentFlags()
	if f.Changed("sample-size") && flagSampleSize > 0 {
		cfg.SampleSize = flagSampleSize
	}
	if f.Changed("delimiter") && flagDelimiter != "" {
		cfg.Delimiter = flagDelimiter
	}
}

// activeConfig returns the loaded config, falling back to defaults when the
// config file could not be read.
func activeConfig() *cfgpkg.Global {
	if cfg != nil {
		return cfg
	}
	return &cfgpkg.Global{SampleSize: 10, ServeAddr: ":8090"}
}
