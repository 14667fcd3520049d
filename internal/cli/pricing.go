/*
PURPOSE:
  Defines the 'pricing' subcommand.
  Prints the effective pricing table so cost numbers can be audited.

REQUIREMENTS:
  User-specified:
  - Show the versioned pricing table the run would use.

  Implementation-discovered:
  - Honors --config, so a custom pricing file can be inspected before
    running with it.

ARCHITECTURE INTEGRATION:
  - Uses: internal/config

ERROR HANDLING:
  - Returns error if config load fails.

IMPLEMENTATION RULES:
  - Simple output to stdout; sort providers for stable output.

USAGE:
  docbench pricing --config ./docbench.yaml

RELATED FILES:
  - internal/config/config.go

MAINTENANCE:
  - None.
*/

package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/docbench/docbench/internal/config"
)

var pricingCmd = &cobra.Command{
	Use:   "pricing",
	Short: "Show the effective LLM pricing table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		fmt.Printf("Pricing version: %s\n", cfg.Pricing.Version)
		fmt.Printf("Default provider: %s\n\n", cfg.Pricing.DefaultProvider)

		providers := make([]string, 0, len(cfg.Pricing.Rates))
		for name := range cfg.Pricing.Rates {
			providers = append(providers, name)
		}
		sort.Strings(providers)

		for _, name := range providers {
			r := cfg.Pricing.Rates[name]
			fmt.Printf("- %-12s input $%.5f/1k  output $%.5f/1k\n", name, r.InputPer1K, r.OutputPer1K)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pricingCmd)
}
