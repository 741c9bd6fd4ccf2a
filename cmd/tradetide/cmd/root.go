package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tradetide",
	Short: "A paper-trading ledger for simulated brokerage accounts",
	Long: `Tradetide is a paper-trading ledger written in Go.

It provides tools for:
  - Simulated brokerage accounts with exact integer accounting
  - Weighted-average cost-basis position tracking
  - Fee assessment and realized-gain computation
  - Portfolio aggregation (total value, win rate, fees)
  - Journaling every execution to SQLite or CSV

Complete documentation is available at https://github.com/tradetide/tradetide`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
