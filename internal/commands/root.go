// Package commands implements the CLI commands using Cobra.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information (set at build time via ldflags)
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// Global flags
var (
	accountFlag string
	outputFlag  string
	verbose     bool
	timeoutFlag int
)

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "brale",
	Short: "CLI for the Brale fiat-to-stablecoin payment API",
	Long: `brale is a command-line tool for moving fiat into stablecoins through
the Brale API: one-time transfers, standing automations, and the custodial
addresses they settle to.

Commands:
  auth         Log in, check, or clear API credentials
  accounts     List the accounts your credential can access
  addresses    List and inspect custodial addresses
  transfers    Create and track fiat-to-stablecoin transfers
  automations  Create and track standing wire automations
  networks     List supported settlement networks
  config       View and change CLI settings

Examples:
  # Authenticate with an API credential pair
  brale auth login

  # Move $100 by wire into SBC on whichever address supports it
  brale transfers create --amount 100 --from wire --to SBC

  # Same, pinned to a network
  brale transfers create --amount 100 --from wire --to SBC --network base`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all commands
	rootCmd.PersistentFlags().StringVarP(&accountFlag, "account", "a", "", "Account ID (overrides the configured default)")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "Output format: table, json, or yaml")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show request details on stderr")
	rootCmd.PersistentFlags().IntVar(&timeoutFlag, "timeout", 0, "Request timeout in seconds (overrides config)")
}

// GetVerbose returns the verbose flag value.
func GetVerbose() bool {
	return verbose
}
