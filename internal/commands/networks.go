package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/brale-xyz/brale-cli/internal/networks"
	"github.com/brale-xyz/brale-cli/internal/output"
)

var networksCmd = &cobra.Command{
	Use:   "networks",
	Short: "List supported settlement networks",
	Long: `List the settlement networks this CLI knows about, including aliases
accepted by --network. The API is authoritative; an address may support
networks not listed here.`,
	Args: cobra.NoArgs,
	RunE: runNetworks,
}

func init() {
	rootCmd.AddCommand(networksCmd)
}

func runNetworks(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	return output.Networks(os.Stdout, networks.List(), s.format)
}
