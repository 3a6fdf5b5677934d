package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brale-xyz/brale-cli/internal/output"
)

var addressesCmd = &cobra.Command{
	Use:   "addresses",
	Short: "List and inspect custodial addresses",
	Args:  cobra.NoArgs,
	RunE:  runAddressesList,
}

var addressesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the account's custodial addresses",
	Args:  cobra.NoArgs,
	RunE:  runAddressesList,
}

var addressesShowCmd = &cobra.Command{
	Use:   "show <address-id>",
	Short: "Show one address in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runAddressesShow,
}

func init() {
	addressesCmd.AddCommand(addressesListCmd)
	addressesCmd.AddCommand(addressesShowCmd)
	rootCmd.AddCommand(addressesCmd)
}

func runAddressesList(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	account, err := s.account()
	if err != nil {
		return err
	}

	addrs, err := s.api.ListAddresses(cmd.Context(), account)
	if err != nil {
		return err
	}
	return output.Addresses(os.Stdout, account, addrs, s.format)
}

func runAddressesShow(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	account, err := s.account()
	if err != nil {
		return err
	}

	addrs, err := s.api.ListAddresses(cmd.Context(), account)
	if err != nil {
		return err
	}
	for _, addr := range addrs {
		if addr.ID == args[0] {
			return output.AddressDetail(os.Stdout, addr, s.format)
		}
	}
	return fmt.Errorf("address %q not found in account %s", args[0], account)
}
