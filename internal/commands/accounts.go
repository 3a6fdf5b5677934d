package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brale-xyz/brale-cli/internal/output"
)

var accountsCmd = &cobra.Command{
	Use:   "accounts",
	Short: "List the accounts your credential can access",
	Args:  cobra.NoArgs,
	RunE:  runAccountsList,
}

var accountsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List accounts",
	Args:  cobra.NoArgs,
	RunE:  runAccountsList,
}

var accountsShowCmd = &cobra.Command{
	Use:   "show <account-id>",
	Short: "Show one account",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccountsShow,
}

func init() {
	accountsCmd.AddCommand(accountsListCmd)
	accountsCmd.AddCommand(accountsShowCmd)
	rootCmd.AddCommand(accountsCmd)
}

func runAccountsList(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}

	accounts, err := s.api.ListAccounts(cmd.Context())
	if err != nil {
		return err
	}
	return output.Accounts(os.Stdout, accounts, s.cfg.DefaultAccount, s.format)
}

func runAccountsShow(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}

	accounts, err := s.api.ListAccounts(cmd.Context())
	if err != nil {
		return err
	}
	for _, id := range accounts {
		if id != args[0] {
			continue
		}
		if s.format != output.FormatTable {
			envelope := map[string]any{
				"id":         id,
				"is_default": id == s.cfg.DefaultAccount,
			}
			if s.format == output.FormatJSON {
				return output.FprintJSON(os.Stdout, envelope)
			}
			return output.FprintYAML(os.Stdout, envelope)
		}
		isDefault := "false"
		if id == s.cfg.DefaultAccount {
			isDefault = "true"
		}
		return output.Detail(os.Stdout, "Account "+id, []output.KV{
			{Key: "ID", Value: id},
			{Key: "Default", Value: isDefault},
		})
	}
	return fmt.Errorf("account %q not found", args[0])
}
