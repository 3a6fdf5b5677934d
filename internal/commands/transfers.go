package commands

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/brale-xyz/brale-cli/internal/api"
	"github.com/brale-xyz/brale-cli/internal/networks"
	"github.com/brale-xyz/brale-cli/internal/output"
)

var (
	transferAmount  float64
	transferFrom    string
	transferTo      string
	transferNetwork string
	transferNote    string
	transferStatus  string
)

var transfersCmd = &cobra.Command{
	Use:   "transfers",
	Short: "Create and track fiat-to-stablecoin transfers",
}

var transfersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a one-time transfer",
	Long: `Create a one-time fiat-to-stablecoin transfer. The destination address
is picked automatically: with --network, the first active address that
supports it; without, the first active address with any network, settling
on its first listed one.

Wire transfers return funding instructions; send the fiat to that bank
account to complete the transfer.`,
	Args: cobra.NoArgs,
	RunE: runTransfersCreate,
}

var transfersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the account's transfers",
	Args:  cobra.NoArgs,
	RunE:  runTransfersList,
}

var transfersShowCmd = &cobra.Command{
	Use:   "show <transfer-id>",
	Short: "Show one transfer in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runTransfersShow,
}

var transfersInstructionsCmd = &cobra.Command{
	Use:   "instructions <transfer-id>",
	Short: "Show a transfer's funding instructions",
	Args:  cobra.ExactArgs(1),
	RunE:  runTransfersInstructions,
}

func init() {
	transfersCreateCmd.Flags().Float64Var(&transferAmount, "amount", 0, "Fiat amount in USD")
	transfersCreateCmd.Flags().StringVar(&transferFrom, "from", "wire", "Funding rail: wire or ach")
	transfersCreateCmd.Flags().StringVar(&transferTo, "to", "", "Destination stablecoin (e.g. SBC, USDC)")
	transfersCreateCmd.Flags().StringVar(&transferNetwork, "network", "", "Settlement network (default: first supported)")
	transfersCreateCmd.Flags().StringVar(&transferNote, "note", "", "Free-form note attached to the transfer")
	_ = transfersCreateCmd.MarkFlagRequired("amount")
	_ = transfersCreateCmd.MarkFlagRequired("to")

	transfersListCmd.Flags().StringVar(&transferStatus, "status", "", "Filter by status (pending, complete, ...)")

	transfersCmd.AddCommand(transfersCreateCmd)
	transfersCmd.AddCommand(transfersListCmd)
	transfersCmd.AddCommand(transfersShowCmd)
	transfersCmd.AddCommand(transfersInstructionsCmd)
	rootCmd.AddCommand(transfersCmd)
}

func runTransfersCreate(cmd *cobra.Command, args []string) error {
	if transferAmount <= 0 {
		return fmt.Errorf("--amount must be positive, got %v", transferAmount)
	}
	rail := strings.ToLower(transferFrom)
	if rail != "wire" && rail != "ach" {
		return fmt.Errorf("--from must be wire or ach, got %q", transferFrom)
	}

	s, err := newSession()
	if err != nil {
		return err
	}
	account, err := s.account()
	if err != nil {
		return err
	}

	network := canonicalNetwork(transferNetwork)
	addrs, err := s.api.ListAddresses(cmd.Context(), account)
	if err != nil {
		return err
	}
	sel, err := api.SelectCompatibleAddress(addrs, network)
	if err != nil {
		return err
	}

	req := api.TransferRequest{
		Amount: api.Amount{Value: formatAmount(transferAmount), Currency: "USD"},
		Source: api.Endpoint{ValueType: "USD", TransferType: rail},
		Destination: api.Endpoint{
			AddressID:    sel.Address.ID,
			ValueType:    strings.ToUpper(transferTo),
			TransferType: sel.Network,
		},
		Note: transferNote,
	}
	if GetVerbose() {
		if body, err := output.JSONString(req); err == nil {
			output.PrintInfo("Request body:\n" + body)
		}
	}

	transfer, err := s.api.CreateTransfer(cmd.Context(), account, req, uuid.NewString())
	if err != nil {
		return err
	}

	if s.format == output.FormatTable {
		output.PrintInfo(fmt.Sprintf("Transfer %s created (destination %s on %s).",
			transfer.ID, sel.Address.ID, networks.Name(sel.Network)))
	}
	if err := output.TransferDetail(os.Stdout, *transfer, s.format); err != nil {
		return err
	}

	if s.format == output.FormatTable && transfer.WireInstructions != nil {
		fmt.Println()
		return output.Instructions(os.Stdout, transfer.WireInstructions, transfer.ACHInstructions, s.format)
	}
	return nil
}

func runTransfersList(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	account, err := s.account()
	if err != nil {
		return err
	}

	transfers, err := s.api.ListTransfers(cmd.Context(), account)
	if err != nil {
		return err
	}
	transfers = filterTransfers(transfers, transferStatus)
	return output.Transfers(os.Stdout, account, transfers, s.format)
}

func runTransfersShow(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	account, err := s.account()
	if err != nil {
		return err
	}

	transfer, err := s.api.GetTransfer(cmd.Context(), account, args[0])
	if err != nil {
		return err
	}
	return output.TransferDetail(os.Stdout, *transfer, s.format)
}

func runTransfersInstructions(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	account, err := s.account()
	if err != nil {
		return err
	}

	transfer, err := s.api.GetTransfer(cmd.Context(), account, args[0])
	if err != nil {
		return err
	}
	return output.Instructions(os.Stdout, transfer.WireInstructions, transfer.ACHInstructions, s.format)
}

// canonicalNetwork maps aliases like "eth" or "mainnet" to the API's
// network IDs; unknown names pass through so the server can reject them.
func canonicalNetwork(name string) string {
	if name == "" {
		return ""
	}
	if info := networks.Lookup(name); info != nil {
		return info.ID
	}
	return strings.ToLower(strings.TrimSpace(name))
}

// formatAmount renders a flag amount the way the API expects: plain
// decimal, no exponent, no trailing zeros.
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

func filterTransfers(transfers []api.Transfer, status string) []api.Transfer {
	if status == "" {
		return transfers
	}
	status = strings.ToLower(status)
	var out []api.Transfer
	for _, tr := range transfers {
		if strings.ToLower(tr.Status) == status {
			out = append(out, tr)
		}
	}
	return out
}
