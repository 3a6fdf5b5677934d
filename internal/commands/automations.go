package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/brale-xyz/brale-cli/internal/api"
	"github.com/brale-xyz/brale-cli/internal/networks"
	"github.com/brale-xyz/brale-cli/internal/output"
)

var (
	automationToken   string
	automationNetwork string
	automationStatus  string
)

var automationsCmd = &cobra.Command{
	Use:   "automations",
	Short: "Create and track standing wire automations",
}

var automationsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a standing wire-to-stablecoin automation",
	Long: `Create a named automation: every fiat wire sent to its instructions is
converted into the given stablecoin on a fixed network. Address selection
works like transfers create.`,
	Args: cobra.ExactArgs(1),
	RunE: runAutomationsCreate,
}

var automationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the account's automations",
	Args:  cobra.NoArgs,
	RunE:  runAutomationsList,
}

var automationsShowCmd = &cobra.Command{
	Use:   "show <automation-id>",
	Short: "Show one automation in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runAutomationsShow,
}

var automationsInstructionsCmd = &cobra.Command{
	Use:   "instructions <automation-id>",
	Short: "Show an automation's wire instructions",
	Args:  cobra.ExactArgs(1),
	RunE:  runAutomationsInstructions,
}

func init() {
	automationsCreateCmd.Flags().StringVar(&automationToken, "token", "", "Destination stablecoin (e.g. SBC, USDC)")
	automationsCreateCmd.Flags().StringVar(&automationNetwork, "network", "", "Settlement network (default: first supported)")
	_ = automationsCreateCmd.MarkFlagRequired("token")

	automationsListCmd.Flags().StringVar(&automationStatus, "status", "", "Filter by status (active, inactive, ...)")

	automationsCmd.AddCommand(automationsCreateCmd)
	automationsCmd.AddCommand(automationsListCmd)
	automationsCmd.AddCommand(automationsShowCmd)
	automationsCmd.AddCommand(automationsInstructionsCmd)
	rootCmd.AddCommand(automationsCmd)
}

func runAutomationsCreate(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	account, err := s.account()
	if err != nil {
		return err
	}

	network := canonicalNetwork(automationNetwork)
	addrs, err := s.api.ListAddresses(cmd.Context(), account)
	if err != nil {
		return err
	}
	sel, err := api.SelectCompatibleAddress(addrs, network)
	if err != nil {
		return err
	}

	req := api.AutomationRequest{
		Name: args[0],
		Type: "USD",
		Destination: api.Endpoint{
			AddressID:    sel.Address.ID,
			ValueType:    strings.ToUpper(automationToken),
			TransferType: sel.Network,
		},
	}
	if GetVerbose() {
		if body, err := output.JSONString(req); err == nil {
			output.PrintInfo("Request body:\n" + body)
		}
	}

	automation, err := s.api.CreateAutomation(cmd.Context(), account, req, uuid.NewString())
	if err != nil {
		return err
	}

	if s.format == output.FormatTable {
		output.PrintInfo(fmt.Sprintf("Automation %s created (destination %s on %s).",
			automation.ID, sel.Address.ID, networks.Name(sel.Network)))
	}
	if err := output.AutomationDetail(os.Stdout, *automation, s.format); err != nil {
		return err
	}

	if s.format == output.FormatTable && automation.WireInstructions != nil {
		fmt.Println()
		return output.Instructions(os.Stdout, automation.WireInstructions, nil, s.format)
	}
	return nil
}

func runAutomationsList(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	account, err := s.account()
	if err != nil {
		return err
	}

	autos, err := s.api.ListAutomations(cmd.Context(), account)
	if err != nil {
		return err
	}
	autos = filterAutomations(autos, automationStatus)
	return output.Automations(os.Stdout, account, autos, s.format)
}

func runAutomationsShow(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	account, err := s.account()
	if err != nil {
		return err
	}

	automation, err := s.api.GetAutomation(cmd.Context(), account, args[0])
	if err != nil {
		return err
	}
	return output.AutomationDetail(os.Stdout, *automation, s.format)
}

func runAutomationsInstructions(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	account, err := s.account()
	if err != nil {
		return err
	}

	automation, err := s.api.GetAutomation(cmd.Context(), account, args[0])
	if err != nil {
		return err
	}
	return output.Instructions(os.Stdout, automation.WireInstructions, nil, s.format)
}

func filterAutomations(autos []api.Automation, status string) []api.Automation {
	if status == "" {
		return autos
	}
	status = strings.ToLower(status)
	var out []api.Automation
	for _, a := range autos {
		if strings.ToLower(a.Status) == status {
			out = append(out, a)
		}
	}
	return out
}
