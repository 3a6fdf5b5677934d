package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/brale-xyz/brale-cli/internal/api"
	"github.com/brale-xyz/brale-cli/internal/networks"
)

// KV is one row of a detail view. Order is preserved when rendering.
type KV struct {
	Key   string
	Value string
}

// structured dispatches json/yaml rendering for any envelope.
func structured(w io.Writer, v any, f Format) (bool, error) {
	switch f {
	case FormatJSON:
		return true, FprintJSON(w, v)
	case FormatYAML:
		return true, FprintYAML(w, v)
	default:
		return false, nil
	}
}

// Accounts renders the account list. The default account is marked in
// table output.
func Accounts(w io.Writer, accounts []string, defaultAccount string, f Format) error {
	if done, err := structured(w, map[string]any{"accounts": accounts}, f); done {
		return err
	}

	if len(accounts) == 0 {
		fmt.Fprintln(w, "No accounts found.")
		return nil
	}

	fmt.Fprintln(w, "Accounts")
	fmt.Fprintln(w)
	for _, id := range accounts {
		marker := ""
		if id == defaultAccount {
			marker = "  (default)"
		}
		fmt.Fprintf(w, "  %s%s\n", id, marker)
	}
	fmt.Fprintf(w, "\nTotal: %d account(s)\n", len(accounts))
	return nil
}

// Addresses renders the address list of an account.
func Addresses(w io.Writer, accountID string, addrs []api.Address, f Format) error {
	if done, err := structured(w, map[string]any{"addresses": addrs}, f); done {
		return err
	}

	if len(addrs) == 0 {
		fmt.Fprintln(w, "No addresses found.")
		return nil
	}

	fmt.Fprintf(w, "Addresses for account %s\n\n", accountID)
	fmt.Fprintf(w, "  %-23s %-10s %-12s %-27s %s\n", "ID", "STATUS", "TYPE", "ADDRESS", "NETWORKS")
	for _, addr := range addrs {
		fmt.Fprintf(w, "  %-23s %-10s %-12s %-27s %s\n",
			truncate(addr.ID, 23),
			addr.Status,
			orNA(addr.Type),
			shortenMiddle(orNA(addr.Address), 25),
			truncate(strings.Join(addr.SupportedNetworks, ", "), 35),
		)
	}
	fmt.Fprintf(w, "\nTotal: %d address(es)\n", len(addrs))
	return nil
}

// AddressDetail renders one address, annotating whether the on-chain
// string parses for each network it claims to support.
func AddressDetail(w io.Writer, addr api.Address, f Format) error {
	if done, err := structured(w, addr, f); done {
		return err
	}

	pairs := []KV{
		{"ID", addr.ID},
		{"Status", addr.Status},
		{"Type", orNA(addr.Type)},
		{"Name", orNA(addr.Name)},
		{"Address", orNA(addr.Address)},
		{"Created", orNA(addr.Created)},
		{"Networks", orNA(strings.Join(addr.SupportedNetworks, ", "))},
	}
	pairs = append(pairs, KV{"Format check", addressFormatCheck(addr)})

	return Detail(w, "Address "+addr.ID, pairs)
}

// addressFormatCheck validates the on-chain address against each
// supported network's address family.
func addressFormatCheck(addr api.Address) string {
	if addr.Address == "" || len(addr.SupportedNetworks) == 0 {
		return "n/a"
	}
	var bad []string
	for _, n := range addr.SupportedNetworks {
		if err := networks.ValidateAddress(n, addr.Address); err != nil {
			bad = append(bad, n)
		}
	}
	if len(bad) == 0 {
		return "ok"
	}
	return "invalid for " + strings.Join(bad, ", ")
}

// Transfers renders the transfer list of an account.
func Transfers(w io.Writer, accountID string, transfers []api.Transfer, f Format) error {
	if done, err := structured(w, map[string]any{"transfers": transfers}, f); done {
		return err
	}

	if len(transfers) == 0 {
		fmt.Fprintln(w, "No transfers found.")
		return nil
	}

	fmt.Fprintf(w, "Transfers for account %s\n\n", accountID)
	fmt.Fprintf(w, "  %-21s %-12s %-14s %-16s %-16s %s\n", "ID", "STATUS", "AMOUNT", "FROM", "TO", "CREATED")
	for _, tr := range transfers {
		fmt.Fprintf(w, "  %-21s %-12s %-14s %-16s %-16s %s\n",
			truncate(tr.ID, 21),
			tr.Status,
			fmt.Sprintf("$%s %s", orNA(tr.Amount.Value), tr.Amount.Currency),
			endpointSummary(tr.Source),
			endpointSummary(tr.Destination),
			shortTimestamp(orNA(tr.CreatedAt)),
		)
	}
	fmt.Fprintf(w, "\nTotal: %d transfer(s)\n", len(transfers))
	return nil
}

// TransferDetail renders one transfer.
func TransferDetail(w io.Writer, tr api.Transfer, f Format) error {
	if done, err := structured(w, tr, f); done {
		return err
	}

	pairs := []KV{
		{"ID", tr.ID},
		{"Status", tr.Status},
		{"Amount", fmt.Sprintf("$%s %s", orNA(tr.Amount.Value), tr.Amount.Currency)},
		{"Source", fmt.Sprintf("%s via %s", orNA(tr.Source.ValueType), orNA(tr.Source.TransferType))},
		{"Destination", fmt.Sprintf("%s via %s", orNA(tr.Destination.ValueType), networks.Name(tr.Destination.TransferType))},
		{"Address ID", orNA(tr.Destination.AddressID)},
		{"Created", orNA(tr.CreatedAt)},
		{"Updated", orNA(tr.UpdatedAt)},
	}
	if tr.Note != "" {
		pairs = append(pairs, KV{"Note", tr.Note})
	}
	return Detail(w, "Transfer "+tr.ID, pairs)
}

// Automations renders the automation list of an account.
func Automations(w io.Writer, accountID string, autos []api.Automation, f Format) error {
	if done, err := structured(w, map[string]any{"automations": autos}, f); done {
		return err
	}

	if len(autos) == 0 {
		fmt.Fprintln(w, "No automations found.")
		return nil
	}

	fmt.Fprintf(w, "Automations for account %s\n\n", accountID)
	fmt.Fprintf(w, "  %-21s %-25s %-12s %-8s %-14s %s\n", "ID", "NAME", "STATUS", "TOKEN", "NETWORK", "CREATED")
	for _, a := range autos {
		fmt.Fprintf(w, "  %-21s %-25s %-12s %-8s %-14s %s\n",
			truncate(a.ID, 21),
			truncate(orNA(a.Name), 25),
			a.Status,
			orNA(a.Destination.ValueType),
			orNA(a.Destination.TransferType),
			shortTimestamp(orNA(a.CreatedAt)),
		)
	}
	fmt.Fprintf(w, "\nTotal: %d automation(s)\n", len(autos))
	return nil
}

// AutomationDetail renders one automation.
func AutomationDetail(w io.Writer, a api.Automation, f Format) error {
	if done, err := structured(w, a, f); done {
		return err
	}

	pairs := []KV{
		{"ID", a.ID},
		{"Name", orNA(a.Name)},
		{"Status", a.Status},
		{"Token", orNA(a.Destination.ValueType)},
		{"Network", networks.Name(a.Destination.TransferType)},
		{"Address ID", orNA(a.Destination.AddressID)},
	}
	if a.CreatedAt != "" {
		pairs = append(pairs, KV{"Created", a.CreatedAt})
	}
	if a.UpdatedAt != "" {
		pairs = append(pairs, KV{"Updated", a.UpdatedAt})
	}
	return Detail(w, "Automation "+a.ID, pairs)
}

// Instructions renders wire and/or ACH funding instructions. Both nil
// means the resource needs no manual funding.
func Instructions(w io.Writer, wire *api.WireInstructions, ach *api.ACHInstructions, f Format) error {
	// The no-instructions notice precedes the format branch, so scripted
	// callers see it instead of an empty envelope.
	if wire == nil && ach == nil {
		fmt.Fprintln(w, "No payment instructions available; this resource may not require manual funding.")
		return nil
	}

	if f == FormatJSON || f == FormatYAML {
		envelope := map[string]any{}
		if wire != nil {
			envelope["wire_instructions"] = wire
		}
		if ach != nil {
			envelope["ach_instructions"] = ach
		}
		_, err := structured(w, envelope, f)
		return err
	}

	if wire != nil {
		pairs := []KV{
			{"Bank Name", orNA(wire.BankName)},
			{"Bank Address", orNA(wire.BankAddress)},
			{"Account Number", orNA(wire.AccountNumber)},
			{"Routing Number", orNA(wire.RoutingNumber)},
			{"Beneficiary Name", orNA(wire.BeneficiaryName)},
			{"Beneficiary Address", orNA(wire.BeneficiaryAddress)},
		}
		if wire.Memo != "" {
			pairs = append(pairs, KV{"Memo", wire.Memo})
		}
		if err := Detail(w, "Wire Instructions", pairs); err != nil {
			return err
		}
	}

	if ach != nil {
		if wire != nil {
			fmt.Fprintln(w)
		}
		pairs := []KV{
			{"Account Number", orNA(ach.AccountNumber)},
			{"Routing Number", orNA(ach.RoutingNumber)},
			{"Account Name", orNA(ach.AccountName)},
		}
		if err := Detail(w, "ACH Instructions", pairs); err != nil {
			return err
		}
	}
	return nil
}

// Networks renders the known transfer network registry.
func Networks(w io.Writer, entries []networks.Info, f Format) error {
	if done, err := structured(w, map[string]any{"networks": entries}, f); done {
		return err
	}

	fmt.Fprintln(w, "Supported Networks")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-15s %-22s %-8s %s\n", "ID", "NAME", "FAMILY", "")
	for _, e := range entries {
		testnet := ""
		if e.IsTestnet {
			testnet = "(testnet)"
		}
		fmt.Fprintf(w, "  %-15s %-22s %-8s %s\n", e.ID, e.Name, string(e.Family), testnet)
	}
	return nil
}

// Detail renders an ordered key/value view with aligned columns.
func Detail(w io.Writer, title string, pairs []KV) error {
	width := 0
	for _, kv := range pairs {
		if len(kv.Key) > width {
			width = len(kv.Key)
		}
	}

	fmt.Fprintln(w, title)
	fmt.Fprintln(w)
	for _, kv := range pairs {
		fmt.Fprintf(w, "  %-*s  %s\n", width+1, kv.Key+":", kv.Value)
	}
	return nil
}

// Settings renders config show output; the structured forms keep the
// original key names.
func Settings(w io.Writer, pairs []KV, f Format) error {
	if f == FormatJSON || f == FormatYAML {
		m := make(map[string]string, len(pairs))
		for _, kv := range pairs {
			m[kv.Key] = kv.Value
		}
		_, err := structured(w, m, f)
		return err
	}
	return Detail(w, "Configuration", pairs)
}

// endpointSummary compacts a transfer endpoint to "USD (wire)" form.
func endpointSummary(e api.Endpoint) string {
	return fmt.Sprintf("%s (%s)", orNA(e.ValueType), orNA(e.TransferType))
}

// shortenMiddle elides the middle of long opaque strings, keeping both
// ends visible so addresses stay recognizable in tables.
func shortenMiddle(s string, maxLen int) string {
	if len(s) <= maxLen || maxLen < 23 {
		return s
	}
	return s[:10] + "..." + s[len(s)-10:]
}
