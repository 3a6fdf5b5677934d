package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brale-xyz/brale-cli/internal/api"
	"github.com/brale-xyz/brale-cli/internal/networks"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatTable, false},
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAccounts_Table(t *testing.T) {
	var buf bytes.Buffer
	err := Accounts(&buf, []string{"acc-1", "acc-2"}, "acc-2", FormatTable)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "acc-1")
	assert.Contains(t, out, "acc-2  (default)")
	assert.Contains(t, out, "Total: 2 account(s)")
}

func TestAccounts_JSONEnvelope(t *testing.T) {
	var buf bytes.Buffer
	err := Accounts(&buf, []string{"acc-1"}, "", FormatJSON)
	require.NoError(t, err)
	assert.JSONEq(t, `{"accounts":["acc-1"]}`, buf.String())
}

func TestAccounts_EmptyTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Accounts(&buf, nil, "", FormatTable))
	assert.Contains(t, buf.String(), "No accounts found.")
}

func TestAddresses_YAMLUsesWireNames(t *testing.T) {
	addrs := []api.Address{
		{ID: "addr-1", Status: "active", SupportedNetworks: []string{"base"}},
	}

	var buf bytes.Buffer
	require.NoError(t, Addresses(&buf, "acc-1", addrs, FormatYAML))

	out := buf.String()
	assert.Contains(t, out, "transfer_types:")
	assert.NotContains(t, out, "SupportedNetworks")
}

func TestAddresses_TableTruncatesLongValues(t *testing.T) {
	addrs := []api.Address{
		{
			ID:                "addr-very-long-identifier-that-overflows",
			Status:            "active",
			Type:              "custodial",
			Address:           "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B",
			SupportedNetworks: []string{"base"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Addresses(&buf, "acc-1", addrs, FormatTable))

	out := buf.String()
	assert.Contains(t, out, "addr-very-long-ident...")
	assert.Contains(t, out, "0xAb5801a7...B3259aeC9B")
	assert.NotContains(t, out, "addr-very-long-identifier-that-overflows")
}

func TestAddressDetail_FormatCheck(t *testing.T) {
	addr := api.Address{
		ID:                "addr-1",
		Status:            "active",
		Address:           "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B",
		SupportedNetworks: []string{"base", "solana"},
	}

	var buf bytes.Buffer
	require.NoError(t, AddressDetail(&buf, addr, FormatTable))

	// Hex address parses for base but not for solana.
	assert.Contains(t, buf.String(), "invalid for solana")
}

func TestTransfers_Table(t *testing.T) {
	transfers := []api.Transfer{
		{
			ID:          "tr-1",
			Status:      "pending",
			Amount:      api.Amount{Value: "10", Currency: "USD"},
			Source:      api.Endpoint{ValueType: "USD", TransferType: "wire"},
			Destination: api.Endpoint{ValueType: "SBC", TransferType: "base"},
			CreatedAt:   "2026-08-25T14:03:00Z",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Transfers(&buf, "acc-1", transfers, FormatTable))

	out := buf.String()
	assert.Contains(t, out, "$10 USD")
	assert.Contains(t, out, "USD (wire)")
	assert.Contains(t, out, "SBC (base)")
	assert.Contains(t, out, "2026-08-25 14:03")
}

func TestInstructions_TableBoth(t *testing.T) {
	wire := &api.WireInstructions{BankName: "First Bank", AccountNumber: "123", RoutingNumber: "021000021"}
	ach := &api.ACHInstructions{AccountNumber: "456", RoutingNumber: "021000021", AccountName: "Brale"}

	var buf bytes.Buffer
	require.NoError(t, Instructions(&buf, wire, ach, FormatTable))

	out := buf.String()
	assert.Contains(t, out, "Wire Instructions")
	assert.Contains(t, out, "First Bank")
	assert.Contains(t, out, "ACH Instructions")
	assert.Contains(t, out, "Brale")
}

func TestInstructions_None(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Instructions(&buf, nil, nil, FormatTable))
	assert.Contains(t, buf.String(), "No payment instructions available")
}

func TestInstructions_NoneBeatsStructuredFormats(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatYAML} {
		var buf bytes.Buffer
		require.NoError(t, Instructions(&buf, nil, nil, f))
		assert.Contains(t, buf.String(), "No payment instructions available")
		assert.NotContains(t, buf.String(), "{}")
	}
}

func TestInstructions_JSONOmitsMissing(t *testing.T) {
	wire := &api.WireInstructions{BankName: "First Bank"}

	var buf bytes.Buffer
	require.NoError(t, Instructions(&buf, wire, nil, FormatJSON))

	out := buf.String()
	assert.Contains(t, out, "wire_instructions")
	assert.NotContains(t, out, "ach_instructions")
}

func TestNetworks_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Networks(&buf, networks.List(), FormatTable))

	out := buf.String()
	assert.Contains(t, out, "Base Mainnet")
	assert.Contains(t, out, "(testnet)")
}

func TestSettings_OrderPreservedInTable(t *testing.T) {
	pairs := []KV{
		{"default_account", "acc-1"},
		{"api_base_url", "https://api.brale.xyz"},
	}

	var buf bytes.Buffer
	require.NoError(t, Settings(&buf, pairs, FormatTable))

	out := buf.String()
	assert.Less(t, strings.Index(out, "default_account"), strings.Index(out, "api_base_url"))
}

func TestTruncateAndShorten(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklm", 10))
	assert.Equal(t, "short", shortenMiddle("short", 25))

	long := "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B"
	assert.Equal(t, "0xAb5801a7...B3259aeC9B", shortenMiddle(long, 25))
}
