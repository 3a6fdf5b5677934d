// Package networks provides metadata and address validation for the
// transfer networks Brale can mint to.
package networks

import "strings"

// Family groups networks that share an address format.
type Family string

const (
	FamilyEVM    Family = "evm"
	FamilySolana Family = "solana"
)

// Info contains metadata for a known transfer network.
type Info struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Family    Family `json:"family"`
	IsTestnet bool   `json:"isTestnet"`
}

// registry lists the networks in display order: mainnets grouped by
// family, then testnets.
var registry = []Info{
	{ID: "ethereum", Name: "Ethereum Mainnet", Family: FamilyEVM},
	{ID: "base", Name: "Base Mainnet", Family: FamilyEVM},
	{ID: "polygon", Name: "Polygon Mainnet", Family: FamilyEVM},
	{ID: "optimism", Name: "Optimism", Family: FamilyEVM},
	{ID: "arbitrum", Name: "Arbitrum One", Family: FamilyEVM},
	{ID: "avalanche", Name: "Avalanche C-Chain", Family: FamilyEVM},
	{ID: "celo", Name: "Celo", Family: FamilyEVM},
	{ID: "solana", Name: "Solana Mainnet", Family: FamilySolana},
	{ID: "sepolia", Name: "Ethereum Sepolia", Family: FamilyEVM, IsTestnet: true},
	{ID: "base-sepolia", Name: "Base Sepolia", Family: FamilyEVM, IsTestnet: true},
	{ID: "solana-devnet", Name: "Solana Devnet", Family: FamilySolana, IsTestnet: true},
}

// aliases maps alternate spellings to canonical registry IDs.
var aliases = map[string]string{
	"mainnet":      "ethereum",
	"eth":          "ethereum",
	"matic":        "polygon",
	"basesepolia":  "base-sepolia",
	"base_sepolia": "base-sepolia",
	"mainnet-beta": "solana",
	"devnet":       "solana-devnet",
}

// Lookup returns metadata for a network ID, case-insensitive, resolving
// aliases. Returns nil for unknown networks.
func Lookup(id string) *Info {
	key := strings.ToLower(strings.TrimSpace(id))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	for i := range registry {
		if registry[i].ID == key {
			return &registry[i]
		}
	}
	return nil
}

// Name returns a human-readable network name, falling back to the raw
// identifier for unknown networks.
func Name(id string) string {
	if info := Lookup(id); info != nil {
		return info.Name
	}
	return id
}

// IsTestnet reports whether the network is a known testnet.
func IsTestnet(id string) bool {
	if info := Lookup(id); info != nil {
		return info.IsTestnet
	}
	return false
}

// List returns all known networks in display order.
func List() []Info {
	out := make([]Info, len(registry))
	copy(out, registry)
	return out
}
