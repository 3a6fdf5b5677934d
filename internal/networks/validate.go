package networks

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

// ValidateAddress checks that addr has the right shape for the given
// network's address family. For networks not in the registry the check
// degrades to accepting either format; an error there means the string
// parses as neither.
func ValidateAddress(network, addr string) error {
	if addr == "" {
		return fmt.Errorf("empty address")
	}

	info := Lookup(network)
	if info == nil {
		if common.IsHexAddress(addr) || isBase58(addr) {
			return nil
		}
		return fmt.Errorf("%q is neither a hex nor a base58 address", addr)
	}

	switch info.Family {
	case FamilyEVM:
		if !common.IsHexAddress(addr) {
			return fmt.Errorf("%q is not a valid EVM address for %s", addr, info.Name)
		}
	case FamilySolana:
		if _, err := solana.PublicKeyFromBase58(addr); err != nil {
			return fmt.Errorf("%q is not a valid Solana address for %s: %w", addr, info.Name, err)
		}
	}
	return nil
}

// isBase58 reports whether s decodes as non-empty base58.
func isBase58(s string) bool {
	raw, err := base58.Decode(s)
	return err == nil && len(raw) > 0
}
