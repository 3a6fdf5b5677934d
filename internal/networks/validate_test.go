package networks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	evmAddr    = "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B"
	solanaAddr = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
)

func TestValidateAddress_EVM(t *testing.T) {
	assert.NoError(t, ValidateAddress("base", evmAddr))
	assert.NoError(t, ValidateAddress("ethereum", evmAddr))
	assert.Error(t, ValidateAddress("base", solanaAddr))
	assert.Error(t, ValidateAddress("base", "0x123"))
}

func TestValidateAddress_Solana(t *testing.T) {
	assert.NoError(t, ValidateAddress("solana", solanaAddr))
	assert.Error(t, ValidateAddress("solana", evmAddr))
	assert.Error(t, ValidateAddress("solana-devnet", "not-base58-0OIl"))
}

func TestValidateAddress_UnknownNetwork(t *testing.T) {
	// Unknown networks accept either address shape.
	assert.NoError(t, ValidateAddress("canton", evmAddr))
	assert.NoError(t, ValidateAddress("canton", solanaAddr))
	assert.Error(t, ValidateAddress("canton", "!!!"))
}

func TestValidateAddress_Empty(t *testing.T) {
	assert.Error(t, ValidateAddress("base", ""))
}
