package networks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	info := Lookup("base")
	require.NotNil(t, info)
	assert.Equal(t, "Base Mainnet", info.Name)
	assert.Equal(t, FamilyEVM, info.Family)
	assert.False(t, info.IsTestnet)

	assert.Nil(t, Lookup("canton"))
}

func TestLookup_AliasesAndCase(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"ETH", "ethereum"},
		{"mainnet", "ethereum"},
		{"mainnet-beta", "solana"},
		{"basesepolia", "base-sepolia"},
		{" Base ", "base"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			info := Lookup(tt.id)
			require.NotNil(t, info)
			assert.Equal(t, tt.want, info.ID)
		})
	}
}

func TestName_FallsBackToRawID(t *testing.T) {
	assert.Equal(t, "Solana Mainnet", Name("solana"))
	assert.Equal(t, "canton", Name("canton"))
}

func TestIsTestnet(t *testing.T) {
	assert.True(t, IsTestnet("base-sepolia"))
	assert.True(t, IsTestnet("devnet"))
	assert.False(t, IsTestnet("base"))
	assert.False(t, IsTestnet("unknown"))
}

func TestList_MainnetsBeforeTestnets(t *testing.T) {
	entries := List()
	require.NotEmpty(t, entries)

	seenTestnet := false
	for _, e := range entries {
		if e.IsTestnet {
			seenTestnet = true
		} else {
			assert.False(t, seenTestnet, "mainnets must precede testnets")
		}
	}
}
