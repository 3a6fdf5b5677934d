package commands

import (
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brale-xyz/brale-cli/internal/config"
	"github.com/brale-xyz/brale-cli/internal/networks"
)

func TestRunNetworks_HonorsConfiguredOutput(t *testing.T) {
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvOutput, "")

	cfg := config.Defaults()
	cfg.DefaultOutput = "json"
	require.NoError(t, config.Save(cfg, config.Path(home)))

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	runErr := runNetworks(networksCmd, nil)

	require.NoError(t, w.Close())
	os.Stdout = old
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	require.NoError(t, runErr)

	// default_output: json means the command emits the JSON envelope,
	// not the table heading.
	var envelope map[string][]networks.Info
	require.NoError(t, json.Unmarshal(data, &envelope))
	assert.NotEmpty(t, envelope["networks"])
}
