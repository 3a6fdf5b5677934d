package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brale-xyz/brale-cli/internal/config"
	"github.com/brale-xyz/brale-cli/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and change CLI settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and persist it to config.yaml.

Keys: ` + strings.Join(config.Keys(), ", "),
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}

	authenticated := "false"
	if s.creds.Token() != nil {
		authenticated = "true"
	}

	pairs := []output.KV{
		{Key: "default_account", Value: s.cfg.DefaultAccount},
		{Key: "default_output", Value: s.cfg.DefaultOutput},
		{Key: "api_base_url", Value: s.cfg.APIBaseURL},
		{Key: "auth_base_url", Value: s.cfg.AuthBaseURL},
		{Key: "timeout_seconds", Value: fmt.Sprintf("%d", s.cfg.TimeoutSeconds)},
		{Key: "authenticated", Value: authenticated},
	}
	return output.Settings(os.Stdout, pairs, s.format)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}

	value, err := s.cfg.Get(args[0])
	if err != nil {
		return err
	}
	fmt.Println(value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	if key == "default_output" {
		if _, err := output.ParseFormat(value); err != nil {
			return err
		}
		value = strings.ToLower(strings.TrimSpace(value))
	}
	if err := s.cfg.Set(key, value); err != nil {
		return err
	}
	if err := s.saveConfig(); err != nil {
		return err
	}
	output.PrintInfo(fmt.Sprintf("%s = %s", key, value))
	return nil
}
