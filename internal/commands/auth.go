package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/brale-xyz/brale-cli/internal/auth"
	"github.com/brale-xyz/brale-cli/internal/config"
	"github.com/brale-xyz/brale-cli/internal/output"
)

var (
	loginClientID     string
	loginClientSecret string
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage API credentials",
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with a Brale API credential pair",
	Long: `Exchange a client ID and secret for a bearer token and persist both
under ` + "`~/.brale`" + ` (credentials.json, written 0600).

The credential pair can come from flags, the BRALE_CLIENT_ID and
BRALE_SECRET environment variables, a previous login, or an interactive
prompt, in that order.`,
	Args: cobra.NoArgs,
	RunE: runAuthLogin,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether a valid token is cached",
	Args:  cobra.NoArgs,
	RunE:  runAuthStatus,
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the cached token",
	Long: `Discard the cached bearer token. The stored credential pair is kept
so the next command can re-authenticate without re-entry.`,
	Args: cobra.NoArgs,
	RunE: runAuthLogout,
}

func init() {
	authLoginCmd.Flags().StringVar(&loginClientID, "client-id", "", "API client ID")
	authLoginCmd.Flags().StringVar(&loginClientSecret, "client-secret", "", "API client secret")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authLogoutCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthLogin(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}

	cred, err := loginCredential(s)
	if err != nil {
		return err
	}

	if _, err := s.auth.Authenticate(cmd.Context(), cred); err != nil {
		return err
	}
	if err := s.credsFile.SaveCredential(cred); err != nil {
		return err
	}
	output.PrintInfo("Authenticated.")

	// Best effort: confirm the token works and pick a default account
	// when the credential only has one.
	accounts, err := s.api.ListAccounts(cmd.Context())
	if err != nil {
		output.PrintWarning(fmt.Sprintf("token issued but account lookup failed: %v", err))
		return nil
	}
	output.PrintInfo(fmt.Sprintf("Found %d account(s).", len(accounts)))

	if len(accounts) == 1 && s.cfg.DefaultAccount == "" {
		s.cfg.DefaultAccount = accounts[0]
		if err := s.saveConfig(); err != nil {
			return err
		}
		output.PrintInfo(fmt.Sprintf("Default account set to %s.", accounts[0]))
	}
	return nil
}

// loginCredential assembles the credential pair from flags, environment,
// the persisted file, and finally an interactive prompt.
func loginCredential(s *session) (auth.Credential, error) {
	cred := auth.Credential{ClientID: loginClientID, ClientSecret: loginClientSecret}

	resolved := config.ResolveCredential(s.creds)
	if cred.ClientID == "" {
		cred.ClientID = resolved.ClientID
	}
	if cred.ClientSecret == "" {
		cred.ClientSecret = resolved.ClientSecret
	}
	if !cred.Empty() {
		return cred, nil
	}

	if !output.IsStdinTTY() {
		return auth.Credential{}, auth.ErrNoCredential
	}

	reader := bufio.NewReader(os.Stdin)
	if cred.ClientID == "" {
		fmt.Fprint(os.Stderr, "Client ID: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return auth.Credential{}, err
		}
		cred.ClientID = strings.TrimSpace(line)
	}
	if cred.ClientSecret == "" {
		fmt.Fprint(os.Stderr, "Client secret: ")
		secret, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return auth.Credential{}, err
		}
		cred.ClientSecret = strings.TrimSpace(string(secret))
	}

	if cred.Empty() {
		return auth.Credential{}, auth.ErrNoCredential
	}
	return cred, nil
}

func runAuthStatus(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}

	if !s.auth.Valid() {
		output.PrintInfo("Not authenticated. Run 'brale auth login'.")
		return nil
	}

	accounts, err := s.api.ListAccounts(cmd.Context())
	if err != nil {
		output.PrintWarning(fmt.Sprintf("token cached but API check failed: %v", err))
		return nil
	}
	fmt.Printf("Authenticated. %d account(s) accessible.\n", len(accounts))
	return nil
}

func runAuthLogout(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	if err := s.auth.Logout(); err != nil {
		return err
	}
	output.PrintInfo("Logged out.")
	return nil
}
