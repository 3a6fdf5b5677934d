package commands

import (
	"errors"
	"net/http"
	"time"

	"github.com/brale-xyz/brale-cli/internal/api"
	"github.com/brale-xyz/brale-cli/internal/auth"
	"github.com/brale-xyz/brale-cli/internal/config"
	"github.com/brale-xyz/brale-cli/internal/output"
)

// session wires together the pieces every command needs: persisted
// config and credentials, the token manager, and the API client. It is
// built per invocation; nothing network-facing happens until a command
// calls the API.
type session struct {
	home      string
	cfg       *config.Config
	creds     *config.Credentials
	credsFile *config.CredentialsFile
	auth      *auth.Manager
	api       *api.Client
	format    output.Format
}

// newSession loads config and credentials and builds an authenticated
// API client seeded from persisted state.
func newSession() (*session, error) {
	home := config.HomeDir()

	cfg, err := config.Load(config.Path(home))
	if err != nil {
		return nil, err
	}
	config.ApplyEnvironment(cfg)

	credsFile := config.NewCredentialsFile(config.CredentialsPath(home))
	creds, err := credsFile.Load()
	if err != nil {
		return nil, err
	}

	format, err := resolveFormat(outputFlag, cfg.DefaultOutput)
	if err != nil {
		return nil, err
	}

	timeout := resolveTimeout(timeoutFlag, cfg.TimeoutSeconds)

	mgr := auth.NewManager(cfg.AuthBaseURL+"/oauth2/token",
		auth.WithStore(credsFile),
		auth.WithHTTPClient(&http.Client{Timeout: timeout}),
	)
	mgr.Restore(creds.Token(), config.ResolveCredential(creds))

	client := api.New(cfg.APIBaseURL, mgr, api.WithTimeout(timeout))

	return &session{
		home:      home,
		cfg:       cfg,
		creds:     creds,
		credsFile: credsFile,
		auth:      mgr,
		api:       client,
		format:    format,
	}, nil
}

// account resolves the account to operate on: the --account flag wins,
// then the configured default.
func (s *session) account() (string, error) {
	return resolveAccount(accountFlag, s.cfg.DefaultAccount)
}

// saveConfig persists the session's config back to disk.
func (s *session) saveConfig() error {
	return config.Save(s.cfg, config.Path(s.home))
}

func resolveAccount(flagValue, configuredDefault string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if configuredDefault != "" {
		return configuredDefault, nil
	}
	return "", errors.New("no account specified: pass --account <id> or run 'brale config set default_account <id>'")
}

func resolveFormat(flagValue, configuredDefault string) (output.Format, error) {
	if flagValue != "" {
		return output.ParseFormat(flagValue)
	}
	return output.ParseFormat(configuredDefault)
}

func resolveTimeout(flagSeconds, configuredSeconds int) time.Duration {
	seconds := configuredSeconds
	if flagSeconds > 0 {
		seconds = flagSeconds
	}
	if seconds <= 0 {
		seconds = config.DefaultTimeout
	}
	return time.Duration(seconds) * time.Second
}
