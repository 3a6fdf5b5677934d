package config

import (
	"os"
	"strings"

	"github.com/brale-xyz/brale-cli/internal/auth"
)

// Environment variable names.
const (
	EnvClientID = "BRALE_CLIENT_ID"
	EnvSecret   = "BRALE_SECRET" // #nosec G101 -- variable name, not a credential
	EnvAPIURL   = "BRALE_API_URL"
	EnvAuthURL  = "BRALE_AUTH_URL"
	EnvOutput   = "BRALE_OUTPUT"
	EnvHome     = "BRALE_HOME"
)

// ApplyEnvironment applies environment variable overrides to cfg.
func ApplyEnvironment(cfg *Config) {
	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.APIBaseURL = strings.TrimRight(v, "/")
	}
	if v := os.Getenv(EnvAuthURL); v != "" {
		cfg.AuthBaseURL = strings.TrimRight(v, "/")
	}
	if v := os.Getenv(EnvOutput); v != "" {
		cfg.DefaultOutput = strings.ToLower(v)
	}
}

// HomeDir returns the brale home directory, honoring BRALE_HOME.
func HomeDir() string {
	if v := os.Getenv(EnvHome); v != "" {
		return v
	}
	return DefaultHome()
}

// ResolveCredential returns the client credential, environment variables
// taking precedence over the persisted file.
func ResolveCredential(creds *Credentials) auth.Credential {
	cred := creds.Credential()
	if v := os.Getenv(EnvClientID); v != "" {
		cred.ClientID = v
	}
	if v := os.Getenv(EnvSecret); v != "" {
		cred.ClientSecret = v
	}
	return cred
}
