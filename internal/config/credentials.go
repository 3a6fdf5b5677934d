package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/brale-xyz/brale-cli/internal/auth"
)

// Credentials is the content of credentials.json: the client secret pair
// plus the cached bearer token. The file is written 0600.
type Credentials struct {
	ClientID       string `json:"client_id,omitempty"`
	ClientSecret   string `json:"client_secret,omitempty"`
	AccessToken    string `json:"access_token,omitempty"`
	TokenExpiresAt int64  `json:"token_expires_at,omitempty"`
}

// Credential returns the client credential pair.
func (c *Credentials) Credential() auth.Credential {
	return auth.Credential{ClientID: c.ClientID, ClientSecret: c.ClientSecret}
}

// Token returns the cached token, or nil if none is stored.
func (c *Credentials) Token() *auth.Token {
	if c.AccessToken == "" {
		return nil
	}
	return &auth.Token{
		AccessToken: c.AccessToken,
		ExpiresAt:   time.Unix(c.TokenExpiresAt, 0),
	}
}

// CredentialsFile persists Credentials with restricted permissions. It
// implements auth.Store so the token manager writes refreshed tokens
// back automatically.
type CredentialsFile struct {
	path string
}

// NewCredentialsFile creates a store backed by path.
func NewCredentialsFile(path string) *CredentialsFile {
	return &CredentialsFile{path: path}
}

// Load reads the credentials. A missing file yields empty credentials.
func (f *CredentialsFile) Load() (*Credentials, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return &Credentials{}, nil
	}
	if err != nil {
		return nil, err
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", f.path, err)
	}
	return &creds, nil
}

// Save writes the credentials with 0600 permissions.
func (f *CredentialsFile) Save(creds *Credentials) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o600)
}

// SaveCredential stores the client credential pair, keeping any token.
func (f *CredentialsFile) SaveCredential(cred auth.Credential) error {
	creds, err := f.Load()
	if err != nil {
		return err
	}
	creds.ClientID = cred.ClientID
	creds.ClientSecret = cred.ClientSecret
	return f.Save(creds)
}

// SaveToken stores a refreshed token, keeping the credential pair.
func (f *CredentialsFile) SaveToken(tok auth.Token) error {
	creds, err := f.Load()
	if err != nil {
		return err
	}
	creds.AccessToken = tok.AccessToken
	creds.TokenExpiresAt = tok.ExpiresAt.Unix()
	return f.Save(creds)
}

// ClearToken removes the cached token, keeping the credential pair so
// the next login can re-authenticate without re-entry.
func (f *CredentialsFile) ClearToken() error {
	creds, err := f.Load()
	if err != nil {
		return err
	}
	creds.AccessToken = ""
	creds.TokenExpiresAt = 0
	return f.Save(creds)
}

// Path returns the credentials file path.
func (f *CredentialsFile) Path() string {
	return f.path
}
