// Package auth manages the OAuth2 client-credentials token lifecycle for
// the Brale API.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// defaultExpiry is assumed when the token endpoint omits expires_in.
const defaultExpiry = 3600 * time.Second

// ErrNoCredential indicates no client credential is available for a
// token exchange.
var ErrNoCredential = errors.New("client ID and secret are required")

// Credential holds an OAuth2 client-credentials pair.
type Credential struct {
	ClientID     string
	ClientSecret string
}

// Empty reports whether either half of the credential is missing.
func (c Credential) Empty() bool {
	return c.ClientID == "" || c.ClientSecret == ""
}

// Token is a bearer token with its absolute expiry.
type Token struct {
	AccessToken string
	ExpiresAt   time.Time
}

// AuthError is returned when the token endpoint rejects the exchange or
// the request fails at the transport level.
type AuthError struct {
	Status int    // HTTP status from the token endpoint, 0 on network failure
	Body   string // response body, if any
	Err    error
}

func (e *AuthError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("authentication failed: HTTP %d: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("authentication failed: %v", e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// Store persists tokens between runs. Save failures surface from
// Authenticate; the in-memory cache is updated regardless.
type Store interface {
	SaveToken(tok Token) error
	ClearToken() error
}

// Manager caches one bearer token per credential and re-authenticates
// when it expires. Safe for concurrent use.
type Manager struct {
	tokenURL   string
	httpClient *http.Client
	now        func() time.Time
	store      Store

	mu         sync.Mutex
	credential Credential
	token      *Token
}

// Option configures the Manager.
type Option func(*Manager)

// WithHTTPClient sets the HTTP client used for token requests.
func WithHTTPClient(c *http.Client) Option {
	return func(m *Manager) { m.httpClient = c }
}

// WithClock overrides the time source. Used by tests to simulate expiry.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithStore persists tokens through the given store after each
// successful exchange and on logout.
func WithStore(s Store) Option {
	return func(m *Manager) { m.store = s }
}

// NewManager creates a Manager that exchanges credentials at tokenURL.
func NewManager(tokenURL string, opts ...Option) *Manager {
	m := &Manager{
		tokenURL:   tokenURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Restore seeds the cache from persisted state. An expired token is
// still accepted; Valid evicts it on first use.
func (m *Manager) Restore(tok *Token, cred Credential) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if tok != nil && tok.AccessToken != "" {
		t := *tok
		m.token = &t
	}
	m.credential = cred
}

// Authenticate performs the OAuth2 client-credentials exchange: an HTTP
// POST with Basic auth built from the credential and form body
// grant_type=client_credentials. On success the token and credential are
// cached so later refreshes need no caller input.
func (m *Manager) Authenticate(ctx context.Context, cred Credential) (*Token, error) {
	if cred.Empty() {
		return nil, ErrNoCredential
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.exchangeLocked(ctx, cred)
}

// exchangeLocked performs the token exchange and updates the cache. The
// lock is held across the network call so concurrent callers on a cold
// or expired cache never issue duplicate exchanges.
func (m *Manager) exchangeLocked(ctx context.Context, cred Credential) (*Token, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	conf := &clientcredentials.Config{
		ClientID:     cred.ClientID,
		ClientSecret: cred.ClientSecret,
		TokenURL:     m.tokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, m.httpClient)

	tok, err := conf.Token(ctx)
	if err != nil {
		var rErr *oauth2.RetrieveError
		if errors.As(err, &rErr) {
			return nil, &AuthError{Status: rErr.Response.StatusCode, Body: string(rErr.Body), Err: err}
		}
		return nil, &AuthError{Err: err}
	}

	expiresAt := tok.Expiry
	if expiresAt.IsZero() {
		expiresAt = m.now().Add(defaultExpiry)
	}
	t := &Token{AccessToken: tok.AccessToken, ExpiresAt: expiresAt}

	m.token = t
	m.credential = cred

	if m.store != nil {
		if err := m.store.SaveToken(*t); err != nil {
			return nil, fmt.Errorf("saving token: %w", err)
		}
	}

	out := *t
	return &out, nil
}

// Valid reports whether a usable token is cached. An expired token is
// evicted as a side effect.
func (m *Manager) Valid() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.validLocked()
}

func (m *Manager) validLocked() bool {
	if m.token == nil {
		return false
	}
	if !m.now().Before(m.token.ExpiresAt) {
		m.token = nil
		return false
	}
	return true
}

// Token returns a valid bearer token, best effort. A cache hit issues no
// network call. On a miss it attempts one silent exchange with the stored
// credential; failure of any kind degrades to (nil, false) so callers can
// decide how to handle the unauthenticated state. The expiry check and
// the exchange run under one lock, so concurrent callers racing on a
// miss share a single exchange.
func (m *Manager) Token(ctx context.Context) (*Token, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.validLocked() {
		t := *m.token
		return &t, true
	}
	if m.credential.Empty() {
		return nil, false
	}

	tok, err := m.exchangeLocked(ctx, m.credential)
	if err != nil {
		return nil, false
	}
	return tok, true
}

// ForceRefresh discards any cached token and performs a fresh exchange
// with the credential captured in memory.
func (m *Manager) ForceRefresh(ctx context.Context) (*Token, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = nil
	if m.credential.Empty() {
		return nil, ErrNoCredential
	}
	return m.exchangeLocked(ctx, m.credential)
}

// Logout clears the cached token. The credential is retained so the next
// Token call can silently re-authenticate.
func (m *Manager) Logout() error {
	m.mu.Lock()
	m.token = nil
	m.mu.Unlock()

	if m.store != nil {
		if err := m.store.ClearToken(); err != nil {
			return fmt.Errorf("clearing stored token: %w", err)
		}
	}
	return nil
}
