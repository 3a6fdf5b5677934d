package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brale-xyz/brale-cli/internal/auth"
)

var testCred = auth.Credential{ClientID: "id", ClientSecret: "secret"}

// newAuthServer serves the token endpoint, issuing t1, t2, ... on each
// exchange.
func newAuthServer(calls *int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"access_token":"t%d","token_type":"bearer","expires_in":3600}`, *calls)
	}))
}

func TestDo_AttachesBearerToken(t *testing.T) {
	var authCalls int
	authSrv := newAuthServer(&authCalls)
	defer authSrv.Close()

	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer t1", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"accounts":["acc-1"]}`)
	}))
	defer apiSrv.Close()

	mgr := auth.NewManager(authSrv.URL)
	mgr.Restore(nil, testCred)
	c := New(apiSrv.URL, mgr)

	resp, err := c.Do(context.Background(), http.MethodGet, "/accounts", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"accounts":["acc-1"]}`, string(resp.Body))
}

func TestDo_NotAuthenticated(t *testing.T) {
	mgr := auth.NewManager("http://unused") // no credential
	c := New("http://unused", mgr)

	_, err := c.Do(context.Background(), http.MethodGet, "/accounts", nil, nil)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestDo_RetriesOnceOn401(t *testing.T) {
	var authCalls int
	authSrv := newAuthServer(&authCalls)
	defer authSrv.Close()

	var apiCalls int
	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiCalls++
		// t1 is stale from the server's point of view; t2 works.
		if r.Header.Get("Authorization") != "Bearer t2" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, `{"accounts":[]}`)
	}))
	defer apiSrv.Close()

	mgr := auth.NewManager(authSrv.URL)
	mgr.Restore(nil, testCred)
	c := New(apiSrv.URL, mgr)

	resp, err := c.Do(context.Background(), http.MethodGet, "/accounts", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, apiCalls, "exactly one retry")
	assert.Equal(t, 2, authCalls, "initial exchange plus one forced refresh")
}

func TestDo_Second401ReturnedWithoutThirdAttempt(t *testing.T) {
	var authCalls int
	authSrv := newAuthServer(&authCalls)
	defer authSrv.Close()

	var apiCalls int
	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiCalls++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer apiSrv.Close()

	mgr := auth.NewManager(authSrv.URL)
	mgr.Restore(nil, testCred)
	c := New(apiSrv.URL, mgr)

	resp, err := c.Do(context.Background(), http.MethodGet, "/accounts", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 2, apiCalls, "second 401 returns to the caller, no third attempt")
}

func TestDo_RefreshFailureReturnsOriginal401(t *testing.T) {
	var authCalls int
	authSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authCalls++
		if authCalls == 1 {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"access_token":"t1","token_type":"bearer","expires_in":3600}`)
			return
		}
		w.WriteHeader(http.StatusForbidden)
	}))
	defer authSrv.Close()

	var apiCalls int
	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiCalls++
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, "token expired")
	}))
	defer apiSrv.Close()

	mgr := auth.NewManager(authSrv.URL)
	mgr.Restore(nil, testCred)
	c := New(apiSrv.URL, mgr)

	resp, err := c.Do(context.Background(), http.MethodGet, "/accounts", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "token expired", string(resp.Body))
	assert.Equal(t, 1, apiCalls)
}

func TestDo_Non401PassesThrough(t *testing.T) {
	var authCalls int
	authSrv := newAuthServer(&authCalls)
	defer authSrv.Close()

	var apiCalls int
	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiCalls++
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, "upstream down")
	}))
	defer apiSrv.Close()

	mgr := auth.NewManager(authSrv.URL)
	mgr.Restore(nil, testCred)
	c := New(apiSrv.URL, mgr)

	resp, err := c.Do(context.Background(), http.MethodGet, "/accounts", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "upstream down", string(resp.Body))
	assert.Equal(t, 1, apiCalls, "non-401 statuses are never retried")
	assert.Equal(t, 1, authCalls)
}

func TestDo_RetryResendsIdenticalRequest(t *testing.T) {
	var authCalls int
	authSrv := newAuthServer(&authCalls)
	defer authSrv.Close()

	var keys []string
	var bodies []string
	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		keys = append(keys, r.Header.Get("Idempotency-Key"))
		buf, _ := io.ReadAll(r.Body)
		bodies = append(bodies, string(buf))
		if r.Header.Get("Authorization") != "Bearer t2" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id":"tr-1","status":"pending"}`)
	}))
	defer apiSrv.Close()

	mgr := auth.NewManager(authSrv.URL)
	mgr.Restore(nil, testCred)
	c := New(apiSrv.URL, mgr)

	body := []byte(`{"amount":{"value":"10","currency":"USD"}}`)
	headers := map[string]string{"Idempotency-Key": "key-123"}
	resp, err := c.Do(context.Background(), http.MethodPost, "/accounts/a/transfers", body, headers)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Len(t, keys, 2)
	assert.Equal(t, keys[0], keys[1], "idempotency key must be identical on the retry")
	assert.Equal(t, bodies[0], bodies[1])
}

func TestResources_APIErrorOnNon2xx(t *testing.T) {
	var authCalls int
	authSrv := newAuthServer(&authCalls)
	defer authSrv.Close()

	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error":"no such account"}`)
	}))
	defer apiSrv.Close()

	mgr := auth.NewManager(authSrv.URL)
	mgr.Restore(nil, testCred)
	c := New(apiSrv.URL, mgr)

	_, err := c.ListAddresses(context.Background(), "missing")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Contains(t, apiErr.Body, "no such account")
}

func TestResources_Paths(t *testing.T) {
	var authCalls int
	authSrv := newAuthServer(&authCalls)
	defer authSrv.Close()

	var gotPath, gotMethod string
	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{}`)
	}))
	defer apiSrv.Close()

	mgr := auth.NewManager(authSrv.URL)
	mgr.Restore(nil, testCred)
	c := New(apiSrv.URL, mgr)
	ctx := context.Background()

	tests := []struct {
		name   string
		call   func() error
		method string
		path   string
	}{
		{"accounts", func() error { _, err := c.ListAccounts(ctx); return err }, "GET", "/accounts"},
		{"addresses", func() error { _, err := c.ListAddresses(ctx, "a1"); return err }, "GET", "/accounts/a1/addresses"},
		{"transfers list", func() error { _, err := c.ListTransfers(ctx, "a1"); return err }, "GET", "/accounts/a1/transfers"},
		{"transfer get", func() error { _, err := c.GetTransfer(ctx, "a1", "t1"); return err }, "GET", "/accounts/a1/transfers/t1"},
		{"automations list", func() error { _, err := c.ListAutomations(ctx, "a1"); return err }, "GET", "/accounts/a1/automations"},
		{"automation get", func() error { _, err := c.GetAutomation(ctx, "a1", "au1"); return err }, "GET", "/accounts/a1/automations/au1"},
		{"transfer create", func() error {
			_, err := c.CreateTransfer(ctx, "a1", TransferRequest{}, "k")
			return err
		}, "POST", "/accounts/a1/transfers"},
		{"automation create", func() error {
			_, err := c.CreateAutomation(ctx, "a1", AutomationRequest{}, "k")
			return err
		}, "POST", "/accounts/a1/automations"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.call())
			assert.Equal(t, tt.method, gotMethod)
			assert.Equal(t, tt.path, gotPath)
		})
	}
}

func TestNew_Options(t *testing.T) {
	mgr := auth.NewManager("http://unused")
	c := New("http://unused", mgr, WithTimeout(5*time.Second))
	assert.Equal(t, 5*time.Second, c.httpClient.Timeout)
}
