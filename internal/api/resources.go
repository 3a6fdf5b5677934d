package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// headerIdempotencyKey guards mutating POSTs against duplicate
// server-side effects when the 401 retry cycle resends them.
const headerIdempotencyKey = "Idempotency-Key"

// get issues a GET and decodes a 200 response into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	resp, err := c.Do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return &APIError{Status: resp.StatusCode, Body: string(resp.Body)}
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// post issues a JSON POST with the given idempotency key and decodes a
// 200/201 response into out.
func (c *Client) post(ctx context.Context, path string, body any, idempotencyKey string, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	headers := map[string]string{headerIdempotencyKey: idempotencyKey}
	resp, err := c.Do(ctx, http.MethodPost, path, data, headers)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return &APIError{Status: resp.StatusCode, Body: string(resp.Body)}
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// ListAccounts returns the account IDs the credential can access.
func (c *Client) ListAccounts(ctx context.Context) ([]string, error) {
	var list accountList
	if err := c.get(ctx, "/accounts", &list); err != nil {
		return nil, err
	}
	return list.Accounts, nil
}

// ListAddresses returns the custodial addresses of an account.
func (c *Client) ListAddresses(ctx context.Context, accountID string) ([]Address, error) {
	var list addressList
	if err := c.get(ctx, "/accounts/"+accountID+"/addresses", &list); err != nil {
		return nil, err
	}
	return list.Addresses, nil
}

// CreateTransfer creates a one-time transfer.
func (c *Client) CreateTransfer(ctx context.Context, accountID string, req TransferRequest, idempotencyKey string) (*Transfer, error) {
	var transfer Transfer
	if err := c.post(ctx, "/accounts/"+accountID+"/transfers", req, idempotencyKey, &transfer); err != nil {
		return nil, err
	}
	return &transfer, nil
}

// ListTransfers returns all transfers of an account.
func (c *Client) ListTransfers(ctx context.Context, accountID string) ([]Transfer, error) {
	var list transferList
	if err := c.get(ctx, "/accounts/"+accountID+"/transfers", &list); err != nil {
		return nil, err
	}
	return list.Transfers, nil
}

// GetTransfer returns a single transfer.
func (c *Client) GetTransfer(ctx context.Context, accountID, transferID string) (*Transfer, error) {
	var transfer Transfer
	if err := c.get(ctx, "/accounts/"+accountID+"/transfers/"+transferID, &transfer); err != nil {
		return nil, err
	}
	return &transfer, nil
}

// CreateAutomation creates a standing wire-to-stablecoin automation.
func (c *Client) CreateAutomation(ctx context.Context, accountID string, req AutomationRequest, idempotencyKey string) (*Automation, error) {
	var automation Automation
	if err := c.post(ctx, "/accounts/"+accountID+"/automations", req, idempotencyKey, &automation); err != nil {
		return nil, err
	}
	return &automation, nil
}

// ListAutomations returns all automations of an account.
func (c *Client) ListAutomations(ctx context.Context, accountID string) ([]Automation, error) {
	var list automationList
	if err := c.get(ctx, "/accounts/"+accountID+"/automations", &list); err != nil {
		return nil, err
	}
	return list.Automations, nil
}

// GetAutomation returns a single automation.
func (c *Client) GetAutomation(ctx context.Context, accountID, automationID string) (*Automation, error) {
	var automation Automation
	if err := c.get(ctx, "/accounts/"+accountID+"/automations/"+automationID, &automation); err != nil {
		return nil, err
	}
	return &automation, nil
}
