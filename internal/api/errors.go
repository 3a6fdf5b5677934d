package api

import (
	"fmt"
	"strings"
)

// APIError is a non-2xx response from a resource endpoint (other than
// the 401 handled by the retry cycle). Never retried.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: HTTP %d: %s", e.Status, e.Body)
}

// NoCompatibleAddressError is a local validation failure raised before
// any mutating request is sent: no active address supports the requested
// network.
type NoCompatibleAddressError struct {
	Requested string   // empty means auto-select
	Available []string // union of active addresses' networks, sorted
}

func (e *NoCompatibleAddressError) Error() string {
	requested := e.Requested
	if requested == "" {
		requested = "auto"
	}
	return fmt.Sprintf("no compatible address found for network %q (available: %s)",
		requested, strings.Join(e.Available, ", "))
}
