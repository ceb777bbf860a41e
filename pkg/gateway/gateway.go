package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Provider is the single outbound generative-text capability. Components
// treat it as optional: every caller owns a deterministic fallback, so a
// failing Generate never reaches the end user as an error.
type Provider interface {
	Generate(ctx context.Context, systemContext, userMessage string) (string, error)
}

// HTTPClient lets tests stub the transport.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// ErrNotConfigured is returned when no provider credential was present at
// startup. Callers distinguish it from CallError: the budget list generator
// returns fixed defaults for an unconfigured provider but an empty list for
// a failed call.
var ErrNotConfigured = errors.New("generative provider not configured")

// CallError wraps any failure of an attempted provider call: transport,
// auth, quota, or a malformed response body.
type CallError struct {
	Op  string
	Err error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("provider call failed during %s: %v", e.Op, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}
