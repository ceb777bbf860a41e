package insight

import (
	"context"
	"errors"

	"nourish-backend/pkg/gateway"

	"github.com/rs/zerolog"
)

// stubProvider records calls and returns a canned reply or error.
type stubProvider struct {
	reply string
	err   error
	calls int
}

func (s *stubProvider) Generate(_ context.Context, _, _ string) (string, error) {
	s.calls++
	return s.reply, s.err
}

func notConfiguredProvider() *stubProvider {
	return &stubProvider{err: gateway.ErrNotConfigured}
}

func failingProvider() *stubProvider {
	return &stubProvider{err: &gateway.CallError{Op: "generate", Err: errors.New("boom")}}
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}
