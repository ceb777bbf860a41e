package gateway

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHTTPClient struct {
	responses []*http.Response
	errs      []error
	calls     int
	requests  []*http.Request
}

func (s *stubHTTPClient) Do(req *http.Request) (*http.Response, error) {
	idx := s.calls
	s.calls++
	s.requests = append(s.requests, req)
	if idx < len(s.errs) && s.errs[idx] != nil {
		return nil, s.errs[idx]
	}
	if idx < len(s.responses) {
		return s.responses[idx], nil
	}
	return nil, errors.New("no stubbed response")
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func candidateBody(text string) string {
	return `{"candidates":[{"content":{"parts":[{"text":"` + text + `"}]}}]}`
}

func TestGenerateWithoutAPIKey(t *testing.T) {
	client := &stubHTTPClient{}
	g := NewGemini("", "gemini-2.0-flash", client, zerolog.Nop())

	_, err := g.Generate(context.Background(), "", "hi")
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Zero(t, client.calls, "no request should go out without a credential")
}

func TestGenerateReturnsCandidateText(t *testing.T) {
	client := &stubHTTPClient{
		responses: []*http.Response{jsonResponse(http.StatusOK, candidateBody("hello from the model"))},
	}
	g := NewGemini("key", "gemini-2.0-flash", client, zerolog.Nop())

	text, err := g.Generate(context.Background(), "system", "user")
	require.NoError(t, err)
	assert.Equal(t, "hello from the model", text)
	assert.Equal(t, 1, client.calls)
}

func TestGenerateStripsCodeFences(t *testing.T) {
	client := &stubHTTPClient{
		responses: []*http.Response{jsonResponse(http.StatusOK, candidateBody("```json\\nMilk|3.50\\n```"))},
	}
	g := NewGemini("key", "gemini-2.0-flash", client, zerolog.Nop())

	text, err := g.Generate(context.Background(), "", "list")
	require.NoError(t, err)
	assert.Equal(t, "Milk|3.50", text)
}

func TestGenerateRetriesOnceThenSucceeds(t *testing.T) {
	client := &stubHTTPClient{
		errs:      []error{errors.New("connection reset"), nil},
		responses: []*http.Response{nil, jsonResponse(http.StatusOK, candidateBody("second try"))},
	}
	g := NewGemini("key", "gemini-2.0-flash", client, zerolog.Nop())

	text, err := g.Generate(context.Background(), "", "hi")
	require.NoError(t, err)
	assert.Equal(t, "second try", text)
	assert.Equal(t, 2, client.calls)
}

func TestGenerateExhaustedRetriesReturnsCallError(t *testing.T) {
	client := &stubHTTPClient{
		errs: []error{errors.New("down"), errors.New("down")},
	}
	g := NewGemini("key", "gemini-2.0-flash", client, zerolog.Nop())

	_, err := g.Generate(context.Background(), "", "hi")
	require.Error(t, err)

	var callErr *CallError
	require.ErrorAs(t, err, &callErr)
	assert.Equal(t, "generate", callErr.Op)
	assert.NotErrorIs(t, err, ErrNotConfigured)
	assert.Equal(t, 2, client.calls)
}

func TestGenerateNon200IsCallError(t *testing.T) {
	client := &stubHTTPClient{
		responses: []*http.Response{
			jsonResponse(http.StatusTooManyRequests, `{"error":"quota"}`),
			jsonResponse(http.StatusTooManyRequests, `{"error":"quota"}`),
		},
	}
	g := NewGemini("key", "gemini-2.0-flash", client, zerolog.Nop())

	_, err := g.Generate(context.Background(), "", "hi")
	var callErr *CallError
	require.ErrorAs(t, err, &callErr)
}

func TestGenerateCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := &stubHTTPClient{}
	g := NewGemini("key", "gemini-2.0-flash", client, zerolog.Nop())

	_, err := g.Generate(ctx, "", "hi")
	var callErr *CallError
	require.ErrorAs(t, err, &callErr)
	assert.ErrorIs(t, callErr.Err, context.Canceled)
}
