package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	geminiBaseURL  = "https://generativelanguage.googleapis.com/v1beta/models"
	attemptTimeout = 10 * time.Second
	maxAttempts    = 2
)

type (
	// Gemini implements Provider against the generateContent REST endpoint.
	// The credential is read once at construction; an empty key makes every
	// call return ErrNotConfigured for the lifetime of the process.
	Gemini struct {
		apiKey     string
		model      string
		httpClient HTTPClient
		log        zerolog.Logger
	}

	geminiRequest struct {
		SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
		Contents          []geminiContent `json:"contents"`
		GenerationConfig  geminiGenConfig `json:"generationConfig"`
	}

	geminiContent struct {
		Parts []geminiPart `json:"parts"`
	}

	geminiPart struct {
		Text string `json:"text"`
	}

	geminiGenConfig struct {
		Temperature float64 `json:"temperature"`
		TopP        float64 `json:"topP"`
		TopK        int     `json:"topK"`
	}

	geminiResponse struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
)

func NewGemini(apiKey, model string, httpClient HTTPClient, log zerolog.Logger) *Gemini {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: attemptTimeout}
	}
	return &Gemini{
		apiKey:     apiKey,
		model:      model,
		httpClient: httpClient,
		log:        log,
	}
}

// Generate sends one prompt and returns the first candidate's text, with
// markdown fences stripped. Each attempt is bounded; a single retry covers
// transient transport failures, after which the exhaustion surfaces as a
// CallError.
func (g *Gemini) Generate(ctx context.Context, systemContext, userMessage string) (string, error) {
	if g.apiKey == "" {
		return "", ErrNotConfigured
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if ctx.Err() != nil {
			return "", &CallError{Op: "generate", Err: ctx.Err()}
		}

		text, err := g.generateOnce(ctx, systemContext, userMessage)
		if err == nil {
			return text, nil
		}
		lastErr = err
		g.log.Warn().Err(err).Int("attempt", attempt+1).Msg("gemini call failed")
	}

	return "", &CallError{Op: "generate", Err: lastErr}
}

func (g *Gemini) generateOnce(ctx context.Context, systemContext, userMessage string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, attemptTimeout)
	defer cancel()

	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: userMessage}}},
		},
		GenerationConfig: geminiGenConfig{
			Temperature: 0.7,
			TopP:        0.8,
			TopK:        40,
		},
	}
	if systemContext != "" {
		reqBody.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: systemContext}}}
	}

	requestJSON, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", geminiBaseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var geminiResp geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", err
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	return stripFences(geminiResp.Candidates[0].Content.Parts[0].Text), nil
}

// stripFences removes a surrounding markdown code fence when the model
// wraps its answer in one.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
	}
	return strings.TrimSpace(text)
}
