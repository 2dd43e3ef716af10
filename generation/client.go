// Package generation talks to a local Ollama server and shapes its
// output into flashcards and chat answers.
package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Generator is the capability the gateway needs from a language-model
// service: prompt in, completion out. Tests substitute a double.
type Generator interface {
	Generate(ctx context.Context, prompt string, wantJSON bool) (string, error)
}

// Client calls the Ollama generate API over HTTP.
type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewClient(baseURL, model string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		httpClient: &http.Client{},
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
	Format string `json:"format,omitempty"`
}

// Generate calls POST /api/generate and returns the completion text.
// When wantJSON is set the model is constrained to emit valid JSON.
// The call blocks until the model finishes; there is no streaming and
// no retry.
func (c *Client) Generate(ctx context.Context, prompt string, wantJSON bool) (string, error) {
	payload := generateRequest{Model: c.model, Prompt: prompt}
	if wantJSON {
		payload.Format = "json"
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("ollama /api/generate: encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("ollama /api/generate: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama /api/generate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("ollama /api/generate returned %d: %s", resp.StatusCode, string(b))
	}

	var result struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("ollama /api/generate: decode: %w", err)
	}
	return result.Response, nil
}
