package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/skorotkiewicz/mrm"
)

// Interface compliance check.
var _ mrm.Completer = (*Client)(nil)

// Client implements [mrm.Completer] against an OpenAI-compatible endpoint.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// Option configures a [Client].
type Option func(*Client)

// WithAPIKey sets the bearer token sent in the Authorization header.
// Without it the header is omitted entirely.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New creates a [Client] for the given base endpoint, e.g.
// "http://ml:8888/v1". A trailing slash on the endpoint is tolerated.
func New(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint:   strings.TrimRight(endpoint, "/"),
		httpClient: http.DefaultClient,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Complete sends the full turn history to the chat completions endpoint and
// returns the first choice's message content. Failure modes:
//
//   - network failure: wrapped transport error
//   - non-200 status: [*StatusError]
//   - unparseable body: wrapped decode error
//   - zero choices: [mrm.ErrNoChoices]
func (c *Client) Complete(ctx context.Context, req mrm.Request) (string, error) {
	body, err := json.Marshal(buildRequest(req))
	if err != nil {
		return "", fmt.Errorf("openai: encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+completionsPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("openai: connection failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("openai: %w", &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(raw))})
	}

	var parsed apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("openai: decode reply: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("openai: %w", mrm.ErrNoChoices)
	}
	return parsed.Choices[0].Message.Content, nil
}

func buildRequest(req mrm.Request) apiRequest {
	temperature := defaultTemperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}

	messages := make([]apiMessage, 0, len(req.Turns))
	for _, t := range req.Turns {
		messages = append(messages, apiMessage{Role: string(t.Role), Content: t.Content})
	}

	return apiRequest{
		Model:       req.Model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
}
