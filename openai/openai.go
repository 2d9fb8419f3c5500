// Package openai implements [mrm.Completer] for OpenAI-compatible chat
// completion APIs.
//
// One call, one reply: the client POSTs the full turn history to
// {endpoint}/chat/completions and returns choices[0].message.content.
// There is no streaming, no retry, and no timeout beyond the caller's
// context and the HTTP client's defaults.
package openai

import "fmt"

const (
	completionsPath    = "/chat/completions"
	defaultTemperature = 0.9
	defaultMaxTokens   = 512
)

// apiRequest is the JSON body sent to the chat completions endpoint.
type apiRequest struct {
	Model       string       `json:"model"`
	Messages    []apiMessage `json:"messages"`
	Temperature float64      `json:"temperature"`
	MaxTokens   int          `json:"max_tokens"`
}

// apiMessage is one {role, content} pair on the wire.
type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// apiResponse is the subset of the reply the client consumes.
type apiResponse struct {
	Choices []apiChoice `json:"choices"`
}

type apiChoice struct {
	Message apiResponseMessage `json:"message"`
}

type apiResponseMessage struct {
	Content string `json:"content"`
}

// StatusError is returned when the API answers with a non-200 status.
// Body holds the raw response body, which servers typically fill with a
// human-readable explanation.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("API error %d", e.Code)
	}
	return fmt.Sprintf("API error %d: %s", e.Code, e.Body)
}
