package mrm

import (
	"fmt"
	"net/url"
	"strings"
)

// Defaults for the CLI flags, matching the original deployment.
const (
	DefaultEndpoint = "http://ml:8888/v1"
	DefaultModel    = "default"
)

// Config is the startup configuration. It is constructed once from CLI
// flags, validated, and passed by value into the components that need it —
// there is no ambient global state.
type Config struct {
	Endpoint string // base URL of the OpenAI-compatible API
	Model    string // model name sent with each request
	APIKey   string // optional bearer token
}

// Validate checks that the endpoint parses as an absolute http(s) URL.
// A failure here is fatal at startup, before any UI is drawn.
func (c Config) Validate() error {
	u, err := url.Parse(strings.TrimSpace(c.Endpoint))
	if err != nil {
		return fmt.Errorf("%w %q: %v", ErrEndpoint, c.Endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w %q: scheme must be http or https", ErrEndpoint, c.Endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("%w %q: missing host", ErrEndpoint, c.Endpoint)
	}
	return nil
}
