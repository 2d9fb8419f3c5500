package mrm

import "context"

// Completer is a strategy pattern interface for chat completion backends.
// Complete performs one synchronous request and returns the assistant's
// reply text. Cancellation flows through the context.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Request carries the model selection, generation parameters, and the full
// ordered turn history for one completion call. The backend uses its own
// defaults when fields are zero/nil.
type Request struct {
	Model       string   // model ID; empty = backend default
	Turns       []Turn   // full history, persona first
	Temperature *float64 // nil = backend default
	MaxTokens   int      // 0 = backend default
}
