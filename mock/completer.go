// Package mock provides test doubles for mrm interfaces using function fields.
package mock

import (
	"context"

	"github.com/skorotkiewicz/mrm"
)

// Interface compliance check.
var _ mrm.Completer = (*Completer)(nil)

// Completer is a test double for mrm.Completer.
// Set CompleteFn before calling Complete.
type Completer struct {
	CompleteFn func(ctx context.Context, req mrm.Request) (string, error)
}

// Complete delegates to CompleteFn.
func (c *Completer) Complete(ctx context.Context, req mrm.Request) (string, error) {
	return c.CompleteFn(ctx, req)
}
