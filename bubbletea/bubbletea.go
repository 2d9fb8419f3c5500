// Package bubbletea provides the Bubble Tea TUI for the Narrator's Console.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Run creates and runs the Bubble Tea TUI program. It blocks until the
// program exits. The context is used for graceful shutdown — when cancelled,
// the program quits.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// ReplyMsg delivers the outcome of one completion request to the model.
// Exactly one of Content/Err is meaningful.
type ReplyMsg struct {
	Content string
	Err     error
}
