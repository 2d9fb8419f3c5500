package bubbletea

import "github.com/charmbracelet/lipgloss"

// TurnBlock is a renderable element in the conversation. View takes a width
// parameter so the root model controls layout and blocks are testable in
// isolation.
type TurnBlock interface {
	View(width int) string
}

// roleHeader renders the bold role line that opens every turn block.
func roleHeader(label string, color int) string {
	return lipgloss.NewStyle().Foreground(ansiColor(color)).Bold(true).Render(label)
}
