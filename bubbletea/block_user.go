package bubbletea

import "github.com/charmbracelet/lipgloss"

var _ TurnBlock = (*UserBlock)(nil)

// UserBlock renders a user turn under a "✦ You" role header.
type UserBlock struct {
	text   string
	styles Styles
}

// NewUserBlock creates a UserBlock.
func NewUserBlock(text string, styles Styles) *UserBlock {
	return &UserBlock{text: text, styles: styles}
}

func (b *UserBlock) View(width int) string {
	header := b.styles.User.Render("✦ You")
	body := lipgloss.NewStyle().Width(width).Render(b.text)
	return header + "\n\n" + body
}
