package bubbletea

import (
	"github.com/skorotkiewicz/mrm"
	"github.com/skorotkiewicz/mrm/goldmark"
)

var _ TurnBlock = (*GlitchBlock)(nil)

// GlitchBlock renders a transport-failure turn. The content is the same
// narrator-voiced prose as any assistant turn, but the stage directions
// take the error color so a failed exchange is visible at a glance.
type GlitchBlock struct {
	content string
	theme   mrm.Theme

	cache map[int]string
}

// NewGlitchBlock creates a GlitchBlock for the given turn content.
func NewGlitchBlock(content string, theme mrm.Theme) *GlitchBlock {
	theme.Stage = theme.Error
	return &GlitchBlock{
		content: content,
		theme:   theme,
		cache:   make(map[int]string),
	}
}

func (b *GlitchBlock) View(width int) string {
	if cached, ok := b.cache[width]; ok {
		return cached
	}
	rendered := roleHeader("🎭 Narrator", b.theme.Narrator) + "\n\n" +
		goldmark.Render(b.content, width, b.theme)
	b.cache[width] = rendered
	return rendered
}
