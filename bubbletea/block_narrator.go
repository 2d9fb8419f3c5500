package bubbletea

import (
	"github.com/skorotkiewicz/mrm"
	"github.com/skorotkiewicz/mrm/goldmark"
)

var _ TurnBlock = (*NarratorBlock)(nil)

// NarratorBlock renders an assistant turn as markdown prose under a
// "🎭 Narrator" role header. Rendered output is cached per width since
// turn content never changes.
type NarratorBlock struct {
	content string
	theme   mrm.Theme

	cache map[int]string
}

// NewNarratorBlock creates a NarratorBlock for the given turn content.
func NewNarratorBlock(content string, theme mrm.Theme) *NarratorBlock {
	return &NarratorBlock{
		content: content,
		theme:   theme,
		cache:   make(map[int]string),
	}
}

func (b *NarratorBlock) View(width int) string {
	if cached, ok := b.cache[width]; ok {
		return cached
	}
	rendered := roleHeader("🎭 Narrator", b.theme.Narrator) + "\n\n" +
		goldmark.Render(b.content, width, b.theme)
	b.cache[width] = rendered
	return rendered
}
