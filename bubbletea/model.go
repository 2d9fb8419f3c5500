package bubbletea

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	rw "github.com/mattn/go-runewidth"
	"github.com/skorotkiewicz/mrm"
)

var _ tea.Model = Model{}

const (
	headerHeight = 1
	statusHeight = 1
	inputHeight  = 1
)

// Model is the Bubble Tea model for the console. The conversation lives in
// the session; blocks are the render-side mirror of its visible turns.
type Model struct {
	// Input is the text input component. Exported for test access.
	Input textinput.Model
	// Viewport is the scrollable conversation area. Exported for test access.
	Viewport viewport.Model

	completer mrm.Completer
	session   *mrm.Session
	cfg       mrm.Config
	theme     mrm.Theme
	styles    Styles

	blocks []TurnBlock

	waiting  bool // a completion request is outstanding
	glitched bool // the last exchange failed
	cancel   context.CancelFunc
	ready    bool
	width    int
}

// New creates the TUI Model. The session is shared with the caller and must
// already hold its persona turn; any visible turns it carries (the intro)
// are rendered on init.
func New(completer mrm.Completer, session *mrm.Session, cfg mrm.Config, theme mrm.Theme) Model {
	styles := NewStyles(theme)

	ti := textinput.New()
	ti.Placeholder = "speak into the void"
	ti.Prompt = "> "
	ti.PromptStyle = styles.Accent
	ti.Focus()
	ti.CharLimit = 0

	return Model{
		Input:     ti,
		completer: completer,
		session:   session,
		cfg:       cfg,
		theme:     theme,
		styles:    styles,
	}
}

// Waiting reports whether a completion request is outstanding.
func (m Model) Waiting() bool { return m.waiting }

// Glitched reports whether the last exchange ended in a transport failure.
func (m Model) Glitched() bool { return m.glitched }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ReplyMsg:
		return m.handleReply(msg)
	}

	// Pass remaining messages to sub-components. The viewport always
	// receives messages so mouse scrolling keeps working.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	cmds = append(cmds, cmd)

	if !m.waiting {
		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.headerLine())
	b.WriteString("\n")
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.Input.View())
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	vpHeight := msg.Height - headerHeight - statusHeight - inputHeight
	if vpHeight < 1 {
		vpHeight = 1
	}
	m.width = msg.Width

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m = m.renderSession()
		m.Viewport.SetContent(m.renderContent())
		m.Viewport.GotoBottom()
		m.ready = true
	} else {
		wasAtBottom := m.Viewport.AtBottom()
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
		// Re-render at the new width; SetContent re-clamps the offset.
		m.Viewport.SetContent(m.renderContent())
		if wasAtBottom {
			m.Viewport.GotoBottom()
		}
	}

	m.Input.Width = msg.Width
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case tea.KeyEnter:
		if m.waiting {
			return m, nil
		}
		text := strings.TrimSpace(m.Input.Value())
		if text == "" {
			return m, nil
		}
		return m.submit(text)
	}

	// Scroll keys go to the viewport, typing to the input. Rune keys and
	// space are withheld from the viewport: 'j'/'k' are both scroll
	// bindings and text characters, and space is bound to page-down.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	if msg.Type != tea.KeyRunes && msg.Type != tea.KeySpace {
		m.Viewport, cmd = m.Viewport.Update(msg)
		cmds = append(cmds, cmd)
	}
	if !m.waiting {
		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// submit appends the user turn and dispatches the completion request. The
// input stays blurred until the reply (or failure) lands, so one request is
// in flight at a time — the conversation stays strictly turn-by-turn.
func (m Model) submit(text string) (tea.Model, tea.Cmd) {
	m.Input.SetValue("")
	m.glitched = false

	m.session.Append(mrm.UserTurn(text))
	m.blocks = append(m.blocks, NewUserBlock(text, m.styles))
	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()

	// Snapshot the payload before handing off to the goroutine; the
	// session is not safe for concurrent access.
	req := mrm.Request{Model: m.cfg.Model, Turns: m.session.Payload()}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.waiting = true
	m.Input.Blur()

	return m, complete(ctx, m.completer, req)
}

func (m Model) handleReply(msg ReplyMsg) (tea.Model, tea.Cmd) {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.waiting = false

	var turn mrm.Turn
	if msg.Err != nil {
		// Failures become conversation content; the loop never dies
		// because the API did.
		turn = mrm.GlitchTurn(msg.Err)
		m.glitched = true
		m.blocks = append(m.blocks, NewGlitchBlock(turn.Content, m.theme))
	} else {
		turn = mrm.AssistantTurn(msg.Content)
		m.blocks = append(m.blocks, NewNarratorBlock(turn.Content, m.theme))
	}
	m.session.Append(turn)

	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()
	return m, m.Input.Focus()
}

// renderSession creates blocks for the visible turns already in the session.
// The persona turn is never displayed.
func (m Model) renderSession() Model {
	for _, turn := range m.session.Turns() {
		switch turn.Role {
		case mrm.RoleUser:
			m.blocks = append(m.blocks, NewUserBlock(turn.Content, m.styles))
		case mrm.RoleAssistant:
			m.blocks = append(m.blocks, NewNarratorBlock(turn.Content, m.theme))
		}
	}
	return m
}

func (m Model) renderContent() string {
	if len(m.blocks) == 0 {
		return ""
	}
	var b strings.Builder
	for i, block := range m.blocks {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(block.View(m.Viewport.Width))
	}
	return b.String()
}

func (m Model) headerLine() string {
	title := "🌀 The Narrator's Console"
	tagline := " — where reality gets playful"
	if free := m.width - rw.StringWidth(title); rw.StringWidth(tagline) > free {
		tagline = rw.Truncate(tagline, max(free, 0), "…")
	}
	return m.styles.Header.Render(title) + m.styles.Muted.Render(tagline)
}

func (m Model) statusLine() string {
	var dot lipgloss.Style
	var text string
	switch {
	case m.waiting:
		dot, text = m.styles.Waiting, "the narrator ponders..."
	case m.glitched:
		dot, text = m.styles.Error, "reality glitched"
	default:
		dot, text = m.styles.Success, "awaiting input"
	}
	text += " │ Ctrl+C to exit │ PgUp/PgDn to scroll"
	if m.width > 2 {
		text = rw.Truncate(text, m.width-2, "…")
	}
	return dot.Render("● ") + m.styles.Muted.Render(text)
}

// complete runs one completion request in a goroutine and delivers the
// outcome as a ReplyMsg.
func complete(ctx context.Context, c mrm.Completer, req mrm.Request) tea.Cmd {
	return func() tea.Msg {
		content, err := c.Complete(ctx, req)
		return ReplyMsg{Content: content, Err: err}
	}
}
