package bubbletea

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/skorotkiewicz/mrm"
)

// Styles maps a Theme to lipgloss styles for TUI rendering.
type Styles struct {
	User    lipgloss.Style
	Header  lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Waiting lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t mrm.Theme) Styles {
	return Styles{
		User:    lipgloss.NewStyle().Foreground(ansiColor(t.User)).Bold(true),
		Header:  lipgloss.NewStyle().Foreground(ansiColor(t.Narrator)).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(ansiColor(t.Error)),
		Success: lipgloss.NewStyle().Foreground(ansiColor(t.Success)),
		Waiting: lipgloss.NewStyle().Foreground(ansiColor(t.Waiting)),
		Muted:   lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
		Accent:  lipgloss.NewStyle().Foreground(ansiColor(t.Accent)),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
