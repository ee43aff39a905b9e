package main

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	classStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
)

// painter applies lipgloss styles only when writing to a terminal.
type painter struct {
	enabled bool
}

func newPainter(w io.Writer) painter {
	return painter{enabled: isTerminal(w)}
}

func (p painter) paint(style lipgloss.Style, text string) string {
	if !p.enabled {
		return text
	}
	return style.Render(text)
}

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
