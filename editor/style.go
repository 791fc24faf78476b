package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text    lipgloss.Style
	Control lipgloss.Style // caret and hex forms of non-printable bytes
	Cursor  lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Control:       lipgloss.NewStyle().Foreground(lipgloss.Color("204")),
		Cursor:        lipgloss.NewStyle().Reverse(true),
	}
}
