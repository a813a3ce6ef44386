package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/leadsmith/leadsmith/internal/message"
	"github.com/leadsmith/leadsmith/internal/tone"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(0, 1).
			Width(72)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C6C6C"))
)

// renderPretty frames a draft with its lead, template and tone.
func renderPretty(name string, tmpl message.Template, level tone.Level, text string) string {
	header := headerStyle.Render(fmt.Sprintf("Message for %s", name))
	meta := mutedStyle.Render(fmt.Sprintf("%s · %s", tmpl.Name, level))
	return lipgloss.JoinVertical(lipgloss.Left, header, meta, boxStyle.Render(text))
}
