package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))

	bodyStyle = lipgloss.NewStyle().Padding(0, 1)

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("105")).
			Padding(0, 1)
)

func renderPrompt(m *PromptModel) string {
	if m.done {
		return ""
	}

	var out []string
	out = append(out, titleStyle.Render("Desktop notifications"))
	out = append(out, bodyStyle.Render(fmt.Sprintf("%s wants to show desktop notifications.", m.appName)))
	out = append(out, renderHelpText(m))

	box := boxStyle
	if m.width > 0 {
		box = box.MaxWidth(m.width)
	}
	return box.Render(strings.Join(out, "\n"))
}

func renderHelpText(m *PromptModel) string {
	bindings := []struct{ key, desc string }{
		{m.keys.Allow.Help().Key, m.keys.Allow.Help().Desc},
		{m.keys.Block.Help().Key, m.keys.Block.Help().Desc},
		{m.keys.Later.Help().Key, m.keys.Later.Help().Desc},
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, b.key+" "+b.desc)
	}
	return helpStyle.Render(strings.Join(parts, " • "))
}
