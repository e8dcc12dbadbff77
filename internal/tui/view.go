package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

func (m model) View() string {
	var b strings.Builder

	if !m.hasZone {
		b.WriteString(titleStyle.Render("No zones yet"))
		b.WriteString("\n\nWaiting for the first sync...\n")
	} else {
		b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%s)", m.zone.Name, m.zone.Scope)))
		b.WriteString("\n\n")

		if len(m.rows) == 0 {
			b.WriteString(helpStyle.Render("no topics"))
			b.WriteString("\n")
		}
		for i, r := range m.rows {
			b.WriteString(m.renderRow(i, r))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if m.editing != editNone {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.editing != editNone {
		b.WriteString(helpStyle.Render(helpLine(keys.inputHelp())))
	} else {
		b.WriteString(helpStyle.Render(helpLine(keys.help())))
	}

	return appStyle.Render(b.String())
}

func (m model) renderRow(i int, r row) string {
	text := r.text
	if r.readOnly {
		text += readOnlyStyle.Render(" [read-only]")
	}
	if i == m.idx {
		text = selectedStyle.Render(text)
	}
	if r.note {
		return noteStyle.Render("• " + text)
	}
	return "▸ " + text
}

func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, b.Help().Key+" "+b.Help().Desc)
	}
	return strings.Join(parts, " · ")
}
