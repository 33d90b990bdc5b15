package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("onqsim — ONQ-VM demo runner"))
	sb.WriteString("\n\n")

	menu := m.renderMenu()
	output := m.renderOutput()
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, menu, output))
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(m.renderFooter()))

	return sb.String()
}

func (m Model) renderMenu() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Demos"))
	sb.WriteString("\n\n")

	for i, d := range demos {
		if i == m.cursor {
			sb.WriteString(menuSelectedStyle.Render(" ▸ " + d.Name))
		} else {
			sb.WriteString("   " + menuNormalStyle.Render(d.Name))
		}
		sb.WriteString("\n")
		sb.WriteString(dimStyle.Render("     " + d.Description))
		sb.WriteString("\n")
	}

	return menuBorderStyle.Width(48).Render(sb.String())
}

func (m Model) renderOutput() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Result"))
	sb.WriteString("\n\n")

	if m.lastRun == nil {
		sb.WriteString(dimStyle.Render("Select a demo and press Enter to run it."))
	} else {
		r := m.lastRun
		sb.WriteString(fmt.Sprintf("%s (%d instructions)\n\n", r.demoName, r.instructions))
		if r.err != nil {
			sb.WriteString(errStyle.Render(fmt.Sprintf("error: %v", r.err)))
		} else if len(r.registers) == 0 {
			sb.WriteString(okStyle.Render("halted cleanly, no classical registers written"))
		} else {
			sb.WriteString(okStyle.Render("halted cleanly"))
			sb.WriteString("\n\n")
			for _, name := range sortedRegisterNames(r.registers) {
				sb.WriteString(registerStyle.Render(fmt.Sprintf("%-10s", name)))
				sb.WriteString(fmt.Sprintf("= %d\n", r.registers[name]))
			}
		}
	}

	return outputBorderStyle.Width(48).Height(16).Render(sb.String())
}

func (m Model) renderFooter() string {
	if m.focus == focusMenu {
		return " ↑↓ select  ⏎ run  q quit"
	}
	return " esc back  q quit"
}
