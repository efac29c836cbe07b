package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/mvelders/baedeker/internal/core/styles"
)

// View renders the page with any open dialogs composited on top.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}
	if !m.ready {
		v := tea.NewView("")
		v.AltScreen = true
		return v
	}

	content := m.stack.Overlay(m.renderMain(), m.width, m.height)

	v := tea.NewView(content)
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	return v
}

func (m Model) renderMain() string {
	title := styles.TitleBarStyle.Render(styles.IconCompass + " baedeker · " + m.guide.City)

	status := "enter details · p packing · w weather · c assistant · ? help · q quit"
	if m.bridge.Active() {
		status = "esc close · backspace close all"
		if m.stack.Guard().Loading(m.topHandle()) {
			status = m.spinner.View() + " loading · " + status
		}
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		padToWidth(title, m.width),
		m.vp.View(),
		styles.StatusBarStyle.Render(status),
	)
}

func (m Model) topHandle() string {
	if top := m.stack.Top(); top != nil {
		return top.Handle
	}
	return ""
}

// padToWidth right-pads a rendered line to the full terminal width.
func padToWidth(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
