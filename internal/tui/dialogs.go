package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/mvelders/baedeker/internal/core/styles"
)

// Dialog handles used with the overlay registry.
const (
	handlePacking   = "packing"
	handleWeather   = "weather"
	handleActivity  = "activity"
	handleAssistant = "assistant"
	handleHelp      = "help"
)

const (
	dialogMaxWidth = 64
	dialogMargin   = 8
)

// dialogKeyHandler lets the top dialog consume key input before the page.
type dialogKeyHandler interface {
	HandleKeyMsg(msg tea.KeyMsg) (tea.Cmd, bool)
}

// dialogState carries the visibility bookkeeping every dialog shares.
// The layering value is assigned by the stack on show; the compositor
// reads it from the stack entry, so the dialog only records visibility.
type dialogState struct {
	visible bool
	busy    bool
}

func (d *dialogState) Show(_ int) {
	d.visible = true
}

func (d *dialogState) Hide() { d.visible = false }

func (d *dialogState) Visible() bool { return d.visible }

func (d *dialogState) SetBusy(busy bool) { d.busy = busy }

func (d *dialogState) Busy() bool { return d.busy }

// dialogInnerWidth computes the content width for a dialog on a screen
// of the given width.
func dialogInnerWidth(screenWidth int) int {
	return max(min(screenWidth-dialogMargin, dialogMaxWidth), 20)
}

// renderDialog draws the shared dialog chrome: bordered box, title row
// with an icon on the left and the dismiss control in the top-right,
// body, and a help line.
func renderDialog(icon, title, body, help string, width int) string {
	inner := dialogInnerWidth(width)

	if icon != "" {
		title = icon + " " + title
	}
	t := styles.DialogTitleStyle.Render(title)
	x := styles.DialogDismissStyle.Render(styles.IconDismiss)
	gap := max(inner-lipgloss.Width(t)-lipgloss.Width(x), 1)
	titleRow := t + strings.Repeat(" ", gap) + x

	sections := []string{titleRow, "", body}
	if help != "" {
		sections = append(sections, styles.DialogHelpStyle.Render(help))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return styles.DialogStyle.Width(inner + 4).Render(content)
}
