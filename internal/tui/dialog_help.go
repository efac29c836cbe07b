package tui

import (
	"fmt"
	"strings"

	"github.com/mvelders/baedeker/internal/core/styles"
)

// HelpDialog lists the key bindings.
type HelpDialog struct {
	dialogState
}

func NewHelpDialog() *HelpDialog {
	return &HelpDialog{}
}

var helpBindings = []struct {
	key  string
	desc string
}{
	{"j/k", "move selection"},
	{"enter", "open activity details"},
	{"p", "packing list"},
	{"w", "weather outlook"},
	{"c", "trip assistant"},
	{"esc", "close top dialog"},
	{"backspace", "close all dialogs / page back"},
	{"?", "this help"},
	{"q", "quit"},
}

func (d *HelpDialog) View(width, _ int) string {
	var b strings.Builder
	for i, kb := range helpBindings {
		key := styles.ListSelectedStyle.Render(fmt.Sprintf("%-10s", kb.key))
		b.WriteString(key + kb.desc)
		if i < len(helpBindings)-1 {
			b.WriteString("\n")
		}
	}
	return renderDialog(styles.IconCheckList, "Help", b.String(), "esc close", width)
}
