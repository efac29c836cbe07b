package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/mvelders/baedeker/internal/core/styles"
	"github.com/mvelders/baedeker/internal/guide"
)

// PackingDialog is the trip packing checklist.
type PackingDialog struct {
	dialogState
	items  []guide.PackingItem
	cursor int
}

func NewPackingDialog() *PackingDialog {
	return &PackingDialog{}
}

// SetItems replaces the checklist contents.
func (d *PackingDialog) SetItems(items []guide.PackingItem) {
	d.items = items
	if d.cursor >= len(items) {
		d.cursor = 0
	}
}

// Items returns the current checklist.
func (d *PackingDialog) Items() []guide.PackingItem { return d.items }

// HandleKeyMsg moves the cursor and toggles items.
func (d *PackingDialog) HandleKeyMsg(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "j", "down":
		if d.cursor < len(d.items)-1 {
			d.cursor++
		}
		return nil, true
	case "k", "up":
		if d.cursor > 0 {
			d.cursor--
		}
		return nil, true
	case "x", "space", " ":
		if d.cursor < len(d.items) {
			d.items[d.cursor].Packed = !d.items[d.cursor].Packed
		}
		return nil, true
	}
	return nil, false
}

func (d *PackingDialog) View(width, _ int) string {
	var b strings.Builder
	if d.busy {
		b.WriteString(styles.DialogBusyStyle.Render("Loading checklist..."))
	}
	for i, item := range d.items {
		marker := "  "
		if i == d.cursor {
			marker = "> "
		}
		box := styles.IconUnchecked
		style := styles.UnpackedStyle
		if item.Packed {
			box = styles.IconChecked
			style = styles.PackedStyle
		}
		b.WriteString(marker + style.Render(box+" "+item.Label))
		if i < len(d.items)-1 {
			b.WriteString("\n")
		}
	}
	return renderDialog(styles.IconSuitcase, "Packing list", b.String(), "x toggle · j/k move · esc close", width)
}
