package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvelders/baedeker/internal/core/styles"
	"github.com/mvelders/baedeker/internal/guide"
)

func keyPress(s string) tea.KeyPressMsg {
	return tea.KeyPressMsg{Text: s, Code: rune(s[0])}
}

func TestPackingDialog_toggle(t *testing.T) {
	d := NewPackingDialog()
	d.SetItems(guide.DefaultPackingList())

	_, handled := d.HandleKeyMsg(keyPress("j"))
	assert.True(t, handled)
	_, handled = d.HandleKeyMsg(keyPress("x"))
	assert.True(t, handled)

	assert.False(t, d.Items()[0].Packed)
	assert.True(t, d.Items()[1].Packed)
}

func TestPackingDialog_cursor_stays_in_bounds(t *testing.T) {
	d := NewPackingDialog()
	d.SetItems([]guide.PackingItem{{Label: "Passport"}})

	d.HandleKeyMsg(keyPress("k"))
	d.HandleKeyMsg(keyPress("j"))
	d.HandleKeyMsg(keyPress("x"))

	assert.True(t, d.Items()[0].Packed)
}

func TestPackingDialog_view(t *testing.T) {
	d := NewPackingDialog()
	d.SetItems([]guide.PackingItem{{Label: "Passport"}, {Label: "Adapter", Packed: true}})

	out := d.View(80, 24)
	assert.Contains(t, out, styles.IconSuitcase+" Packing list")
	assert.Contains(t, out, "[ ] Passport")
	assert.Contains(t, out, "[x] Adapter")
	assert.Contains(t, out, "✕")
}

func TestWeatherDialog_view(t *testing.T) {
	d := NewWeatherDialog()
	d.SetForecast("Geneva", guide.Forecast("Geneva"))

	out := d.View(80, 24)
	assert.Contains(t, out, styles.IconWeather+" Weather · Geneva")
	assert.Contains(t, out, "Today")
}

func TestActivityDialog_renders_markdown(t *testing.T) {
	d := NewActivityDialog()
	a := guide.Activity{ID: "old-town", Title: "Old Town Stroll", Markdown: "# Old Town\n\nCobbled lanes.\n"}

	require.NoError(t, d.SetActivity(a, 80, 24))

	out := d.View(80, 24)
	assert.Contains(t, out, "Old Town Stroll")
	assert.Contains(t, out, "Cobbled lanes")
}

func TestActivityDialog_scrolls(t *testing.T) {
	d := NewActivityDialog()
	a := guide.Activity{ID: "long", Title: "Long", Markdown: "# Long\n\n" + longBody(80)}
	require.NoError(t, d.SetActivity(a, 80, 12))

	_, handled := d.HandleKeyMsg(keyPress("j"))
	assert.True(t, handled)
	assert.Equal(t, 1, d.vp.YOffset())

	d.HandleKeyMsg(keyPress("k"))
	assert.Equal(t, 0, d.vp.YOffset())
}

func longBody(lines int) string {
	out := ""
	for range lines {
		out += "line\n\n"
	}
	return out
}

func TestAssistantDialog_submit(t *testing.T) {
	d := NewAssistantDialog()
	d.Greet("Hello")

	_, ok := d.Submit()
	assert.False(t, ok, "empty input must not submit")

	d.HandleKeyMsg(keyPress("m"))
	prompt, ok := d.Submit()
	assert.True(t, ok)
	assert.Equal(t, "m", prompt)

	out := d.View(80, 24)
	assert.Contains(t, out, "You: m")
}

func TestAssistantDialog_submit_blocked_while_busy(t *testing.T) {
	d := NewAssistantDialog()
	d.HandleKeyMsg(keyPress("m"))
	d.SetBusy(true)

	_, ok := d.Submit()
	assert.False(t, ok)
}

func TestHelpDialog_view(t *testing.T) {
	d := NewHelpDialog()

	out := d.View(80, 24)
	assert.Contains(t, out, styles.IconCheckList+" Help")
	assert.Contains(t, out, "packing list")
	assert.Contains(t, out, "quit")
}
