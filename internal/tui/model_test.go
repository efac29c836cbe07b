package tui

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvelders/baedeker/internal/core/config"
	"github.com/mvelders/baedeker/internal/guide"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.ContentDir = t.TempDir()
	cfg.TUI.DialogHideMS = 1

	g := &guide.Guide{
		City: "Geneva",
		Activities: []guide.Activity{
			{ID: "fondue", Category: "food", Title: "Where to Eat Fondue", Summary: "Cheese.", Markdown: "# Fondue\n\nCheese.\n"},
			{ID: "old-town", Category: "sights", Title: "Old Town Stroll", Summary: "Cobbles.", Markdown: "# Old Town\n\nCobbles.\n"},
		},
	}

	m := New(&cfg, g, zerolog.Nop())
	resized, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return resized.(Model)
}

// drainTicks feeds overlay ticks until the stack settles.
func drainTicks(t *testing.T, m Model) Model {
	t.Helper()
	for range 10 {
		updated, _ := m.Update(overlayTickMsg(time.Now()))
		m = updated.(Model)
		if m.stack.Idle() {
			return m
		}
	}
	return m
}

func TestModel_open_packing_locks_scroll(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(keyPress("p"))
	m = updated.(Model)

	require.Equal(t, 1, m.stack.Depth())
	assert.True(t, m.packing.Visible())
	assert.NotEmpty(t, m.packing.Items())
	assert.True(t, m.scroll.Locked())
	assert.NotNil(t, cmd, "tick loop must start")
}

func TestModel_escape_closes_top_only(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(keyPress("p"))
	m = updated.(Model)
	updated, _ = m.Update(keyPress("w"))
	m = updated.(Model)
	require.Equal(t, 2, m.stack.Depth())

	updated, _ = m.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape}))
	m = updated.(Model)

	assert.Equal(t, 1, m.stack.Depth())
	assert.Equal(t, handlePacking, m.stack.Top().Handle)
}

func TestModel_backspace_closes_everything(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(keyPress("p"))
	m = updated.(Model)
	updated, _ = m.Update(keyPress("w"))
	m = updated.(Model)

	updated, _ = m.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyBackspace}))
	m = updated.(Model)

	assert.Equal(t, 0, m.stack.Depth())

	m = drainTicks(t, m)
	assert.False(t, m.scroll.Locked())
	assert.False(t, m.packing.Visible())
	assert.False(t, m.weather.Visible())
}

func TestModel_page_keys_blocked_while_dialog_open(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(keyPress("?"))
	m = updated.(Model)

	updated, _ = m.Update(keyPress("j"))
	m = updated.(Model)

	assert.Equal(t, 0, m.cursor, "page cursor must not move behind a dialog")
	assert.Equal(t, 1, m.stack.Depth())
}

func TestModel_enter_opens_selected_activity(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(keyPress("j"))
	m = updated.(Model)

	updated, _ = m.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter}))
	m = updated.(Model)

	require.Equal(t, 1, m.stack.Depth())
	assert.Equal(t, handleActivity, m.stack.Top().Handle)
	assert.Contains(t, m.activity.View(80, 24), "Old Town Stroll")
}

func TestModel_backdrop_click_goes_back_one_level(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(keyPress("p"))
	m = updated.(Model)

	updated, _ = m.Update(tea.MouseClickMsg{X: 0, Y: 0, Button: tea.MouseLeft})
	m = updated.(Model)

	assert.Equal(t, 0, m.stack.Depth())
}

func TestModel_wheel_ignored_while_locked(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(keyPress("p"))
	m = updated.(Model)

	offset := m.vp.YOffset()
	updated, _ = m.Update(tea.MouseWheelMsg{Button: tea.MouseWheelDown})
	m = updated.(Model)

	assert.Equal(t, offset, m.vp.YOffset())
}

func TestModel_assistant_round_trip(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(keyPress("c"))
	m = updated.(Model)
	require.Equal(t, 1, m.stack.Depth())

	updated, _ = m.Update(keyPress("m"))
	m = updated.(Model)

	updated, cmd := m.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter}))
	m = updated.(Model)
	require.NotNil(t, cmd)
	assert.True(t, m.assistant.Busy())

	updated, _ = m.Update(cmd())
	m = updated.(Model)

	assert.False(t, m.assistant.Busy())
	assert.Contains(t, m.assistant.View(80, 24), "You: m")
}

func TestModel_reopen_rejected_while_open(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(keyPress("p"))
	m = updated.(Model)

	updated, _ = m.Update(keyPress("w"))
	m = updated.(Model)
	require.Equal(t, 2, m.stack.Depth())

	// A second weather open while a dialog session is active never
	// reaches the page key handling, so depth is unchanged.
	updated, _ = m.Update(keyPress("w"))
	m = updated.(Model)
	assert.Equal(t, 2, m.stack.Depth())
}

func TestModel_quit_keys(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(keyPress("q"))
	assert.NotNil(t, cmd)

	m = newTestModel(t)
	updated, _ := m.Update(keyPress("p"))
	m = updated.(Model)
	_, cmd = m.Update(keyPress("q"))
	assert.Nil(t, cmd, "q is a page key and stays blocked behind dialogs")
}

func TestModel_render_main_shows_city_and_hints(t *testing.T) {
	m := newTestModel(t)

	out := m.renderMain()
	assert.Contains(t, out, "Geneva")
	assert.Contains(t, out, "p packing")
	assert.Contains(t, out, "Where to Eat Fondue")
}
