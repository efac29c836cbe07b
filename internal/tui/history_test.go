package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageHistory_current_skips_checkpoint(t *testing.T) {
	h := newPageHistory("guide")
	h.PushCheckpoint()

	assert.Equal(t, "guide", h.Current())
}

func TestPageHistory_pop_keeps_start_page(t *testing.T) {
	h := newPageHistory("guide")

	assert.Equal(t, "guide", h.Pop())
	assert.Equal(t, 1, h.Depth())
}

func TestPageHistory_push_and_pop(t *testing.T) {
	h := newPageHistory("guide")
	h.Push("map")

	assert.Equal(t, "map", h.Current())
	assert.Equal(t, "guide", h.Pop())
}

func TestPageHistory_pop_checkpoint_only_removes_checkpoint(t *testing.T) {
	h := newPageHistory("guide")
	h.Push("map")
	h.PopCheckpoint()

	assert.Equal(t, "map", h.Current())
	assert.Equal(t, 2, h.Depth())

	h.PushCheckpoint()
	h.PopCheckpoint()
	assert.Equal(t, "map", h.Current())
	assert.Equal(t, 2, h.Depth())
}
