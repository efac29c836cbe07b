package tui

import (
	"charm.land/bubbles/v2/viewport"
)

// viewportScroll adapts the main-view viewport to the dialog stack's
// scroll port. The stack freezes page scrolling while dialogs are open
// and restores the captured offset when the last one closes.
type viewportScroll struct {
	vp     *viewport.Model
	locked bool
}

func (s *viewportScroll) Offset() int { return s.vp.YOffset() }

func (s *viewportScroll) SetOffset(offset int) { s.vp.SetYOffset(offset) }

func (s *viewportScroll) Lock() { s.locked = true }

func (s *viewportScroll) Unlock() { s.locked = false }

func (s *viewportScroll) Locked() bool { return s.locked }
