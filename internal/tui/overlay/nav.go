package overlay

import (
	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog"
)

// clickTarget classifies where a document-level click landed.
type clickTarget int

const (
	targetBackdrop clickTarget = iota
	targetDismiss
	targetContent
)

// Bridge maps platform back-navigation, the Escape key, and clicks onto
// stack operations. It owns the history checkpoint for the dialog
// session: pushed when the first dialog opens, popped when the session
// ends by any path other than the back event that already consumed it.
//
// Session state machine: Idle (depth 0) ⇄ Active (depth > 0). Back while
// Active closes everything; Escape and backdrop clicks go back one level.
type Bridge struct {
	mgr     *Manager
	history History
	log     zerolog.Logger

	active bool
	inBack bool
}

// NewBridge wires a bridge to the manager and the history boundary. The
// bridge registers itself for session transitions; create it before the
// first Open.
func NewBridge(mgr *Manager, history History, logger zerolog.Logger) *Bridge {
	b := &Bridge{mgr: mgr, history: history, log: logger}
	mgr.listener = b
	return b
}

// Active reports whether a dialog session is in progress.
func (b *Bridge) Active() bool { return b.active }

func (b *Bridge) sessionStarted() {
	b.active = true
	b.history.PushCheckpoint()
	b.log.Debug().Msg("dialog session started, history checkpoint pushed")
}

func (b *Bridge) sessionEnded() {
	b.active = false
	if b.inBack {
		// The back event that ended the session already consumed the
		// checkpoint.
		return
	}
	b.history.PopCheckpoint()
	b.log.Debug().Msg("dialog session ended, history checkpoint popped")
}

// HandleBack handles a platform back event. While a session is active it
// always means "close everything", never a page navigation. Returns true
// if the event was consumed.
func (b *Bridge) HandleBack() bool {
	if !b.active {
		return false
	}
	b.inBack = true
	defer func() { b.inBack = false }()
	b.mgr.CloseAll()
	return true
}

// HandleEscape closes the top dialog. Escape is not suppressed while
// idle; returns true only if a session was active.
func (b *Bridge) HandleEscape() bool {
	if !b.active {
		return false
	}
	b.mgr.Back()
	return true
}

// HandleClick routes a document-level click while a session is active.
// The dismiss control is resolved before the backdrop: the hit test walks
// the dialogs top-down, and only a click landing on no dialog at all
// counts as backdrop. Clicks inside a dialog's content are left to the
// dialog itself. Returns true if the click happened during a session.
func (b *Bridge) HandleClick(x, y, width, height int) bool {
	if !b.active {
		return false
	}
	target, handle := b.hitTest(x, y, width, height)
	switch target {
	case targetDismiss:
		b.mgr.Close(handle)
	case targetBackdrop:
		b.mgr.Back()
	case targetContent:
		// The dialog's own input handling applies.
	}
	return true
}

// hitTest classifies the click against the open dialogs, top-most first.
func (b *Bridge) hitTest(x, y, width, height int) (clickTarget, string) {
	entries := b.mgr.entries
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		bx, by, bw, bh := surfaceBounds(e.Surface, width, height)
		if x < bx || x >= bx+bw || y < by || y >= by+bh {
			continue
		}
		if y == by && x >= bx+bw-dismissHitWidth {
			return targetDismiss, e.Handle
		}
		return targetContent, e.Handle
	}
	return targetBackdrop, ""
}

// surfaceBounds computes the rectangle a centered surface occupies on a
// width×height screen.
func surfaceBounds(s Surface, width, height int) (x, y, w, h int) {
	view := s.View(width, height)
	w = lipgloss.Width(view)
	h = lipgloss.Height(view)
	x = max((width-w)/2, 0)
	y = max((height-h)/2, 0)
	return x, y, w, h
}
