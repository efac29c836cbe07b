// Package overlay coordinates the stack of dialog surfaces drawn over the
// main guide view: ordering and layering, deferred hide animations, scroll
// capture/restore, and the back/escape/click navigation that makes nested
// dialogs unwind one level at a time.
package overlay

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned by Open when no surface is registered for
	// the requested handle. It is the only error callers must handle.
	ErrNotFound = errors.New("no surface registered for handle")

	// ErrAlreadyOpen is returned by Open when the handle is already on
	// the stack. Two simultaneously open dialogs may not share a handle.
	ErrAlreadyOpen = errors.New("handle already open")
)

const (
	// zIndexBase and zIndexStep compute the layering value for a stack
	// position: the bottom dialog sits at 1010, the next at 1020, and so
	// on. Strictly increasing with stack depth.
	zIndexBase = 1000
	zIndexStep = 10

	// DefaultHideDelay is how long a closed surface stays on screen so
	// its fade-out can play before the actual hide.
	DefaultHideDelay = 200 * time.Millisecond

	// dismissHitWidth is the width in cells of the dismiss control at
	// the top-right corner of every dialog panel.
	dismissHitWidth = 4
)

// PopulateFunc fills a dialog with content after it is opened. It runs at
// most once per Open call; errors and panics are logged, never propagated.
type PopulateFunc func() error

// Surface is a dialog's visual presence. Surfaces pre-exist in the view
// layer and are only shown, hidden, and layered by the manager — never
// created or destroyed by it.
type Surface interface {
	// Show makes the surface visible at the given layering value.
	Show(z int)
	// Hide makes the surface invisible.
	Hide()
	// Visible reports the surface's actual observable visibility, which
	// can diverge from the stack when outside code hides it directly.
	Visible() bool
	// SetBusy toggles the surface's busy indicator while its content is
	// being populated.
	SetBusy(busy bool)
	// Busy reports whether the busy indicator is shown.
	Busy() bool
	// View renders the surface's panel within the given bounds.
	View(width, height int) string
}

// ScrollPort is the single scrollable main view behind the dialogs. The
// manager captures its offset when a dialog opens, locks it while any
// dialog is up, and restores the bottom-most captured offset when the
// last dialog closes.
type ScrollPort interface {
	Offset() int
	SetOffset(offset int)
	Lock()
	Unlock()
	Locked() bool
}

// History is the platform back-navigation boundary. Exactly one
// checkpoint is pushed per empty→non-empty stack transition; it models
// "a dialog session is active", not one entry per dialog.
type History interface {
	PushCheckpoint()
	PopCheckpoint()
}

// sessionListener is notified when the stack transitions between empty
// and non-empty. The navigation bridge registers itself here.
type sessionListener interface {
	sessionStarted()
	sessionEnded()
}
