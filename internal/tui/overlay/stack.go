package overlay

import (
	"fmt"
	"time"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog"
)

// Entry is one open dialog on the stack. Position in the stack determines
// the layering value and which dialog a back action targets.
type Entry struct {
	Handle  string
	Surface Surface
	Z       int

	// scrollOffset is the main-view offset at the moment this dialog
	// opened. Restored from the bottom-most entry when the stack empties.
	scrollOffset int
}

// hidePhase tracks the two-step teardown of a closed dialog: the entry
// leaves the stack immediately, but the surface stays on screen until the
// hide delay elapses.
type hidePhase int

const (
	phaseLogicallyClosed hidePhase = iota
	phaseVisuallyHidden
)

// pendingHide is a surface whose close has been requested but whose
// visual hide is still deferred. Only the synchronizer declares it fully
// closed (and releases the scroll lock).
type pendingHide struct {
	surface   Surface
	z         int
	remaining time.Duration
	phase     hidePhase
}

// Manager owns the ordered stack of open dialogs and is the only path
// allowed to mutate it. Callers interact through Open, Close, Back and
// CloseAll; everything else is bookkeeping driven by Tick.
type Manager struct {
	registry *Registry
	scroll   ScrollPort
	guard    *LoadingGuard
	sync     *Synchronizer
	log      zerolog.Logger

	hideDelay time.Duration
	entries   []*Entry
	closing   []pendingHide
	listener  sessionListener
}

// NewManager creates a dialog stack manager. A hideDelay of zero or less
// uses DefaultHideDelay.
func NewManager(registry *Registry, scroll ScrollPort, hideDelay time.Duration, logger zerolog.Logger) *Manager {
	if hideDelay <= 0 {
		hideDelay = DefaultHideDelay
	}
	m := &Manager{
		registry:  registry,
		scroll:    scroll,
		guard:     NewLoadingGuard(registry, logger),
		log:       logger,
		hideDelay: hideDelay,
	}
	m.sync = &Synchronizer{mgr: m, log: logger}
	return m
}

// Guard returns the loading guard bracketing dialog population.
func (m *Manager) Guard() *LoadingGuard { return m.guard }

// Depth returns the number of open dialogs.
func (m *Manager) Depth() int { return len(m.entries) }

// Entries returns the open dialogs bottom-to-top.
func (m *Manager) Entries() []*Entry {
	out := make([]*Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Top returns the top-most open dialog, or nil when the stack is empty.
func (m *Manager) Top() *Entry {
	if len(m.entries) == 0 {
		return nil
	}
	return m.entries[len(m.entries)-1]
}

// Idle reports whether the manager has no open dialogs and no deferred
// hides outstanding, i.e. no reason to keep ticking.
func (m *Manager) Idle() bool {
	return len(m.entries) == 0 && len(m.closing) == 0
}

// Open pushes the dialog for handle onto the stack, shows its surface at
// the next layering value, and runs populate under the loading guard.
// The guard is released when the synchronous portion of populate returns;
// async work the callback starts is its own responsibility.
func (m *Manager) Open(handle string, populate PopulateFunc) (*Entry, error) {
	m.guard.Show(handle)
	defer m.guard.Hide(handle)

	surface := m.registry.Lookup(handle)
	if surface == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, handle)
	}
	if m.find(handle) != nil {
		return nil, fmt.Errorf("%w: %q", ErrAlreadyOpen, handle)
	}

	entry := &Entry{
		Handle:       handle,
		Surface:      surface,
		scrollOffset: m.scroll.Offset(),
	}
	m.entries = append(m.entries, entry)
	entry.Z = zIndexBase + len(m.entries)*zIndexStep

	if len(m.entries) == 1 {
		m.scroll.Lock()
		if m.listener != nil {
			m.listener.sessionStarted()
		}
	}

	surface.Show(entry.Z)
	m.log.Debug().Str("handle", handle).Int("z", entry.Z).Int("depth", len(m.entries)).Msg("dialog opened")

	m.populate(entry, populate)
	return entry, nil
}

// populate runs the content-population callback, containing any error or
// panic it produces. The dialog stays open with whatever partial content
// the callback managed to write.
func (m *Manager) populate(entry *Entry, fn PopulateFunc) {
	if fn == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			m.log.Error().Str("handle", entry.Handle).Any("panic", r).Msg("population callback panicked")
		}
	}()
	if err := fn(); err != nil {
		m.log.Error().Err(err).Str("handle", entry.Handle).Msg("population callback failed")
	}
}

// Close removes the dialog for handle from the stack and schedules its
// surface hide. A handle that is not on the stack still gets its surface
// hidden as best-effort recovery — a lost bookkeeping entry must never
// leave a dialog stuck on screen.
func (m *Manager) Close(handle string) {
	entry := m.find(handle)
	if entry == nil {
		if surface := m.registry.Lookup(handle); surface != nil {
			m.log.Warn().Str("handle", handle).Msg("close for handle not on stack, force-hiding surface")
			m.scheduleHide(surface, zIndexBase)
		}
		return
	}
	m.remove(entry)
}

// Back closes only the top dialog. At depth zero it is a no-op.
func (m *Manager) Back() {
	if len(m.entries) == 0 {
		return
	}
	m.remove(m.entries[len(m.entries)-1])
}

// CloseAll clears the whole stack at once, schedules every surface hide,
// and restores the scroll offset captured by the bottom-most dialog.
// Calling it on an empty stack does nothing.
func (m *Manager) CloseAll() {
	if len(m.entries) == 0 {
		return
	}
	bottom := m.entries[0]
	closed := m.entries
	m.entries = nil
	for _, e := range closed {
		m.scheduleHide(e.Surface, e.Z)
	}
	m.scroll.SetOffset(bottom.scrollOffset)
	m.log.Debug().Int("count", len(closed)).Msg("all dialogs closed")
	if m.listener != nil {
		m.listener.sessionEnded()
	}
}

// Tick advances deferred hides by d, hides surfaces whose delay elapsed,
// prunes drifted entries, and lets the synchronizer release the scroll
// lock once nothing is left on screen. Returns true if anything changed,
// for triggering a rerender.
func (m *Manager) Tick(d time.Duration) bool {
	changed := false
	for i := range m.closing {
		ph := &m.closing[i]
		if ph.phase != phaseLogicallyClosed {
			continue
		}
		ph.remaining -= d
		if ph.remaining <= 0 {
			ph.surface.Hide()
			ph.phase = phaseVisuallyHidden
			changed = true
		}
	}
	if m.sync.Reconcile() {
		changed = true
	}
	if m.sync.ReleaseScrollLock() {
		changed = true
	}
	return changed
}

// Overlay composites every on-screen dialog over the background at its
// layering value. Surfaces whose close is still in its hide delay remain
// part of the composition — "closed" does not yet mean "off screen".
func (m *Manager) Overlay(bg string, width, height int) string {
	type drawable struct {
		s Surface
		z int
	}
	var ds []drawable
	for _, ph := range m.closing {
		if ph.phase == phaseLogicallyClosed && ph.surface.Visible() {
			ds = append(ds, drawable{ph.surface, ph.z})
		}
	}
	for _, e := range m.entries {
		if e.Surface.Visible() {
			ds = append(ds, drawable{e.Surface, e.Z})
		}
	}
	if len(ds) == 0 {
		return bg
	}

	layers := []*lipgloss.Layer{lipgloss.NewLayer(bg)}
	for _, d := range ds {
		view := d.s.View(width, height)
		vw := lipgloss.Width(view)
		vh := lipgloss.Height(view)
		layer := lipgloss.NewLayer(view)
		layer.X(max((width-vw)/2, 0)).Y(max((height-vh)/2, 0)).Z(d.z)
		layers = append(layers, layer)
	}
	return lipgloss.NewCompositor(layers...).Render()
}

// find returns the stack entry for handle, or nil.
func (m *Manager) find(handle string) *Entry {
	for _, e := range m.entries {
		if e.Handle == handle {
			return e
		}
	}
	return nil
}

// remove takes entry off the stack, schedules its deferred hide, and —
// when it was the last dialog — restores the captured scroll offset and
// ends the session.
func (m *Manager) remove(entry *Entry) {
	for i, e := range m.entries {
		if e == entry {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			break
		}
	}
	m.scheduleHide(entry.Surface, entry.Z)
	m.log.Debug().Str("handle", entry.Handle).Int("depth", len(m.entries)).Msg("dialog closed")

	if len(m.entries) == 0 {
		// entry was the bottom-most dialog left, so its capture is the
		// restore point. The scroll lock keeps every capture in a session
		// equal, so closing out of stack order restores the same offset.
		m.scroll.SetOffset(entry.scrollOffset)
		if m.listener != nil {
			m.listener.sessionEnded()
		}
	}
}

// scheduleHide defers the surface's visual hide by the configured delay
// so its fade-out can play. The surface keeps its layering value for the
// duration; a dialog opened during the window takes its z from the stack
// as it is now, so the two can briefly share a layering band.
func (m *Manager) scheduleHide(s Surface, z int) {
	m.closing = append(m.closing, pendingHide{
		surface:   s,
		z:         z,
		remaining: m.hideDelay,
		phase:     phaseLogicallyClosed,
	})
}
