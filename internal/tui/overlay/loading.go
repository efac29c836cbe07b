package overlay

import "github.com/rs/zerolog"

// LoadingGuard brackets the content-population step of a dialog open with
// a per-dialog busy indicator. It is independent of the open/close
// animation timing: it covers only the population step, and it is
// released exactly once per open attempt on every path — normal
// completion, failing callback, and the no-callback case.
type LoadingGuard struct {
	registry *Registry
	log      zerolog.Logger
	active   map[string]bool
}

// NewLoadingGuard creates a loading guard over the given registry.
func NewLoadingGuard(registry *Registry, logger zerolog.Logger) *LoadingGuard {
	return &LoadingGuard{
		registry: registry,
		log:      logger,
		active:   make(map[string]bool),
	}
}

// Show marks the dialog for handle busy and reveals its busy indicator.
// Showing an already-busy handle is a no-op.
func (g *LoadingGuard) Show(handle string) {
	if g.active[handle] {
		return
	}
	g.active[handle] = true
	if s := g.registry.Lookup(handle); s != nil {
		s.SetBusy(true)
	}
}

// Hide releases the busy marker for handle. Safe to call more than once;
// only the first call after a Show has any effect.
func (g *LoadingGuard) Hide(handle string) {
	if !g.active[handle] {
		return
	}
	delete(g.active, handle)
	if s := g.registry.Lookup(handle); s != nil {
		s.SetBusy(false)
	}
}

// Loading reports whether the dialog for handle is currently marked busy.
func (g *LoadingGuard) Loading(handle string) bool {
	return g.active[handle]
}
