package overlay

import "github.com/rs/zerolog"

// Synchronizer reconciles the logical stack against the actual observable
// visibility of each surface. Outside code can hide a surface directly,
// leaving a stale stack entry behind; the synchronizer prunes those, and
// it alone decides when the scroll lock may be released.
type Synchronizer struct {
	mgr *Manager
	log zerolog.Logger
}

// Reconcile drops every stack entry whose surface is no longer observably
// visible. Returns true if any entry was pruned. Pruning the last entry
// ends the dialog session (so the history checkpoint is popped) but does
// not restore the scroll offset — the page was never navigated back to.
func (s *Synchronizer) Reconcile() bool {
	pruned := false
	kept := s.mgr.entries[:0]
	for _, e := range s.mgr.entries {
		if e.Surface.Visible() {
			kept = append(kept, e)
			continue
		}
		pruned = true
		s.log.Debug().Str("handle", e.Handle).Msg("stack drift: surface hidden outside the manager, pruning entry")
	}
	s.mgr.entries = kept

	if pruned && len(s.mgr.entries) == 0 && s.mgr.listener != nil {
		s.mgr.listener.sessionEnded()
	}
	return pruned
}

// ReleaseScrollLock unlocks the main view once the reconciled stack is
// empty and no registered surface remains visible. The double check
// guards against both stale entries and hides that never completed;
// neither the stack nor the timer alone is trusted. Returns true if the
// lock was released.
func (s *Synchronizer) ReleaseScrollLock() bool {
	// Sweep hide records the delay has already completed for, once their
	// surfaces are confirmed invisible.
	kept := s.mgr.closing[:0]
	for _, ph := range s.mgr.closing {
		if ph.phase == phaseVisuallyHidden && !ph.surface.Visible() {
			continue
		}
		kept = append(kept, ph)
	}
	s.mgr.closing = kept

	if len(s.mgr.entries) > 0 || len(s.mgr.closing) > 0 {
		return false
	}
	if s.mgr.registry.AnyVisible() {
		return false
	}
	if !s.mgr.scroll.Locked() {
		return false
	}
	s.mgr.scroll.Unlock()
	s.log.Debug().Msg("dialog session idle, scroll lock released")
	return true
}
