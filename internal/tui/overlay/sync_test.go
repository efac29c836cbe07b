package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynchronizer_prunes_externally_hidden_entries(t *testing.T) {
	mgr, reg, scroll := newTestManager()
	a := newFakeSurface()
	b := newFakeSurface()
	reg.Register("a", a)
	reg.Register("b", b)
	_, _ = mgr.Open("a", nil)
	_, _ = mgr.Open("b", nil)

	a.Hide() // hidden behind the manager's back

	assert.True(t, mgr.sync.Reconcile())
	assert.Equal(t, 1, mgr.Depth())
	assert.Equal(t, "b", mgr.Top().Handle)
	assert.True(t, scroll.locked, "a dialog is still up")
}

func TestSynchronizer_releases_lock_when_only_entry_drifts(t *testing.T) {
	mgr, reg, scroll := newTestManager()
	s := newFakeSurface()
	reg.Register("a", s)
	_, _ = mgr.Open("a", nil)
	require.True(t, scroll.locked)

	s.Hide()
	mgr.Tick(0)

	assert.Equal(t, 0, mgr.Depth())
	assert.False(t, scroll.locked)
	assert.Empty(t, scroll.setCalls, "drift recovery does not restore the scroll offset")
}

func TestSynchronizer_no_release_while_any_surface_visible(t *testing.T) {
	mgr, reg, scroll := newTestManager()
	a := newFakeSurface()
	stray := newFakeSurface()
	reg.Register("a", a)
	reg.Register("stray", stray)

	_, _ = mgr.Open("a", nil)
	stray.visible = true // shown by code outside the manager
	mgr.Back()
	drainHides(mgr)

	// The stack under-counts; the visible stray surface keeps the lock.
	assert.Equal(t, 0, mgr.Depth())
	assert.True(t, scroll.locked)

	stray.visible = false
	mgr.Tick(0)
	assert.False(t, scroll.locked)
}

func TestSynchronizer_reconcile_keeps_visible_entries(t *testing.T) {
	mgr, reg, _ := newTestManager()
	reg.Register("a", newFakeSurface())
	_, _ = mgr.Open("a", nil)

	assert.False(t, mgr.sync.Reconcile())
	assert.Equal(t, 1, mgr.Depth())
}
