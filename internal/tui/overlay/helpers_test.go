package overlay

import (
	"strings"

	"github.com/rs/zerolog"
)

// fakeSurface is a Surface with inspectable state and a fixed panel size.
type fakeSurface struct {
	width, height int

	visible bool
	busy    bool
	z       int

	shows, hides    int
	busyOn, busyOff int
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{width: 20, height: 5}
}

func (s *fakeSurface) Show(z int) {
	s.visible = true
	s.z = z
	s.shows++
}

func (s *fakeSurface) Hide() {
	s.visible = false
	s.hides++
}

func (s *fakeSurface) Visible() bool { return s.visible }

func (s *fakeSurface) SetBusy(busy bool) {
	s.busy = busy
	if busy {
		s.busyOn++
	} else {
		s.busyOff++
	}
}

func (s *fakeSurface) Busy() bool { return s.busy }

func (s *fakeSurface) View(width, height int) string {
	row := strings.Repeat("#", s.width)
	rows := make([]string, s.height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

// fakeScroll records offset writes and lock transitions.
type fakeScroll struct {
	offset   int
	locked   bool
	setCalls []int
}

func (f *fakeScroll) Offset() int { return f.offset }

func (f *fakeScroll) SetOffset(offset int) {
	f.offset = offset
	f.setCalls = append(f.setCalls, offset)
}

func (f *fakeScroll) Lock()        { f.locked = true }
func (f *fakeScroll) Unlock()      { f.locked = false }
func (f *fakeScroll) Locked() bool { return f.locked }

// recordingHistory counts checkpoint pushes and pops.
type recordingHistory struct {
	pushes int
	pops   int
}

func (h *recordingHistory) PushCheckpoint() { h.pushes++ }
func (h *recordingHistory) PopCheckpoint()  { h.pops++ }

// newTestManager builds a manager over fresh fakes with the default hide
// delay.
func newTestManager() (*Manager, *Registry, *fakeScroll) {
	reg := NewRegistry()
	scroll := &fakeScroll{}
	mgr := NewManager(reg, scroll, 0, zerolog.Nop())
	return mgr, reg, scroll
}

// drainHides ticks the manager well past the hide delay.
func drainHides(mgr *Manager) {
	mgr.Tick(DefaultHideDelay * 2)
}
