package tui

// checkpointEntry is the sentinel the dialog stack pushes into history so
// a platform back action returns to the page the user was on, not one
// step earlier.
const checkpointEntry = "::dialogs::"

// pageHistory is the in-app navigation history.
type pageHistory struct {
	entries []string
}

func newPageHistory(start string) *pageHistory {
	return &pageHistory{entries: []string{start}}
}

// Current returns the page the user is on, skipping over a dialog
// checkpoint if one is on top.
func (h *pageHistory) Current() string {
	for i := len(h.entries) - 1; i >= 0; i-- {
		if h.entries[i] != checkpointEntry {
			return h.entries[i]
		}
	}
	return ""
}

// Push records a page navigation.
func (h *pageHistory) Push(page string) {
	h.entries = append(h.entries, page)
}

// Pop navigates back one page. The starting page is never popped.
func (h *pageHistory) Pop() string {
	if len(h.entries) > 1 {
		h.entries = h.entries[:len(h.entries)-1]
	}
	return h.Current()
}

// Depth returns the number of history entries, checkpoints included.
func (h *pageHistory) Depth() int { return len(h.entries) }

// PushCheckpoint marks the start of a dialog session.
func (h *pageHistory) PushCheckpoint() {
	h.entries = append(h.entries, checkpointEntry)
}

// PopCheckpoint removes the session marker. A pop with no checkpoint on
// top is ignored rather than eating a real page entry.
func (h *pageHistory) PopCheckpoint() {
	if n := len(h.entries); n > 0 && h.entries[n-1] == checkpointEntry {
		h.entries = h.entries[:n-1]
	}
}
