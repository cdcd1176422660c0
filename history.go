package prompts

// defaultHistoryEntries is the memory limit of a History created with a
// non-positive size.
const defaultHistoryEntries = 1000

// History keeps the values previously submitted to Input prompts so they can
// be recalled with the Up and Down keys. It lives in memory only.
//
// A History may be shared by several prompts, but like the prompts themselves
// it must only be used from one goroutine.
type History struct {
	maxEntries int
	entries    []string
}

// NewHistory creates a history holding at most maxEntries values.
func NewHistory(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = defaultHistoryEntries
	}
	return &History{
		maxEntries: maxEntries,
		entries:    make([]string, 0),
	}
}

// Add appends entry. Empty entries and repeats of the latest entry are ignored.
func (h *History) Add(entry string) {
	if entry == "" {
		return
	}
	if len(h.entries) > 0 && h.entries[len(h.entries)-1] == entry {
		return
	}
	h.entries = append(h.entries, entry)
	if len(h.entries) > h.maxEntries {
		h.entries = h.entries[len(h.entries)-h.maxEntries:]
	}
}

// Entries returns a copy of the history, oldest first.
func (h *History) Entries() []string {
	return append([]string{}, h.entries...)
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Clear removes every entry.
func (h *History) Clear() {
	h.entries = h.entries[:0]
}

func (h *History) at(i int) string {
	return h.entries[i]
}
