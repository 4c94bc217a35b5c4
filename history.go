package ask

// DefaultHistorySize is the number of entries kept by NewHistory(0).
const DefaultHistorySize = 1000

// History remembers the answers given to Text prompts during the current
// process. Share one History between prompts to let the user recall earlier
// answers with Up and Down.
//
// History is not persisted and is not safe for concurrent use; prompts run
// one at a time.
type History struct {
	entries []string
	max     int

	// navigation state of the prompt currently using the history
	pos   int
	draft string
}

// NewHistory creates an empty history keeping at most max entries.
// A max of zero or less uses DefaultHistorySize.
func NewHistory(max int) *History {
	if max <= 0 {
		max = DefaultHistorySize
	}
	return &History{max: max}
}

// Add appends an entry. Empty entries and repeats of the latest entry are
// ignored. The oldest entries are dropped once the history is full.
func (h *History) Add(entry string) {
	if entry == "" {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == entry {
		h.reset()
		return
	}
	h.entries = append(h.entries, entry)
	if over := len(h.entries) - h.max; over > 0 {
		h.entries = append(h.entries[:0], h.entries[over:]...)
	}
	h.reset()
}

// Entries returns a copy of the entries, oldest first.
func (h *History) Entries() []string {
	return append([]string{}, h.entries...)
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Clear removes every entry.
func (h *History) Clear() {
	h.entries = nil
	h.reset()
}

// reset ends any navigation in progress.
func (h *History) reset() {
	h.pos = len(h.entries)
	h.draft = ""
}

// earlier steps back one entry. current is the text being edited; it is
// kept so that stepping past the newest entry restores it.
func (h *History) earlier(current string) (string, bool) {
	if h.pos == 0 || len(h.entries) == 0 {
		return "", false
	}
	if h.pos > len(h.entries) {
		h.pos = len(h.entries)
	}
	if h.pos == len(h.entries) {
		h.draft = current
	}
	h.pos--
	return h.entries[h.pos], true
}

// later steps forward one entry, returning the saved draft after the newest.
func (h *History) later() (string, bool) {
	if h.pos >= len(h.entries) {
		return "", false
	}
	h.pos++
	if h.pos == len(h.entries) {
		return h.draft, true
	}
	return h.entries[h.pos], true
}
