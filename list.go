package ask

import (
	"slices"
	"sort"

	"golang.org/x/text/cases"
)

// ListOption is an option picked from a list, with its index in the
// original options.
type ListOption[T any] struct {
	Index int
	Value T
}

// Filter reports whether an option stays visible for the current filter
// input. str is the option as displayed and index its original position.
// Visible options keep their original order.
type Filter[T any] func(input string, option T, str string, index int) bool

// Scorer ranks an option for the current filter input. Options with ok set
// to false are hidden; the others are shown by descending score, ties in
// original order.
type Scorer[T any] func(input string, option T, str string, index int) (score int, ok bool)

// DefaultScorer matches the filter as a case-insensitive subsequence of the
// option and ranks options by where the match starts, earliest first.
func DefaultScorer[T any]() Scorer[T] {
	return func(input string, _ T, str string, _ int) (int, bool) {
		pos, ok := subsequenceStart(input, str)
		return -pos, ok
	}
}

// ScorerFromFilter turns a Filter into a Scorer that keeps original order.
func ScorerFromFilter[T any](f Filter[T]) Scorer[T] {
	return func(input string, option T, str string, index int) (int, bool) {
		return 0, f(input, option, str, index)
	}
}

// subsequenceStart reports whether every rune of pattern occurs in s in
// order (ignoring case) and the rune position where the earliest match
// begins.
func subsequenceStart(pattern, s string) (int, bool) {
	folder := cases.Fold()
	p := []rune(folder.String(pattern))
	if len(p) == 0 {
		return 0, true
	}
	candidate := []rune(folder.String(s))

	for start, r := range candidate {
		if r != p[0] {
			continue
		}
		j := 1
		for i := start + 1; i < len(candidate) && j < len(p); i++ {
			if candidate[i] == p[j] {
				j++
			}
		}
		if j == len(p) {
			return start, true
		}
		// A later start can only see fewer runes.
		return 0, false
	}
	return 0, false
}

// page is the visible window of a list.
type page struct {
	items  []pageItem
	cursor int // relative to items, -1 when nothing is highlighted
	first  bool
	last   bool
	total  int
}

type pageItem struct {
	index int
	label string
}

// paginate picks the window of at most pageSize entries out of n that shows
// sel. It returns the window bounds and sel relative to start.
func paginate(pageSize, n, sel int) (start, end, cursor int) {
	switch {
	case n <= pageSize:
		return 0, n, sel
	case sel < pageSize/2:
		// first half page
		return 0, pageSize, sel
	case n-sel-1 < pageSize/2:
		// last half page
		start = n - pageSize
		return start, n, sel - start
	default:
		above := pageSize / 2
		below := pageSize - above
		return sel - above, sel + below, above
	}
}

// listView holds the options of a list prompt together with the filter,
// the cursor and, for multi selections, the set of checked options.
type listView[T any] struct {
	options  []T
	labels   []string
	scorer   Scorer[T]
	filter   string
	filtered []int // original indices, in display order
	cursor   int   // index into filtered, -1 when filtered is empty
	pageSize int
	checked  map[int]struct{}
}

func newListView[T any](options []T, labels []string, scorer Scorer[T], pageSize int) *listView[T] {
	if scorer == nil {
		scorer = DefaultScorer[T]()
	}
	l := &listView[T]{
		options:  options,
		labels:   labels,
		scorer:   scorer,
		pageSize: pageSize,
		checked:  make(map[int]struct{}),
	}
	l.filtered = l.filterOptions()
	l.cursor = 0
	if len(l.filtered) == 0 {
		l.cursor = -1
	}
	return l
}

func (l *listView[T]) filterOptions() []int {
	indices := make([]int, 0, len(l.options))
	if l.filter == "" {
		for i := range l.options {
			indices = append(indices, i)
		}
		return indices
	}

	scores := make(map[int]int, len(l.options))
	for i, opt := range l.options {
		if score, ok := l.scorer(l.filter, opt, l.labels[i], i); ok {
			indices = append(indices, i)
			scores[i] = score
		}
	}
	sort.SliceStable(indices, func(a, b int) bool {
		return scores[indices[a]] > scores[indices[b]]
	})
	return indices
}

// setFilter recomputes the visible options. The cursor stays on the same
// option when it is still visible and goes to the first option otherwise.
func (l *listView[T]) setFilter(filter string) {
	current, hadCurrent := l.current()
	l.filter = filter
	l.filtered = l.filterOptions()

	l.cursor = 0
	if len(l.filtered) == 0 {
		l.cursor = -1
		return
	}
	if hadCurrent {
		if pos := slices.Index(l.filtered, current); pos >= 0 {
			l.cursor = pos
		}
	}
}

// current returns the original index of the highlighted option.
func (l *listView[T]) current() (int, bool) {
	if l.cursor < 0 || l.cursor >= len(l.filtered) {
		return 0, false
	}
	return l.filtered[l.cursor], true
}

// setCursor moves the cursor onto the option with the given original index
// if it is visible.
func (l *listView[T]) setCursor(index int) bool {
	pos := slices.Index(l.filtered, index)
	if pos < 0 {
		return false
	}
	return l.moveTo(pos)
}

func (l *listView[T]) moveTo(pos int) bool {
	if pos == l.cursor {
		return false
	}
	l.cursor = pos
	return true
}

func (l *listView[T]) moveUp(qty int, wrap bool) bool {
	n := len(l.filtered)
	if n == 0 {
		return false
	}
	pos := l.cursor - qty
	if pos < 0 {
		if wrap {
			pos = ((pos % n) + n) % n
		} else {
			pos = 0
		}
	}
	return l.moveTo(pos)
}

func (l *listView[T]) moveDown(qty int, wrap bool) bool {
	n := len(l.filtered)
	if n == 0 {
		return false
	}
	pos := l.cursor + qty
	if pos >= n {
		if wrap {
			pos %= n
		} else {
			pos = n - 1
		}
	}
	return l.moveTo(pos)
}

func (l *listView[T]) home() bool {
	if len(l.filtered) == 0 {
		return false
	}
	return l.moveTo(0)
}

func (l *listView[T]) end() bool {
	if len(l.filtered) == 0 {
		return false
	}
	return l.moveTo(len(l.filtered) - 1)
}

// handleKey applies list navigation keys: Up/Down and Tab/BackTab move by
// one with wrap-around, PageUp/PageDown by a page and Home/End to the ends.
// The second result reports whether the key was a navigation key.
func (l *listView[T]) handleKey(k Key) (changed bool, handled bool) {
	switch k.Type {
	case KeyUp, KeyBackTab:
		return l.moveUp(1, true), true
	case KeyDown, KeyTab:
		return l.moveDown(1, true), true
	case KeyPageUp:
		return l.moveUp(l.pageSize, false), true
	case KeyPageDown:
		return l.moveDown(l.pageSize, false), true
	case KeyHome:
		return l.home(), true
	case KeyEnd:
		return l.end(), true
	}
	return false, false
}

// handleVimKey applies j/k/g/G. Callers only use it while the filter is empty.
func (l *listView[T]) handleVimKey(k Key) (changed bool, handled bool) {
	switch {
	case k.isChar('k'):
		return l.moveUp(1, true), true
	case k.isChar('j'):
		return l.moveDown(1, true), true
	case k.isChar('g'):
		return l.home(), true
	case k.isChar('G'):
		return l.end(), true
	}
	return false, false
}

func (l *listView[T]) page() page {
	sel := l.cursor
	if sel < 0 {
		sel = 0
	}
	start, end, cursor := paginate(l.pageSize, len(l.filtered), sel)
	if l.cursor < 0 {
		cursor = -1
	}
	items := make([]pageItem, 0, end-start)
	for _, idx := range l.filtered[start:end] {
		items = append(items, pageItem{index: idx, label: l.labels[idx]})
	}
	return page{
		items:  items,
		cursor: cursor,
		first:  start == 0,
		last:   end == len(l.filtered),
		total:  len(l.filtered),
	}
}

func (l *listView[T]) isChecked(index int) bool {
	_, ok := l.checked[index]
	return ok
}

func (l *listView[T]) check(index int) {
	l.checked[index] = struct{}{}
}

// toggle flips the highlighted option.
func (l *listView[T]) toggle() bool {
	idx, ok := l.current()
	if !ok {
		return false
	}
	if l.isChecked(idx) {
		delete(l.checked, idx)
	} else {
		l.check(idx)
	}
	return true
}

// checkAllFiltered checks every visible option.
func (l *listView[T]) checkAllFiltered() bool {
	changed := false
	for _, idx := range l.filtered {
		if !l.isChecked(idx) {
			l.check(idx)
			changed = true
		}
	}
	return changed
}

// uncheckAllFiltered unchecks every visible option.
func (l *listView[T]) uncheckAllFiltered() bool {
	changed := false
	for _, idx := range l.filtered {
		if l.isChecked(idx) {
			delete(l.checked, idx)
			changed = true
		}
	}
	return changed
}

// checkedOptions returns the checked options in ascending original order.
func (l *listView[T]) checkedOptions() []ListOption[T] {
	indices := make([]int, 0, len(l.checked))
	for idx := range l.checked {
		indices = append(indices, idx)
	}
	slices.Sort(indices)
	out := make([]ListOption[T], 0, len(indices))
	for _, idx := range indices {
		out = append(out, ListOption[T]{Index: idx, Value: l.options[idx]})
	}
	return out
}
