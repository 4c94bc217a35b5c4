package ask

import "unicode"

// inputResult tells the caller what a key did to an input.
type inputResult int

const (
	inputUnchanged inputResult = iota
	inputCursorMoved
	inputContentChanged
)

// input is a single line text editor.
//
// Content is kept as runes and the cursor is a rune index in [0, len].
// A word is a maximal run of non-whitespace runes.
type input struct {
	chars       []rune
	cursor      int
	placeholder string
}

func newInput() *input {
	return &input{}
}

// newInputWith returns an input holding s with the cursor at the end.
func newInputWith(s string) *input {
	chars := []rune(s)
	return &input{chars: chars, cursor: len(chars)}
}

func (in *input) withPlaceholder(p string) *input {
	in.placeholder = p
	return in
}

func (in *input) content() string    { return string(in.chars) }
func (in *input) preCursor() string  { return string(in.chars[:in.cursor]) }
func (in *input) postCursor() string { return string(in.chars[in.cursor:]) }
func (in *input) length() int        { return len(in.chars) }
func (in *input) isEmpty() bool      { return len(in.chars) == 0 }

func (in *input) insert(r rune) {
	in.chars = append(in.chars, 0)
	copy(in.chars[in.cursor+1:], in.chars[in.cursor:])
	in.chars[in.cursor] = r
	in.cursor++
}

// deleteRange removes chars[from:to] and leaves the cursor at from.
func (in *input) deleteRange(from, to int) bool {
	if from >= to {
		return false
	}
	in.chars = append(in.chars[:from], in.chars[to:]...)
	in.cursor = from
	return true
}

func (in *input) backspace() bool {
	if in.cursor == 0 {
		return false
	}
	return in.deleteRange(in.cursor-1, in.cursor)
}

func (in *input) deleteForward() bool {
	if in.cursor >= len(in.chars) {
		return false
	}
	return in.deleteRange(in.cursor, in.cursor+1)
}

func (in *input) moveTo(pos int) bool {
	if pos == in.cursor {
		return false
	}
	in.cursor = pos
	return true
}

func (in *input) moveLeft() bool {
	if in.cursor == 0 {
		return false
	}
	return in.moveTo(in.cursor - 1)
}

func (in *input) moveRight() bool {
	if in.cursor >= len(in.chars) {
		return false
	}
	return in.moveTo(in.cursor + 1)
}

func (in *input) home() bool { return in.moveTo(0) }
func (in *input) end() bool  { return in.moveTo(len(in.chars)) }

// wordStartBefore returns the start of the word left of the cursor,
// skipping any whitespace right before it.
func (in *input) wordStartBefore() int {
	i := in.cursor
	for i > 0 && unicode.IsSpace(in.chars[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(in.chars[i-1]) {
		i--
	}
	return i
}

// wordEndAfter returns the end of the word right of the cursor,
// skipping any whitespace right after it.
func (in *input) wordEndAfter() int {
	i := in.cursor
	for i < len(in.chars) && unicode.IsSpace(in.chars[i]) {
		i++
	}
	for i < len(in.chars) && !unicode.IsSpace(in.chars[i]) {
		i++
	}
	return i
}

func (in *input) moveWordLeft() bool  { return in.moveTo(in.wordStartBefore()) }
func (in *input) moveWordRight() bool { return in.moveTo(in.wordEndAfter()) }

func (in *input) deleteWordBackward() bool {
	return in.deleteRange(in.wordStartBefore(), in.cursor)
}

func (in *input) deleteWordForward() bool {
	cursor := in.cursor
	return in.deleteRange(cursor, in.wordEndAfter())
}

func (in *input) deleteToStart() bool {
	return in.deleteRange(0, in.cursor)
}

func (in *input) deleteToEnd() bool {
	return in.deleteRange(in.cursor, len(in.chars))
}

// replaceAll swaps the content for s and moves the cursor to the end.
func (in *input) replaceAll(s string) {
	in.chars = []rune(s)
	in.cursor = len(in.chars)
}

func (in *input) clear() {
	in.chars = nil
	in.cursor = 0
}

func moved(ok bool) inputResult {
	if ok {
		return inputCursorMoved
	}
	return inputUnchanged
}

func changed(ok bool) inputResult {
	if ok {
		return inputContentChanged
	}
	return inputUnchanged
}

// handle applies an editing key:
//
//   - Left/Right (Ctrl or Alt: by word), Home/End, Ctrl+A/Ctrl+E, Ctrl+B/Ctrl+F
//   - Backspace, Delete, Ctrl+D (Ctrl or Alt with Backspace/Delete: by word)
//   - Ctrl+W delete word backwards, Ctrl+U delete to start, Ctrl+K delete to end
//   - printable runes are inserted at the cursor
func (in *input) handle(k Key) inputResult {
	word := k.Has(ModCtrl) || k.Has(ModAlt)

	switch k.Type {
	case KeyLeft:
		if word {
			return moved(in.moveWordLeft())
		}
		return moved(in.moveLeft())
	case KeyRight:
		if word {
			return moved(in.moveWordRight())
		}
		return moved(in.moveRight())
	case KeyHome:
		return moved(in.home())
	case KeyEnd:
		return moved(in.end())
	case KeyBackspace:
		if word {
			return changed(in.deleteWordBackward())
		}
		return changed(in.backspace())
	case KeyDelete:
		if word {
			return changed(in.deleteWordForward())
		}
		return changed(in.deleteForward())
	case KeyRune:
		return in.handleRune(k)
	}
	return inputUnchanged
}

func (in *input) handleRune(k Key) inputResult {
	switch {
	case k.Mod == 0 || k.Mod == ModShift:
		if !unicode.IsPrint(k.Rune) {
			return inputUnchanged
		}
		in.insert(k.Rune)
		return inputContentChanged
	case k.Has(ModCtrl):
		switch k.Rune {
		case 'a':
			return moved(in.home())
		case 'e':
			return moved(in.end())
		case 'b':
			return moved(in.moveLeft())
		case 'f':
			return moved(in.moveRight())
		case 'd':
			return changed(in.deleteForward())
		case 'w':
			return changed(in.deleteWordBackward())
		case 'u':
			return changed(in.deleteToStart())
		case 'k':
			return changed(in.deleteToEnd())
		}
	case k.Has(ModAlt):
		switch k.Rune {
		case 'b':
			return moved(in.moveWordLeft())
		case 'f':
			return moved(in.moveWordRight())
		case 'd':
			return changed(in.deleteWordForward())
		}
	}
	return inputUnchanged
}
