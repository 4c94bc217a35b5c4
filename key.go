package ask

import (
	"fmt"
	"strings"
)

// KeyType identifies the kind of a decoded key event.
type KeyType int

// Key types produced by the terminal driver.
const (
	KeyUnknown KeyType = iota
	KeyRune
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyDelete
	KeyTab
	KeyBackTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInterrupt
	KeyResize
)

var keyTypeNames = map[KeyType]string{
	KeyUnknown:   "unknown",
	KeyRune:      "rune",
	KeyEnter:     "enter",
	KeyEscape:    "esc",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyTab:       "tab",
	KeyBackTab:   "backtab",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
	KeyInterrupt: "interrupt",
	KeyResize:    "resize",
}

func (t KeyType) String() string {
	if name, ok := keyTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("KeyType(%d)", int(t))
}

// Modifiers is a bit set of modifier keys held during a key event.
type Modifiers uint8

// Modifier bits.
const (
	ModCtrl Modifiers = 1 << iota
	ModAlt
	ModShift
)

// Key is a single decoded keyboard (or terminal) event.
//
// Printable characters have Type KeyRune with Rune set. Control characters
// other than the ones with a dedicated type are reported as KeyRune with the
// lower case letter in Rune and ModCtrl in Mod, so Ctrl+W is CtrlChar('w').
// Width and Height are only set for KeyResize.
type Key struct {
	Type   KeyType
	Rune   rune
	Mod    Modifiers
	Width  int
	Height int
}

// Char returns the key event for typing r.
func Char(r rune) Key {
	return Key{Type: KeyRune, Rune: r}
}

// CtrlChar returns the key event for Ctrl plus the letter r.
func CtrlChar(r rune) Key {
	return Key{Type: KeyRune, Rune: r, Mod: ModCtrl}
}

// StringKeys converts s into the key events produced by typing it.
// A '\n' becomes Enter. Useful for scripting a MockTerminal.
func StringKeys(s string) []Key {
	keys := make([]Key, 0, len(s))
	for _, r := range s {
		if r == '\n' {
			keys = append(keys, Key{Type: KeyEnter})
			continue
		}
		keys = append(keys, Char(r))
	}
	return keys
}

// Has reports whether all modifiers in m are held.
func (k Key) Has(m Modifiers) bool {
	return k.Mod&m == m
}

// isChar reports whether k is the unmodified printable rune r.
func (k Key) isChar(r rune) bool {
	return k.Type == KeyRune && k.Mod == 0 && k.Rune == r
}

// isCtrl reports whether k is Ctrl plus the letter r.
func (k Key) isCtrl(r rune) bool {
	return k.Type == KeyRune && k.Mod == ModCtrl && k.Rune == r
}

func (k Key) String() string {
	var b strings.Builder
	if k.Has(ModCtrl) {
		b.WriteString("ctrl+")
	}
	if k.Has(ModAlt) {
		b.WriteString("alt+")
	}
	if k.Has(ModShift) {
		b.WriteString("shift+")
	}
	if k.Type == KeyRune {
		b.WriteRune(k.Rune)
		return b.String()
	}
	b.WriteString(k.Type.String())
	if k.Type == KeyResize {
		fmt.Fprintf(&b, "(%dx%d)", k.Width, k.Height)
	}
	return b.String()
}
