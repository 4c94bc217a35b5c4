package ask

// KeyMap translates raw terminal input into Key events.
//
// Single runes and escape sequences (without the leading ESC) are looked up
// in two tables. Runes that are not bound decode as printable characters,
// or as Ctrl plus a letter for the control range 0x01-0x1a.
// Sequences that are not bound decode as KeyUnknown.
//
// Example:
//
//	km := ask.NewDefaultKeyMap()
//	// Treat Ctrl+G as Escape
//	km.Bind('\x07', ask.Key{Type: ask.KeyEscape})
//	// Map F1 (ESC O P) to Tab
//	km.BindSequence("OP", ask.Key{Type: ask.KeyTab})
type KeyMap struct {
	bindings  map[rune]Key
	sequences map[string]Key
}

// NewDefaultKeyMap creates the key decoding table used by the real terminal.
//
// It understands the CSI and SS3 forms emitted by xterm compatible terminals,
// the rxvt/linux console variants of Home and End, and xterm modifier
// parameters (;2 shift, ;3 alt, ;5 ctrl) on the arrow keys.
func NewDefaultKeyMap() *KeyMap {
	km := &KeyMap{
		bindings:  make(map[rune]Key),
		sequences: make(map[string]Key),
	}

	km.bindings['\r'] = Key{Type: KeyEnter}
	km.bindings['\n'] = Key{Type: KeyEnter}
	km.bindings['\t'] = Key{Type: KeyTab}
	km.bindings['\x03'] = Key{Type: KeyInterrupt}             // Ctrl+C
	km.bindings['\x7f'] = Key{Type: KeyBackspace}             // Backspace
	km.bindings['\b'] = Key{Type: KeyBackspace, Mod: ModCtrl} // Ctrl+Backspace
	km.bindings['\x1b'] = Key{Type: KeyEscape}                // lone Esc

	arrows := map[byte]KeyType{'A': KeyUp, 'B': KeyDown, 'C': KeyRight, 'D': KeyLeft}
	for final, typ := range arrows {
		km.sequences["["+string(final)] = Key{Type: typ}
		km.sequences["O"+string(final)] = Key{Type: typ}
		km.sequences["[1;2"+string(final)] = Key{Type: typ, Mod: ModShift}
		km.sequences["[1;3"+string(final)] = Key{Type: typ, Mod: ModAlt}
		km.sequences["[1;5"+string(final)] = Key{Type: typ, Mod: ModCtrl}
	}

	for _, seq := range []string{"[H", "OH", "[1~", "[7~"} {
		km.sequences[seq] = Key{Type: KeyHome}
	}
	for _, seq := range []string{"[F", "OF", "[4~", "[8~"} {
		km.sequences[seq] = Key{Type: KeyEnd}
	}
	km.sequences["[5~"] = Key{Type: KeyPageUp}
	km.sequences["[6~"] = Key{Type: KeyPageDown}
	km.sequences["[3~"] = Key{Type: KeyDelete}
	km.sequences["[3;5~"] = Key{Type: KeyDelete, Mod: ModCtrl}
	km.sequences["[Z"] = Key{Type: KeyBackTab}

	return km
}

// Bind adds or updates the decoding of a single rune.
func (km *KeyMap) Bind(r rune, key Key) {
	km.bindings[r] = key
}

// BindSequence adds or updates the decoding of an escape sequence.
// The sequence should not include the initial ESC character.
func (km *KeyMap) BindSequence(seq string, key Key) {
	km.sequences[seq] = key
}

// Lookup decodes a single rune.
func (km *KeyMap) Lookup(r rune) Key {
	if km != nil {
		if key, ok := km.bindings[r]; ok {
			return key
		}
	}
	if r >= 0x01 && r <= 0x1a {
		return CtrlChar('a' + r - 1)
	}
	return Char(r)
}

// LookupSequence decodes an escape sequence, or returns KeyUnknown.
func (km *KeyMap) LookupSequence(seq string) Key {
	if km != nil {
		if key, ok := km.sequences[seq]; ok {
			return key
		}
	}
	return Key{Type: KeyUnknown}
}

// maxSequenceLen bounds how many runes are consumed after ESC.
const maxSequenceLen = 16

// decode turns the rune r and any runes that immediately follow it into one
// Key. next returns the following rune, or false when no further input
// arrived in time; this is how a lone Esc is told apart from a sequence.
func (km *KeyMap) decode(r rune, next func() (rune, bool)) Key {
	if r != '\x1b' {
		return km.Lookup(r)
	}

	r2, ok := next()
	if !ok {
		return km.Lookup('\x1b')
	}

	switch r2 {
	case '[':
		seq := []rune{'['}
		for len(seq) < maxSequenceLen {
			c, ok := next()
			if !ok {
				break
			}
			seq = append(seq, c)
			// CSI final bytes are in 0x40-0x7e; '[' itself starts the
			// linux console F-key form and is not final here.
			if c >= 0x40 && c <= 0x7e && !(len(seq) == 2 && c == '[') {
				break
			}
		}
		return km.LookupSequence(string(seq))
	case 'O':
		c, ok := next()
		if !ok {
			return Key{Type: KeyRune, Rune: 'O', Mod: ModAlt}
		}
		return km.LookupSequence(string([]rune{'O', c}))
	case '\x1b':
		return km.Lookup('\x1b')
	}

	key := km.Lookup(r2)
	key.Mod |= ModAlt
	return key
}
