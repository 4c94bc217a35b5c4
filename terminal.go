package ask

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// Terminal abstracts the character-cell terminal a prompt runs on.
//
// Prompts only talk to the terminal through this interface, so the same
// state machines run against the real controlling terminal (go-tty) and
// against MockTerminal in tests. Writes may be buffered; nothing is
// guaranteed to be visible before Flush.
//
// Implementations must make Size return a usable size (never zero) and must
// tolerate Close being called twice.
type Terminal interface {
	SetRaw() error                        // Enter raw mode for immediate key processing
	Restore() error                       // Restore the settings saved by SetRaw
	ReadKey() (Key, error)                // Block until the next key (or resize) event
	WriteStyled(s Styled) error           // Write text with a style
	MoveCursor(dx, dy int) error          // Move the cursor relative to its position
	ClearToEndOfScreen() error            // Erase from the cursor to the end of the screen
	Flush() error                         // Make buffered writes visible
	HideCursor() error                    // Hide the cursor
	ShowCursor() error                    // Show the cursor
	Size() (width, height int, err error) // Terminal dimensions with safe fallbacks
	Close() error                         // Release the terminal
}

// fileTerminal is implemented by terminals backed by real files, so a child
// process (the external editor) can be attached to them.
type fileTerminal interface {
	Files() (in, out *os.File)
}

const (
	fallbackWidth  = 80
	fallbackHeight = 24

	// escapeTimeout is how long to wait after ESC for the rest of an escape
	// sequence before reporting a lone Esc key.
	escapeTimeout = 50 * time.Millisecond
)

const (
	csi      = "\x1b["
	resetSGR = "\x1b[0m"
)

// ansiWriter encodes terminal operations as ANSI escape sequences.
type ansiWriter struct {
	w io.Writer
}

func (a ansiWriter) WriteStyled(s Styled) error {
	if s.Content == "" {
		return nil
	}
	if s.Style.IsEmpty() {
		_, err := io.WriteString(a.w, s.Content)
		return err
	}
	_, err := io.WriteString(a.w, s.Style.ToANSI()+s.Content+resetSGR)
	return err
}

func (a ansiWriter) MoveCursor(dx, dy int) error {
	var seq string
	switch {
	case dx < 0:
		seq += fmt.Sprintf(csi+"%dD", -dx)
	case dx > 0:
		seq += fmt.Sprintf(csi+"%dC", dx)
	}
	switch {
	case dy < 0:
		seq += fmt.Sprintf(csi+"%dA", -dy)
	case dy > 0:
		seq += fmt.Sprintf(csi+"%dB", dy)
	}
	if seq == "" {
		return nil
	}
	_, err := io.WriteString(a.w, seq)
	return err
}

func (a ansiWriter) ClearToEndOfScreen() error {
	_, err := io.WriteString(a.w, csi+"J")
	return err
}

func (a ansiWriter) HideCursor() error {
	_, err := io.WriteString(a.w, csi+"?25l")
	return err
}

func (a ansiWriter) ShowCursor() error {
	_, err := io.WriteString(a.w, csi+"?25h")
	return err
}

// runeReader is the input side of the tty.
type runeReader interface {
	ReadRune() (rune, error)
}

type readResult struct {
	r   rune
	err error
}

// realTerminal implements Terminal on the controlling terminal.
//
// Input comes from go-tty, raw mode is handled with golang.org/x/term on the
// tty's input descriptor, and output goes to the tty itself (through
// go-colorable on Windows) so stdout stays free for the program's own output.
//
//   - Double-close protection: the closed flag makes a second Close a no-op
//   - Safe size fallbacks: Size returns 80x24 when detection fails
//   - Resize: SIGWINCH notifications from go-tty surface as KeyResize
//   - Reads are issued on demand, so no input is consumed while an external
//     program owns the terminal
type realTerminal struct {
	ansiWriter
	tty           *tty.TTY
	in            runeReader
	out           *bufio.Writer
	keyMap        *KeyMap
	winch         <-chan tty.WINSIZE
	pending       chan readResult
	seqErr        error // read error hit in the middle of an escape sequence
	closed        bool
	fd            int
	originalState *term.State
}

func newRealTerminal(keyMap *KeyMap) (*realTerminal, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, err
	}

	var output io.Writer = t.Output()
	if runtime.GOOS == "windows" {
		output = colorable.NewColorable(t.Output())
	}
	out := bufio.NewWriter(output)

	if keyMap == nil {
		keyMap = NewDefaultKeyMap()
	}

	return &realTerminal{
		ansiWriter: ansiWriter{w: out},
		tty:        t,
		in:         t,
		out:        out,
		keyMap:     keyMap,
		winch:      t.SIGWINCH(),
		fd:         int(t.Input().Fd()),
	}, nil
}

func (t *realTerminal) SetRaw() error {
	// Always capture the current state so that every SetRaw/Restore pair
	// returns to the settings in place right before it.
	if term.IsTerminal(t.fd) {
		state, err := term.GetState(t.fd)
		if err != nil {
			return err
		}
		t.originalState = state

		if _, err := term.MakeRaw(t.fd); err != nil {
			return err
		}
	}
	return nil
}

func (t *realTerminal) Restore() error {
	if t.originalState != nil && term.IsTerminal(t.fd) {
		err := term.Restore(t.fd, t.originalState)
		t.originalState = nil
		return err
	}
	return nil
}

func (t *realTerminal) Size() (width, height int, err error) {
	w, h, err := t.tty.Size()
	if err != nil || w <= 0 || h <= 0 {
		return fallbackWidth, fallbackHeight, err
	}
	return w, h, nil
}

// requestRune starts a read unless one is already outstanding.
func (t *realTerminal) requestRune() <-chan readResult {
	if t.pending == nil {
		ch := make(chan readResult, 1)
		t.pending = ch
		go func() {
			r, err := t.in.ReadRune()
			ch <- readResult{r: r, err: err}
		}()
	}
	return t.pending
}

func (t *realTerminal) ReadKey() (Key, error) {
	select {
	case res := <-t.requestRune():
		t.pending = nil
		if res.err != nil {
			return Key{}, res.err
		}
		key := t.keyMap.decode(res.r, t.nextRune)
		if err := t.seqErr; err != nil {
			t.seqErr = nil
			return Key{}, err
		}
		return key, nil
	case ws := <-t.winch:
		return Key{Type: KeyResize, Width: ws.W, Height: ws.H}, nil
	}
}

func (t *realTerminal) nextRune() (rune, bool) {
	timer := time.NewTimer(escapeTimeout)
	defer timer.Stop()
	select {
	case res := <-t.requestRune():
		t.pending = nil
		if res.err != nil {
			t.seqErr = res.err
			return 0, false
		}
		return res.r, true
	case <-timer.C:
		return 0, false
	}
}

func (t *realTerminal) Flush() error {
	return t.out.Flush()
}

func (t *realTerminal) Files() (in, out *os.File) {
	return t.tty.Input(), t.tty.Output()
}

func (t *realTerminal) Close() error {
	// Prevent double-close which causes panic on Windows
	if t.closed {
		return nil
	}
	if t.tty != nil {
		err := t.tty.Close()
		t.closed = true
		return err
	}
	return nil
}
