package ask

import (
	"errors"
	"io"
	"strings"
)

// errWriteFailed is returned by MockTerminal writes once the configured
// write budget is exhausted.
var errWriteFailed = errors.New("mock terminal: write failed")

// MockTerminal implements Terminal for tests and scripted sessions.
//
// It replays a fixed sequence of keys and records everything a prompt does
// to the terminal, so tests can assert on the final answer as well as on the
// terminal state left behind.
//
//   - Deterministic input: keys are returned in order, then io.EOF (or the
//     error set with SetReadError)
//   - Output capture: all writes as ANSI text, plus one string per Flush
//   - Mode tracking: raw mode, cursor visibility and call counters
//   - Fixed size: 80x24 unless changed with SetSize
type MockTerminal struct {
	ansiWriter
	keys    []Key
	pos     int
	readErr error

	width  int
	height int

	raw           bool
	cursorHidden  bool
	closed        bool
	setRawCalls   int
	restoreCalls  int
	output        strings.Builder
	frame         strings.Builder
	frames        []string
	writesAllowed int
}

// NewMockTerminal creates a terminal that will deliver keys in order.
func NewMockTerminal(keys ...Key) *MockTerminal {
	m := &MockTerminal{
		keys:          keys,
		readErr:       io.EOF,
		width:         fallbackWidth,
		height:        fallbackHeight,
		writesAllowed: -1,
	}
	m.ansiWriter = ansiWriter{w: mockOutput{m}}
	return m
}

type mockOutput struct {
	m *MockTerminal
}

func (o mockOutput) Write(p []byte) (int, error) {
	m := o.m
	if m.writesAllowed == 0 {
		return 0, errWriteFailed
	}
	if m.writesAllowed > 0 {
		m.writesAllowed--
	}
	m.output.Write(p)
	m.frame.Write(p)
	return len(p), nil
}

// SetSize changes the size reported by Size.
func (m *MockTerminal) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetReadError sets the error returned once all keys were consumed.
func (m *MockTerminal) SetReadError(err error) {
	m.readErr = err
}

// FailWritesAfter makes every write after the first n fail.
func (m *MockTerminal) FailWritesAfter(n int) {
	m.writesAllowed = n
}

// IsRaw reports whether the terminal is currently in raw mode.
func (m *MockTerminal) IsRaw() bool { return m.raw }

// CursorVisible reports whether the cursor is currently shown.
func (m *MockTerminal) CursorVisible() bool { return !m.cursorHidden }

// Closed reports whether Close was called.
func (m *MockTerminal) Closed() bool { return m.closed }

// SetRawCalls returns how many times SetRaw was called.
func (m *MockTerminal) SetRawCalls() int { return m.setRawCalls }

// RestoreCalls returns how many times Restore was called.
func (m *MockTerminal) RestoreCalls() int { return m.restoreCalls }

// Output returns everything written so far, escape sequences included.
func (m *MockTerminal) Output() string { return m.output.String() }

// Frames returns the output of each Flush call, in order.
func (m *MockTerminal) Frames() []string { return m.frames }

// Remaining returns the number of keys not read yet.
func (m *MockTerminal) Remaining() int { return len(m.keys) - m.pos }

func (m *MockTerminal) SetRaw() error {
	m.raw = true
	m.setRawCalls++
	return nil
}

func (m *MockTerminal) Restore() error {
	m.raw = false
	m.restoreCalls++
	return nil
}

func (m *MockTerminal) ReadKey() (Key, error) {
	if m.pos >= len(m.keys) {
		return Key{}, m.readErr
	}
	k := m.keys[m.pos]
	m.pos++
	return k, nil
}

func (m *MockTerminal) HideCursor() error {
	if err := m.ansiWriter.HideCursor(); err != nil {
		return err
	}
	m.cursorHidden = true
	return nil
}

func (m *MockTerminal) ShowCursor() error {
	if err := m.ansiWriter.ShowCursor(); err != nil {
		return err
	}
	m.cursorHidden = false
	return nil
}

func (m *MockTerminal) Flush() error {
	m.frames = append(m.frames, m.frame.String())
	m.frame.Reset()
	return nil
}

func (m *MockTerminal) Size() (width, height int, err error) {
	return m.width, m.height, nil
}

func (m *MockTerminal) Close() error {
	m.closed = true
	return nil
}
