package ask

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prefixSuggester(candidates ...string) Suggester {
	return func(in string) ([]string, error) {
		if in == "" {
			return nil, nil
		}
		var out []string
		for _, c := range candidates {
			if strings.HasPrefix(c, in) {
				out = append(out, c)
			}
		}
		return out, nil
	}
}

func TestTextSuggestions(t *testing.T) {
	t.Parallel()

	commands := prefixSuggester("git status", "git commit", "go build", "go test", "go vet")

	tests := []struct {
		name     string
		keys     []Key
		pageSize int
		expected string
	}{
		{
			name:     "enter picks the highlighted suggestion",
			keys:     []Key{Char('g'), {Type: KeyDown}, {Type: KeyDown}, {Type: KeyEnter}},
			expected: "git commit",
		},
		{
			name:     "moving above the first suggestion returns to the input",
			keys:     []Key{Char('g'), {Type: KeyDown}, {Type: KeyUp}, {Type: KeyEnter}},
			expected: "g",
		},
		{
			name:     "ctrl n and ctrl p move too",
			keys:     []Key{Char('g'), CtrlChar('n'), CtrlChar('n'), CtrlChar('p'), {Type: KeyEnter}},
			expected: "git status",
		},
		{
			name:     "down stops at the last suggestion",
			keys:     []Key{Char('g'), Char('i'), {Type: KeyDown}, {Type: KeyDown}, {Type: KeyDown}, {Type: KeyEnter}},
			expected: "git commit",
		},
		{
			name:     "tab completes the highlighted suggestion",
			keys:     []Key{Char('g'), Char('o'), {Type: KeyDown}, {Type: KeyTab}, Char('s'), {Type: KeyEnter}},
			expected: "go builds",
		},
		{
			name:     "tab without highlight and completer does nothing",
			keys:     []Key{Char('g'), {Type: KeyTab}, {Type: KeyEnter}},
			expected: "g",
		},
		{
			name:     "page keys move by page",
			keys:     []Key{Char('g'), {Type: KeyPageDown}, {Type: KeyPageDown}, {Type: KeyPageUp}, {Type: KeyEnter}},
			pageSize: 2,
			expected: "git commit",
		},
		{
			name:     "editing refreshes the list",
			keys:     []Key{Char('g'), {Type: KeyDown}, Char('o'), {Type: KeyDown}, {Type: KeyEnter}},
			expected: "go build",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var opts []Option
			if tt.pageSize > 0 {
				opts = append(opts, WithPageSize(tt.pageSize))
			}
			m := NewMockTerminal(tt.keys...)
			text := NewText("Command", mockOptions(m, opts...)...)
			text.Suggester = commands

			answer, err := text.Prompt()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, answer)
		})
	}
}

func TestTextSuggestionRendering(t *testing.T) {
	t.Parallel()

	m := NewMockTerminal(Char('g'), Key{Type: KeyDown}, Key{Type: KeyEnter})
	text := NewText("Command", mockOptions(m)...)
	text.Suggester = prefixSuggester("git status", "go build")

	_, err := text.Prompt()
	require.NoError(t, err)

	frames := m.Frames()
	require.GreaterOrEqual(t, len(frames), 3)
	assert.Equal(t, []string{
		"? Command g ",
		"  git status",
		"  go build",
		"[↑↓ to move, tab to autocomplete, enter to submit]",
	}, plainLines(frames[1]))
	assert.Equal(t, []string{
		"? Command g ",
		"> git status",
		"  go build",
		"[↑↓ to move, tab to autocomplete, enter to submit]",
	}, plainLines(frames[2]))
}

func TestTextSuggesterError(t *testing.T) {
	t.Parallel()

	m := NewMockTerminal(Char('x'), Key{Type: KeyEnter})
	text := NewText("Command", mockOptions(m)...)
	text.Suggester = func(in string) ([]string, error) {
		if in == "x" {
			return nil, errors.New("index unavailable")
		}
		return nil, nil
	}

	answer, err := text.Prompt()
	require.NoError(t, err, "a failing suggester does not end the prompt")
	assert.Equal(t, "x", answer)
	assert.Equal(t, 1, framesContaining(m, "# failed to get suggestions: index unavailable"))
}

func TestTextCompleter(t *testing.T) {
	t.Parallel()

	t.Run("replaces the input", func(t *testing.T) {
		t.Parallel()

		m := NewMockTerminal(Char('f'), Char('o'), Key{Type: KeyTab}, Key{Type: KeyEnter})
		text := NewText("Name", mockOptions(m)...)
		text.Completer = func(in string) (string, bool, error) {
			return in + "obar", true, nil
		}

		answer, err := text.Prompt()
		require.NoError(t, err)
		assert.Equal(t, "foobar", answer)
	})

	t.Run("declines", func(t *testing.T) {
		t.Parallel()

		m := NewMockTerminal(Char('f'), Key{Type: KeyTab}, Key{Type: KeyEnter})
		text := NewText("Name", mockOptions(m)...)
		text.Completer = func(string) (string, bool, error) { return "ignored", false, nil }

		answer, err := text.Prompt()
		require.NoError(t, err)
		assert.Equal(t, "f", answer)
	})

	t.Run("error aborts the prompt", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("completion backend down")
		m := NewMockTerminal(Char('f'), Key{Type: KeyTab}, Key{Type: KeyEnter})
		text := NewText("Name", mockOptions(m)...)
		text.Completer = func(string) (string, bool, error) { return "", false, boom }

		_, err := text.Prompt()
		var custom *CustomError
		require.ErrorAs(t, err, &custom)
		assert.ErrorIs(t, err, boom)
		assertRestored(t, m)
	})
}

func TestTextDefaultAndInitialValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		setup    func(text *Text)
		keys     []Key
		expected string
		shown    string
	}{
		{
			name:     "default on empty input",
			setup:    func(text *Text) { text.Default = "guest" },
			keys:     []Key{{Type: KeyEnter}},
			expected: "guest",
			shown:    "? Name (guest)  ",
		},
		{
			name:     "typed text wins over the default",
			setup:    func(text *Text) { text.Default = "guest" },
			keys:     StringKeys("joe\n"),
			expected: "joe",
			shown:    "? Name (guest)  ",
		},
		{
			name:     "initial value is editable",
			setup:    func(text *Text) { text.InitialValue = "jo" },
			keys:     StringKeys("e\n"),
			expected: "joe",
			shown:    "? Name jo ",
		},
		{
			name:     "placeholder is not an answer",
			setup:    func(text *Text) { text.Placeholder = "your name" },
			keys:     []Key{{Type: KeyEnter}},
			expected: "",
			shown:    "? Name your name ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := NewMockTerminal(tt.keys...)
			text := NewText("Name", mockOptions(m)...)
			tt.setup(text)

			answer, err := text.Prompt()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, answer)
			assert.Equal(t, []string{tt.shown}, plainLines(m.Frames()[0]))
		})
	}
}

func TestTextFormatter(t *testing.T) {
	t.Parallel()

	m := NewMockTerminal(StringKeys("joe\n")...)
	text := NewText("Name", mockOptions(m)...)
	text.Formatter = strings.ToUpper

	answer, err := text.Prompt()
	require.NoError(t, err)
	assert.Equal(t, "joe", answer, "the formatter only changes the echo")
	assert.Contains(t, m.Output(), "? Name JOE")
}

func TestTextHistory(t *testing.T) {
	t.Parallel()

	history := NewHistory(0)
	prompt := func(keys ...Key) string {
		t.Helper()
		m := NewMockTerminal(keys...)
		text := NewText("Command", mockOptions(m)...)
		text.History = history
		answer, err := text.Prompt()
		require.NoError(t, err)
		return answer
	}

	up, down, enter := Key{Type: KeyUp}, Key{Type: KeyDown}, Key{Type: KeyEnter}
	assert.Equal(t, "one", prompt(StringKeys("one\n")...))
	assert.Equal(t, "two", prompt(StringKeys("two\n")...))
	assert.Equal(t, "one", prompt(up, up, enter))
	assert.Equal(t, "one", prompt(up, up, up, up, enter), "stepping past the oldest entry stays on it")
	assert.Equal(t, "draft", prompt(append(StringKeys("draft"), up, down, enter)...))
	assert.Equal(t, "draft", prompt(up, enter))

	assert.Equal(t, []string{"one", "two", "one", "draft"}, history.Entries())
}
