package ask

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)

// plainLines strips escape sequences from a frame and splits it into rows.
func plainLines(frame string) []string {
	text := ansiPattern.ReplaceAllString(frame, "")
	text = strings.TrimSuffix(text, "\r\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\r\n")
}

// renderOnce draws a single frame on a mock terminal of the given width.
func renderOnce(t *testing.T, width int, rc RenderConfig, draw func(r *renderer)) (*renderer, []string) {
	t.Helper()

	m := NewMockTerminal()
	m.SetSize(width, 24)
	r := newRenderer(m, rc)
	require.NoError(t, r.frameSetup())
	draw(r)
	require.NoError(t, r.frameFinish())

	frames := m.Frames()
	require.Len(t, frames, 1)
	return r, plainLines(frames[0])
}

func TestRendererLines(t *testing.T) {
	t.Parallel()

	def := "guest"
	tests := []struct {
		name     string
		draw     func(r *renderer)
		expected []string
	}{
		{
			name:     "prompt",
			draw:     func(r *renderer) { r.renderPrompt("Name") },
			expected: []string{"? Name"},
		},
		{
			name:     "prompt with input",
			draw:     func(r *renderer) { r.renderPromptWithInput("Name", nil, newInputWith("joe")) },
			expected: []string{"? Name joe "},
		},
		{
			name:     "default value",
			draw:     func(r *renderer) { r.renderPromptWithInput("Name", &def, newInput()) },
			expected: []string{"? Name (guest)  "},
		},
		{
			name: "placeholder",
			draw: func(r *renderer) {
				r.renderPromptWithInput("Name", nil, newInput().withPlaceholder("e.g. joe"))
			},
			expected: []string{"? Name e.g. joe "},
		},
		{
			name:     "masked input",
			draw:     func(r *renderer) { r.renderPromptWithMaskedInput("Password", newInputWith("abc"), false) },
			expected: []string{"? Password *** "},
		},
		{
			name:     "masked input revealing the last rune",
			draw:     func(r *renderer) { r.renderPromptWithMaskedInput("Password", newInputWith("abc"), true) },
			expected: []string{"? Password **c "},
		},
		{
			name:     "hidden input",
			draw:     func(r *renderer) { r.renderPromptWithHiddenInput("Password") },
			expected: []string{"? Password "},
		},
		{
			name:     "answer",
			draw:     func(r *renderer) { r.renderPromptWithAnswer("Name", "joe") },
			expected: []string{"? Name joe"},
		},
		{
			name:     "canceled",
			draw:     func(r *renderer) { r.renderCanceledPrompt("Name") },
			expected: []string{"? Name <canceled>"},
		},
		{
			name:     "error with default message",
			draw:     func(r *renderer) { r.renderErrorMessage("") },
			expected: []string{"# Invalid input."},
		},
		{
			name:     "help",
			draw:     func(r *renderer) { r.renderHelpMessage("enter to submit") },
			expected: []string{"[enter to submit]"},
		},
		{
			name:     "editor",
			draw:     func(r *renderer) { r.renderEditorPrompt("Notes", "vim") },
			expected: []string{"? Notes [(e) to open vim, (enter) to submit]"},
		},
		{
			name: "options with scroll marks",
			draw: func(r *renderer) {
				l := newStringList([]string{"a", "b", "c", "d", "e"}, 3)
				l.cursor = 2
				r.renderOptions(l.page(), optionMarks{})
			},
			expected: []string{"^ b", "> c", "v d"},
		},
		{
			name: "checkboxes and disabled options",
			draw: func(r *renderer) {
				l := newStringList([]string{"a", "b", "c"}, 7)
				l.cursor = 1
				r.renderOptions(l.page(), optionMarks{
					checked:  func(i int) bool { return i == 1 },
					disabled: func(i int) bool { return i == 2 },
				})
			},
			expected: []string{"  [ ] a", "> [x] b", "  [ ] c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, lines := renderOnce(t, 80, EmptyRenderConfig(), tt.draw)
			assert.Equal(t, tt.expected, lines)
		})
	}
}

func TestRendererWrapsLongInput(t *testing.T) {
	t.Parallel()

	r, lines := renderOnce(t, 10, EmptyRenderConfig(), func(r *renderer) {
		r.renderPromptWithInput("Name", nil, newInputWith("abcdefghijklmnopqrst"))
	})

	assert.Equal(t, []string{"? Name abc", "defghijklm", "nopqrst "}, lines)
	assert.Equal(t, 3, r.lastLines)
	assert.Equal(t, position{row: 2, col: 7}, r.cursor, "caret after the last typed rune")
}

func TestRendererTruncatesOptions(t *testing.T) {
	t.Parallel()

	_, lines := renderOnce(t, 12, EmptyRenderConfig(), func(r *renderer) {
		l := newStringList([]string{"abcdefghijklmnop"}, 7)
		r.renderOptions(l.page(), optionMarks{})
	})

	assert.Equal(t, []string{"> abcdefghi…"}, lines)
}

func TestRendererGlobalPrefix(t *testing.T) {
	t.Parallel()

	rc := EmptyRenderConfig().WithGlobalPrefix(NewStyled("|"))
	_, lines := renderOnce(t, 80, rc, func(r *renderer) {
		r.renderErrorMessage("bad")
		r.renderPrompt("Name")
	})

	assert.Equal(t, []string{"| # bad", "| ? Name"}, lines)
}

func TestRendererRepaintsFromOrigin(t *testing.T) {
	t.Parallel()

	m := NewMockTerminal()
	r := newRenderer(m, EmptyRenderConfig())
	in := newInputWith("joe")

	for range 2 {
		require.NoError(t, r.frameSetup())
		r.renderPromptWithInput("Name", nil, in)
		require.NoError(t, r.frameFinish())
	}

	frames := m.Frames()
	require.Len(t, frames, 2)
	assert.Equal(t, "\x1b[?25l? Name joe \r\n\x1b[10C\x1b[1A\x1b[?25h", frames[0])
	assert.Equal(t, "\x1b[?25l\x1b[10D\x1b[J? Name joe \r\n\x1b[10C\x1b[1A\x1b[?25h", frames[1])

	require.NoError(t, r.cleanup())
	assert.Equal(t, "\x1b[10D\x1b[1B\x1b[?25h", m.Frames()[2], "cleanup leaves the cursor below the frame")
}

func TestRendererFrameIsIdempotent(t *testing.T) {
	t.Parallel()

	m := NewMockTerminal(Char('a'), Key{Type: KeyResize}, Key{Type: KeyResize}, Key{Type: KeyEnter})
	answer, err := NewText("Name", WithTerminal(m), WithRenderConfig(EmptyRenderConfig())).Prompt()
	require.NoError(t, err)
	assert.Equal(t, "a", answer)

	frames := m.Frames()
	require.GreaterOrEqual(t, len(frames), 4)
	assert.Equal(t, frames[2], frames[3])
	assert.NotEqual(t, frames[0], frames[1])
}

func TestCalendarStart(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		month     time.Month
		year      int
		weekStart time.Weekday
		expected  time.Time
	}{
		{"month starting on week start", time.August, 2021, time.Sunday, time.Date(2021, time.July, 25, 0, 0, 0, 0, time.UTC)},
		{"monday weeks", time.September, 2021, time.Monday, time.Date(2021, time.August, 30, 0, 0, 0, 0, time.UTC)},
		{"year boundary", time.January, 2022, time.Sunday, time.Date(2021, time.December, 26, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, calendarStart(tt.month, tt.year, tt.weekStart))
		})
	}
}

func TestRenderCalendar(t *testing.T) {
	t.Parallel()

	r, lines := renderOnce(t, 80, EmptyRenderConfig(), func(r *renderer) {
		r.renderCalendar(calendarView{
			month:     time.August,
			year:      2021,
			weekStart: time.Sunday,
			today:     time.Date(2021, time.August, 3, 0, 0, 0, 0, time.UTC),
			selected:  time.Date(2021, time.August, 15, 0, 0, 0, 0, time.UTC),
		})
	})

	assert.Equal(t, []string{
		">     august 2021     ",
		"> su mo tu we th fr sa",
		"> 25 26 27 28 29 30 31",
		">  1  2  3  4  5  6  7",
		">  8  9 10 11 12 13 14",
		"> 15 16 17 18 19 20 21",
		"> 22 23 24 25 26 27 28",
		"> 29 30 31  1  2  3  4",
	}, lines)
	assert.Equal(t, position{row: 5, col: 2}, r.cursor, "cursor on the selected date")
}

func TestCenterText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "  ab  ", centerText("ab", 6))
	assert.Equal(t, " abc  ", centerText("abc", 6))
	assert.Equal(t, "toolong", centerText("toolong", 3))
}
