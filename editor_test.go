package ask

import (
	"os/exec"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shellEditor returns an Editor whose editor is a shell script. The file
// being edited is "$0" inside the script.
func shellEditor(t *testing.T, m *MockTerminal, script string) *Editor {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	e := NewEditor("Description", mockOptions(m)...)
	e.EditorCommand = "sh"
	e.EditorArgs = []string{"-c", script}
	return e
}

func TestEditor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		script     string
		predefined string
		keys       []Key
		expected   string
	}{
		{
			name:     "writes the file",
			script:   `printf 'hello' > "$0"`,
			keys:     StringKeys("e\n"),
			expected: "hello",
		},
		{
			name:       "starts from the predefined text",
			script:     `printf ' world' >> "$0"`,
			predefined: "hello",
			keys:       StringKeys("e\n"),
			expected:   "hello world",
		},
		{
			name:       "enter without opening",
			script:     `printf 'unused' > "$0"`,
			predefined: "as is",
			keys:       StringKeys("\n"),
			expected:   "as is",
		},
		{
			name:     "editing twice keeps the previous text",
			script:   `printf '+' >> "$0"`,
			keys:     StringKeys("ee\n"),
			expected: "++",
		},
		{
			name:     "file is read after a failing exit status",
			script:   `printf 'partial' > "$0"; exit 3`,
			keys:     StringKeys("e\n"),
			expected: "partial",
		},
		{
			name:     "other keys are ignored",
			script:   `printf 'x' > "$0"`,
			keys:     StringKeys("abc\n"),
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := NewMockTerminal(tt.keys...)
			e := shellEditor(t, m, tt.script)
			e.PredefinedText = tt.predefined

			answer, err := e.Prompt()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, answer)
			assert.False(t, m.IsRaw())
			assert.True(t, m.CursorVisible())
		})
	}
}

func TestEditorRawModeAroundEditor(t *testing.T) {
	t.Parallel()

	m := NewMockTerminal(StringKeys("e\n")...)
	_, err := shellEditor(t, m, `true`).Prompt()
	require.NoError(t, err)
	assert.Equal(t, 2, m.SetRawCalls())
	assert.Equal(t, 2, m.RestoreCalls())
	assert.False(t, m.IsRaw())
}

func TestEditorRendering(t *testing.T) {
	t.Parallel()

	m := NewMockTerminal(StringKeys("e\n")...)
	_, err := shellEditor(t, m, `printf 'text' > "$0"`).Prompt()
	require.NoError(t, err)

	assert.Equal(t, []string{"? Description [(e) to open sh, (enter) to submit]"}, plainLines(m.Frames()[0]))
	assert.Contains(t, m.Output(), "? Description <received>")
}

func TestEditorValidators(t *testing.T) {
	t.Parallel()

	m := NewMockTerminal(StringKeys("\ne\n")...)
	e := shellEditor(t, m, `printf 'filled' > "$0"`)
	e.Validators = []StringValidator{ValidateRequired("")}

	answer, err := e.Prompt()
	require.NoError(t, err)
	assert.Equal(t, "filled", answer)
	assert.Equal(t, 1, framesContaining(m, "# A response is required."))
}

func TestEditorMissingCommand(t *testing.T) {
	t.Parallel()

	m := NewMockTerminal(StringKeys("e\n")...)
	e := NewEditor("Description", mockOptions(m)...)
	e.EditorCommand = "ask-editor-that-does-not-exist"

	_, err := e.Prompt()
	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.ErrorIs(t, err, exec.ErrNotFound)
	assert.False(t, m.IsRaw())
	assert.True(t, m.CursorVisible())
}

func TestDefaultEditor(t *testing.T) {
	tests := []struct {
		name    string
		visual  string
		editor  string
		command string
		args    []string
	}{
		{"visual wins", "code --wait", "vim", "code", []string{"--wait"}},
		{"editor", "", "vim", "vim", []string{}},
		{"blank values are skipped", "  ", "emacs -nw", "emacs", []string{"-nw"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("VISUAL", tt.visual)
			t.Setenv("EDITOR", tt.editor)

			command, args := defaultEditor()
			assert.Equal(t, tt.command, command)
			assert.Equal(t, tt.args, args)
		})
	}

	t.Run("fallback", func(t *testing.T) {
		t.Setenv("VISUAL", "")
		t.Setenv("EDITOR", "")

		command, args := defaultEditor()
		if runtime.GOOS == "windows" {
			assert.Equal(t, "notepad", command)
		} else {
			assert.Equal(t, "nano", command)
		}
		assert.Empty(t, args)
	})
}
