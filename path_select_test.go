package ask

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeTree creates a small project layout and returns its root:
//
//	docs/readme.md
//	src/
//	.hidden
//	main.go
//	notes.txt
func makeTree(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o755))
	for _, f := range []string{".hidden", "main.go", "notes.txt", filepath.Join("docs", "readme.md")} {
		require.NoError(t, os.WriteFile(filepath.Join(root, f), []byte("x"), 0o600))
	}
	return root
}

func TestPathSelect(t *testing.T) {
	t.Parallel()

	down, enter := Key{Type: KeyDown}, Key{Type: KeyEnter}

	tests := []struct {
		name     string
		mode     PathSelectionMode
		start    string
		keys     []Key
		expected string
	}{
		{
			name:     "enter opens a directory that cannot be picked",
			mode:     SelectFiles(),
			keys:     []Key{enter, enter},
			expected: filepath.Join("docs", "readme.md"),
		},
		{
			name:     "extension filter",
			mode:     SelectFiles("GO"),
			keys:     []Key{down, down, down, enter, {Type: KeyUp}, enter},
			expected: "main.go",
		},
		{
			name:     "directories",
			mode:     SelectDirectories(),
			keys:     []Key{down, enter},
			expected: "src",
		},
		{
			name:     "right opens and left goes back to the directory",
			mode:     SelectAny(),
			keys:     []Key{{Type: KeyRight}, {Type: KeyLeft}, enter},
			expected: "docs",
		},
		{
			name:     "left from a subdirectory",
			mode:     SelectAny(),
			start:    "docs",
			keys:     []Key{{Type: KeyLeft}, down, enter},
			expected: "src",
		},
		{
			name:     "ctrl t shows dot files",
			mode:     SelectFiles(),
			keys:     []Key{CtrlChar('t'), down, down, enter},
			expected: ".hidden",
		},
		{
			name:     "filter",
			mode:     SelectFiles(),
			keys:     append(StringKeys("note"), enter),
			expected: "notes.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := makeTree(t)
			m := NewMockTerminal(tt.keys...)
			p := NewPathSelect("File", mockOptions(m)...)
			p.Mode = tt.mode
			p.StartDir = filepath.Join(root, tt.start)

			answer, err := p.Prompt()
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(root, tt.expected), answer)
		})
	}
}

func TestPathSelectRendering(t *testing.T) {
	t.Parallel()

	root := makeTree(t)
	m := NewMockTerminal(Key{Type: KeyEnter}, Key{Type: KeyEscape})
	m.SetSize(300, 24)
	p := NewPathSelect("File", mockOptions(m)...)
	p.Mode = SelectFiles(".md")
	p.StartDir = root

	_, err := p.Prompt()
	require.ErrorIs(t, err, ErrCanceled)

	sep := string(filepath.Separator)
	frames := m.Frames()
	assert.Equal(t, []string{
		"? File (" + root + ")  ",
		"> docs" + sep,
		"  src" + sep,
		"  main.go",
		"  notes.txt",
		"[↑↓ to move, → to open, ← to go up, enter to select, type to filter]",
	}, plainLines(frames[0]))
	assert.Equal(t, []string{
		"? File (" + filepath.Join(root, "docs") + ")  ",
		"> readme.md",
		"[↑↓ to move, → to open, ← to go up, enter to select, type to filter]",
	}, plainLines(frames[1]))
}

func TestPathSelectValidators(t *testing.T) {
	t.Parallel()

	root := makeTree(t)
	m := NewMockTerminal(append(StringKeys("main\n"), CtrlChar('u'), Char('n'), Char('o'), Key{Type: KeyEnter})...)
	p := NewPathSelect("File", mockOptions(m)...)
	p.StartDir = root
	p.Validators = []StringValidator{func(path string) (Validation, error) {
		if strings.HasSuffix(path, ".go") {
			return Invalid("source files are not accepted"), nil
		}
		return Valid(), nil
	}}

	answer, err := p.Prompt()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "notes.txt"), answer)
	assert.Equal(t, 1, framesContaining(m, "# source files are not accepted"))
}

func TestPathSelectInvalidConfig(t *testing.T) {
	t.Parallel()

	t.Run("missing start directory", func(t *testing.T) {
		t.Parallel()

		m := NewMockTerminal()
		p := NewPathSelect("File", mockOptions(m)...)
		p.StartDir = filepath.Join(t.TempDir(), "missing")

		_, err := p.Prompt()
		var ioErr *IOError
		require.ErrorAs(t, err, &ioErr)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Zero(t, m.SetRawCalls())
	})

	t.Run("mode selecting nothing", func(t *testing.T) {
		t.Parallel()

		m := NewMockTerminal()
		p := NewPathSelect("File", mockOptions(m)...)
		p.Mode = PathSelectionMode{}

		_, err := p.Prompt()
		var cfgErr *InvalidConfigError
		require.ErrorAs(t, err, &cfgErr)
	})
}

func TestReadEntries(t *testing.T) {
	t.Parallel()

	root := makeTree(t)
	if runtime.GOOS != "windows" {
		require.NoError(t, os.Symlink(filepath.Join(root, "src"), filepath.Join(root, "link")))
	}

	entries, err := readEntries(root, false)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.label())
	}
	sep := string(filepath.Separator)
	expected := []string{"docs" + sep, "src" + sep, "main.go", "notes.txt"}
	if runtime.GOOS != "windows" {
		expected = []string{"docs" + sep, "link" + sep, "src" + sep, "main.go", "notes.txt"}
	}
	assert.Equal(t, expected, names)

	entries, err = readEntries(root, true)
	require.NoError(t, err)
	assert.Contains(t, entries, pathEntry{name: ".hidden"})
}

func TestPathSelectionMode(t *testing.T) {
	t.Parallel()

	md := SelectFiles("md", ".TXT")
	assert.True(t, md.selectable(pathEntry{name: "README.MD"}))
	assert.True(t, md.selectable(pathEntry{name: "notes.txt"}))
	assert.False(t, md.selectable(pathEntry{name: "main.go"}))
	assert.False(t, md.selectable(pathEntry{name: "docs", dir: true}))

	assert.True(t, SelectDirectories().selectable(pathEntry{name: "docs", dir: true}))
	assert.False(t, SelectDirectories().selectable(pathEntry{name: "main.go"}))
	assert.True(t, SelectAny().selectable(pathEntry{name: "main.go"}))
}
