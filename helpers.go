package ask

import (
	"os"
	"path/filepath"
	"strings"
)

// NewPathSuggester returns a Suggester completing file system paths for a
// Text prompt. Directories are suggested with a trailing separator so that
// accepting one with Tab continues into it. Dot files are only suggested
// once the typed name starts with a dot.
//
// Example:
//
//	text := ask.NewText("File:")
//	text.Suggester = ask.NewPathSuggester()
func NewPathSuggester() Suggester {
	return func(in string) ([]string, error) {
		return completeFilePath(in), nil
	}
}

// completeFilePath lists the entries of the directory part of path whose
// names start with its last element. Unreadable directories suggest nothing.
func completeFilePath(path string) []string {
	dir, base := filepath.Split(path)
	readDir := dir
	if readDir == "" {
		readDir = "."
	}

	entries, err := os.ReadDir(readDir)
	if err != nil {
		return nil
	}

	suggestions := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()

		if strings.HasPrefix(name, ".") && !strings.HasPrefix(base, ".") {
			continue
		}
		if !strings.HasPrefix(name, base) {
			continue
		}

		full := dir + name
		if entry.IsDir() {
			full += string(filepath.Separator)
		}
		suggestions = append(suggestions, full)
	}
	return suggestions
}
