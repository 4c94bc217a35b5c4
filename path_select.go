package ask

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"
)

const pathSelectHelp = "↑↓ to move, → to open, ← to go up, enter to select, type to filter"

// PathSelectionMode decides which entries of a PathSelect can be chosen.
type PathSelectionMode struct {
	files bool
	dirs  bool
	exts  []string
}

// SelectFiles allows choosing files. With extensions (like ".go" or "md"),
// only files with one of them are selectable.
func SelectFiles(extensions ...string) PathSelectionMode {
	exts := make([]string, 0, len(extensions))
	for _, e := range extensions {
		e = strings.ToLower(e)
		if e != "" && !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		exts = append(exts, e)
	}
	return PathSelectionMode{files: true, exts: exts}
}

// SelectDirectories allows choosing directories only.
func SelectDirectories() PathSelectionMode {
	return PathSelectionMode{dirs: true}
}

// SelectAny allows choosing files and directories.
func SelectAny() PathSelectionMode {
	return PathSelectionMode{files: true, dirs: true}
}

func (m PathSelectionMode) selectable(e pathEntry) bool {
	if e.dir {
		return m.dirs
	}
	if !m.files {
		return false
	}
	if len(m.exts) == 0 {
		return true
	}
	return slices.Contains(m.exts, strings.ToLower(filepath.Ext(e.name)))
}

type pathEntry struct {
	name string
	dir  bool
}

func (e pathEntry) label() string {
	if e.dir {
		return e.name + string(filepath.Separator)
	}
	return e.name
}

// PathSelect lets the user browse the file system and pick a path.
// Directories are listed first. Right opens the highlighted directory, Left
// goes to the parent and Ctrl+T shows or hides dot files. Enter picks a
// selectable entry, or opens a directory that cannot be picked.
//
// The answer is an absolute path.
type PathSelect struct {
	Message    string
	StartDir   string // Defaults to the working directory
	Mode       PathSelectionMode
	ShowHidden bool
	Validators []StringValidator
	Formatter  Formatter[string]

	config Config

	dir     string
	entries []pathEntry
	list    *listView[pathEntry]
	filter  *input
	errorLine
}

// NewPathSelect creates a PathSelect prompt choosing files.
func NewPathSelect(message string, opts ...Option) *PathSelect {
	return &PathSelect{
		Message:   message,
		Mode:      SelectFiles(),
		Formatter: DefaultStringFormatter,
		config:    newConfig(opts),
	}
}

// Prompt shows the browser and returns the chosen path.
func (p *PathSelect) Prompt() (string, error) {
	return p.PromptContext(context.Background())
}

// PromptContext is Prompt with a context that can abort the prompt
// between key presses.
func (p *PathSelect) PromptContext(ctx context.Context) (string, error) {
	return run[string](ctx, p.config, p.Message, p)
}

// PromptSkippable is Prompt returning ok=false instead of ErrCanceled.
func (p *PathSelect) PromptSkippable() (string, bool, error) {
	return skippable(p.Prompt())
}

func (p *PathSelect) setup() error {
	if !p.Mode.files && !p.Mode.dirs {
		return invalidConfig("path selection mode allows neither files nor directories")
	}
	if p.Formatter == nil {
		p.Formatter = DefaultStringFormatter
	}
	start := p.StartDir
	if start == "" {
		start = "."
	}
	abs, err := filepath.Abs(start)
	if err != nil {
		return &IOError{Err: fmt.Errorf("failed to resolve start directory: %w", err)}
	}
	p.filter = newInput()
	if err := p.open(abs, ""); err != nil {
		return &IOError{Err: err}
	}
	return nil
}

// readEntries lists dir, directories first, each group by name.
func readEntries(dir string, showHidden bool) ([]pathEntry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	entries := make([]pathEntry, 0, len(des))
	for _, de := range des {
		name := de.Name()
		if !showHidden && strings.HasPrefix(name, ".") {
			continue
		}
		isDir := de.IsDir()
		if de.Type()&fs.ModeSymlink != 0 {
			if info, err := os.Stat(filepath.Join(dir, name)); err == nil {
				isDir = info.IsDir()
			}
		}
		entries = append(entries, pathEntry{name: name, dir: isDir})
	}
	slices.SortStableFunc(entries, func(a, b pathEntry) int {
		switch {
		case a.dir && !b.dir:
			return -1
		case !a.dir && b.dir:
			return 1
		}
		return strings.Compare(a.name, b.name)
	})
	return entries, nil
}

// open lists dir and highlights the entry called focus, if present.
func (p *PathSelect) open(dir, focus string) error {
	entries, err := readEntries(dir, p.ShowHidden)
	if err != nil {
		return err
	}
	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.label()
	}
	p.dir = dir
	p.entries = entries
	p.filter.clear()
	p.list = newListView(entries, labels, nil, p.config.PageSize)
	if focus != "" {
		if i := slices.IndexFunc(entries, func(e pathEntry) bool { return e.name == focus }); i >= 0 {
			p.list.setCursor(i)
		}
	}
	getLogger().Debug("directory opened", zap.String("dir", dir), zap.Int("entries", len(entries)))
	return nil
}

// navigate opens dir, keeping the current listing and showing the error
// when it cannot be read.
func (p *PathSelect) navigate(dir, focus string) bool {
	if err := p.open(dir, focus); err != nil {
		p.reject(err.Error())
	}
	return true
}

func (p *PathSelect) highlighted() (pathEntry, bool) {
	idx, ok := p.list.current()
	if !ok {
		return pathEntry{}, false
	}
	return p.entries[idx], true
}

func (p *PathSelect) descend() bool {
	e, ok := p.highlighted()
	if !ok || !e.dir {
		return false
	}
	return p.navigate(filepath.Join(p.dir, e.name), "")
}

func (p *PathSelect) ascend() bool {
	parent := filepath.Dir(p.dir)
	if parent == p.dir {
		return false
	}
	return p.navigate(parent, filepath.Base(p.dir))
}

func (p *PathSelect) handle(k Key) (bool, error) {
	switch {
	case k.Type == KeyRight && k.Mod == 0:
		return p.descend(), nil
	case k.Type == KeyLeft && k.Mod == 0:
		return p.ascend(), nil
	case k.isCtrl('t'):
		p.ShowHidden = !p.ShowHidden
		focus := ""
		if e, ok := p.highlighted(); ok {
			focus = e.name
		}
		return p.navigate(p.dir, focus), nil
	}

	if changed, ok := p.list.handleKey(k); ok {
		return changed, nil
	}
	if p.config.VimMode && p.filter.isEmpty() {
		if changed, ok := p.list.handleVimKey(k); ok {
			return changed, nil
		}
	}
	switch p.filter.handle(k) {
	case inputContentChanged:
		p.list.setFilter(p.filter.content())
		return true, nil
	case inputCursorMoved:
		return true, nil
	}
	return false, nil
}

func (p *PathSelect) submit() (string, bool, error) {
	e, ok := p.highlighted()
	if !ok {
		return "", false, nil
	}
	if !p.Mode.selectable(e) {
		if e.dir {
			p.descend()
		}
		return "", false, nil
	}

	path := filepath.Join(p.dir, e.name)
	res, err := validate(p.Validators, path)
	if err != nil {
		return "", false, err
	}
	if !res.IsValid() {
		p.reject(res.Message())
		return "", false, nil
	}
	return path, true, nil
}

func (p *PathSelect) render(r *renderer) {
	r.renderPromptWithInput(p.Message, &p.dir, p.filter)
	r.renderOptions(p.list.page(), optionMarks{
		disabled: func(i int) bool { return !p.Mode.selectable(p.entries[i]) },
	})
}

func (p *PathSelect) formatAnswer(answer string) string { return p.Formatter(answer) }

func (p *PathSelect) preCancel() bool { return true }

func (p *PathSelect) inputEmpty() bool { return p.filter.isEmpty() }

func (p *PathSelect) helpMessage() string {
	if p.config.HelpMessage != "" {
		return p.config.HelpMessage
	}
	return pathSelectHelp
}
