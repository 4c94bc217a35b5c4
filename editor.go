package ask

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"go.uber.org/zap"
)

// defaultEditor returns the editor command line from VISUAL or EDITOR,
// falling back to notepad on Windows and nano elsewhere.
func defaultEditor() (string, []string) {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if fields := strings.Fields(os.Getenv(env)); len(fields) > 0 {
			return fields[0], fields[1:]
		}
	}
	if runtime.GOOS == "windows" {
		return "notepad", nil
	}
	return "nano", nil
}

// Editor collects long text by opening an external editor on a temporary
// file. Pressing e opens the editor; Enter submits the text saved so far.
//
// Example:
//
//	desc, err := ask.NewEditor("Description:").Prompt()
type Editor struct {
	Message string
	// EditorCommand and EditorArgs run the editor; the file path is added
	// as the last argument. Defaults to $VISUAL, then $EDITOR.
	EditorCommand  string
	EditorArgs     []string
	FileExtension  string // Extension of the temporary file (default ".txt")
	PredefinedText string // Text the file starts with
	Validators     []StringValidator
	Formatter      Formatter[string]

	config Config

	term  Terminal
	draft string
	errorLine
}

// NewEditor creates an Editor prompt.
func NewEditor(message string, opts ...Option) *Editor {
	return &Editor{
		Message:       message,
		FileExtension: ".txt",
		Formatter:     defaultEditorFormatter,
		config:        newConfig(opts),
	}
}

// Prompt shows the prompt and returns the text written in the editor.
func (e *Editor) Prompt() (string, error) {
	return e.PromptContext(context.Background())
}

// PromptContext is Prompt with a context that can abort the prompt
// between key presses.
func (e *Editor) PromptContext(ctx context.Context) (string, error) {
	return run[string](ctx, e.config, e.Message, e)
}

// PromptSkippable is Prompt returning ok=false instead of ErrCanceled.
func (e *Editor) PromptSkippable() (string, bool, error) {
	return skippable(e.Prompt())
}

func (e *Editor) setup() error {
	if e.EditorCommand == "" {
		e.EditorCommand, e.EditorArgs = defaultEditor()
	}
	if e.FileExtension == "" {
		e.FileExtension = ".txt"
	}
	if !strings.HasPrefix(e.FileExtension, ".") {
		e.FileExtension = "." + e.FileExtension
	}
	if e.Formatter == nil {
		e.Formatter = defaultEditorFormatter
	}
	e.draft = e.PredefinedText
	return nil
}

func (e *Editor) attach(t Terminal) {
	e.term = t
}

// stdio returns the files the editor runs on: the prompt's terminal when
// it is backed by one, the process standard streams otherwise.
func (e *Editor) stdio() (in, out *os.File) {
	if ft, ok := e.term.(fileTerminal); ok {
		return ft.Files()
	}
	return os.Stdin, os.Stdout
}

// openEditor writes the draft to a temporary file, runs the editor on it
// with the terminal in cooked mode and reads the result back. The file is
// read even when the editor exits with an error status.
func (e *Editor) openEditor() (err error) {
	f, err := os.CreateTemp("", "ask-*"+e.FileExtension)
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.WriteString(e.draft); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if e.term != nil {
		if err := e.term.ShowCursor(); err != nil {
			return err
		}
		if err := e.term.Flush(); err != nil {
			return err
		}
		if err := e.term.Restore(); err != nil {
			return fmt.Errorf("failed to exit raw mode: %w", err)
		}
		defer func() {
			if rerr := e.term.SetRaw(); rerr != nil && err == nil {
				err = fmt.Errorf("failed to enter raw mode: %w", rerr)
			}
		}()
	}

	args := append(append([]string{}, e.EditorArgs...), path)
	cmd := exec.Command(e.EditorCommand, args...)
	cmd.Stdin, cmd.Stdout = e.stdio()
	cmd.Stderr = os.Stderr

	log := getLogger().With(zap.String("editor", e.EditorCommand), zap.String("file", path))
	log.Debug("spawning editor")
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return fmt.Errorf("failed to run editor %s: %w", e.EditorCommand, err)
		}
		log.Debug("editor exited with an error", zap.Int("code", exitErr.ExitCode()))
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read temporary file: %w", err)
	}
	e.draft = string(content)
	return nil
}

func (e *Editor) handle(k Key) (bool, error) {
	if !k.isChar('e') {
		return false, nil
	}
	if err := e.openEditor(); err != nil {
		return false, &IOError{Err: err}
	}
	return true, nil
}

func (e *Editor) submit() (string, bool, error) {
	res, err := validate(e.Validators, e.draft)
	if err != nil {
		return "", false, err
	}
	if !res.IsValid() {
		e.reject(res.Message())
		return "", false, nil
	}
	return e.draft, true, nil
}

func (e *Editor) render(r *renderer) {
	r.renderEditorPrompt(e.Message, filepath.Base(e.EditorCommand))
}

func (e *Editor) formatAnswer(answer string) string { return e.Formatter(answer) }

func (e *Editor) preCancel() bool { return true }

// inputEmpty is false: Ctrl+D does not cancel the editor prompt.
func (e *Editor) inputEmpty() bool { return false }

func (e *Editor) helpMessage() string { return e.config.HelpMessage }
