package ask

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

const textSuggestionHelp = "↑↓ to move, tab to autocomplete, enter to submit"

// Suggester proposes completions for the current input of a Text prompt.
// It is called after every edit.
type Suggester func(input string) ([]string, error)

// Completer is called on Tab when no suggestion is highlighted. It returns
// the text replacing the input, or ok=false to leave the input alone.
type Completer func(input string) (replacement string, ok bool, err error)

// Text asks for a line of free text.
//
// Example:
//
//	name, err := ask.NewText("What's your name?").Prompt()
type Text struct {
	Message      string
	Default      string // Answer used when the input is empty; shown as (default)
	Placeholder  string // Shown while the input is empty
	InitialValue string // Text the input starts with
	Validators   []StringValidator
	Formatter    Formatter[string]
	Suggester    Suggester
	Completer    Completer
	History      *History // Up/Down recall when no suggestion list is shown

	config Config

	in          *input
	suggestions []string
	suggestion  int // highlighted suggestion, -1 for none
	errorLine
}

// NewText creates a Text prompt.
func NewText(message string, opts ...Option) *Text {
	return &Text{
		Message:   message,
		Formatter: DefaultStringFormatter,
		config:    newConfig(opts),
	}
}

// Prompt shows the prompt and returns the answer.
func (t *Text) Prompt() (string, error) {
	return t.PromptContext(context.Background())
}

// PromptContext is Prompt with a context that can abort the prompt
// between key presses.
func (t *Text) PromptContext(ctx context.Context) (string, error) {
	return run[string](ctx, t.config, t.Message, t)
}

// PromptSkippable is Prompt returning ok=false instead of ErrCanceled.
func (t *Text) PromptSkippable() (string, bool, error) {
	return skippable(t.Prompt())
}

func (t *Text) setup() error {
	if t.Formatter == nil {
		t.Formatter = DefaultStringFormatter
	}
	t.in = newInputWith(t.InitialValue).withPlaceholder(t.Placeholder)
	t.suggestion = -1
	if t.History != nil {
		t.History.reset()
	}
	t.updateSuggestions()
	return nil
}

// updateSuggestions asks the suggester for a fresh list. A failing
// suggester empties the list and shows its error until the next key.
func (t *Text) updateSuggestions() {
	t.suggestion = -1
	t.suggestions = nil
	if t.Suggester == nil {
		return
	}
	s, err := t.Suggester(t.in.content())
	if err != nil {
		getLogger().Debug("suggester failed", zap.Error(err))
		t.reject(fmt.Sprintf("failed to get suggestions: %v", err))
		return
	}
	t.suggestions = s
}

func (t *Text) highlighted() (string, bool) {
	if t.suggestion < 0 || t.suggestion >= len(t.suggestions) {
		return "", false
	}
	return t.suggestions[t.suggestion], true
}

// moveSuggestionUp moves towards the input; moving above the first
// suggestion removes the highlight.
func (t *Text) moveSuggestionUp(qty int) bool {
	next := -1
	if t.suggestion >= qty {
		next = t.suggestion - qty
	}
	return t.setSuggestion(next)
}

func (t *Text) moveSuggestionDown(qty int) bool {
	if len(t.suggestions) == 0 {
		return false
	}
	next := min(t.suggestion+qty, len(t.suggestions)-1)
	if t.suggestion < 0 {
		next = min(qty-1, len(t.suggestions)-1)
	}
	return t.setSuggestion(next)
}

func (t *Text) setSuggestion(pos int) bool {
	if pos == t.suggestion {
		return false
	}
	t.suggestion = pos
	return true
}

func (t *Text) complete() (bool, error) {
	if s, ok := t.highlighted(); ok {
		t.in.replaceAll(s)
		t.updateSuggestions()
		return true, nil
	}
	if t.Completer == nil {
		return false, nil
	}
	replacement, ok, err := t.Completer(t.in.content())
	if err != nil {
		return false, &CustomError{Err: err}
	}
	if !ok {
		return false, nil
	}
	t.in.replaceAll(replacement)
	t.updateSuggestions()
	return true, nil
}

func (t *Text) recall(k Key) bool {
	if t.History == nil {
		return false
	}
	var entry string
	var ok bool
	if k.Type == KeyUp {
		entry, ok = t.History.earlier(t.in.content())
	} else {
		entry, ok = t.History.later()
	}
	if !ok {
		return false
	}
	t.in.replaceAll(entry)
	t.updateSuggestions()
	return true
}

func (t *Text) handle(k Key) (bool, error) {
	switch {
	case k.Type == KeyUp && k.Mod == 0, k.isCtrl('p'):
		if len(t.suggestions) == 0 {
			return t.recall(Key{Type: KeyUp}), nil
		}
		return t.moveSuggestionUp(1), nil
	case k.Type == KeyDown && k.Mod == 0, k.isCtrl('n'):
		if len(t.suggestions) == 0 {
			return t.recall(Key{Type: KeyDown}), nil
		}
		return t.moveSuggestionDown(1), nil
	case k.Type == KeyPageUp:
		return t.moveSuggestionUp(t.config.PageSize), nil
	case k.Type == KeyPageDown:
		return t.moveSuggestionDown(t.config.PageSize), nil
	case k.Type == KeyTab:
		return t.complete()
	}

	switch t.in.handle(k) {
	case inputContentChanged:
		t.updateSuggestions()
		return true, nil
	case inputCursorMoved:
		return true, nil
	}
	return false, nil
}

// answer is the highlighted suggestion, else the input, else the default.
func (t *Text) answer() string {
	if s, ok := t.highlighted(); ok {
		return s
	}
	if t.in.isEmpty() && t.Default != "" {
		return t.Default
	}
	return t.in.content()
}

func (t *Text) submit() (string, bool, error) {
	answer := t.answer()
	res, err := validate(t.Validators, answer)
	if err != nil {
		return "", false, err
	}
	if !res.IsValid() {
		t.reject(res.Message())
		return "", false, nil
	}
	if t.History != nil {
		t.History.Add(answer)
	}
	return answer, true, nil
}

func (t *Text) render(r *renderer) {
	var def *string
	if t.Default != "" {
		def = &t.Default
	}
	r.renderPromptWithInput(t.Message, def, t.in)

	if len(t.suggestions) == 0 {
		return
	}
	sel := max(t.suggestion, 0)
	start, end, cursor := paginate(t.config.PageSize, len(t.suggestions), sel)
	if t.suggestion < 0 {
		cursor = -1
	}
	p := page{
		cursor: cursor,
		first:  start == 0,
		last:   end == len(t.suggestions),
		total:  len(t.suggestions),
	}
	for i := start; i < end; i++ {
		p.items = append(p.items, pageItem{index: i, label: t.suggestions[i]})
	}
	r.renderOptions(p, optionMarks{})
}

func (t *Text) formatAnswer(answer string) string { return t.Formatter(answer) }

func (t *Text) preCancel() bool { return true }

func (t *Text) inputEmpty() bool { return t.in.isEmpty() }

func (t *Text) helpMessage() string {
	if t.config.HelpMessage != "" {
		return t.config.HelpMessage
	}
	if len(t.suggestions) > 0 {
		return textSuggestionHelp
	}
	return ""
}
