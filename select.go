package ask

import (
	"context"
	"fmt"
)

const selectHelp = "↑↓ to move, enter to select, type to filter"

// Select asks the user to pick one option from a list. Typing filters the
// list; the default filter keeps options containing the typed characters
// in order, ignoring case.
//
// Example:
//
//	fruit, err := ask.NewSelect("Fruit:", []string{"Banana", "Apple", "Grape"}).Prompt()
type Select[T any] struct {
	Message string
	Options []T
	// StartingCursor is the index of the option highlighted first.
	StartingCursor int
	// OptionFormatter renders an option in the list. Defaults to fmt.Sprint.
	OptionFormatter Formatter[T]
	// Filter hides options that do not match the typed text. Ignored when
	// Scorer is set.
	Filter Filter[T]
	// Scorer hides and ranks options for the typed text.
	Scorer Scorer[T]
	// Formatter renders the chosen option after the prompt. Defaults to the
	// option as shown in the list.
	Formatter Formatter[ListOption[T]]

	config Config

	labels []string
	list   *listView[T]
	filter *input
	errorLine
}

// NewSelect creates a Select prompt over options.
func NewSelect[T any](message string, options []T, opts ...Option) *Select[T] {
	return &Select[T]{
		Message: message,
		Options: options,
		config:  newConfig(opts),
	}
}

// Prompt shows the list and returns the chosen option.
func (s *Select[T]) Prompt() (T, error) {
	o, err := s.PromptOptionContext(context.Background())
	return o.Value, err
}

// PromptContext is Prompt with a context that can abort the prompt
// between key presses.
func (s *Select[T]) PromptContext(ctx context.Context) (T, error) {
	o, err := s.PromptOptionContext(ctx)
	return o.Value, err
}

// PromptSkippable is Prompt returning ok=false instead of ErrCanceled.
func (s *Select[T]) PromptSkippable() (T, bool, error) {
	return skippable(s.Prompt())
}

// PromptOption is Prompt returning the chosen option with its index.
func (s *Select[T]) PromptOption() (ListOption[T], error) {
	return s.PromptOptionContext(context.Background())
}

// PromptOptionContext is PromptOption with a context.
func (s *Select[T]) PromptOptionContext(ctx context.Context) (ListOption[T], error) {
	return run[ListOption[T]](ctx, s.config, s.Message, s)
}

// optionLabels renders every option with f, or fmt.Sprint when f is nil.
func optionLabels[T any](options []T, f Formatter[T]) []string {
	labels := make([]string, len(options))
	for i, o := range options {
		if f != nil {
			labels[i] = f(o)
		} else {
			labels[i] = fmt.Sprint(o)
		}
	}
	return labels
}

// listScorer picks the scorer of a list prompt.
func listScorer[T any](scorer Scorer[T], filter Filter[T]) Scorer[T] {
	switch {
	case scorer != nil:
		return scorer
	case filter != nil:
		return ScorerFromFilter(filter)
	}
	return DefaultScorer[T]()
}

func (s *Select[T]) setup() error {
	if len(s.Options) == 0 {
		return invalidConfig("available options can not be empty")
	}
	if s.StartingCursor < 0 || s.StartingCursor >= len(s.Options) {
		return invalidConfig("starting cursor %d is out of bounds [0, %d)", s.StartingCursor, len(s.Options))
	}
	s.labels = optionLabels(s.Options, s.OptionFormatter)
	s.list = newListView(s.Options, s.labels, listScorer(s.Scorer, s.Filter), s.config.PageSize)
	s.list.setCursor(s.StartingCursor)
	s.filter = newInput()
	return nil
}

func (s *Select[T]) handle(k Key) (bool, error) {
	if changed, ok := s.list.handleKey(k); ok {
		return changed, nil
	}
	if s.config.VimMode && s.filter.isEmpty() {
		if changed, ok := s.list.handleVimKey(k); ok {
			return changed, nil
		}
	}
	switch s.filter.handle(k) {
	case inputContentChanged:
		s.list.setFilter(s.filter.content())
		return true, nil
	case inputCursorMoved:
		return true, nil
	}
	return false, nil
}

// submit returns the highlighted option. With nothing highlighted (the
// filter hides every option) Enter does nothing.
func (s *Select[T]) submit() (ListOption[T], bool, error) {
	idx, ok := s.list.current()
	if !ok {
		return ListOption[T]{}, false, nil
	}
	return ListOption[T]{Index: idx, Value: s.Options[idx]}, true, nil
}

func (s *Select[T]) render(r *renderer) {
	r.renderPromptWithInput(s.Message, nil, s.filter)
	r.renderOptions(s.list.page(), optionMarks{})
}

func (s *Select[T]) formatAnswer(answer ListOption[T]) string {
	if s.Formatter != nil {
		return s.Formatter(answer)
	}
	return s.labels[answer.Index]
}

func (s *Select[T]) preCancel() bool { return true }

func (s *Select[T]) inputEmpty() bool { return s.filter.isEmpty() }

func (s *Select[T]) helpMessage() string {
	if s.config.HelpMessage != "" {
		return s.config.HelpMessage
	}
	return selectHelp
}
