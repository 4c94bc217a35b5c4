package ask

import (
	"context"
	"slices"
)

const multiSelectHelp = "↑↓ to move, space to select one, → to all, ← to none, type to filter"

// MultiSelect asks the user to pick any number of options from a list.
//
// Space toggles the highlighted option, Right checks every visible option
// and Left unchecks them. Answers keep the order of Options.
type MultiSelect[T any] struct {
	Message         string
	Options         []T
	Defaults        []int // Indices checked when the prompt starts
	StartingCursor  int
	OptionFormatter Formatter[T]
	Filter          Filter[T]
	Scorer          Scorer[T]
	Validators      []Validator[[]ListOption[T]]
	// Formatter renders the chosen options after the prompt. Defaults to
	// the options as shown in the list, separated by commas.
	Formatter Formatter[[]ListOption[T]]

	config Config

	labels []string
	list   *listView[T]
	filter *input
	errorLine
}

// NewMultiSelect creates a MultiSelect prompt over options.
func NewMultiSelect[T any](message string, options []T, opts ...Option) *MultiSelect[T] {
	return &MultiSelect[T]{
		Message: message,
		Options: options,
		config:  newConfig(opts),
	}
}

// Prompt shows the list and returns the checked options, in list order.
func (m *MultiSelect[T]) Prompt() ([]T, error) {
	return m.PromptContext(context.Background())
}

// PromptContext is Prompt with a context that can abort the prompt
// between key presses.
func (m *MultiSelect[T]) PromptContext(ctx context.Context) ([]T, error) {
	opts, err := m.PromptOptionsContext(ctx)
	if err != nil {
		return nil, err
	}
	values := make([]T, 0, len(opts))
	for _, o := range opts {
		values = append(values, o.Value)
	}
	return values, nil
}

// PromptSkippable is Prompt returning ok=false instead of ErrCanceled.
func (m *MultiSelect[T]) PromptSkippable() ([]T, bool, error) {
	return skippable(m.Prompt())
}

// PromptOptions is Prompt returning the checked options with their indices.
func (m *MultiSelect[T]) PromptOptions() ([]ListOption[T], error) {
	return m.PromptOptionsContext(context.Background())
}

// PromptOptionsContext is PromptOptions with a context.
func (m *MultiSelect[T]) PromptOptionsContext(ctx context.Context) ([]ListOption[T], error) {
	return run[[]ListOption[T]](ctx, m.config, m.Message, m)
}

func (m *MultiSelect[T]) setup() error {
	if len(m.Options) == 0 {
		return invalidConfig("available options can not be empty")
	}
	if m.StartingCursor < 0 || m.StartingCursor >= len(m.Options) {
		return invalidConfig("starting cursor %d is out of bounds [0, %d)", m.StartingCursor, len(m.Options))
	}
	for _, d := range m.Defaults {
		if d < 0 || d >= len(m.Options) {
			return invalidConfig("default index %d is out of bounds [0, %d)", d, len(m.Options))
		}
	}

	m.labels = optionLabels(m.Options, m.OptionFormatter)
	m.list = newListView(m.Options, m.labels, listScorer(m.Scorer, m.Filter), m.config.PageSize)
	m.list.setCursor(m.StartingCursor)
	for _, d := range m.Defaults {
		m.list.check(d)
	}
	m.filter = newInput()
	return nil
}

// resetFilter clears the filter unless KeepFilter is set.
func (m *MultiSelect[T]) resetFilter() {
	if m.config.KeepFilter || m.filter.isEmpty() {
		return
	}
	m.filter.clear()
	m.list.setFilter("")
}

func (m *MultiSelect[T]) handle(k Key) (bool, error) {
	switch {
	case k.isChar(' '):
		if !m.list.toggle() {
			return false, nil
		}
		m.resetFilter()
		return true, nil
	case k.Type == KeyRight && k.Mod == 0:
		m.list.checkAllFiltered()
		m.resetFilter()
		return true, nil
	case k.Type == KeyLeft && k.Mod == 0:
		m.list.uncheckAllFiltered()
		m.resetFilter()
		return true, nil
	}

	if changed, ok := m.list.handleKey(k); ok {
		return changed, nil
	}
	if m.config.VimMode && m.filter.isEmpty() {
		if changed, ok := m.list.handleVimKey(k); ok {
			return changed, nil
		}
	}
	switch m.filter.handle(k) {
	case inputContentChanged:
		m.list.setFilter(m.filter.content())
		return true, nil
	case inputCursorMoved:
		return true, nil
	}
	return false, nil
}

func (m *MultiSelect[T]) submit() ([]ListOption[T], bool, error) {
	answer := m.list.checkedOptions()
	res, err := validate(m.Validators, slices.Clone(answer))
	if err != nil {
		return nil, false, err
	}
	if !res.IsValid() {
		m.reject(res.Message())
		return nil, false, nil
	}
	return answer, true, nil
}

func (m *MultiSelect[T]) render(r *renderer) {
	r.renderPromptWithInput(m.Message, nil, m.filter)
	r.renderOptions(m.list.page(), optionMarks{checked: m.list.isChecked})
}

func (m *MultiSelect[T]) formatAnswer(answer []ListOption[T]) string {
	if m.Formatter != nil {
		return m.Formatter(answer)
	}
	parts := make([]string, 0, len(answer))
	for _, o := range answer {
		parts = append(parts, m.labels[o.Index])
	}
	return joinAnswers(parts)
}

func (m *MultiSelect[T]) preCancel() bool { return true }

func (m *MultiSelect[T]) inputEmpty() bool { return m.filter.isEmpty() }

func (m *MultiSelect[T]) helpMessage() string {
	if m.config.HelpMessage != "" {
		return m.config.HelpMessage
	}
	return multiSelectHelp
}
