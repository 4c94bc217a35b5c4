package ask

import (
	"context"
	"reflect"

	"go.uber.org/zap"
)

// CustomType asks for a value of any type that can be parsed from a line of
// text. Parse failures keep the prompt open and show ErrorMessage.
//
// Example:
//
//	amount := ask.NewCustomType[float64]("Amount:")
//	amount.ErrorMessage = "Please type a valid number"
//	v, err := amount.Prompt()
type CustomType[T any] struct {
	Message string
	// Parser converts the input. Defaults to a parser for strings, booleans
	// and numbers; other types must set it.
	Parser Parser[T]
	// Default is returned when the input is empty.
	Default *T
	// DefaultValueFormatter renders Default in the prompt line.
	DefaultValueFormatter Formatter[T]
	// Formatter renders the accepted answer. Types other than strings,
	// booleans, numbers and fmt.Stringer implementations must set it.
	Formatter     Formatter[T]
	ErrorMessage  string // Shown when parsing fails; empty uses the render config default
	Validators    []Validator[T]
	Placeholder   string
	StartingInput string

	config Config
	in     *input
	errorLine
}

// NewCustomType creates a CustomType prompt.
func NewCustomType[T any](message string, opts ...Option) *CustomType[T] {
	return &CustomType[T]{
		Message: message,
		config:  newConfig(opts),
	}
}

// Prompt shows the prompt and returns the answer.
func (c *CustomType[T]) Prompt() (T, error) {
	return c.PromptContext(context.Background())
}

// PromptContext is Prompt with a context that can abort the prompt
// between key presses.
func (c *CustomType[T]) PromptContext(ctx context.Context) (T, error) {
	return run[T](ctx, c.config, c.Message, c)
}

// PromptSkippable is Prompt returning ok=false instead of ErrCanceled.
func (c *CustomType[T]) PromptSkippable() (T, bool, error) {
	return skippable(c.Prompt())
}

func (c *CustomType[T]) setup() error {
	if c.Parser == nil {
		p, ok := defaultParser[T]()
		if !ok {
			return invalidConfig("no parser for %v; set Parser", reflect.TypeFor[T]())
		}
		c.Parser = p
	}
	if c.Formatter == nil {
		f, ok := defaultFormatter[T]()
		if !ok {
			return invalidConfig("no formatter for %v; set Formatter", reflect.TypeFor[T]())
		}
		c.Formatter = f
	}
	if c.DefaultValueFormatter == nil {
		c.DefaultValueFormatter = c.Formatter
	}
	c.in = newInputWith(c.StartingInput).withPlaceholder(c.Placeholder)
	return nil
}

func (c *CustomType[T]) handle(k Key) (bool, error) {
	return c.in.handle(k) != inputUnchanged, nil
}

func (c *CustomType[T]) submit() (T, bool, error) {
	var zero T

	var value T
	switch {
	case c.in.isEmpty() && c.Default != nil:
		value = *c.Default
	default:
		v, err := c.Parser(c.in.content())
		if err != nil {
			getLogger().Debug("input rejected by parser", zap.Error(err))
			c.reject(c.ErrorMessage)
			return zero, false, nil
		}
		value = v
	}

	res, err := validate(c.Validators, value)
	if err != nil {
		return zero, false, err
	}
	if !res.IsValid() {
		c.reject(res.Message())
		return zero, false, nil
	}
	return value, true, nil
}

func (c *CustomType[T]) render(r *renderer) {
	var def *string
	if c.Default != nil {
		s := c.DefaultValueFormatter(*c.Default)
		def = &s
	}
	r.renderPromptWithInput(c.Message, def, c.in)
}

func (c *CustomType[T]) formatAnswer(answer T) string { return c.Formatter(answer) }

func (c *CustomType[T]) preCancel() bool { return true }

func (c *CustomType[T]) inputEmpty() bool { return c.in.isEmpty() }

func (c *CustomType[T]) helpMessage() string { return c.config.HelpMessage }
