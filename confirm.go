package ask

import "context"

// DefaultConfirmErrorMessage is shown when a Confirm answer is not understood.
const DefaultConfirmErrorMessage = "Invalid answer, try typing 'y' for yes or 'n' for no"

// DefaultConfirmValueFormatter renders the default of a Confirm prompt as a
// hint with the default letter capitalized.
func DefaultConfirmValueFormatter(b bool) string {
	if b {
		return "Y/n"
	}
	return "y/N"
}

// Confirm asks a yes or no question.
//
// Example:
//
//	ok, err := ask.NewConfirm("Do you live in Brazil?").WithDefault(false).Prompt()
type Confirm struct {
	Message               string
	Default               *bool // Answer used when the input is empty
	Placeholder           string
	StartingInput         string
	Parser                Parser[bool]
	Formatter             Formatter[bool]
	DefaultValueFormatter Formatter[bool]
	ErrorMessage          string

	config Config
}

// NewConfirm creates a Confirm prompt accepting y, yes, n and no.
func NewConfirm(message string, opts ...Option) *Confirm {
	return &Confirm{
		Message:               message,
		Parser:                DefaultBoolParser,
		Formatter:             DefaultBoolFormatter,
		DefaultValueFormatter: DefaultConfirmValueFormatter,
		ErrorMessage:          DefaultConfirmErrorMessage,
		config:                newConfig(opts),
	}
}

// WithDefault sets the answer used when the user submits an empty input.
func (c *Confirm) WithDefault(b bool) *Confirm {
	c.Default = &b
	return c
}

// Prompt shows the prompt and returns the answer.
func (c *Confirm) Prompt() (bool, error) {
	return c.PromptContext(context.Background())
}

// PromptContext is Prompt with a context that can abort the prompt
// between key presses.
func (c *Confirm) PromptContext(ctx context.Context) (bool, error) {
	return c.asCustomType().PromptContext(ctx)
}

// PromptSkippable is Prompt returning ok=false instead of ErrCanceled.
func (c *Confirm) PromptSkippable() (bool, bool, error) {
	return skippable(c.Prompt())
}

// asCustomType builds the CustomType[bool] that runs the question.
func (c *Confirm) asCustomType() *CustomType[bool] {
	parser := c.Parser
	if parser == nil {
		parser = DefaultBoolParser
	}
	formatter := c.Formatter
	if formatter == nil {
		formatter = DefaultBoolFormatter
	}
	defaultFormatter := c.DefaultValueFormatter
	if defaultFormatter == nil {
		defaultFormatter = DefaultConfirmValueFormatter
	}
	return &CustomType[bool]{
		Message:               c.Message,
		Parser:                parser,
		Default:               c.Default,
		DefaultValueFormatter: defaultFormatter,
		Formatter:             formatter,
		ErrorMessage:          c.ErrorMessage,
		Placeholder:           c.Placeholder,
		StartingInput:         c.StartingInput,
		config:                c.config,
	}
}
