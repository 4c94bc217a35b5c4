package ask

import (
	"os"
	"sync"
)

// RenderConfig holds the glyphs and styles used to draw every prompt.
//
// Each field is a named slot; prompts never hardcode a color. Start from
// DefaultRenderConfig or EmptyRenderConfig and override what you need:
//
//	rc := ask.DefaultRenderConfig()
//	rc.PromptPrefix = ask.NewStyled("❯").WithFg(ask.LightMagenta)
//	ask.SetGlobalRenderConfig(rc)
type RenderConfig struct {
	PromptPrefix            Styled      // Drawn before the prompt while asking
	AnsweredPromptPrefix    Styled      // Drawn before the prompt once answered
	Prompt                  StyleSheet  // The prompt message
	DefaultValue            StyleSheet  // "(default)" hint after the prompt
	Placeholder             StyleSheet  // Placeholder shown in an empty input
	HelpMessage             StyleSheet  // "[help]" line
	TextInput               StyleSheet  // Text typed by the user
	Error                   ErrorRenderConfig
	Answer                  StyleSheet  // Formatted answer
	CanceledPromptIndicator Styled      // Shown after the prompt on cancel
	PasswordMask            rune        // Mask character for masked passwords
	HighlightedOptionPrefix Styled      // Prefix of the option under the cursor
	ScrollUpPrefix          Styled      // Prefix of the first row when more options are above
	ScrollDownPrefix        Styled      // Prefix of the last row when more options are below
	SelectedCheckbox        Styled      // Checked box in multi selections
	UnselectedCheckbox      Styled      // Unchecked box in multi selections
	Option                  StyleSheet  // Regular option
	SelectedOption          *StyleSheet // Option under the cursor; nil renders it as Option
	DisabledOption          StyleSheet  // Option that can not be chosen
	Calendar                CalendarRenderConfig
	EditorPrompt            StyleSheet  // "[(e) to open ...]" hint
	GlobalPrefix            *Styled     // Prepended to every rendered row when set
}

// ErrorRenderConfig styles the validation error line.
type ErrorRenderConfig struct {
	Prefix         Styled
	Separator      StyleSheet
	Message        StyleSheet
	DefaultMessage string
}

// CalendarRenderConfig styles the date selection calendar.
type CalendarRenderConfig struct {
	Prefix         Styled
	Header         StyleSheet
	WeekHeader     StyleSheet
	SelectedDate   *StyleSheet // nil places the terminal cursor on the date instead
	TodayDate      StyleSheet
	DifferentMonth StyleSheet
	Unavailable    StyleSheet
}

// defaultErrorMessage is shown when a prompt rejects input without a message.
const defaultErrorMessage = "Invalid input."

// EmptyRenderConfig returns a configuration without any colors or attributes.
func EmptyRenderConfig() RenderConfig {
	return RenderConfig{
		PromptPrefix:         NewStyled("?"),
		AnsweredPromptPrefix: NewStyled("?"),
		Error: ErrorRenderConfig{
			Prefix:         NewStyled("#"),
			DefaultMessage: defaultErrorMessage,
		},
		CanceledPromptIndicator: NewStyled("<canceled>"),
		PasswordMask:            '*',
		HighlightedOptionPrefix: NewStyled(">"),
		ScrollUpPrefix:          NewStyled("^"),
		ScrollDownPrefix:        NewStyled("v"),
		SelectedCheckbox:        NewStyled("[x]"),
		UnselectedCheckbox:      NewStyled("[ ]"),
		Calendar: CalendarRenderConfig{
			Prefix: NewStyled(">"),
		},
	}
}

// DefaultRenderConfig returns the colored configuration used by default.
func DefaultRenderConfig() RenderConfig {
	selected := NewStyle().WithFg(LightCyan)
	selectedDate := NewStyle().WithFg(Black).WithBg(Grey)

	return RenderConfig{
		PromptPrefix:         NewStyled("?").WithFg(LightGreen),
		AnsweredPromptPrefix: NewStyled(">").WithFg(LightGreen),
		Placeholder:          NewStyle().WithFg(DarkGrey),
		HelpMessage:          NewStyle().WithFg(LightCyan),
		Error: ErrorRenderConfig{
			Prefix:         NewStyled("#").WithFg(LightRed),
			Message:        NewStyle().WithFg(LightRed),
			DefaultMessage: defaultErrorMessage,
		},
		Answer:                  NewStyle().WithFg(LightCyan),
		CanceledPromptIndicator: NewStyled("<canceled>").WithFg(DarkRed),
		PasswordMask:            '*',
		HighlightedOptionPrefix: NewStyled(">").WithFg(LightCyan),
		ScrollUpPrefix:          NewStyled("^"),
		ScrollDownPrefix:        NewStyled("v"),
		SelectedCheckbox:        NewStyled("[x]").WithFg(LightGreen),
		UnselectedCheckbox:      NewStyled("[ ]"),
		SelectedOption:          &selected,
		DisabledOption:          NewStyle().WithFg(DarkGrey),
		Calendar: CalendarRenderConfig{
			Prefix:         NewStyled(">").WithFg(LightGreen),
			SelectedDate:   &selectedDate,
			TodayDate:      NewStyle().WithFg(LightGreen),
			DifferentMonth: NewStyle().WithFg(DarkGrey),
			Unavailable:    NewStyle().WithFg(DarkGrey),
		},
		EditorPrompt: NewStyle().WithFg(DarkCyan),
	}
}

// WithGlobalPrefix returns a copy of rc that prepends prefix and a space to
// every rendered row.
func (rc RenderConfig) WithGlobalPrefix(prefix Styled) RenderConfig {
	rc.GlobalPrefix = &prefix
	return rc
}

var (
	globalRenderMu     sync.RWMutex
	globalRenderConfig *RenderConfig
)

// GlobalRenderConfig returns the configuration used by prompts that were not
// given one explicitly. Unless set with SetGlobalRenderConfig it is
// DefaultRenderConfig, or EmptyRenderConfig when NO_COLOR is set.
func GlobalRenderConfig() RenderConfig {
	globalRenderMu.RLock()
	defer globalRenderMu.RUnlock()
	if globalRenderConfig != nil {
		return *globalRenderConfig
	}
	if os.Getenv("NO_COLOR") != "" {
		return EmptyRenderConfig()
	}
	return DefaultRenderConfig()
}

// SetGlobalRenderConfig replaces the process wide default configuration.
func SetGlobalRenderConfig(rc RenderConfig) {
	globalRenderMu.Lock()
	defer globalRenderMu.Unlock()
	globalRenderConfig = &rc
}
