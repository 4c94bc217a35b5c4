package ask

import "context"

// PasswordDisplayMode controls how the typed secret is shown.
type PasswordDisplayMode int

const (
	// PasswordMasked shows one mask character per typed character.
	PasswordMasked PasswordDisplayMode = iota
	// PasswordHidden shows nothing of the input.
	PasswordHidden
	// PasswordFull shows the input as typed.
	PasswordFull
	// PasswordUnmaskedLastChar masks everything but the last character.
	PasswordUnmaskedLastChar
)

// String returns the mode name.
func (m PasswordDisplayMode) String() string {
	switch m {
	case PasswordHidden:
		return "hidden"
	case PasswordMasked:
		return "masked"
	case PasswordFull:
		return "full"
	case PasswordUnmaskedLastChar:
		return "unmasked-last-char"
	}
	return "unknown"
}

// revealed is the mode Ctrl+R switches to from m.
func (m PasswordDisplayMode) revealed() PasswordDisplayMode {
	switch m {
	case PasswordHidden:
		return PasswordMasked
	case PasswordFull:
		return PasswordMasked
	}
	return PasswordFull
}

const (
	defaultConfirmationMessage      = "Confirmation:"
	defaultConfirmationErrorMessage = "The answers don't match."
)

// Password asks for a secret. With EnableConfirmation the secret must be
// typed twice; a mismatch clears both inputs and starts over.
//
// Example:
//
//	pw := ask.NewPassword("Encryption key:")
//	pw.EnableDisplayToggle = true
//	key, err := pw.Prompt()
type Password struct {
	Message                  string
	DisplayMode              PasswordDisplayMode
	EnableDisplayToggle      bool // Ctrl+R switches between DisplayMode and a more revealing mode
	EnableConfirmation       bool
	ConfirmationMessage      string
	ConfirmationErrorMessage string
	Validators               []StringValidator
	Formatter                Formatter[string]

	config Config

	in           *input
	confirmation *input
	confirming   bool
	mode         PasswordDisplayMode
	errorLine
}

// NewPassword creates a masked Password prompt with confirmation enabled.
func NewPassword(message string, opts ...Option) *Password {
	return &Password{
		Message:                  message,
		DisplayMode:              PasswordMasked,
		EnableConfirmation:       true,
		ConfirmationMessage:      defaultConfirmationMessage,
		ConfirmationErrorMessage: defaultConfirmationErrorMessage,
		Formatter:                defaultPasswordFormatter,
		config:                   newConfig(opts),
	}
}

// Prompt shows the prompt and returns the secret.
func (p *Password) Prompt() (string, error) {
	return p.PromptContext(context.Background())
}

// PromptContext is Prompt with a context that can abort the prompt
// between key presses.
func (p *Password) PromptContext(ctx context.Context) (string, error) {
	return run[string](ctx, p.config, p.Message, p)
}

// PromptSkippable is Prompt returning ok=false instead of ErrCanceled.
func (p *Password) PromptSkippable() (string, bool, error) {
	return skippable(p.Prompt())
}

func (p *Password) setup() error {
	switch p.DisplayMode {
	case PasswordHidden, PasswordMasked, PasswordFull, PasswordUnmaskedLastChar:
	default:
		return invalidConfig("unknown password display mode %d", int(p.DisplayMode))
	}
	if p.Formatter == nil {
		p.Formatter = defaultPasswordFormatter
	}
	if p.ConfirmationMessage == "" {
		p.ConfirmationMessage = defaultConfirmationMessage
	}
	if p.ConfirmationErrorMessage == "" {
		p.ConfirmationErrorMessage = defaultConfirmationErrorMessage
	}
	p.in = newInput()
	p.confirmation = newInput()
	p.confirming = false
	p.mode = p.DisplayMode
	return nil
}

func (p *Password) active() *input {
	if p.confirming {
		return p.confirmation
	}
	return p.in
}

func (p *Password) toggleDisplayMode() bool {
	if !p.EnableDisplayToggle {
		return false
	}
	if p.mode == p.DisplayMode {
		p.mode = p.DisplayMode.revealed()
	} else {
		p.mode = p.DisplayMode
	}
	return true
}

func (p *Password) handle(k Key) (bool, error) {
	if k.isCtrl('r') {
		return p.toggleDisplayMode(), nil
	}
	return p.active().handle(k) != inputUnchanged, nil
}

func (p *Password) submit() (string, bool, error) {
	answer := p.in.content()

	res, err := validate(p.Validators, answer)
	if err != nil {
		return "", false, err
	}
	if !res.IsValid() {
		p.reject(res.Message())
		if p.DisplayMode == PasswordHidden {
			p.in.clear()
		}
		p.confirming = false
		p.confirmation.clear()
		return "", false, nil
	}

	if !p.EnableConfirmation {
		return answer, true, nil
	}
	if !p.confirming {
		p.confirmation.clear()
		p.confirming = true
		return "", false, nil
	}
	if p.confirmation.content() != answer {
		p.reject(p.ConfirmationErrorMessage)
		p.in.clear()
		p.confirmation.clear()
		p.confirming = false
		return "", false, nil
	}
	return answer, true, nil
}

func (p *Password) renderInput(r *renderer, message string, in *input) {
	switch p.mode {
	case PasswordHidden:
		r.renderPromptWithHiddenInput(message)
	case PasswordFull:
		r.renderPromptWithInput(message, nil, in)
	case PasswordUnmaskedLastChar:
		r.renderPromptWithMaskedInput(message, in, true)
	default:
		r.renderPromptWithMaskedInput(message, in, false)
	}
}

func (p *Password) render(r *renderer) {
	p.renderInput(r, p.Message, p.in)
	if p.confirming {
		p.renderInput(r, p.ConfirmationMessage, p.confirmation)
	}
}

func (p *Password) formatAnswer(answer string) string { return p.Formatter(answer) }

// preCancel steps back from the confirmation to the first input instead of
// canceling.
func (p *Password) preCancel() bool {
	if p.confirming {
		p.confirmation.clear()
		p.confirming = false
		return false
	}
	return true
}

func (p *Password) inputEmpty() bool { return p.active().isEmpty() }

func (p *Password) helpMessage() string { return p.config.HelpMessage }
