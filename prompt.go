package ask

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// DefaultPageSize is the number of options shown at once by list prompts.
const DefaultPageSize = 7

// Config holds the settings shared by every prompt kind.
type Config struct {
	HelpMessage  string        // Shown below the prompt; empty uses the prompt's default help
	RenderConfig *RenderConfig // Styles (nil for GlobalRenderConfig)
	PageSize     int           // Rows of options shown at once (default: 7)
	VimMode      bool          // Enable hjkl (and g/G) navigation
	KeepFilter   bool          // Keep the filter after toggling an option in multi selections
	Terminal     Terminal      // Terminal to run on (nil opens the controlling terminal)
	KeyMap       *KeyMap       // Key decoding for the controlling terminal (nil for default)
}

// Option represents a configuration option for prompts
type Option func(*Config)

// WithHelpMessage sets the help line shown below the prompt.
func WithHelpMessage(msg string) Option {
	return func(c *Config) {
		c.HelpMessage = msg
	}
}

// WithRenderConfig overrides the global render config for one prompt.
func WithRenderConfig(rc RenderConfig) Option {
	return func(c *Config) {
		c.RenderConfig = &rc
	}
}

// WithPageSize sets how many options list prompts show at once.
func WithPageSize(size int) Option {
	return func(c *Config) {
		c.PageSize = size
	}
}

// WithVimMode enables vim style navigation keys.
func WithVimMode(enabled bool) Option {
	return func(c *Config) {
		c.VimMode = enabled
	}
}

// WithKeepFilter keeps the filter text after each toggle in multi selections.
func WithKeepFilter(keep bool) Option {
	return func(c *Config) {
		c.KeepFilter = keep
	}
}

// WithTerminal runs the prompt on t instead of the controlling terminal.
// The prompt does not close a terminal passed this way.
func WithTerminal(t Terminal) Option {
	return func(c *Config) {
		c.Terminal = t
	}
}

// WithKeyMap sets the key decoding table used with the controlling terminal.
func WithKeyMap(km *KeyMap) Option {
	return func(c *Config) {
		c.KeyMap = km
	}
}

func newConfig(opts []Option) Config {
	config := Config{
		PageSize:   DefaultPageSize,
		KeepFilter: true,
	}
	for _, opt := range opts {
		opt(&config)
	}
	return config
}

func (c Config) renderConfig() RenderConfig {
	if c.RenderConfig != nil {
		return *c.RenderConfig
	}
	return GlobalRenderConfig()
}

func (c Config) validate() error {
	if c.PageSize <= 0 {
		return invalidConfig("page size must be greater than zero, got %d", c.PageSize)
	}
	return nil
}

// errorLine is embedded by prompt kinds to report a rejected submission.
// The message is shown above the prompt until the next key press.
type errorLine struct {
	message string
	shown   bool
}

func (e *errorLine) reject(message string) {
	e.message = message
	e.shown = true
}

func (e *errorLine) pendingError() (string, bool) {
	return e.message, e.shown
}

func (e *errorLine) clearError() bool {
	was := e.shown
	e.message, e.shown = "", false
	return was
}

// prompter is the state machine behind one prompt kind.
type prompter[T any] interface {
	// setup validates the configuration and builds the initial state.
	// It runs before the terminal is touched.
	setup() error
	render(r *renderer)
	// handle applies a key and reports whether the frame must be redrawn.
	handle(k Key) (bool, error)
	// submit is called on Enter. done is false when the prompt stays open,
	// for example after a rejected answer.
	submit() (answer T, done bool, err error)
	formatAnswer(answer T) string
	// preCancel is called on Esc; returning false keeps the prompt open.
	preCancel() bool
	// inputEmpty reports whether Ctrl+D should cancel.
	inputEmpty() bool
	helpMessage() string
	pendingError() (string, bool)
	clearError() bool
}

// terminalUser is implemented by prompts that need the terminal itself
// while running, like the external editor prompt.
type terminalUser interface {
	attach(t Terminal)
}

type executor[T any] struct {
	message string
	p       prompter[T]
	term    Terminal
	r       *renderer
	log     *zap.Logger
}

// run drives a prompt until it is answered, canceled or fails.
//
// The terminal is put into raw mode for the duration of the call and is
// always restored (cursor shown, raw mode left, owned terminal closed)
// before run returns, including when a callback panics.
func run[T any](ctx context.Context, cfg Config, message string, p prompter[T]) (T, error) {
	var zero T

	if err := cfg.validate(); err != nil {
		return zero, err
	}
	if err := p.setup(); err != nil {
		return zero, err
	}

	log := getLogger().With(zap.String("prompt", message))

	term := cfg.Terminal
	owned := false
	if term == nil {
		rt, err := newRealTerminal(cfg.KeyMap)
		if err != nil {
			return zero, &IOError{Err: fmt.Errorf("failed to open terminal: %w", err)}
		}
		term = rt
		owned = true
	}

	if err := term.SetRaw(); err != nil {
		if owned {
			_ = term.Close()
		}
		return zero, &IOError{Err: fmt.Errorf("failed to enter raw mode: %w", err)}
	}
	defer release(term, owned, log)

	if u, ok := p.(terminalUser); ok {
		u.attach(term)
	}

	e := &executor[T]{
		message: message,
		p:       p,
		term:    term,
		r:       newRenderer(term, cfg.renderConfig()),
		log:     log,
	}
	log.Debug("prompt started")
	return e.loop(ctx)
}

// release restores the terminal. Failures are logged since the prompt
// outcome has already been decided.
func release(term Terminal, owned bool, log *zap.Logger) {
	if err := term.ShowCursor(); err != nil {
		log.Warn("failed to show cursor", zap.Error(err))
	}
	if err := term.Flush(); err != nil {
		log.Warn("failed to flush terminal", zap.Error(err))
	}
	if err := term.Restore(); err != nil {
		log.Warn("failed to exit raw mode", zap.Error(err))
	}
	if owned {
		if err := term.Close(); err != nil {
			log.Warn("failed to close terminal", zap.Error(err))
		}
	}
}

func (e *executor[T]) loop(ctx context.Context) (T, error) {
	var zero T

	if err := e.term.HideCursor(); err != nil {
		return zero, &IOError{Err: err}
	}

	redraw := true
	for {
		select {
		case <-ctx.Done():
			_ = e.r.cleanup()
			return zero, ctx.Err()
		default:
		}

		if redraw {
			if err := e.draw(); err != nil {
				return zero, &IOError{Err: fmt.Errorf("failed to render prompt: %w", err)}
			}
			redraw = false
		}

		key, err := e.term.ReadKey()
		if err != nil {
			_ = e.r.cleanup()
			return zero, &IOError{Err: fmt.Errorf("failed to read input: %w", err)}
		}
		e.log.Debug("key received", zap.Stringer("key", key))

		if e.p.clearError() {
			redraw = true
		}

		switch {
		case key.Type == KeyInterrupt:
			_ = e.r.cleanup()
			e.log.Debug("prompt interrupted")
			return zero, ErrInterrupted

		case key.Type == KeyEscape, key.isCtrl('d') && e.p.inputEmpty():
			if !e.p.preCancel() {
				redraw = true
				continue
			}
			if err := e.drawFinal(func(r *renderer) { r.renderCanceledPrompt(e.message) }); err != nil {
				return zero, &IOError{Err: err}
			}
			e.log.Debug("prompt canceled")
			return zero, ErrCanceled

		case key.Type == KeyEnter:
			answer, done, err := e.p.submit()
			if err != nil {
				_ = e.r.cleanup()
				return zero, err
			}
			if !done {
				redraw = true
				continue
			}
			formatted := e.p.formatAnswer(answer)
			if err := e.drawFinal(func(r *renderer) { r.renderPromptWithAnswer(e.message, formatted) }); err != nil {
				return zero, &IOError{Err: err}
			}
			e.log.Debug("prompt answered", zap.String("answer", formatted))
			return answer, nil

		case key.Type == KeyResize:
			redraw = true

		default:
			changed, err := e.p.handle(key)
			if err != nil {
				_ = e.r.cleanup()
				return zero, err
			}
			redraw = redraw || changed
		}
	}
}

// draw repaints the interactive frame: error line, prompt body, help.
func (e *executor[T]) draw() error {
	if err := e.r.frameSetup(); err != nil {
		return err
	}
	msg, hasErr := e.p.pendingError()
	if hasErr {
		e.r.renderErrorMessage(msg)
	}
	e.p.render(e.r)
	if help := e.p.helpMessage(); help != "" && !hasErr {
		e.r.renderHelpMessage(help)
	}
	return e.r.frameFinish()
}

func (e *executor[T]) drawFinal(body func(r *renderer)) error {
	if err := e.r.frameSetup(); err != nil {
		return err
	}
	body(e.r)
	return e.r.frameFinish()
}

// skippable converts a cancellation into an ok=false result.
func skippable[T any](answer T, err error) (T, bool, error) {
	if errors.Is(err, ErrCanceled) {
		var zero T
		return zero, false, nil
	}
	if err != nil {
		return answer, false, err
	}
	return answer, true, nil
}
