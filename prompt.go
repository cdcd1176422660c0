package prompts

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

var (
	// ErrInterrupted is returned when the user cancels a prompt with Esc or Ctrl+C.
	ErrInterrupted = errors.New("interrupted")
	// ErrAlreadySubmitted is returned when a choice prompt that already
	// completed receives more keys. Its picked values have left the option
	// store, so it cannot be displayed again.
	ErrAlreadySubmitted = errors.New("prompt already submitted")
)

// OutcomeKind tells the session driver what to do after a key event.
type OutcomeKind int

// Outcome kinds.
const (
	OutcomeContinue OutcomeKind = iota
	OutcomeDone
	OutcomeAbort
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeContinue:
		return "continue"
	case OutcomeDone:
		return "done"
	case OutcomeAbort:
		return "abort"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Outcome is the result of feeding one key event to a prompt.
type Outcome[T any] struct {
	Kind  OutcomeKind
	Value T     // set when Kind is OutcomeDone
	Err   error // set when Kind is OutcomeAbort
}

// Continue keeps the session running.
func Continue[T any]() Outcome[T] {
	return Outcome[T]{Kind: OutcomeContinue}
}

// Done completes the session with v.
func Done[T any](v T) Outcome[T] {
	return Outcome[T]{Kind: OutcomeDone, Value: v}
}

// Abort ends the session with err.
func Abort[T any](err error) Outcome[T] {
	return Outcome[T]{Kind: OutcomeAbort, Err: err}
}

// Prompt is an interactive request for a single value of type T.
//
// Draw must only append to the buffer; all state changes happen in HandleKey.
type Prompt[T any] interface {
	Draw(buf CommandBuffer)
	HandleKey(key Key) Outcome[T]
}

// widthAware is implemented by prompts that lay out rows to fit the terminal.
type widthAware interface {
	setTerminalWidth(width int)
}

// keyDecoder is implemented by engines that decode keys through a KeyMap.
type keyDecoder interface {
	setKeyMap(keyMap *KeyMap)
}

// Config holds the session configuration.
type Config struct {
	Engine Engine      // Render/read back-end (nil opens the controlling terminal)
	KeyMap *KeyMap     // Key bindings used to decode input (nil for default)
	Logger *log.Logger // Logger for warnings and key traces (nil for default)
}

// Option represents a configuration option for a prompt session
type Option func(*Config)

// WithEngine displays the prompt through e instead of the controlling terminal.
func WithEngine(e Engine) Option {
	return func(c *Config) {
		c.Engine = e
	}
}

// WithKeyMap sets the key bindings.
//
// The key map applies to the terminal engine and to engines created with
// the package's own decoder. An Engine supplied through WithEngine that
// decodes keys itself ignores it, and a warning is logged.
func WithKeyMap(keyMap *KeyMap) Option {
	return func(c *Config) {
		c.KeyMap = keyMap
	}
}

// WithLogger sets the logger
func WithLogger(logger *log.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

func defaultLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "prompts",
		Level:  log.WarnLevel,
	})
}

// Run displays p and blocks until it completes or is aborted.
//
// The terminal is put into raw mode for the duration of the session unless it
// already was. The returned error is ErrInterrupted when the user cancelled,
// or wraps the underlying I/O error when the terminal failed.
//
// Example:
//
//	age, err := prompts.Run[int](prompts.NewInput("Your age", strconv.Atoi))
//	if errors.Is(err, prompts.ErrInterrupted) {
//		return
//	}
func Run[T any](p Prompt[T], options ...Option) (T, error) {
	var config Config
	for _, option := range options {
		option(&config)
	}
	if config.Logger == nil {
		config.Logger = defaultLogger()
	}

	if config.Engine == nil {
		e, err := newTerminalEngine(config.KeyMap)
		if err != nil {
			var zero T
			return zero, fmt.Errorf("failed to create terminal: %w", err)
		}
		defer func() {
			if err := e.Close(); err != nil {
				config.Logger.Warn("failed to close terminal", "err", err)
			}
		}()
		config.Engine = e
	} else if config.KeyMap != nil {
		if kd, ok := config.Engine.(keyDecoder); ok {
			kd.setKeyMap(config.KeyMap)
		} else {
			config.Logger.Warn("key map ignored: engine decodes keys itself")
		}
	}

	return runSession(p, config.Engine, config.Logger)
}

// runSession is the draw, render, read, handle loop.
func runSession[T any](p Prompt[T], e Engine, logger *log.Logger) (T, error) {
	var zero T

	if sw, ok := e.(RawModeSwitch); ok {
		guard, err := acquireRawMode(sw)
		if err != nil {
			return zero, fmt.Errorf("failed to enter raw mode: %w", err)
		}
		defer func() {
			if err := guard.Release(); err != nil {
				logger.Warn("failed to exit raw mode", "err", err)
			}
		}()
	}

	if w, ok := e.(interface{ Width() int }); ok {
		if wa, ok := p.(widthAware); ok {
			wa.setTerminalWidth(w.Width())
		}
	}

	commands := NewCommands()
	for {
		p.Draw(commands)
		if err := e.Render(commands); err != nil {
			return zero, fmt.Errorf("failed to render prompt: %w", err)
		}

		key, err := e.ReadKey()
		if err != nil {
			finish(e, logger)
			return zero, err
		}

		outcome := p.HandleKey(key)
		logger.Debug("key handled", "key", key, "outcome", outcome.Kind)

		switch outcome.Kind {
		case OutcomeDone:
			commands.Clear()
			p.Draw(commands)
			if err := e.Render(commands); err != nil {
				return zero, fmt.Errorf("failed to render prompt: %w", err)
			}
			if err := e.FinishRendering(); err != nil {
				return zero, fmt.Errorf("failed to finish rendering: %w", err)
			}
			return outcome.Value, nil
		case OutcomeAbort:
			finish(e, logger)
			return zero, outcome.Err
		default:
			commands.Clear()
		}
	}
}

// finish moves the cursor below an abandoned frame.
func finish(e Engine, logger *log.Logger) {
	if err := e.FinishRendering(); err != nil {
		logger.Warn("failed to finish rendering", "err", err)
	}
}
