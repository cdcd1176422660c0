package prompts

import (
	"io"
	"os"
	"runtime"
	"sync"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// terminalInterface abstracts terminal operations for testability and cross-platform compatibility.
//
// Implementations:
//   - realTerminal: Uses go-tty and golang.org/x/term for actual terminal interaction
//   - mockTerminal: Provides deterministic behavior for testing
type terminalInterface interface {
	RawModeSwitch
	ReadRune() (rune, int, error)         // Read a single Unicode character from input
	Buffered() bool                       // Report whether input is queued behind the last read
	Size() (width, height int, err error) // Get terminal dimensions with safe fallbacks
	Close() error                         // Clean up resources and prevent fd leaks
}

// RawModeSwitch toggles the terminal's raw input mode.
type RawModeSwitch interface {
	EnableRawMode() error
	DisableRawMode() error
	IsRawModeEnabled() bool
}

// stdinRawMode is the raw-mode state of the process's stdin. It is shared by
// every realTerminal, so nested prompts observe the mode an outer caller set.
var stdinRawMode struct {
	mu       sync.Mutex
	original *term.State // state to restore; nil while raw mode is off
}

// realTerminal implements terminalInterface for production use.
//
// Input is read through go-tty; raw mode is switched on stdin with
// golang.org/x/term. On Windows the output goes through go-colorable so ANSI
// escape sequences are translated.
type realTerminal struct {
	tty     *tty.TTY  // TTY handle from go-tty for cross-platform terminal operations
	output  io.Writer // Color-capable output writer (colorable on Windows, stdout elsewhere)
	closed  bool      // Track if terminal is already closed to prevent double-close panic on Windows
	stdinFd int       // File descriptor for stdin for raw mode management
}

func newRealTerminal() (*realTerminal, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, err
	}

	var output io.Writer = os.Stdout
	if runtime.GOOS == "windows" {
		output = colorable.NewColorableStdout()
	}

	return &realTerminal{
		tty:     t,
		output:  output,
		stdinFd: int(os.Stdin.Fd()),
	}, nil
}

func (t *realTerminal) EnableRawMode() error {
	stdinRawMode.mu.Lock()
	defer stdinRawMode.mu.Unlock()

	if stdinRawMode.original != nil || !term.IsTerminal(t.stdinFd) {
		return nil
	}
	state, err := term.MakeRaw(t.stdinFd)
	if err != nil {
		return err
	}
	stdinRawMode.original = state
	return nil
}

func (t *realTerminal) DisableRawMode() error {
	stdinRawMode.mu.Lock()
	defer stdinRawMode.mu.Unlock()

	if stdinRawMode.original == nil {
		return nil
	}
	err := term.Restore(t.stdinFd, stdinRawMode.original)
	// Reset the state so that EnableRawMode can capture a fresh baseline next time
	stdinRawMode.original = nil
	return err
}

func (t *realTerminal) IsRawModeEnabled() bool {
	stdinRawMode.mu.Lock()
	defer stdinRawMode.mu.Unlock()
	return stdinRawMode.original != nil
}

func (t *realTerminal) ReadRune() (rune, int, error) {
	r, err := t.tty.ReadRune()
	if err != nil {
		return 0, 0, err
	}
	return r, 1, nil
}

func (t *realTerminal) Buffered() bool {
	return t.tty.Buffered()
}

func (t *realTerminal) Size() (width, height int, err error) {
	w, h, err := t.tty.Size()
	if err != nil || w <= 0 || h <= 0 {
		// Safe fallback so callers never divide by zero
		return 80, 24, err
	}
	return w, h, nil
}

func (t *realTerminal) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	if t.tty != nil {
		return t.tty.Close()
	}
	return nil
}
