package prompts

import (
	"bufio"
	"fmt"
	"io"

	"github.com/charmbracelet/x/ansi"
)

// Engine renders frames to a terminal and supplies key input.
type Engine interface {
	// Render replaces the previously rendered frame with cmds.
	Render(cmds *Commands) error
	// FinishRendering leaves the terminal on a fresh line after a session.
	FinishRendering() error
	// ReadKey blocks until a key event is available.
	ReadKey() (Key, error)
}

// engine is the terminal Engine.
//
// It redraws a prompt in place by erasing exactly the lines occupied by the
// previous frame, starting from the line the cursor was left on, and never
// touches output above that frame.
type engine struct {
	terminal          terminalInterface
	output            *bufio.Writer
	keys              *keyReader
	previousLineCount int // screen rows occupied by the last rendered frame, wrapped lines included
}

func newEngine(terminal terminalInterface, output io.Writer, keyMap *KeyMap) *engine {
	return &engine{
		terminal:          terminal,
		output:            bufio.NewWriter(output),
		keys:              newKeyReader(terminal, keyMap),
		previousLineCount: 1,
	}
}

// newTerminalEngine opens the controlling terminal and builds an engine on it.
func newTerminalEngine(keyMap *KeyMap) (*engine, error) {
	t, err := newRealTerminal()
	if err != nil {
		return nil, err
	}
	return newEngine(t, t.output, keyMap), nil
}

func (e *engine) Render(cmds *Commands) error {
	e.clearPreviousLines()

	if err := cmds.Replay(e.output); err != nil {
		return err
	}

	e.previousLineCount = cmds.ScreenLines(e.Width())
	return e.output.Flush()
}

// clearPreviousLines erases the last frame bottom-up and leaves the cursor at
// column 0 of its first line.
func (e *engine) clearPreviousLines() {
	for i := range e.previousLineCount {
		e.output.WriteString(ansi.EraseEntireLine)
		if i < e.previousLineCount-1 {
			e.output.WriteString(ansi.CursorPreviousLine(1))
		}
	}
	e.output.WriteString("\r")
}

func (e *engine) FinishRendering() error {
	if _, err := e.output.WriteString("\r\n"); err != nil {
		return err
	}
	e.previousLineCount = 1
	return e.output.Flush()
}

func (e *engine) ReadKey() (Key, error) {
	key, err := e.keys.ReadKey()
	if err != nil {
		return Key{}, fmt.Errorf("failed to read key: %w", err)
	}
	return key, nil
}

func (e *engine) setKeyMap(keyMap *KeyMap) {
	e.keys.keyMap = keyMap
}

// Width reports the terminal width in cells.
func (e *engine) Width() int {
	w, _, err := e.terminal.Size()
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

func (e *engine) EnableRawMode() error   { return e.terminal.EnableRawMode() }
func (e *engine) DisableRawMode() error  { return e.terminal.DisableRawMode() }
func (e *engine) IsRawModeEnabled() bool { return e.terminal.IsRawModeEnabled() }

func (e *engine) Close() error {
	return e.terminal.Close()
}
