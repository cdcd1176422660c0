package prompts

import (
	"io"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// CommandBuffer is the drawing surface a prompt renders itself into.
//
// Implementations only record what should be drawn; nothing reaches the
// terminal until an Engine replays the buffer. Tests can supply their own
// implementation to capture the draw calls of a prompt.
type CommandBuffer interface {
	NewLine()
	Print(text string)
	SetFormatting(f Formatting)
	ResetFormatting()
}

// drawCommand is a single replayable drawing operation.
type drawCommand interface {
	execute(w io.Writer) error
}

type printCommand string

func (c printCommand) execute(w io.Writer) error {
	_, err := io.WriteString(w, string(c))
	return err
}

type newLineCommand struct{}

func (newLineCommand) execute(w io.Writer) error {
	// Raw mode disables output post-processing, so the carriage return is explicit
	_, err := io.WriteString(w, "\r\n")
	return err
}

type formattingCommand struct {
	formatting Formatting
}

func (c formattingCommand) execute(w io.Writer) error {
	seq := c.formatting.ToANSI()
	if seq == "" {
		return nil
	}
	_, err := io.WriteString(w, seq)
	return err
}

type resetFormattingCommand struct{}

func (resetFormattingCommand) execute(w io.Writer) error {
	_, err := io.WriteString(w, ansi.ResetStyle)
	return err
}

// Commands is the CommandBuffer used by the terminal engine: an ordered list
// of drawing operations for one frame together with the number of screen
// lines the frame occupies.
type Commands struct {
	commands   []drawCommand
	linesCount int
	lineWidths []int // display cells printed on each line
}

// NewCommands returns an empty command buffer.
func NewCommands() *Commands {
	return &Commands{linesCount: 1, lineWidths: []int{0}}
}

// NewLine appends a line break.
func (c *Commands) NewLine() {
	c.commands = append(c.commands, newLineCommand{})
	c.linesCount++
	c.lineWidths = append(c.lineWidths, 0)
}

// Print appends literal text. The text must not contain line breaks; use
// NewLine so the line count stays accurate.
func (c *Commands) Print(text string) {
	if text == "" {
		return
	}
	c.commands = append(c.commands, printCommand(text))
	c.lineWidths[len(c.lineWidths)-1] += runewidth.StringWidth(text)
}

// SetFormatting appends a formatting change.
func (c *Commands) SetFormatting(f Formatting) {
	c.commands = append(c.commands, formattingCommand{formatting: f})
}

// ResetFormatting appends a reset to the terminal's default style.
func (c *Commands) ResetFormatting() {
	c.commands = append(c.commands, resetFormattingCommand{})
}

// Clear discards all recorded operations.
func (c *Commands) Clear() {
	c.commands = c.commands[:0]
	c.linesCount = 1
	c.lineWidths = append(c.lineWidths[:0], 0)
}

// LinesCount reports how many screen lines the buffer occupies once replayed.
func (c *Commands) LinesCount() int {
	return c.linesCount
}

// ScreenLines reports how many terminal rows the buffer occupies once
// replayed on a terminal width cells wide, counting lines that wrap. A
// non-positive width counts every line as one row.
func (c *Commands) ScreenLines(width int) int {
	if width <= 0 {
		return c.linesCount
	}
	rows := 0
	for _, w := range c.lineWidths {
		rows += max(1, (w+width-1)/width)
	}
	return rows
}

// Len reports the number of recorded operations.
func (c *Commands) Len() int {
	return len(c.commands)
}

// Replay writes every recorded operation to w in order.
func (c *Commands) Replay(w io.Writer) error {
	for _, cmd := range c.commands {
		if err := cmd.execute(w); err != nil {
			return err
		}
	}
	return nil
}
