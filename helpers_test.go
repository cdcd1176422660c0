package prompts

import (
	"bytes"
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

// recordingBuffer is a CommandBuffer that keeps the printed text per line and
// counts formatting operations, so tests can assert on what a prompt draws.
type recordingBuffer struct {
	lines       []string
	formattings []Formatting
	resets      int
}

func newRecordingBuffer() *recordingBuffer {
	return &recordingBuffer{lines: []string{""}}
}

func (b *recordingBuffer) NewLine() {
	b.lines = append(b.lines, "")
}

func (b *recordingBuffer) Print(text string) {
	b.lines[len(b.lines)-1] += text
}

func (b *recordingBuffer) SetFormatting(f Formatting) {
	b.formattings = append(b.formattings, f)
}

func (b *recordingBuffer) ResetFormatting() {
	b.resets++
}

// drawLines draws p into a fresh recording buffer and returns its lines.
func drawLines[T any](p Prompt[T]) []string {
	buf := newRecordingBuffer()
	p.Draw(buf)
	return buf.lines
}

// feed sends keys to p and returns the last outcome.
func feed[T any](p Prompt[T], keys ...Key) Outcome[T] {
	var outcome Outcome[T]
	for _, k := range keys {
		outcome = p.HandleKey(k)
	}
	return outcome
}

// typed converts text into KeyChar events.
func typed(text string) []Key {
	keys := make([]Key, 0, len(text))
	for _, r := range text {
		keys = append(keys, CharKey(r))
	}
	return keys
}

var (
	keyEnter     = Key{Code: KeyEnter}
	keyBackspace = Key{Code: KeyBackspace}
	keyEsc       = Key{Code: KeyEsc}
	keyUp        = Key{Code: KeyUp}
	keyDown      = Key{Code: KeyDown}
	keyCtrlC     = Key{Code: KeyCtrlC}
)

// newTestEngine returns an engine reading input from a mock terminal and
// writing to a buffer.
func newTestEngine(t *testing.T, input string) (*engine, *mockTerminal, *bytes.Buffer) {
	t.Helper()

	terminal := newMockTerminal(input)
	var output bytes.Buffer
	return newEngine(terminal, &output, nil), terminal, &output
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}
