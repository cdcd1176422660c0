package prompts

import (
	"github.com/mattn/go-runewidth"
)

const defaultMaxVisible = 5

// choiceList is the state shared by Selection and Multiselect: the option
// store, the filter text and the highlighted position within the filtered
// options.
type choiceList[T any] struct {
	options    *Options[T]
	filter     []rune
	cursor     int // position in options.FilteredOptions()
	maxVisible int
	labelWidth int // display cells available to an option label; 0 is unlimited
}

func newChoiceList[T any](options *Options[T]) choiceList[T] {
	return choiceList[T]{options: options, maxVisible: defaultMaxVisible}
}

func (c *choiceList[T]) setMaxVisible(n int) {
	if n < 1 {
		n = 1
	}
	c.maxVisible = n
}

func (c *choiceList[T]) appendFilter(r rune) {
	c.filter = append(c.filter, r)
	c.refilter()
}

// popFilter removes the last filter character. It reports false when the
// filter is already empty.
func (c *choiceList[T]) popFilter() bool {
	if len(c.filter) == 0 {
		return false
	}
	c.filter = c.filter[:len(c.filter)-1]
	c.refilter()
	return true
}

func (c *choiceList[T]) clearFilter() {
	c.filter = c.filter[:0]
	c.refilter()
}

func (c *choiceList[T]) refilter() {
	c.options.Filter(string(c.filter))
	c.cursor = 0
}

func (c *choiceList[T]) moveUp() {
	if c.cursor > 0 {
		c.cursor--
	}
}

func (c *choiceList[T]) moveDown() {
	if c.cursor < len(c.options.FilteredOptions())-1 {
		c.cursor++
	}
}

// highlighted returns the original index of the highlighted option.
func (c *choiceList[T]) highlighted() (int, bool) {
	filtered := c.options.FilteredOptions()
	if c.cursor < 0 || c.cursor >= len(filtered) {
		return 0, false
	}
	return filtered[c.cursor], true
}

func (c *choiceList[T]) label(index int) string {
	return c.options.TransformedOptions()[index]
}

// fitLabel truncates label so the option row does not wrap.
func (c *choiceList[T]) fitLabel(label string) string {
	if c.labelWidth <= 0 || runewidth.StringWidth(label) <= c.labelWidth {
		return label
	}
	return runewidth.Truncate(label, c.labelWidth, "…")
}

// fitToTerminal derives the label width from the terminal width and the
// width of the row marker. An explicit option width takes precedence.
func (c *choiceList[T]) fitToTerminal(terminalWidth int, marker string) {
	if c.labelWidth > 0 {
		return
	}
	w := terminalWidth - runewidth.StringWidth(marker) - 1
	if w < 1 {
		w = 1
	}
	c.labelWidth = w
}

// drawRows draws the visible window below the header line. It always emits
// exactly maxVisible rows, padding with blank lines past the end of the
// filtered options, so consecutive frames occupy the same number of lines.
func (c *choiceList[T]) drawRows(buf CommandBuffer, drawOption func(index int, label string, highlighted bool)) {
	filtered := c.options.FilteredOptions()
	start := windowStart(c.cursor, c.maxVisible, len(filtered))

	for row := range c.maxVisible {
		buf.NewLine()
		pos := start + row
		if pos >= len(filtered) {
			continue
		}
		index := filtered[pos]
		drawOption(index, c.fitLabel(c.label(index)), pos == c.cursor)
	}
}
