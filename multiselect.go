package prompts

import (
	"slices"
	"strings"
)

// DefaultMultiselectHelpMessage is shown next to the filter of a Multiselect.
const DefaultMultiselectHelpMessage = "Space to select, enter to submit"

// Multiselect asks the user to pick one or more values from a list. Space
// toggles the highlighted option; typing filters the list; Enter submits once
// at least one option is checked.
type Multiselect[T any] struct {
	label          string
	list           choiceList[T]
	selected       []int // original indices, in the order they were checked
	helpMessage    string
	interruptOnEsc bool
	isSubmitted    bool
	style          MultiselectStyle
}

// NewMultiselect creates a Multiselect over values, displayed with fmt.Sprint.
func NewMultiselect[T any](label string, values []T) *Multiselect[T] {
	return NewMultiselectTransformed(label, values, nil)
}

// NewMultiselectTransformed creates a Multiselect over values, displayed with transform.
func NewMultiselectTransformed[T any](label string, values []T, transform func(T) string) *Multiselect[T] {
	return &Multiselect[T]{
		label:          label,
		list:           newChoiceList(NewOptions(values, transform)),
		helpMessage:    DefaultMultiselectHelpMessage,
		interruptOnEsc: true,
		style:          ThemeDefault.MultiselectStyle(),
	}
}

// MaxVisible sets how many options are shown at once (default 5).
func (m *Multiselect[T]) MaxVisible(n int) *Multiselect[T] {
	m.list.setMaxVisible(n)
	return m
}

// OptionWidth truncates option labels to width display cells. By default
// labels are truncated to the terminal width.
func (m *Multiselect[T]) OptionWidth(width int) *Multiselect[T] {
	m.list.labelWidth = width
	return m
}

// HelpMessage replaces the help message; an empty message hides it.
func (m *Multiselect[T]) HelpMessage(message string) *Multiselect[T] {
	m.helpMessage = message
	return m
}

// InterruptOnEsc controls whether Esc aborts the prompt (default true).
func (m *Multiselect[T]) InterruptOnEsc(enabled bool) *Multiselect[T] {
	m.interruptOnEsc = enabled
	return m
}

// Style sets the style bundle.
func (m *Multiselect[T]) Style(style MultiselectStyle) *Multiselect[T] {
	m.style = style
	return m
}

// Display runs the prompt on the terminal and returns the checked values in
// their original order.
func (m *Multiselect[T]) Display(options ...Option) ([]T, error) {
	return Run[[]T](m, options...)
}

// Options exposes the option store.
func (m *Multiselect[T]) Options() *Options[T] {
	return m.list.options
}

func (m *Multiselect[T]) setTerminalWidth(width int) {
	m.list.fitToTerminal(width, m.style.CheckedMarker.Marker)
}

func (m *Multiselect[T]) isSelected(index int) bool {
	return slices.Contains(m.selected, index)
}

func (m *Multiselect[T]) toggle(index int) {
	if i := slices.Index(m.selected, index); i >= 0 {
		m.selected = slices.Delete(m.selected, i, i+1)
		return
	}
	m.selected = append(m.selected, index)
}

// Draw implements Prompt.
func (m *Multiselect[T]) Draw(buf CommandBuffer) {
	m.style.Label.print(m.label, buf)

	if m.isSubmitted {
		labels := make([]string, len(m.selected))
		for i, index := range m.selected {
			labels[i] = m.list.label(index)
		}
		m.style.Submitted.print(strings.Join(labels, ", "), buf)
		return
	}

	m.style.Filter.print(string(m.list.filter), buf)
	if m.helpMessage != "" {
		buf.Print(" ")
		m.style.HelpMessage.print("["+m.helpMessage+"]", buf)
	}

	m.list.drawRows(buf, func(index int, label string, highlighted bool) {
		marker := m.style.UncheckedMarker
		if m.isSelected(index) {
			marker = m.style.CheckedMarker
		}
		marker.print(buf)
		if highlighted {
			m.style.HighlightedOption.print(label, buf)
			return
		}
		m.style.Option.print(label, buf)
	})
}

// HandleKey implements Prompt.
func (m *Multiselect[T]) HandleKey(key Key) Outcome[[]T] {
	if m.isSubmitted {
		return Abort[[]T](ErrAlreadySubmitted)
	}
	switch key.Code {
	case KeyCtrlC:
		return Abort[[]T](ErrInterrupted)
	case KeyEsc:
		if m.interruptOnEsc {
			return Abort[[]T](ErrInterrupted)
		}
	case KeyChar:
		if key.Rune != ' ' {
			m.list.appendFilter(key.Rune)
			break
		}
		index, ok := m.list.highlighted()
		if !ok {
			break
		}
		m.toggle(index)
		// Go back to the full list so the next option can be picked right away
		if len(m.list.filter) > 0 {
			m.list.clearFilter()
		}
	case KeyBackspace:
		m.list.popFilter()
	case KeyUp:
		m.list.moveUp()
	case KeyDown:
		m.list.moveDown()
	case KeyEnter:
		if len(m.selected) == 0 {
			break
		}
		return Done(m.submit())
	}
	return Continue[[]T]()
}

// submit removes the checked values from the option store and returns them
// in ascending original order.
func (m *Multiselect[T]) submit() []T {
	m.isSubmitted = true
	slices.Sort(m.selected)

	result := make([]T, len(m.selected))
	// Highest index first so the remaining indices stay valid
	for i := len(m.selected) - 1; i >= 0; i-- {
		result[i] = m.list.options.remove(m.selected[i])
	}
	return result
}
