package prompts

// Selection asks the user to pick one value from a list. Typing filters the
// list by substring; Up and Down move the highlight; Enter picks.
type Selection[T any] struct {
	label          string
	list           choiceList[T]
	interruptOnEsc bool
	isSubmitted    bool
	submittedLabel string
	style          SelectionStyle
}

// NewSelection creates a Selection over values, displayed with fmt.Sprint.
func NewSelection[T any](label string, values []T) *Selection[T] {
	return NewSelectionTransformed(label, values, nil)
}

// NewSelectionTransformed creates a Selection over values, displayed with transform.
func NewSelectionTransformed[T any](label string, values []T, transform func(T) string) *Selection[T] {
	return &Selection[T]{
		label:          label,
		list:           newChoiceList(NewOptions(values, transform)),
		interruptOnEsc: true,
		style:          ThemeDefault.SelectionStyle(),
	}
}

// MaxVisible sets how many options are shown at once (default 5).
func (s *Selection[T]) MaxVisible(n int) *Selection[T] {
	s.list.setMaxVisible(n)
	return s
}

// OptionWidth truncates option labels to width display cells. By default
// labels are truncated to the terminal width.
func (s *Selection[T]) OptionWidth(width int) *Selection[T] {
	s.list.labelWidth = width
	return s
}

// InterruptOnEsc controls whether Esc aborts the prompt (default true).
func (s *Selection[T]) InterruptOnEsc(enabled bool) *Selection[T] {
	s.interruptOnEsc = enabled
	return s
}

// Style sets the style bundle.
func (s *Selection[T]) Style(style SelectionStyle) *Selection[T] {
	s.style = style
	return s
}

// Display runs the prompt on the terminal and returns the picked value.
func (s *Selection[T]) Display(options ...Option) (T, error) {
	return Run[T](s, options...)
}

// Options exposes the option store.
func (s *Selection[T]) Options() *Options[T] {
	return s.list.options
}

func (s *Selection[T]) setTerminalWidth(width int) {
	s.list.fitToTerminal(width, s.style.SelectedMarker.Marker)
}

// Draw implements Prompt.
func (s *Selection[T]) Draw(buf CommandBuffer) {
	s.style.Label.print(s.label, buf)

	if s.isSubmitted {
		s.style.Submitted.print(s.submittedLabel, buf)
		return
	}

	s.style.Filter.print(string(s.list.filter), buf)
	s.list.drawRows(buf, func(_ int, label string, highlighted bool) {
		if highlighted {
			s.style.SelectedMarker.print(buf)
			s.style.SelectedOption.print(label, buf)
		} else {
			s.style.UnselectedMarker.print(buf)
			s.style.Option.print(label, buf)
		}
	})
}

// HandleKey implements Prompt.
func (s *Selection[T]) HandleKey(key Key) Outcome[T] {
	if s.isSubmitted {
		return Abort[T](ErrAlreadySubmitted)
	}
	switch key.Code {
	case KeyCtrlC:
		return Abort[T](ErrInterrupted)
	case KeyEsc:
		if s.interruptOnEsc {
			return Abort[T](ErrInterrupted)
		}
	case KeyChar:
		s.list.appendFilter(key.Rune)
	case KeyBackspace:
		s.list.popFilter()
	case KeyUp:
		s.list.moveUp()
	case KeyDown:
		s.list.moveDown()
	case KeyEnter:
		index, ok := s.list.highlighted()
		if !ok {
			return Continue[T]()
		}
		s.isSubmitted = true
		s.submittedLabel = s.list.label(index)
		return Done(s.list.options.remove(index))
	}
	return Continue[T]()
}
