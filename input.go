package prompts

// Input asks for a line of text and converts it with a validation function.
//
// When validation fails the error message is shown in place of the text and
// the user types again; the prompt only completes with a valid value.
type Input[T any] struct {
	label          string
	text           []rune
	helpMessage    string
	isFirstInput   bool
	isSubmitted    bool
	errMessage     string
	validate       func(string) (T, error)
	interruptOnEsc bool
	style          InputStyle

	hasDefault   bool
	defaultValue T
	defaultErr   error

	history      *History
	historyIndex int // position while browsing history; -1 when not browsing
}

// NewInput creates an Input. validate converts the submitted text into the
// result or returns an error whose message is displayed to the user.
//
// Example:
//
//	port, err := prompts.NewInput("Port", strconv.Atoi).
//		DefaultValue("8080").
//		Display()
func NewInput[T any](label string, validate func(string) (T, error)) *Input[T] {
	return &Input[T]{
		label:          label,
		isFirstInput:   true,
		validate:       validate,
		interruptOnEsc: true,
		style:          ThemeDefault.InputStyle(),
		historyIndex:   -1,
	}
}

// NewTextInput creates an Input that accepts any text.
func NewTextInput(label string) *Input[string] {
	return NewInput(label, func(s string) (string, error) { return s, nil })
}

// DefaultValue pre-fills the input. The value is validated right away and is
// submitted as is when Enter is pressed before any other key; the first
// typed character replaces it.
func (i *Input[T]) DefaultValue(value string) *Input[T] {
	i.text = []rune(value)
	i.hasDefault = value != ""
	if i.hasDefault {
		i.defaultValue, i.defaultErr = i.validate(value)
	}
	return i
}

// HelpMessage sets a hint shown after the input.
func (i *Input[T]) HelpMessage(message string) *Input[T] {
	i.helpMessage = message
	return i
}

// InterruptOnEsc controls whether Esc aborts the prompt (default true).
func (i *Input[T]) InterruptOnEsc(enabled bool) *Input[T] {
	i.interruptOnEsc = enabled
	return i
}

// Style sets the style bundle.
func (i *Input[T]) Style(style InputStyle) *Input[T] {
	i.style = style
	return i
}

// History enables recalling earlier entries with Up and Down. Submitted text
// is added to h.
func (i *Input[T]) History(h *History) *Input[T] {
	i.history = h
	i.historyIndex = -1
	return i
}

// Display runs the prompt on the terminal and returns the validated value.
func (i *Input[T]) Display(options ...Option) (T, error) {
	return Run[T](i, options...)
}

// Draw implements Prompt.
func (i *Input[T]) Draw(buf CommandBuffer) {
	i.style.Label.print(i.label, buf)

	text := string(i.text)
	printed := true
	switch {
	case i.errMessage != "":
		i.style.Error.print("["+i.errMessage+"]", buf)
	case i.isSubmitted:
		i.style.Submitted.print(text, buf)
	case i.isFirstInput && text != "":
		i.style.DefaultValue.print("["+text+"]", buf)
	case !i.isFirstInput && text != "":
		i.style.Input.print(text, buf)
	default:
		printed = false
	}

	if i.helpMessage != "" {
		if printed {
			buf.Print(" ")
		}
		i.style.HelpMessage.print("["+i.helpMessage+"]", buf)
	}
}

// HandleKey implements Prompt.
func (i *Input[T]) HandleKey(key Key) Outcome[T] {
	isFirstInput := i.isFirstInput
	i.isFirstInput = false

	switch key.Code {
	case KeyCtrlC:
		return Abort[T](ErrInterrupted)
	case KeyEsc:
		if i.interruptOnEsc {
			return Abort[T](ErrInterrupted)
		}
	case KeyChar:
		if isFirstInput {
			i.text = i.text[:0]
		}
		i.errMessage = ""
		i.text = append(i.text, key.Rune)
	case KeyBackspace:
		if isFirstInput {
			i.text = i.text[:0]
		}
		i.errMessage = ""
		if len(i.text) > 0 {
			i.text = i.text[:len(i.text)-1]
		}
	case KeyUp:
		i.historyPrev()
	case KeyDown:
		i.historyNext()
	case KeyEnter:
		if isFirstInput && i.hasDefault && i.defaultErr == nil {
			return i.submit(i.defaultValue)
		}
		value, err := i.validate(string(i.text))
		if err != nil {
			i.errMessage = err.Error()
			i.text = i.text[:0]
			return Continue[T]()
		}
		return i.submit(value)
	}
	return Continue[T]()
}

func (i *Input[T]) submit(value T) Outcome[T] {
	i.isSubmitted = true
	i.errMessage = ""
	if i.history != nil {
		i.history.Add(string(i.text))
	}
	return Done(value)
}

func (i *Input[T]) historyPrev() {
	if i.history == nil || i.history.Len() == 0 {
		return
	}
	if i.historyIndex < 0 {
		i.historyIndex = i.history.Len()
	}
	if i.historyIndex > 0 {
		i.historyIndex--
		i.setText(i.history.at(i.historyIndex))
	}
}

func (i *Input[T]) historyNext() {
	if i.history == nil || i.historyIndex < 0 {
		return
	}
	i.historyIndex++
	if i.historyIndex >= i.history.Len() {
		i.historyIndex = -1
		i.setText("")
		return
	}
	i.setText(i.history.at(i.historyIndex))
}

func (i *Input[T]) setText(text string) {
	i.text = []rune(text)
	i.errMessage = ""
}
