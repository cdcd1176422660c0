package prompts

// Confirmation asks a yes/no question.
type Confirmation struct {
	label           string
	defaultPositive bool
	selected        *bool // nil until y or n is pressed
	interruptOnEsc  bool
	isSubmitted     bool
	style           ConfirmationStyle
}

// NewConfirmation creates a Confirmation that answers yes on a bare Enter.
func NewConfirmation(label string) *Confirmation {
	return &Confirmation{
		label:           label,
		defaultPositive: true,
		interruptOnEsc:  true,
		style:           ThemeDefault.ConfirmationStyle(),
	}
}

// DefaultPositive sets the answer used when Enter is pressed without y or n.
func (c *Confirmation) DefaultPositive(positive bool) *Confirmation {
	c.defaultPositive = positive
	return c
}

// InterruptOnEsc controls whether Esc aborts the prompt (default true).
func (c *Confirmation) InterruptOnEsc(enabled bool) *Confirmation {
	c.interruptOnEsc = enabled
	return c
}

// Style sets the style bundle.
func (c *Confirmation) Style(style ConfirmationStyle) *Confirmation {
	c.style = style
	return c
}

// Display runs the prompt on the terminal and returns the answer.
func (c *Confirmation) Display(options ...Option) (bool, error) {
	return Run[bool](c, options...)
}

// Draw implements Prompt.
func (c *Confirmation) Draw(buf CommandBuffer) {
	hint := " [y/N]"
	if c.defaultPositive {
		hint = " [Y/n]"
	}
	c.style.Label.print(c.label+hint, buf)

	formatting := c.style.Input
	if c.isSubmitted {
		formatting = c.style.Submitted
	}
	if c.selected != nil {
		answer := "No"
		if *c.selected {
			answer = "Yes"
		}
		formatting.print(answer, buf)
	}
}

// HandleKey implements Prompt.
func (c *Confirmation) HandleKey(key Key) Outcome[bool] {
	switch key.Code {
	case KeyCtrlC:
		return Abort[bool](ErrInterrupted)
	case KeyEsc:
		if c.interruptOnEsc {
			return Abort[bool](ErrInterrupted)
		}
	case KeyEnter:
		c.isSubmitted = true
		if c.selected == nil {
			answer := c.defaultPositive
			c.selected = &answer
		}
		return Done(*c.selected)
	case KeyChar:
		if c.selected != nil {
			break
		}
		switch key.Rune {
		case 'y', 'Y':
			answer := true
			c.selected = &answer
		case 'n', 'N':
			answer := false
			c.selected = &answer
		}
	case KeyBackspace:
		c.selected = nil
	}
	return Continue[bool]()
}
