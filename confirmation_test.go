package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		defaultPositive bool
		keys            []Key
		want            bool
	}{
		{name: "enter uses positive default", defaultPositive: true, keys: []Key{keyEnter}, want: true},
		{name: "enter uses negative default", defaultPositive: false, keys: []Key{keyEnter}, want: false},
		{name: "n overrides default", defaultPositive: true, keys: []Key{CharKey('n'), keyEnter}, want: false},
		{name: "upper case Y", defaultPositive: false, keys: []Key{CharKey('Y'), keyEnter}, want: true},
		{name: "first answer sticks", defaultPositive: true, keys: []Key{CharKey('n'), CharKey('y'), keyEnter}, want: false},
		{name: "backspace clears the answer", defaultPositive: false, keys: []Key{CharKey('y'), keyBackspace, CharKey('n'), keyEnter}, want: false},
		{name: "other characters are ignored", defaultPositive: true, keys: []Key{CharKey('x'), keyEnter}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewConfirmation("Continue?").DefaultPositive(tt.defaultPositive)
			out := feed[bool](c, tt.keys...)
			require.Equal(t, OutcomeDone, out.Kind)
			assert.Equal(t, tt.want, out.Value)
		})
	}
}

func TestConfirmationDraw(t *testing.T) {
	t.Parallel()

	c := NewConfirmation("Continue")
	assert.Equal(t, []string{"? Continue [Y/n]: "}, drawLines[bool](c))

	c.HandleKey(CharKey('n'))
	assert.Equal(t, []string{"? Continue [Y/n]: No"}, drawLines[bool](c))

	c.HandleKey(keyEnter)
	assert.Equal(t, []string{"? Continue [Y/n]: No"}, drawLines[bool](c))

	c = NewConfirmation("Continue").DefaultPositive(false)
	assert.Equal(t, []string{"? Continue [y/N]: "}, drawLines[bool](c))
}

func TestConfirmationSubmittedDefaultIsDrawn(t *testing.T) {
	t.Parallel()

	c := NewConfirmation("Continue")
	c.HandleKey(keyEnter)
	assert.Equal(t, []string{"? Continue [Y/n]: Yes"}, drawLines[bool](c))
}

func TestConfirmationAbort(t *testing.T) {
	t.Parallel()

	c := NewConfirmation("Continue")
	out := c.HandleKey(keyCtrlC)
	require.Equal(t, OutcomeAbort, out.Kind)
	assert.ErrorIs(t, out.Err, ErrInterrupted)

	c = NewConfirmation("Continue").InterruptOnEsc(false)
	assert.Equal(t, OutcomeContinue, c.HandleKey(keyEsc).Kind)
}
