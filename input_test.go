package prompts

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		defaultValue string
		keys         []Key
		want         string
	}{
		{name: "typed text", keys: append(typed("hello"), keyEnter), want: "hello"},
		{name: "empty text", keys: []Key{keyEnter}, want: ""},
		{name: "backspace", keys: append(typed("helloo"), keyBackspace, keyEnter), want: "hello"},
		{name: "backspace on empty text", keys: []Key{keyBackspace, keyBackspace, CharKey('a'), keyEnter}, want: "a"},
		{name: "default submitted on enter", defaultValue: "John", keys: []Key{keyEnter}, want: "John"},
		{name: "typing replaces default", defaultValue: "John", keys: append(typed("Bob"), keyEnter), want: "Bob"},
		{name: "backspace clears default", defaultValue: "John", keys: []Key{keyBackspace, keyEnter}, want: ""},
		{name: "unicode", keys: append(typed("こんにちは"), keyBackspace, keyEnter), want: "こんにち"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := NewTextInput("Name")
			if tt.defaultValue != "" {
				in.DefaultValue(tt.defaultValue)
			}
			out := feed[string](in, tt.keys...)
			require.Equal(t, OutcomeDone, out.Kind)
			assert.Equal(t, tt.want, out.Value)
		})
	}
}

func TestInputValidation(t *testing.T) {
	t.Parallel()

	in := NewInput("Age", strconv.Atoi)

	out := feed[int](in, CharKey('x'), keyEnter)
	require.Equal(t, OutcomeContinue, out.Kind, "invalid input keeps the prompt open")
	assert.Contains(t, in.errMessage, "invalid syntax")
	assert.Empty(t, in.text, "the rejected text is cleared")

	lines := drawLines[int](in)
	assert.Equal(t, []string{`? Age: [strconv.Atoi: parsing "x": invalid syntax]`}, lines)

	out = feed[int](in, CharKey('4'), CharKey('2'))
	assert.Empty(t, in.errMessage, "typing hides the error")
	out = feed[int](in, keyEnter)
	require.Equal(t, OutcomeDone, out.Kind)
	assert.Equal(t, 42, out.Value)
}

func TestInputInvalidDefault(t *testing.T) {
	t.Parallel()

	in := NewInput("Port", strconv.Atoi).DefaultValue("http")
	out := in.HandleKey(keyEnter)

	assert.Equal(t, OutcomeContinue, out.Kind)
	assert.NotEmpty(t, in.errMessage)
}

func TestInputValidDefault(t *testing.T) {
	t.Parallel()

	in := NewInput("Port", strconv.Atoi).DefaultValue("8080")
	out := in.HandleKey(keyEnter)

	require.Equal(t, OutcomeDone, out.Kind)
	assert.Equal(t, 8080, out.Value)
}

func TestInputDraw(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   func() *Input[string]
		keys []Key
		want string
	}{
		{
			name: "empty",
			in:   func() *Input[string] { return NewTextInput("Name") },
			want: "? Name: ",
		},
		{
			name: "default value",
			in:   func() *Input[string] { return NewTextInput("Name").DefaultValue("John") },
			want: "? Name: [John]",
		},
		{
			name: "typed text",
			in:   func() *Input[string] { return NewTextInput("Name").DefaultValue("John") },
			keys: typed("Bo"),
			want: "? Name: Bo",
		},
		{
			name: "help message only",
			in:   func() *Input[string] { return NewTextInput("Name").HelpMessage("first name") },
			want: "? Name: [first name]",
		},
		{
			name: "help message after text",
			in:   func() *Input[string] { return NewTextInput("Name").HelpMessage("first name") },
			keys: typed("Al"),
			want: "? Name: Al [first name]",
		},
		{
			name: "submitted",
			in:   func() *Input[string] { return NewTextInput("Name") },
			keys: append(typed("Al"), keyEnter),
			want: "? Name: Al",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := tt.in()
			feed[string](in, tt.keys...)
			assert.Equal(t, []string{tt.want}, drawLines[string](in))
		})
	}
}

func TestInputAbort(t *testing.T) {
	t.Parallel()

	in := NewTextInput("Name")
	out := feed[string](in, append(typed("abc"), keyEsc)...)
	require.Equal(t, OutcomeAbort, out.Kind)
	assert.ErrorIs(t, out.Err, ErrInterrupted)

	in = NewTextInput("Name").InterruptOnEsc(false)
	assert.Equal(t, OutcomeContinue, in.HandleKey(keyEsc).Kind)
	assert.Equal(t, OutcomeAbort, in.HandleKey(keyCtrlC).Kind)
}

func TestInputHistory(t *testing.T) {
	t.Parallel()

	h := NewHistory(10)
	h.Add("first")
	h.Add("second")

	in := NewTextInput("Cmd").History(h)

	in.HandleKey(keyUp)
	assert.Equal(t, "second", string(in.text))
	in.HandleKey(keyUp)
	assert.Equal(t, "first", string(in.text))
	in.HandleKey(keyUp)
	assert.Equal(t, "first", string(in.text), "Up at the oldest entry stays there")

	in.HandleKey(keyDown)
	assert.Equal(t, "second", string(in.text))
	in.HandleKey(keyDown)
	assert.Equal(t, "", string(in.text), "Down past the newest entry clears the text")

	out := feed[string](in, keyUp, CharKey('!'), keyEnter)
	require.Equal(t, OutcomeDone, out.Kind)
	assert.Equal(t, "second!", out.Value)
	assert.Equal(t, []string{"first", "second", "second!"}, h.Entries())
}

func TestInputWithoutHistoryIgnoresArrows(t *testing.T) {
	t.Parallel()

	in := NewTextInput("Cmd")
	out := feed[string](in, append(typed("ab"), keyUp, keyDown, keyEnter)...)
	require.Equal(t, OutcomeDone, out.Kind)
	assert.Equal(t, "ab", out.Value)
}
