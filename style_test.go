package prompts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormattingToANSI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		formatting Formatting
		want       string
	}{
		{name: "empty", formatting: Formatting{}, want: ""},
		{name: "standard foreground", formatting: Formatting{}.WithForeground(ColorGreen), want: "\x1b[32m"},
		{name: "bright foreground", formatting: Formatting{}.WithForeground(ColorBrightCyan), want: "\x1b[96m"},
		{name: "standard background", formatting: Formatting{}.WithBackground(ColorRed), want: "\x1b[41m"},
		{name: "rgb foreground", formatting: Formatting{}.WithForeground(RGB(1, 2, 3)), want: "\x1b[38;2;1;2;3m"},
		{name: "rgb background", formatting: Formatting{}.WithBackground(RGB(255, 0, 128)), want: "\x1b[48;2;255;0;128m"},
		{name: "bold", formatting: Formatting{}.Bold(), want: "\x1b[1m"},
		{name: "attributes then colors", formatting: Formatting{}.WithForeground(ColorYellow).Italic().Underline(), want: "\x1b[3;4;33m"},
		{name: "crossed out with background", formatting: Formatting{}.CrossedOut().WithBackground(ColorGrey), want: "\x1b[9;100m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.formatting.ToANSI())
		})
	}
}

func TestFormattingIsImmutable(t *testing.T) {
	t.Parallel()

	base := Formatting{}.Bold().Italic()
	underlined := base.Underline()
	crossed := base.CrossedOut()

	assert.Equal(t, "\x1b[1;3m", base.ToANSI())
	assert.Equal(t, "\x1b[1;3;4m", underlined.ToANSI())
	assert.Equal(t, "\x1b[1;3;9m", crossed.ToANSI())
}

func TestLabelStylePrint(t *testing.T) {
	t.Parallel()

	buf := newRecordingBuffer()
	style := LabelStyle{Prefix: ">>", PrefixFormatting: Formatting{}.Bold()}
	style.print("Name", buf)

	assert.Equal(t, []string{">> Name: "}, buf.lines)
	assert.Len(t, buf.formattings, 2)
	assert.Equal(t, 2, buf.resets, "every formatted segment is reset")
}

func TestThemes(t *testing.T) {
	t.Parallel()

	for _, theme := range []*Theme{ThemeDefault, ThemeDracula, ThemeSolarizedDark, ThemeAccessible} {
		t.Run(theme.Name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, "?", theme.LabelStyle().Prefix)
			assert.NotEmpty(t, theme.InputStyle().Error.ToANSI())
			assert.NotEmpty(t, theme.ConfirmationStyle().Submitted.ToANSI())

			sel := theme.SelectionStyle()
			assert.Equal(t, len(sel.SelectedMarker.Marker), len(sel.UnselectedMarker.Marker))

			ms := theme.MultiselectStyle()
			assert.Equal(t, len(ms.CheckedMarker.Marker), len(ms.UncheckedMarker.Marker))
		})
	}
}

func TestCustomStyleIsUsed(t *testing.T) {
	t.Parallel()

	style := ThemeDefault.SelectionStyle()
	style.SelectedMarker.Marker = "→ "
	style.Label.Prefix = "#"

	s := NewSelection("Pick", []string{"a", "b"}).Style(style)
	lines := drawLines[string](s)

	assert.Equal(t, "# Pick: ", lines[0])
	assert.Equal(t, "→ a", lines[1])
}
