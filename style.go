package prompts

import (
	"strconv"
	"strings"
)

// Color is a terminal color. It is either one of the 16 standard ANSI colors
// or a 24-bit RGB value.
type Color struct {
	R, G, B uint8
	ansi    int // standard foreground SGR code (30-37, 90-97); 0 means RGB
}

// Standard ANSI colors.
var (
	ColorBlack         = Color{ansi: 30}
	ColorRed           = Color{ansi: 31}
	ColorGreen         = Color{ansi: 32}
	ColorYellow        = Color{ansi: 33}
	ColorBlue          = Color{ansi: 34}
	ColorMagenta       = Color{ansi: 35}
	ColorCyan          = Color{ansi: 36}
	ColorWhite         = Color{ansi: 37}
	ColorGrey          = Color{ansi: 90}
	ColorBrightRed     = Color{ansi: 91}
	ColorBrightGreen   = Color{ansi: 92}
	ColorBrightYellow  = Color{ansi: 93}
	ColorBrightBlue    = Color{ansi: 94}
	ColorBrightMagenta = Color{ansi: 95}
	ColorBrightCyan    = Color{ansi: 96}
	ColorBrightWhite   = Color{ansi: 97}
)

// RGB returns a true color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

func (c Color) foregroundCode() string {
	if c.ansi != 0 {
		return strconv.Itoa(c.ansi)
	}
	return "38;2;" + c.rgbCode()
}

func (c Color) backgroundCode() string {
	if c.ansi != 0 {
		return strconv.Itoa(c.ansi + 10)
	}
	return "48;2;" + c.rgbCode()
}

func (c Color) rgbCode() string {
	return strconv.Itoa(int(c.R)) + ";" + strconv.Itoa(int(c.G)) + ";" + strconv.Itoa(int(c.B))
}

// Attribute is a text attribute such as bold or underline.
type Attribute int

// Text attributes supported by Formatting.
const (
	AttributeBold Attribute = iota + 1
	AttributeItalic
	AttributeUnderline
	AttributeCrossedOut
)

func (a Attribute) code() string {
	switch a {
	case AttributeBold:
		return "1"
	case AttributeItalic:
		return "3"
	case AttributeUnderline:
		return "4"
	case AttributeCrossedOut:
		return "9"
	default:
		return ""
	}
}

// Formatting describes how a piece of text is displayed: optional foreground
// and background colors plus a set of attributes. The zero value leaves the
// terminal's current style untouched.
type Formatting struct {
	Foreground *Color
	Background *Color
	Attributes []Attribute
}

// WithForeground returns a copy of f with the foreground color set.
func (f Formatting) WithForeground(c Color) Formatting {
	f.Foreground = &c
	return f
}

// WithBackground returns a copy of f with the background color set.
func (f Formatting) WithBackground(c Color) Formatting {
	f.Background = &c
	return f
}

// Bold returns a copy of f with the bold attribute added.
func (f Formatting) Bold() Formatting { return f.with(AttributeBold) }

// Italic returns a copy of f with the italic attribute added.
func (f Formatting) Italic() Formatting { return f.with(AttributeItalic) }

// Underline returns a copy of f with the underline attribute added.
func (f Formatting) Underline() Formatting { return f.with(AttributeUnderline) }

// CrossedOut returns a copy of f with the crossed-out attribute added.
func (f Formatting) CrossedOut() Formatting { return f.with(AttributeCrossedOut) }

func (f Formatting) with(a Attribute) Formatting {
	attrs := make([]Attribute, 0, len(f.Attributes)+1)
	attrs = append(attrs, f.Attributes...)
	f.Attributes = append(attrs, a)
	return f
}

// ToANSI converts the formatting to an SGR escape sequence. An empty
// formatting yields an empty string.
func (f Formatting) ToANSI() string {
	var codes []string

	// Attributes come first
	for _, a := range f.Attributes {
		if c := a.code(); c != "" {
			codes = append(codes, c)
		}
	}
	if f.Foreground != nil {
		codes = append(codes, f.Foreground.foregroundCode())
	}
	if f.Background != nil {
		codes = append(codes, f.Background.backgroundCode())
	}

	if len(codes) == 0 {
		return ""
	}
	return "\x1b[" + strings.Join(codes, ";") + "m"
}

func (f Formatting) print(text string, buf CommandBuffer) {
	buf.SetFormatting(f)
	buf.Print(text)
	buf.ResetFormatting()
}

// LabelStyle controls how the leading "? Label: " part of every prompt is drawn.
type LabelStyle struct {
	Prefix           string
	PrefixFormatting Formatting
	LabelFormatting  Formatting
}

func (s LabelStyle) print(label string, buf CommandBuffer) {
	s.PrefixFormatting.print(s.Prefix, buf)
	buf.Print(" ")
	s.LabelFormatting.print(label+":", buf)
	buf.Print(" ")
}

// OptionMarker is the text drawn in front of an option row.
type OptionMarker struct {
	Marker     string
	Formatting Formatting
}

func (m OptionMarker) print(buf CommandBuffer) {
	m.Formatting.print(m.Marker, buf)
}

// InputStyle is the style bundle of an Input prompt.
type InputStyle struct {
	Label        LabelStyle
	DefaultValue Formatting
	Error        Formatting
	Input        Formatting
	Submitted    Formatting
	HelpMessage  Formatting
}

// ConfirmationStyle is the style bundle of a Confirmation prompt.
type ConfirmationStyle struct {
	Label     LabelStyle
	Input     Formatting
	Submitted Formatting
}

// SelectionStyle is the style bundle of a Selection prompt.
type SelectionStyle struct {
	Label            LabelStyle
	Filter           Formatting
	Submitted        Formatting
	SelectedMarker   OptionMarker
	UnselectedMarker OptionMarker
	SelectedOption   Formatting
	Option           Formatting
}

// MultiselectStyle is the style bundle of a Multiselect prompt.
type MultiselectStyle struct {
	Label         LabelStyle
	Filter        Formatting
	Submitted     Formatting
	HelpMessage   Formatting
	CheckedMarker OptionMarker
	// UncheckedMarker should have the same display width as CheckedMarker.
	UncheckedMarker   OptionMarker
	HighlightedOption Formatting
	Option            Formatting
}

// Theme is a small palette from which every prompt style is derived.
type Theme struct {
	Name      string
	Prefix    Color
	Accent    Color
	Muted     Color
	Error     Color
	Submitted Color
}

// ThemeDefault uses the standard ANSI palette so it follows the terminal's own colors.
var ThemeDefault = &Theme{
	Name:      "default",
	Prefix:    ColorGreen,
	Accent:    ColorGreen,
	Muted:     ColorGrey,
	Error:     ColorRed,
	Submitted: ColorGreen,
}

// ThemeDracula is the Dracula color scheme
var ThemeDracula = &Theme{
	Name:      "Dracula",
	Prefix:    RGB(255, 121, 198),
	Accent:    RGB(80, 250, 123),
	Muted:     RGB(98, 114, 164),
	Error:     RGB(255, 85, 85),
	Submitted: RGB(139, 233, 253),
}

// ThemeSolarizedDark is the Solarized Dark color scheme
var ThemeSolarizedDark = &Theme{
	Name:      "Solarized Dark",
	Prefix:    RGB(133, 153, 0),
	Accent:    RGB(38, 139, 210),
	Muted:     RGB(88, 110, 117),
	Error:     RGB(220, 50, 47),
	Submitted: RGB(42, 161, 152),
}

// ThemeAccessible is a colorblind-safe theme with high contrast
var ThemeAccessible = &Theme{
	Name:      "Accessible",
	Prefix:    RGB(0, 114, 178),
	Accent:    RGB(230, 159, 0),
	Muted:     RGB(204, 204, 204),
	Error:     RGB(213, 94, 0),
	Submitted: RGB(86, 180, 233),
}

// LabelStyle returns the label style of the theme.
func (t *Theme) LabelStyle() LabelStyle {
	return LabelStyle{
		Prefix:           "?",
		PrefixFormatting: Formatting{}.Bold().WithForeground(t.Prefix),
		LabelFormatting:  Formatting{}.Bold(),
	}
}

// InputStyle returns the Input style of the theme.
func (t *Theme) InputStyle() InputStyle {
	return InputStyle{
		Label:        t.LabelStyle(),
		DefaultValue: Formatting{}.WithForeground(t.Muted),
		Error:        Formatting{}.WithForeground(t.Error),
		Input:        Formatting{},
		Submitted:    Formatting{}.WithForeground(t.Submitted),
		HelpMessage:  Formatting{}.WithForeground(t.Muted),
	}
}

// ConfirmationStyle returns the Confirmation style of the theme.
func (t *Theme) ConfirmationStyle() ConfirmationStyle {
	return ConfirmationStyle{
		Label:     t.LabelStyle(),
		Input:     Formatting{},
		Submitted: Formatting{}.WithForeground(t.Submitted),
	}
}

// SelectionStyle returns the Selection style of the theme.
func (t *Theme) SelectionStyle() SelectionStyle {
	return SelectionStyle{
		Label:            t.LabelStyle(),
		Filter:           Formatting{},
		Submitted:        Formatting{}.WithForeground(t.Submitted),
		SelectedMarker:   OptionMarker{Marker: "> ", Formatting: Formatting{}.Bold().WithForeground(t.Accent)},
		UnselectedMarker: OptionMarker{Marker: "  "},
		SelectedOption:   Formatting{}.WithForeground(t.Accent),
		Option:           Formatting{},
	}
}

// MultiselectStyle returns the Multiselect style of the theme.
func (t *Theme) MultiselectStyle() MultiselectStyle {
	return MultiselectStyle{
		Label:             t.LabelStyle(),
		Filter:            Formatting{},
		Submitted:         Formatting{}.WithForeground(t.Submitted),
		HelpMessage:       Formatting{}.WithForeground(t.Muted),
		CheckedMarker:     OptionMarker{Marker: "[x] "},
		UncheckedMarker:   OptionMarker{Marker: "[ ] "},
		HighlightedOption: Formatting{}.WithForeground(t.Accent),
		Option:            Formatting{},
	}
}
