// Package main demonstrates themes and custom formatting.
package main

import (
	"fmt"
	"log"

	"github.com/nao1215/prompts"
)

func main() {
	themes := []*prompts.Theme{
		prompts.ThemeDefault,
		prompts.ThemeDracula,
		prompts.ThemeSolarizedDark,
		prompts.ThemeAccessible,
	}

	theme, err := prompts.NewSelectionTransformed("Theme", themes, func(t *prompts.Theme) string {
		return t.Name
	}).Style(prompts.ThemeDefault.SelectionStyle()).Display()
	if err != nil {
		log.Fatal(err)
	}

	style := theme.InputStyle()
	style.Input = prompts.Formatting{}.Italic().WithForeground(theme.Accent)
	style.Label.Prefix = "»"

	name, err := prompts.NewTextInput("Project name").
		HelpMessage("lowercase letters only").
		Style(style).
		Display()
	if err != nil {
		log.Fatal(err)
	}

	selection := theme.MultiselectStyle()
	selection.CheckedMarker = prompts.OptionMarker{
		Marker:     "◉ ",
		Formatting: prompts.Formatting{}.Bold().WithForeground(theme.Accent),
	}
	selection.UncheckedMarker = prompts.OptionMarker{Marker: "○ "}

	features, err := prompts.NewMultiselect("Features", []string{"cli", "api", "docs", "ci"}).
		Style(selection).
		Display()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s with %v\n", name, features)
}
