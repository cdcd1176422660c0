// Package prompts provides interactive terminal prompts that collect a single
// typed value from the user.
//
// Four prompts are available:
//
//   - Input: free text converted by a validation function
//   - Confirmation: a yes/no question
//   - Selection: one value picked from a filterable list
//   - Multiselect: several values picked from a filterable list
//
// Every prompt redraws itself in place as keys arrive. Only the lines the
// prompt occupies are touched, so output printed earlier stays on screen.
//
// Quick Start:
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//		"strconv"
//
//		"github.com/nao1215/prompts"
//	)
//
//	func main() {
//		name, err := prompts.NewTextInput("Your name").DefaultValue("John").Display()
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		age, err := prompts.NewInput("Your age", strconv.Atoi).Display()
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		city, err := prompts.NewSelection("Your city", []string{"Warsaw", "Berlin", "Tokyo"}).Display()
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println(name, age, city)
//	}
//
// Filtering:
//
// Selection and Multiselect filter their options while the user types. An
// option stays visible when its display string contains the typed text
// (case-sensitive). Up and Down move the highlight; the list scrolls so the
// highlighted option stays in the middle of the visible rows.
//
// Key Bindings:
//
//   - Enter: Submit
//   - Esc: Cancel and return ErrInterrupted (can be disabled per prompt)
//   - Ctrl+C: Cancel and return ErrInterrupted
//   - Backspace: Delete the last character of the input or filter
//   - Up/Down: Move the highlight, or browse the history of an Input
//   - Space: Toggle the highlighted option of a Multiselect
//
// Error Handling:
//
//   - prompts.ErrInterrupted: The user cancelled the prompt
//   - Errors wrapping io.EOF: The input stream was closed
//
// Validation errors never end an Input; the message is shown and the user
// types again.
//
// Styling:
//
// Each prompt has a style bundle (InputStyle, SelectionStyle, ...) built from
// a Theme. Use one of the presets or build a Formatting by hand:
//
//	style := prompts.ThemeDracula.InputStyle()
//	style.Input = prompts.Formatting{}.Italic().WithForeground(prompts.ColorYellow)
//	prompts.NewTextInput("Your name").Style(style)
//
// Raw Mode:
//
// A prompt puts the terminal in raw mode while it is displayed and restores
// it afterwards. If raw mode was already on, for example because the caller
// holds a guard from RawMode, it is left on.
//
// Thread Safety:
//
// Prompts are not thread-safe and must be displayed from a single goroutine,
// one at a time.
package prompts
