// Package main demonstrates the four prompts of the prompts library.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/nao1215/prompts"
)

type language struct {
	name string
	year int
}

func main() {
	name, err := prompts.NewTextInput("Your name").DefaultValue("Gopher").Display()
	if err != nil {
		exit(err)
	}

	age, err := prompts.NewInput("Your age", func(s string) (int, error) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, errors.New("please enter a number")
		}
		if n < 0 || n > 150 {
			return 0, errors.New("please enter a realistic age")
		}
		return n, nil
	}).HelpMessage("0-150").Display()
	if err != nil {
		exit(err)
	}

	city, err := prompts.NewSelection("Your city", []string{
		"Amsterdam", "Berlin", "Kyoto", "Lisbon", "Osaka", "Prague", "Tokyo", "Warsaw",
	}).Display()
	if err != nil {
		exit(err)
	}

	languages, err := prompts.NewMultiselectTransformed("Languages you use", []language{
		{"Go", 2009}, {"Rust", 2010}, {"Python", 1991}, {"C", 1972}, {"Zig", 2016},
	}, func(l language) string {
		return fmt.Sprintf("%s (%d)", l.name, l.year)
	}).Display()
	if err != nil {
		exit(err)
	}

	ok, err := prompts.NewConfirmation("Save your answers").Display()
	if err != nil {
		exit(err)
	}

	fmt.Printf("name=%s age=%d city=%s languages=%v save=%t\n", name, age, city, languages, ok)
}

func exit(err error) {
	if errors.Is(err, prompts.ErrInterrupted) {
		fmt.Println("Cancelled")
		os.Exit(0)
	}
	log.Fatal(err)
}
