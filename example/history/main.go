// Package main demonstrates an Input loop that recalls earlier entries with the arrow keys.
package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/nao1215/prompts"
)

func main() {
	// Keep raw mode on between prompts
	guard, err := prompts.RawMode()
	if err != nil {
		log.Fatal(err)
	}
	defer guard.Release()

	history := prompts.NewHistory(100)

	fmt.Print("Type 'exit' to quit, Up/Down to browse earlier commands\r\n")
	for {
		cmd, err := prompts.NewTextInput("cmd").History(history).Display()
		if err != nil {
			if errors.Is(err, prompts.ErrInterrupted) {
				return
			}
			log.Fatal(err)
		}
		if cmd == "exit" {
			return
		}
		fmt.Printf("you typed %q (%d entries in history)\r\n", cmd, history.Len())
	}
}
