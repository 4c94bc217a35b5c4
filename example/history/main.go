// Package main demonstrates recalling earlier answers with Up and Down.
package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/nao1215/ask"
)

func main() {
	fmt.Println("Use Up/Down arrow keys to recall earlier commands")
	fmt.Println("Type 'history' to see command history")
	fmt.Println("Type 'clear' to clear history")
	fmt.Println("Press Esc or Ctrl+D to exit")
	fmt.Println()

	history := ask.NewHistory(1000)
	for {
		text := ask.NewText("history>")
		text.History = history

		result, err := text.Prompt()
		if errors.Is(err, ask.ErrCanceled) || errors.Is(err, ask.ErrInterrupted) {
			fmt.Println("Goodbye!")
			return
		}
		if err != nil {
			log.Fatal(err)
		}

		result = strings.TrimSpace(result)
		switch result {
		case "":
		case "history":
			for i, cmd := range history.Entries() {
				fmt.Printf("  %3d: %s\n", i+1, cmd)
			}
		case "clear":
			history.Clear()
			fmt.Println("History cleared")
		default:
			history.Add(result)
			fmt.Printf("Executed: %s\n", result)
		}
	}
}
