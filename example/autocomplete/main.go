// Package main demonstrates suggestions and completion on a text prompt.
package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/nao1215/ask"
)

var commands = []string{"help", "list", "create", "delete", "update", "status", "exit"}

// complete fills in the command when exactly one starts with the input.
func complete(in string) (string, bool, error) {
	var match string
	for _, c := range commands {
		if strings.HasPrefix(c, strings.ToLower(in)) {
			if match != "" {
				return "", false, nil
			}
			match = c
		}
	}
	return match, match != "", nil
}

func main() {
	fmt.Println("Type to see suggestions, ↑↓ to pick one and Tab to accept it.")

	cmd := ask.NewText("Command:")
	cmd.Suggester = ask.NewFuzzySuggester(commands)
	cmd.Completer = complete
	cmd.Validators = []ask.StringValidator{ask.ValidateRequired("")}

	answer, err := cmd.Prompt()
	if errors.Is(err, ask.ErrCanceled) || errors.Is(err, ask.ErrInterrupted) {
		fmt.Println("Goodbye!")
		return
	}
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Executed: %s\n", answer)
}
