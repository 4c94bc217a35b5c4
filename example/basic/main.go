// Package main demonstrates the basic prompts of the ask library.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/nao1215/ask"
)

func main() {
	name, err := ask.NewText("What is your name?").Prompt()
	if err != nil {
		exit(err)
	}

	language, err := ask.NewSelect("Favorite language?", []string{"Go", "Rust", "Zig", "OCaml", "Haskell"}).Prompt()
	if err != nil {
		exit(err)
	}

	ok, err := ask.NewConfirm("Save your answers?").WithDefault(true).Prompt()
	if err != nil {
		exit(err)
	}

	if ok {
		fmt.Printf("Saved: %s likes %s\n", name, language)
	}
}

func exit(err error) {
	if errors.Is(err, ask.ErrCanceled) || errors.Is(err, ask.ErrInterrupted) {
		fmt.Println("Goodbye!")
		os.Exit(0)
	}
	log.Fatal(err)
}
