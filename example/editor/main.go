// Package main demonstrates collecting long text with an external editor.
package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/nao1215/ask"
)

func main() {
	e := ask.NewEditor("Commit message:")
	e.FileExtension = ".md"
	e.PredefinedText = "# Lines starting with '#' are ignored.\n"
	e.Validators = []ask.StringValidator{func(s string) (ask.Validation, error) {
		if body(s) == "" {
			return ask.Invalid("The message must not be empty."), nil
		}
		return ask.Valid(), nil
	}}

	result, err := e.Prompt()
	if errors.Is(err, ask.ErrCanceled) || errors.Is(err, ask.ErrInterrupted) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	lines := strings.Split(body(result), "\n")
	fmt.Println("--- Your message ---")
	for i, line := range lines {
		fmt.Printf("%3d: %s\n", i+1, line)
	}
	fmt.Printf("Total lines: %d\n", len(lines))
}

// body drops comment lines and surrounding blank space.
func body(s string) string {
	var kept []string
	for _, line := range strings.Split(s, "\n") {
		if !strings.HasPrefix(line, "#") {
			kept = append(kept, line)
		}
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}
