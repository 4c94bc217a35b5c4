// Package ask provides interactive prompts for terminal applications.
//
// Each prompt asks one question, lets the user answer it with the keyboard
// and returns a typed answer:
//
//   - Text: a line of free text, with optional suggestions and history
//   - Confirm: yes or no
//   - Password: a secret, masked and optionally typed twice
//   - CustomType: any value parsed from a line of text
//   - Select and MultiSelect: one or several options from a filterable list
//   - DateSelect: a date on a calendar
//   - PathSelect: a file or directory from a file browser
//   - Editor: long text written in an external editor
//
// Quick Start:
//
//	package main
//
//	import (
//		"fmt"
//		"log"
//
//		"github.com/nao1215/ask"
//	)
//
//	func main() {
//		name, err := ask.NewText("What's your name?").Prompt()
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Printf("Hello, %s!\n", name)
//	}
//
// Cancellation:
//
// Esc cancels a prompt and Prompt returns ErrCanceled; Ctrl+C returns
// ErrInterrupted. PromptSkippable turns a cancellation into ok=false, and
// PromptContext additionally stops when the context is done.
//
//	lang, ok, err := ask.NewSelect("Language:", []string{"Go", "Rust", "Zig"}).PromptSkippable()
//	if err != nil {
//		log.Fatal(err)
//	}
//	if !ok {
//		fmt.Println("skipped")
//	}
//
// Validation:
//
// Validators run when the user presses Enter. An Invalid result keeps the
// prompt open and shows the message above it; a returned error aborts the
// prompt with a *CustomError.
//
//	text := ask.NewText("Username:")
//	text.Validators = []ask.StringValidator{
//		ask.ValidateRequired(""),
//		ask.ValidateMinLength(3, ""),
//	}
//
// Styling:
//
// Colors and glyphs come from a RenderConfig. DefaultRenderConfig is used
// unless NO_COLOR is set, in which case output is plain. Override it for
// the whole process with SetGlobalRenderConfig or for a single prompt with
// WithRenderConfig.
//
// Key Bindings:
//
// Text inputs support the usual editing keys:
//
//   - Left/Right, Ctrl+B/Ctrl+F: move by character (with Ctrl or Alt: by word)
//   - Home/End, Ctrl+A/Ctrl+E: move to the beginning or end of line
//   - Backspace/Delete: delete a character (with Ctrl or Alt: a word)
//   - Ctrl+W: delete word backwards
//   - Ctrl+U / Ctrl+K: delete to the beginning / end of line
//   - Enter: submit
//   - Esc: cancel, Ctrl+C: interrupt, Ctrl+D: cancel when the input is empty
//
// Testing:
//
// Prompts run on the controlling terminal unless WithTerminal supplies
// another one. MockTerminal replays scripted keys and records the output,
// which makes prompts testable without a TTY:
//
//	term := ask.NewMockTerminal(ask.StringKeys("joe\n")...)
//	name, err := ask.NewText("Name:", ask.WithTerminal(term)).Prompt()
package ask
