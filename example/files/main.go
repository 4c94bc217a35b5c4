// Package main is a small file explorer built on the path and date prompts.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/nao1215/ask"
)

func main() {
	dirs := ask.NewPathSelect("Directory to inspect:")
	dirs.Mode = ask.SelectDirectories()
	dir, err := dirs.Prompt()
	if err != nil {
		exit(err)
	}

	files := ask.NewPathSelect("File to inspect:")
	files.StartDir = dir
	files.Mode = ask.SelectFiles()
	path, err := files.Prompt()
	if err != nil {
		exit(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s: %d bytes, modified %s\n", path, info.Size(), info.ModTime().Format(time.DateTime))

	since := ask.NewDateSelect("Touch the file with date:")
	since.StartingDate = info.ModTime()
	today := time.Now()
	since.Max = &today
	when, err := since.Prompt()
	if err != nil {
		exit(err)
	}

	ok, err := ask.NewConfirm(fmt.Sprintf("Set the modification time to %s?", when.Format(time.DateOnly))).Prompt()
	if err != nil {
		exit(err)
	}
	if !ok {
		return
	}
	if err := os.Chtimes(path, when, when); err != nil {
		log.Fatal(err)
	}
}

func exit(err error) {
	if errors.Is(err, ask.ErrCanceled) || errors.Is(err, ask.ErrInterrupted) {
		os.Exit(0)
	}
	log.Fatal(err)
}
