// Command ledit runs one interactive line edit on the controlling
// terminal and prints the result. Mostly useful for trying out the
// editor and its keybindings.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"ledit/config"
	"ledit/editor"
	"ledit/term"
)

func main() {
	log.SetFlags(0)

	configPath := flag.String("config", config.DefaultPath(), "config file path")
	initial := flag.String("initial", "", "text already in the line when editing starts")
	flag.Parse()

	if !isatty.IsTerminal(os.Stdin.Fd()) {
		log.Fatal("ledit: stdin is not a terminal")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("ledit: %v", err)
	}

	session, err := term.EnterRaw(os.Stdin)
	if err != nil {
		log.Fatalf("ledit: enter raw mode: %v", err)
	}
	defer session.Restore()

	fmt.Print(cfg.Editor.Prompt)
	ed := editor.New(os.Stdin, os.Stdout)
	ed.SetMaxLen(cfg.Editor.MaxLen)

	line, err := ed.Edit(*initial, "")
	session.Restore()
	fmt.Println()
	if err != nil {
		log.Fatalf("ledit: %v", err)
	}
	fmt.Println(line)
}
