package main

import (
	"bufio"
	"errors"
	"io"
	"log"
	"os"

	"github.com/minaorangina/klondike/config"
	"github.com/minaorangina/klondike/deck"
	"github.com/minaorangina/klondike/display"
	"github.com/minaorangina/klondike/engine"
	"github.com/pterm/pterm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// engine logs would interleave with the table
	log.SetOutput(io.Discard)

	ge, err := engine.NewGameEngine(engine.GameEngineOpts{Rand: deck.NewRand(cfg.Seed)})
	if err != nil {
		pterm.Fatal.Println("Could not initialise a new game")
	}
	defer ge.Stop()

	state, err := ge.State()
	if err != nil {
		pterm.Fatal.Println(err)
	}

	pterm.DefaultHeader.Println("Klondike")
	pterm.Info.Println(display.HelpText)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if err := display.Render(os.Stdout, state); err != nil {
			pterm.Fatal.Println(err)
		}
		pterm.Print("> ")

		if !scanner.Scan() {
			return
		}

		msg, err := display.ParseCommand(scanner.Text())
		if errors.Is(err, display.ErrQuit) {
			return
		}
		if err != nil {
			pterm.Warning.Println(err.Error())
			continue
		}

		next, err := ge.Receive(msg)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		state = next
	}
}
