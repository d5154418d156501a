package organizer

import (
	"fmt"
	"strings"

	"github.com/kqimam/game-organizer/internal/game"
)

func (e *Engine) renderMain() {
	fmt.Fprintln(e.out, headingStyle.Render("Main Menu"))
	fmt.Fprintln(e.out, "1. View PC Games")
	fmt.Fprintln(e.out, "2. View Console Games")
	fmt.Fprintln(e.out, "3. Add a Game")
	fmt.Fprintln(e.out, "4. Exit Program")
}

func (e *Engine) mainChoice(tok string) (Screen, error) {
	switch tok {
	case "1":
		e.sel.Clear()
		return ScreenPCList, nil
	case "2":
		return ScreenConsoleList, nil
	case "3":
		return ScreenAddGame, nil
	case "4":
		return ScreenExit, nil
	}
	return ScreenMain, ErrInvalidChoice
}

func (e *Engine) renderConsoleList() {
	fmt.Fprintln(e.out, headingStyle.Render("Console Games List"))
	if e.consoleGames.Len() == 0 {
		fmt.Fprintln(e.out, "There are no console games in your collection yet.")
	} else {
		for i, g := range e.consoleGames.Records() {
			fmt.Fprintf(e.out, "%d. %s (%s)\n", i+1, g.Title, g.Platform)
		}
	}
	fmt.Fprintln(e.out)
	fmt.Fprintln(e.out, "Console game details are not available yet.")
	fmt.Fprintln(e.out, hintStyle.Render("Enter 'B' to go back to the Main Menu."))
}

func (e *Engine) consoleListChoice(tok string) (Screen, error) {
	if strings.ToLower(tok) == "b" {
		return ScreenMain, nil
	}
	return ScreenConsoleList, ErrInvalidChoice
}

func (e *Engine) renderAddGame() {
	fmt.Fprintln(e.out, headingStyle.Render("Add a Game"))
	fmt.Fprintln(e.out, "1. Add a PC Game")
	fmt.Fprintln(e.out, "2. Add a Console Game")
	fmt.Fprintln(e.out, "3. Go Back to Main Menu")
}

func (e *Engine) addGameChoice(tok string) (Screen, error) {
	switch tok {
	case "1":
		return e.addPCGame()
	case "2":
		return e.addConsoleGame()
	case "3":
		return ScreenMain, nil
	}
	return ScreenAddGame, ErrInvalidChoice
}

// addPCGame walks the add-a-PC-game flow: title, source, and launch
// path, then sort and save.
func (e *Engine) addPCGame() (Screen, error) {
	title, err := e.promptLine("Enter the game's title:")
	if err != nil {
		return ScreenAddGame, err
	}
	source, err := e.promptLine("Enter the game's source (Steam, Epic Games, GOG Galaxy, ...):")
	if err != nil {
		return ScreenAddGame, err
	}
	path, err := e.promptLine("Enter the game's application path or launch URI:")
	if err != nil {
		return ScreenAddGame, err
	}

	g, err := game.NewPCGame(title, source, path)
	if err != nil {
		return ScreenAddGame, err
	}

	e.pcGames.Add(g)
	e.pcGames.Sort()
	if err := e.savePC(); err != nil {
		return ScreenAddGame, err
	}

	fmt.Fprintf(e.out, "Added %s to the PC games list.\n\n", g.Title)
	e.sel.Clear()
	return ScreenPCList, nil
}

// addConsoleGame walks the add-a-console-game flow.
func (e *Engine) addConsoleGame() (Screen, error) {
	title, err := e.promptLine("Enter the game's title:")
	if err != nil {
		return ScreenAddGame, err
	}
	platform, err := e.promptLine("Enter the game's platform (SNES, PS2, ...):")
	if err != nil {
		return ScreenAddGame, err
	}
	emulator, err := e.promptLine("Enter the emulator used to play the game:")
	if err != nil {
		return ScreenAddGame, err
	}
	rom, err := e.promptLine("Enter the path to the game's default ROM file:")
	if err != nil {
		return ScreenAddGame, err
	}

	g, err := game.NewConsoleGame(title, platform, emulator, rom)
	if err != nil {
		return ScreenAddGame, err
	}

	e.consoleGames.Add(g)
	e.consoleGames.Sort()
	if err := e.saveConsole(); err != nil {
		return ScreenAddGame, err
	}

	fmt.Fprintf(e.out, "Added %s to the console games list.\n\n", g.Title)
	return ScreenConsoleList, nil
}
