package organizer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kqimam/game-organizer/internal/library"
)

func (e *Engine) renderPCList() {
	fmt.Fprintln(e.out, headingStyle.Render("PC Games List"))
	for i, g := range e.pcGames.Records() {
		fmt.Fprintf(e.out, "%d. %s\n", i+1, g.Title)
	}
	if e.pcGames.Len() == 0 {
		fmt.Fprintln(e.out, "There are no PC games in your collection yet.")
	}
	fmt.Fprintln(e.out)
	fmt.Fprintln(e.out, "Please enter the number of the game you would like to view.")
	fmt.Fprintln(e.out, hintStyle.Render("Enter 'R' to select a random game."))
	fmt.Fprintln(e.out, hintStyle.Render("Enter 'B' to go back to the Main Menu."))
}

func (e *Engine) pcListChoice(tok string) (Screen, error) {
	switch strings.ToLower(tok) {
	case "r":
		return e.randomPCGame()
	case "b":
		e.sel.Clear()
		return ScreenMain, nil
	}

	n, err := strconv.Atoi(tok)
	if err != nil {
		return ScreenPCList, ErrInvalidChoice
	}
	// Displayed entries are numbered from 1.
	index := n - 1
	if _, err := e.pcGames.At(index); err != nil {
		return ScreenPCList, err
	}
	e.sel.Set(index)
	return ScreenPCDetails, nil
}

// randomPCGame picks a uniformly random record. A uniform draw over an
// empty range is undefined, so the empty library is guarded explicitly.
func (e *Engine) randomPCGame() (Screen, error) {
	n := e.pcGames.Len()
	if n == 0 {
		return ScreenPCList, library.ErrEmpty
	}
	e.sel.Set(e.rng.IntN(n))
	return ScreenPCDetails, nil
}
