package organizer

import (
	"fmt"

	"github.com/kqimam/game-organizer/internal/game"
)

func (e *Engine) renderEditGame() {
	g, err := e.selectedPC()
	if err != nil {
		return
	}
	fmt.Fprintln(e.out, headingStyle.Render("Edit "+g.Title))
	fmt.Fprintln(e.out, "1. Edit Title")
	fmt.Fprintln(e.out, "2. Edit Source")
	fmt.Fprintln(e.out, "3. Edit Application Path")
	fmt.Fprintln(e.out, "4. Go Back to Game Details Menu")
}

func (e *Engine) editGameChoice(tok string) (Screen, error) {
	g, err := e.selectedPC()
	if err != nil {
		return ScreenPCList, err
	}

	switch tok {
	case "1":
		return e.editTitle(g)
	case "2":
		return e.editField(g, "source", &g.Source)
	case "3":
		// The default path and configuration #1 are independent after
		// creation: editing one does not rewrite the other.
		return e.editField(g, "application path", &g.AppPath)
	case "4":
		return ScreenPCDetails, nil
	}
	return ScreenEditGame, ErrInvalidChoice
}

// editTitle renames the game, resorts the library, and re-points the
// selection at the record's new position.
func (e *Engine) editTitle(g *game.PCGame) (Screen, error) {
	title, err := e.promptLine("Enter the new title:")
	if err != nil {
		return ScreenEditGame, err
	}
	if title == "" {
		return ScreenEditGame, game.ErrEmptyTitle
	}

	g.Title = title
	e.pcGames.Sort()
	e.sel.Set(e.pcGames.IndexOf(g))
	if err := e.savePC(); err != nil {
		return ScreenEditGame, err
	}

	fmt.Fprintf(e.out, "Title updated to %s.\n\n", title)
	return ScreenEditGame, nil
}

func (e *Engine) editField(g *game.PCGame, name string, field *string) (Screen, error) {
	value, err := e.promptLine(fmt.Sprintf("Enter the new %s:", name))
	if err != nil {
		return ScreenEditGame, err
	}

	*field = value
	if err := e.savePC(); err != nil {
		return ScreenEditGame, err
	}

	fmt.Fprintf(e.out, "Updated the %s for %s.\n\n", name, g.Title)
	return ScreenEditGame, nil
}
