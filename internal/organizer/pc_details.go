package organizer

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

func (e *Engine) renderPCDetails() {
	g, err := e.selectedPC()
	if err != nil {
		return
	}
	fmt.Fprintln(e.out, headingStyle.Render(g.Title+" Details"))
	fmt.Fprintln(e.out, "1. Play Default Configuration")
	fmt.Fprintln(e.out, "2. View Alternate Configurations")
	fmt.Fprintln(e.out, "3. View Basic Info")
	fmt.Fprintln(e.out, "4. View Game Description")
	fmt.Fprintln(e.out, "5. View Cover Art")
	fmt.Fprintln(e.out, "6. Edit Game Entry")
	fmt.Fprintln(e.out, "7. Delete Game Entry")
	fmt.Fprintln(e.out, "8. Go Back to PC Games List")
}

func (e *Engine) pcDetailsChoice(tok string) (Screen, error) {
	if _, err := e.selectedPC(); err != nil {
		return ScreenPCList, err
	}

	switch tok {
	case "1":
		return e.launchDefault()
	case "2":
		return ScreenAltConfigs, nil
	case "3":
		e.printBasicInfo()
		return ScreenReturnMenu, nil
	case "4":
		return e.viewDescription()
	case "5":
		return e.viewCoverArt()
	case "6":
		return ScreenEditGame, nil
	case "7":
		return e.deleteGame()
	case "8":
		e.sel.Clear()
		return ScreenPCList, nil
	}
	return ScreenPCDetails, ErrInvalidChoice
}

// launchDefault starts the game's default application path, stamps the
// last-played date, and saves.
func (e *Engine) launchDefault() (Screen, error) {
	g, err := e.selectedPC()
	if err != nil {
		return ScreenPCList, err
	}

	if err := e.launcher.Launch(g.AppPath); err != nil {
		return ScreenPCDetails, err
	}
	g.StampLastPlayed()
	if err := e.savePC(); err != nil {
		return ScreenPCDetails, err
	}

	fmt.Fprintln(e.out, runningStyle.Render("Now running "+g.Title))
	fmt.Fprintln(e.out)
	return ScreenReturnMenu, nil
}

// printBasicInfo shows the stored fields of the selected game.
func (e *Engine) printBasicInfo() {
	g, err := e.selectedPC()
	if err != nil {
		return
	}

	lastPlayed := g.LastPlayed
	if lastPlayed == "" {
		lastPlayed = "never"
	}
	coverArt := g.CoverArt
	if coverArt == "" {
		coverArt = "none"
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Row("Title", g.Title).
		Row("Source", g.Source).
		Row("Application Path", g.AppPath).
		Row("Last Played", lastPlayed).
		Row("Cover Art", coverArt).
		Row("Alternate Configs", fmt.Sprintf("%d", len(g.Configs)))

	fmt.Fprintln(e.out, t.Render())
	fmt.Fprintln(e.out)
}

// viewDescription shows the cached description, or offers to download
// one when none is stored. A failed download leaves the field unset.
func (e *Engine) viewDescription() (Screen, error) {
	g, err := e.selectedPC()
	if err != nil {
		return ScreenPCList, err
	}

	if g.Description == "" {
		fmt.Fprintln(e.out, "There is currently no description stored for this game.")
		yes, err := e.promptYesNo("Would you like to download the game description?")
		if err != nil {
			return ScreenPCDetails, err
		}
		if !yes {
			return ScreenPCDetails, nil
		}

		text, err := e.descriptions.Fetch(g.Title)
		if err != nil {
			return ScreenPCDetails, fmt.Errorf("description download failed: %w", err)
		}
		g.Description = text
		if err := e.savePC(); err != nil {
			return ScreenPCDetails, err
		}
	}

	fmt.Fprintln(e.out, descStyle.Render(g.Description))
	fmt.Fprintln(e.out)
	return ScreenReturnMenu, nil
}

// viewCoverArt shows the cached cover art location, or offers to
// download an image when none is stored.
func (e *Engine) viewCoverArt() (Screen, error) {
	g, err := e.selectedPC()
	if err != nil {
		return ScreenPCList, err
	}

	if g.CoverArt == "" {
		fmt.Fprintln(e.out, "There is currently no cover art for this game.")
		yes, err := e.promptYesNo("Would you like to download a cover art image?")
		if err != nil {
			return ScreenPCDetails, err
		}
		if !yes {
			return ScreenPCDetails, nil
		}

		path, err := e.coverArt.Fetch(g.Title)
		if err != nil {
			return ScreenPCDetails, fmt.Errorf("cover art download failed: %w", err)
		}
		g.CoverArt = path
		if err := e.savePC(); err != nil {
			return ScreenPCDetails, err
		}
		fmt.Fprintf(e.out, "Cover art saved to %s.\n\n", path)
		return ScreenPCDetails, nil
	}

	fmt.Fprintf(e.out, "Cover art is stored at %s.\n", g.CoverArt)
	yes, err := e.promptYesNo("Would you like to open it now?")
	if err != nil {
		return ScreenPCDetails, err
	}
	if yes {
		if err := e.launcher.Launch(g.CoverArt); err != nil {
			return ScreenPCDetails, err
		}
	}
	return ScreenPCDetails, nil
}

// deleteGame asks for confirmation, removes the selected game, saves,
// and resets the selection so the freed index cannot be reused.
func (e *Engine) deleteGame() (Screen, error) {
	g, err := e.selectedPC()
	if err != nil {
		return ScreenPCList, err
	}

	yes, err := e.promptYesNo(fmt.Sprintf("Are you sure you wish to permanently delete %s?", g.Title))
	if err != nil {
		return ScreenPCDetails, err
	}
	if !yes {
		return ScreenPCDetails, nil
	}

	i, _ := e.sel.Index()
	if err := e.pcGames.DeleteAt(i); err != nil {
		return ScreenPCDetails, err
	}
	e.sel.Clear()
	if err := e.savePC(); err != nil {
		return ScreenPCList, err
	}

	fmt.Fprintf(e.out, "Deleted %s.\n\n", g.Title)
	return ScreenPCList, nil
}

func (e *Engine) renderReturnMenu() {
	g, err := e.selectedPC()
	if err != nil {
		return
	}
	fmt.Fprintf(e.out, "1. Go back to Game Details Menu for %s\n", g.Title)
	fmt.Fprintln(e.out, "2. Go back to PC Games List")
	fmt.Fprintln(e.out, "3. Go back to Main Menu")
}

func (e *Engine) returnMenuChoice(tok string) (Screen, error) {
	switch tok {
	case "1":
		return ScreenPCDetails, nil
	case "2":
		e.sel.Clear()
		return ScreenPCList, nil
	case "3":
		e.sel.Clear()
		return ScreenMain, nil
	}
	return ScreenReturnMenu, ErrInvalidChoice
}
