package organizer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kqimam/game-organizer/internal/game"
)

func (e *Engine) renderAltConfigs() {
	g, err := e.selectedPC()
	if err != nil {
		return
	}
	fmt.Fprintln(e.out, headingStyle.Render("Alternate Configurations for "+g.Title))
	for i, c := range g.Configs {
		fmt.Fprintf(e.out, "%d. %s\n", i+1, c.Title)
	}
	fmt.Fprintln(e.out)
	fmt.Fprintln(e.out, "Please enter the number of the configuration you would like to play.")
	fmt.Fprintln(e.out, hintStyle.Render("Enter 'A' to add a new configuration."))
	fmt.Fprintln(e.out, hintStyle.Render("Enter 'E' to edit a configuration."))
	fmt.Fprintln(e.out, hintStyle.Render("Enter 'D' to delete a configuration."))
	fmt.Fprintln(e.out, hintStyle.Render("Enter 'H' for help."))
	fmt.Fprintln(e.out, hintStyle.Render("Enter 'B' to go back to the previous menu."))
}

func (e *Engine) altConfigsChoice(tok string) (Screen, error) {
	g, err := e.selectedPC()
	if err != nil {
		return ScreenPCList, err
	}

	switch strings.ToLower(tok) {
	case "a":
		return e.addAltConfig(g)
	case "e":
		return e.editAltConfig(g)
	case "d":
		return e.deleteAltConfig(g)
	case "h":
		return ScreenConfigHelp, nil
	case "b":
		return ScreenPCDetails, nil
	}

	n, err := strconv.Atoi(tok)
	if err != nil {
		return ScreenAltConfigs, ErrInvalidChoice
	}
	return e.launchAltConfig(g, n-1)
}

// launchAltConfig starts the alternate configuration at index j, stamps
// the last-played date, and saves.
func (e *Engine) launchAltConfig(g *game.PCGame, j int) (Screen, error) {
	c, err := g.ConfigAt(j)
	if err != nil {
		return ScreenAltConfigs, err
	}

	if err := e.launcher.Launch(c.Path); err != nil {
		return ScreenAltConfigs, err
	}
	g.StampLastPlayed()
	if err := e.savePC(); err != nil {
		return ScreenAltConfigs, err
	}

	fmt.Fprintln(e.out, runningStyle.Render("Now running "+c.Title))
	fmt.Fprintln(e.out)
	return ScreenReturnMenu, nil
}

func (e *Engine) addAltConfig(g *game.PCGame) (Screen, error) {
	title, err := e.promptLine("Enter a name for the new configuration:")
	if err != nil {
		return ScreenAltConfigs, err
	}
	path, err := e.promptLine("Enter the launch path for the new configuration:")
	if err != nil {
		return ScreenAltConfigs, err
	}

	g.AddConfig(game.LaunchConfig{Title: title, Path: path})
	if err := e.savePC(); err != nil {
		return ScreenAltConfigs, err
	}

	fmt.Fprintf(e.out, "Added configuration %s.\n\n", title)
	return ScreenAltConfigs, nil
}

// editAltConfig prompts for a configuration number and new values. An
// empty answer keeps the current value.
func (e *Engine) editAltConfig(g *game.PCGame) (Screen, error) {
	j, err := e.promptConfigNumber(g, "Enter the number of the configuration you would like to edit:")
	if err != nil {
		return ScreenAltConfigs, err
	}
	current, err := g.ConfigAt(j)
	if err != nil {
		return ScreenAltConfigs, err
	}

	title, err := e.promptLine(fmt.Sprintf("Enter a new name (blank keeps %q):", current.Title))
	if err != nil {
		return ScreenAltConfigs, err
	}
	path, err := e.promptLine(fmt.Sprintf("Enter a new launch path (blank keeps %q):", current.Path))
	if err != nil {
		return ScreenAltConfigs, err
	}

	if title == "" {
		title = current.Title
	}
	if path == "" {
		path = current.Path
	}
	if err := g.UpdateConfigAt(j, game.LaunchConfig{Title: title, Path: path}); err != nil {
		return ScreenAltConfigs, err
	}
	if err := e.savePC(); err != nil {
		return ScreenAltConfigs, err
	}

	fmt.Fprintf(e.out, "Updated configuration %s.\n\n", title)
	return ScreenAltConfigs, nil
}

func (e *Engine) deleteAltConfig(g *game.PCGame) (Screen, error) {
	j, err := e.promptConfigNumber(g, "Enter the number of the configuration you would like to delete:")
	if err != nil {
		return ScreenAltConfigs, err
	}
	c, err := g.ConfigAt(j)
	if err != nil {
		return ScreenAltConfigs, err
	}

	yes, err := e.promptYesNo(fmt.Sprintf("Are you sure you wish to delete the configuration %s?", c.Title))
	if err != nil {
		return ScreenAltConfigs, err
	}
	if !yes {
		return ScreenAltConfigs, nil
	}

	if err := g.DeleteConfigAt(j); err != nil {
		return ScreenAltConfigs, err
	}
	if err := e.savePC(); err != nil {
		return ScreenAltConfigs, err
	}

	fmt.Fprintf(e.out, "Deleted configuration %s.\n\n", c.Title)
	return ScreenAltConfigs, nil
}

// promptConfigNumber reads a 1-based configuration number and returns
// the 0-based index, bounds checked against the game's config list.
func (e *Engine) promptConfigNumber(g *game.PCGame, prompt string) (int, error) {
	tok, err := e.promptLine(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, ErrInvalidChoice
	}
	j := n - 1
	if j < 0 || j >= len(g.Configs) {
		return 0, game.ErrConfigIndex
	}
	return j, nil
}

func (e *Engine) renderConfigHelp() {
	fmt.Fprintln(e.out, headingStyle.Render("Alternate Configurations Help"))
	fmt.Fprintln(e.out, descStyle.Render(
		"An alternate configuration is a named launch path attached to a game: "+
			"a modded install, a different launcher, or a second copy of the game. "+
			"Configuration #1 is created together with the game entry and starts out "+
			"as a copy of the game's default application path. Playing any "+
			"configuration updates the game's last-played date."))
	fmt.Fprintln(e.out)
	fmt.Fprintln(e.out, hintStyle.Render("Enter 'B' to go back."))
}

func (e *Engine) configHelpChoice(tok string) (Screen, error) {
	if strings.ToLower(tok) == "b" {
		return ScreenAltConfigs, nil
	}
	return ScreenConfigHelp, ErrInvalidChoice
}
