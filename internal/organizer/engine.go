// Package organizer implements the interactive menu engine that drives
// the game library: an explicit state machine that renders one screen,
// reads one input token, and transitions to the next screen as data.
package organizer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/kqimam/game-organizer/internal/game"
	"github.com/kqimam/game-organizer/internal/library"
)

// Launcher starts an external program from a stored launch string.
type Launcher interface {
	Launch(command string) error
}

// DescriptionFetcher fetches a description for a game title.
type DescriptionFetcher interface {
	Fetch(title string) (string, error)
}

// CoverArtFetcher downloads cover art for a game title and returns the
// local path it was written to.
type CoverArtFetcher interface {
	Fetch(title string) (string, error)
}

// errInputClosed signals EOF on the input stream; the engine exits
// cleanly when the user closes stdin.
var errInputClosed = errors.New("input closed")

// Deps carries everything the engine needs. All collaborators are
// injected so tests can run the full loop with scripted input, fake
// services, and a seeded random source.
type Deps struct {
	PCGames      *library.Library[*game.PCGame]
	ConsoleGames *library.Library[*game.ConsoleGame]
	Store        *library.Store
	Launcher     Launcher
	Descriptions DescriptionFetcher
	CoverArt     CoverArtFetcher
	Rand         *rand.Rand
	In           io.Reader
	Out          io.Writer
}

// Engine owns the menu loop, the selection cursor, and references to the
// two libraries. There is no package-level state: multiple engines can
// run in isolation.
type Engine struct {
	pcGames      *library.Library[*game.PCGame]
	consoleGames *library.Library[*game.ConsoleGame]
	store        *library.Store
	launcher     Launcher
	descriptions DescriptionFetcher
	coverArt     CoverArtFetcher
	rng          *rand.Rand
	sel          Selection
	in           *bufio.Scanner
	out          io.Writer
}

// New creates an engine from its dependencies.
func New(d Deps) *Engine {
	return &Engine{
		pcGames:      d.PCGames,
		consoleGames: d.ConsoleGames,
		store:        d.Store,
		launcher:     d.Launcher,
		descriptions: d.Descriptions,
		coverArt:     d.CoverArt,
		rng:          d.Rand,
		sel:          NewSelection(),
		in:           bufio.NewScanner(d.In),
		out:          d.Out,
	}
}

// Run drives the menu loop until the user exits or input closes. Every
// iteration renders the current screen, reads one token, and asks the
// transition table for the next screen. Errors are reported and the
// current screen re-renders; nothing here is fatal.
func (e *Engine) Run() error {
	fmt.Fprintln(e.out, headingStyle.Render("Game Organizer"))
	fmt.Fprintln(e.out)

	screen := ScreenMain
	for screen != ScreenExit {
		e.render(screen)

		tok, err := e.readLine()
		if err != nil {
			return nil
		}

		next, err := e.transition(screen, tok)
		if errors.Is(err, errInputClosed) {
			return nil
		}
		if err != nil {
			fmt.Fprintln(e.out, errorStyle.Render(errorMessage(err)))
			fmt.Fprintln(e.out)
		}
		// Transitions that fail return the screen to re-prompt on,
		// usually the current one.
		screen = next
	}
	return nil
}

// render prints the menu for the given screen.
func (e *Engine) render(s Screen) {
	switch s {
	case ScreenMain:
		e.renderMain()
	case ScreenPCList:
		e.renderPCList()
	case ScreenConsoleList:
		e.renderConsoleList()
	case ScreenAddGame:
		e.renderAddGame()
	case ScreenPCDetails:
		e.renderPCDetails()
	case ScreenAltConfigs:
		e.renderAltConfigs()
	case ScreenEditGame:
		e.renderEditGame()
	case ScreenReturnMenu:
		e.renderReturnMenu()
	case ScreenConfigHelp:
		e.renderConfigHelp()
	}
}

// transition maps one token on one screen to the next screen or an
// error. Unrecognized tokens yield ErrInvalidChoice.
func (e *Engine) transition(s Screen, tok string) (Screen, error) {
	switch s {
	case ScreenMain:
		return e.mainChoice(tok)
	case ScreenPCList:
		return e.pcListChoice(tok)
	case ScreenConsoleList:
		return e.consoleListChoice(tok)
	case ScreenAddGame:
		return e.addGameChoice(tok)
	case ScreenPCDetails:
		return e.pcDetailsChoice(tok)
	case ScreenAltConfigs:
		return e.altConfigsChoice(tok)
	case ScreenEditGame:
		return e.editGameChoice(tok)
	case ScreenReturnMenu:
		return e.returnMenuChoice(tok)
	case ScreenConfigHelp:
		return e.configHelpChoice(tok)
	}
	return ScreenMain, nil
}

// readLine reads one trimmed input line.
func (e *Engine) readLine() (string, error) {
	if !e.in.Scan() {
		if err := e.in.Err(); err != nil {
			return "", fmt.Errorf("%w: %v", errInputClosed, err)
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(e.in.Text()), nil
}

// promptLine prints a prompt and reads one trimmed line of free text.
func (e *Engine) promptLine(prompt string) (string, error) {
	fmt.Fprintln(e.out, prompt)
	return e.readLine()
}

// promptYesNo asks a Y/N question and returns the answer. Anything but
// Y or N re-asks.
func (e *Engine) promptYesNo(question string) (bool, error) {
	fmt.Fprintln(e.out, question)
	fmt.Fprintln(e.out, hintStyle.Render("Please enter 'Y' for Yes or 'N' for No."))
	for {
		tok, err := e.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(tok) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		fmt.Fprintln(e.out, errorStyle.Render("Please enter 'Y' or 'N'."))
	}
}

// selectedPC returns the PC game the selection points at.
func (e *Engine) selectedPC() (*game.PCGame, error) {
	i, ok := e.sel.Index()
	if !ok {
		return nil, library.ErrIndexOutOfRange
	}
	return e.pcGames.At(i)
}

// savePC persists the PC library. On failure the in-memory change is
// reported as not durably committed.
func (e *Engine) savePC() error {
	if err := e.store.SavePC(e.pcGames); err != nil {
		return fmt.Errorf("change not saved: %w", err)
	}
	return nil
}

// saveConsole persists the console library.
func (e *Engine) saveConsole() error {
	if err := e.store.SaveConsole(e.consoleGames); err != nil {
		return fmt.Errorf("change not saved: %w", err)
	}
	return nil
}

// errorMessage renders an error for the interactive surface.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidChoice):
		return "Unrecognized choice. Please pick one of the listed options."
	case errors.Is(err, library.ErrIndexOutOfRange), errors.Is(err, game.ErrConfigIndex):
		return "That number is not in the list. Please try again."
	case errors.Is(err, library.ErrEmpty):
		return "There are no games in the list yet."
	case errors.Is(err, game.ErrEmptyTitle):
		return "The title must not be empty."
	}
	return "Error: " + err.Error()
}
