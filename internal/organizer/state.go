package organizer

import "errors"

// ErrInvalidChoice is returned by a transition that does not recognize
// the input token. The engine reports it and re-renders the current
// screen instead of leaving the input undefined.
var ErrInvalidChoice = errors.New("unrecognized choice")

// Screen identifies one state of the menu machine. Transitions return
// the next screen as data; the engine drives the loop.
type Screen int

const (
	// ScreenMain is the top-level menu.
	ScreenMain Screen = iota
	// ScreenPCList lists the PC games.
	ScreenPCList
	// ScreenConsoleList lists the console games. The console side is a
	// display-only mirror: entries can be added and are persisted, but
	// per-game navigation is not available.
	ScreenConsoleList
	// ScreenAddGame is the add-a-game category menu.
	ScreenAddGame
	// ScreenPCDetails shows actions for the selected PC game.
	ScreenPCDetails
	// ScreenAltConfigs lists the selected game's alternate configurations.
	ScreenAltConfigs
	// ScreenEditGame edits the selected game's stored fields.
	ScreenEditGame
	// ScreenReturnMenu is shown after a launch or an info view and routes
	// back to the details menu, the PC list, or the main menu.
	ScreenReturnMenu
	// ScreenConfigHelp explains alternate configurations.
	ScreenConfigHelp
	// ScreenExit terminates the loop. Nothing is flushed on exit: every
	// mutating transition saves immediately.
	ScreenExit
)
