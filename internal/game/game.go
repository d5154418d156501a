// Package game defines the entries stored in a game library: PC games
// launched through a storefront or executable path, and console games
// launched through an emulator. Both carry an ordered list of named
// launch configurations, with configuration #1 created alongside the
// entry and mirroring its default launch path.
package game

import (
	"errors"
	"time"
)

// LastPlayedFormat is the calendar format used for last-played stamps.
const LastPlayedFormat = "01/02/2006"

// ErrEmptyTitle is returned when creating an entry with no title.
var ErrEmptyTitle = errors.New("game title must not be empty")

// LaunchConfig is a named launch target attached to a game entry: an
// alternate configuration for a PC game or an alternate ROM for a
// console game.
type LaunchConfig struct {
	Title string `json:"title"`
	Path  string `json:"path"`
}

// PCGame is a single PC game entry.
type PCGame struct {
	Title       string         `json:"title"`
	Source      string         `json:"source"`  // storefront/platform label (Steam, GOG Galaxy, ...)
	AppPath     string         `json:"appPath"` // default launch command or URI
	LastPlayed  string         `json:"lastPlayed,omitempty"`
	Description string         `json:"description,omitempty"`
	CoverArt    string         `json:"coverArt,omitempty"`
	Configs     []LaunchConfig `json:"configs"`
}

// NewPCGame creates a PC game entry. The first alternate configuration
// is seeded from the entry itself so the default launch path is always
// reachable as configuration #1. The two copies are independently
// editable afterward.
func NewPCGame(title, source, appPath string) (*PCGame, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	return &PCGame{
		Title:   title,
		Source:  source,
		AppPath: appPath,
		Configs: []LaunchConfig{{Title: title, Path: appPath}},
	}, nil
}

// GameTitle returns the sort key for library ordering.
func (g *PCGame) GameTitle() string { return g.Title }

// StampLastPlayed records the current date as the last-played date.
func (g *PCGame) StampLastPlayed() {
	g.LastPlayed = time.Now().Format(LastPlayedFormat)
}

// AddConfig appends an alternate launch configuration.
func (g *PCGame) AddConfig(c LaunchConfig) {
	g.Configs = append(g.Configs, c)
}

// ConfigAt returns the alternate configuration at index i.
func (g *PCGame) ConfigAt(i int) (LaunchConfig, error) {
	return configAt(g.Configs, i)
}

// UpdateConfigAt replaces the alternate configuration at index i.
func (g *PCGame) UpdateConfigAt(i int, c LaunchConfig) error {
	if i < 0 || i >= len(g.Configs) {
		return ErrConfigIndex
	}
	g.Configs[i] = c
	return nil
}

// DeleteConfigAt removes the alternate configuration at index i.
func (g *PCGame) DeleteConfigAt(i int) error {
	var err error
	g.Configs, err = deleteConfigAt(g.Configs, i)
	return err
}

// ConsoleGame is a single console game entry run through an emulator.
type ConsoleGame struct {
	Title       string         `json:"title"`
	Platform    string         `json:"platform"`
	Emulator    string         `json:"emulator"`
	DefaultROM  string         `json:"defaultRom"`
	LastPlayed  string         `json:"lastPlayed,omitempty"`
	Description string         `json:"description,omitempty"`
	CoverArt    string         `json:"coverArt,omitempty"`
	ROMs        []LaunchConfig `json:"roms"`
}

// NewConsoleGame creates a console game entry. ROM #1 is seeded from the
// entry's default ROM, mirroring the PC-side behavior.
func NewConsoleGame(title, platform, emulator, defaultROM string) (*ConsoleGame, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	return &ConsoleGame{
		Title:      title,
		Platform:   platform,
		Emulator:   emulator,
		DefaultROM: defaultROM,
		ROMs:       []LaunchConfig{{Title: title, Path: defaultROM}},
	}, nil
}

// GameTitle returns the sort key for library ordering.
func (g *ConsoleGame) GameTitle() string { return g.Title }

// StampLastPlayed records the current date as the last-played date.
func (g *ConsoleGame) StampLastPlayed() {
	g.LastPlayed = time.Now().Format(LastPlayedFormat)
}

// AddROM appends an alternate ROM entry.
func (g *ConsoleGame) AddROM(c LaunchConfig) {
	g.ROMs = append(g.ROMs, c)
}

// ROMAt returns the alternate ROM at index i.
func (g *ConsoleGame) ROMAt(i int) (LaunchConfig, error) {
	return configAt(g.ROMs, i)
}

// UpdateROMAt replaces the alternate ROM at index i.
func (g *ConsoleGame) UpdateROMAt(i int, c LaunchConfig) error {
	if i < 0 || i >= len(g.ROMs) {
		return ErrConfigIndex
	}
	g.ROMs[i] = c
	return nil
}

// DeleteROMAt removes the alternate ROM at index i.
func (g *ConsoleGame) DeleteROMAt(i int) error {
	var err error
	g.ROMs, err = deleteConfigAt(g.ROMs, i)
	return err
}
