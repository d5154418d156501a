package library

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/kqimam/game-organizer/internal/game"
)

const (
	pcFile      = "pc_games.json"
	consoleFile = "console_games.json"
)

// ErrCorrupt is returned when stored library data exists but cannot be
// parsed. Unlike a missing file, which bootstraps an empty library, a
// corrupt file is a hard stop so bad data never silently vanishes.
var ErrCorrupt = errors.New("library data is corrupted")

// Store owns the on-disk location of the two category libraries.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultDir returns the per-OS application data directory for the
// organizer:
// - macOS: ~/Library/Application Support/game-organizer
// - Windows: %APPDATA%/game-organizer
// - Linux: $XDG_DATA_HOME/game-organizer or ~/.local/share/game-organizer
func DefaultDir() (string, error) {
	const appName = "game-organizer"

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, "Library", "Application Support", appName), nil
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			return "", fmt.Errorf("APPDATA environment variable not set")
		}
		return filepath.Join(appData, appName), nil
	default:
		if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
			return filepath.Join(dataHome, appName), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, ".local", "share", appName), nil
	}
}

// PCPath returns the full path to the PC games file.
func (s *Store) PCPath() string { return filepath.Join(s.dir, pcFile) }

// ConsolePath returns the full path to the console games file.
func (s *Store) ConsolePath() string { return filepath.Join(s.dir, consoleFile) }

// LoadPC loads the PC library. A missing file is the bootstrap default
// and yields an empty library; unparseable data yields ErrCorrupt.
func (s *Store) LoadPC() (*Library[*game.PCGame], error) {
	return loadFile[*game.PCGame](s.PCPath())
}

// LoadConsole loads the console library with the same failure policy as
// LoadPC.
func (s *Store) LoadConsole() (*Library[*game.ConsoleGame], error) {
	return loadFile[*game.ConsoleGame](s.ConsolePath())
}

// SavePC writes the PC library to disk atomically.
func (s *Store) SavePC(lib *Library[*game.PCGame]) error {
	return saveFile(s.PCPath(), lib)
}

// SaveConsole writes the console library to disk atomically.
func (s *Store) SaveConsole(lib *Library[*game.ConsoleGame]) error {
	return saveFile(s.ConsolePath(), lib)
}

func loadFile[T Record](path string) (*Library[T], error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return New[T](), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read library %s: %w", path, err)
	}

	lib, err := Deserialize[T](data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lib, nil
}

// saveFile writes the serialized library to a temporary file in the same
// directory and renames it into place, so readers never observe a
// partially-written file.
func saveFile[T Record](path string, lib *Library[T]) error {
	data, err := lib.Serialize()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tempFile := path + ".tmp"
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tempFile, path); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}
