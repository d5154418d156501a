// Command game-organizer is the interactive game library manager.
package main

import (
	crand "crypto/rand"
	"encoding/binary"
	"log"
	"math/rand/v2"
	"os"

	"github.com/kqimam/game-organizer/internal/config"
	"github.com/kqimam/game-organizer/internal/enrich"
	"github.com/kqimam/game-organizer/internal/launch"
	"github.com/kqimam/game-organizer/internal/library"
	"github.com/kqimam/game-organizer/internal/organizer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	store := library.NewStore(cfg.DataDir)

	// A corrupted library file is a hard stop: starting with a silently
	// empty library would overwrite the broken data on the first save.
	pcGames, err := store.LoadPC()
	if err != nil {
		log.Fatalf("failed to load PC games library: %v", err)
	}
	consoleGames, err := store.LoadConsole()
	if err != nil {
		log.Fatalf("failed to load console games library: %v", err)
	}

	engine := organizer.New(organizer.Deps{
		PCGames:      pcGames,
		ConsoleGames: consoleGames,
		Store:        store,
		Launcher:     launch.NewStarter(),
		Descriptions: enrich.NewDescriptionClient(cfg.DescriptionAddr, cfg.NetTimeout),
		CoverArt:     enrich.NewCoverArtClient(cfg.CoverArtSearchURL, cfg.ImagesDir, cfg.NetTimeout),
		Rand:         rand.New(rand.NewPCG(newSeed(), newSeed())),
		In:           os.Stdin,
		Out:          os.Stdout,
	})

	if err := engine.Run(); err != nil {
		log.Fatalf("organizer failed: %v", err)
	}
}

// newSeed draws a high-entropy PRNG seed from crypto/rand.
func newSeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		log.Fatalf("failed to read random seed: %v", err)
	}
	return binary.LittleEndian.Uint64(b[:])
}
