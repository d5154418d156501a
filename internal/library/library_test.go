package library

import (
	"errors"
	"testing"

	"github.com/kqimam/game-organizer/internal/game"
)

func mustPC(t *testing.T, title, source, path string) *game.PCGame {
	t.Helper()
	g, err := game.NewPCGame(title, source, path)
	if err != nil {
		t.Fatalf("NewPCGame(%q) failed: %v", title, err)
	}
	return g
}

func TestAddAndSortOrdersByTitle(t *testing.T) {
	lib := New[*game.PCGame]()
	for _, title := range []string{"Stardew Valley", "AM2R", "DOOM Eternal"} {
		lib.Add(mustPC(t, title, "Steam", "/path"))
	}
	lib.Sort()

	want := []string{"AM2R", "DOOM Eternal", "Stardew Valley"}
	for i, w := range want {
		g, err := lib.At(i)
		if err != nil {
			t.Fatalf("At(%d) failed: %v", i, err)
		}
		if g.Title != w {
			t.Errorf("record %d = %q, want %q", i, g.Title, w)
		}
	}
}

func TestSortIsCaseSensitiveOrdinal(t *testing.T) {
	lib := New[*game.PCGame]()
	lib.Add(mustPC(t, "am2r", "Steam", "/a"))
	lib.Add(mustPC(t, "DOOM", "Steam", "/b"))
	lib.Sort()

	// Uppercase sorts before lowercase under byte-wise comparison.
	first, _ := lib.At(0)
	if first.Title != "DOOM" {
		t.Errorf("first record = %q, want DOOM", first.Title)
	}
}

func TestSortIsStableForEqualTitles(t *testing.T) {
	lib := New[*game.PCGame]()
	a := mustPC(t, "Same Title", "Steam", "/first")
	b := mustPC(t, "Same Title", "GOG Galaxy", "/second")
	lib.Add(a)
	lib.Add(b)
	lib.Sort()

	if got := lib.IndexOf(a); got != 0 {
		t.Errorf("first-inserted record moved to index %d", got)
	}
	if got := lib.IndexOf(b); got != 1 {
		t.Errorf("second-inserted record moved to index %d", got)
	}
}

func TestAtOutOfRange(t *testing.T) {
	lib := New[*game.PCGame]()
	lib.Add(mustPC(t, "AM2R", "Steam", "/path"))

	for _, i := range []int{-1, 1, 100} {
		if _, err := lib.At(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("At(%d): expected ErrIndexOutOfRange, got %v", i, err)
		}
	}
}

func TestDeleteAt(t *testing.T) {
	lib := New[*game.PCGame]()
	lib.Add(mustPC(t, "AM2R", "Steam", "/a"))
	lib.Add(mustPC(t, "DOOM Eternal", "Steam", "/b"))

	if err := lib.DeleteAt(0); err != nil {
		t.Fatalf("DeleteAt failed: %v", err)
	}
	if lib.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", lib.Len())
	}
	g, _ := lib.At(0)
	if g.Title != "DOOM Eternal" {
		t.Errorf("remaining record = %q", g.Title)
	}
}

func TestDeleteAtOutOfRangeLeavesLibraryUnchanged(t *testing.T) {
	lib := New[*game.PCGame]()
	lib.Add(mustPC(t, "AM2R", "Steam", "/a"))

	for _, i := range []int{-1, 1, 7} {
		if err := lib.DeleteAt(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("DeleteAt(%d): expected ErrIndexOutOfRange, got %v", i, err)
		}
	}
	if lib.Len() != 1 {
		t.Errorf("failed deletes changed the library: len = %d", lib.Len())
	}
}

func TestIndexOfMissingRecord(t *testing.T) {
	lib := New[*game.PCGame]()
	lib.Add(mustPC(t, "AM2R", "Steam", "/a"))

	other := mustPC(t, "AM2R", "Steam", "/a")
	if got := lib.IndexOf(other); got != -1 {
		t.Errorf("IndexOf(foreign record) = %d, want -1", got)
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	lib := New[*game.PCGame]()

	a := mustPC(t, "AM2R", "Steam", "/path/AM2R.exe")
	a.AddConfig(game.LaunchConfig{Title: "Mod List 1", Path: "/mods/one.exe"})
	a.AddConfig(game.LaunchConfig{Title: "Mod List 2", Path: "/mods/two.exe"})
	a.Description = "An unofficial remake of Metroid II."
	a.CoverArt = "images/AM2R.png"
	a.LastPlayed = "02/13/2021"
	lib.Add(a)
	lib.Add(mustPC(t, "Stardew Valley", "Steam", "steam://rungameid/413150"))
	lib.Sort()

	data, err := lib.Serialize()
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	got, err := Deserialize[*game.PCGame](data)
	if err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}

	if got.Len() != lib.Len() {
		t.Fatalf("record count = %d, want %d", got.Len(), lib.Len())
	}
	for i := 0; i < lib.Len(); i++ {
		want, _ := lib.At(i)
		g, _ := got.At(i)
		if g.Title != want.Title || g.Source != want.Source || g.AppPath != want.AppPath ||
			g.LastPlayed != want.LastPlayed || g.Description != want.Description ||
			g.CoverArt != want.CoverArt {
			t.Errorf("record %d = %+v, want %+v", i, g, want)
		}
		if len(g.Configs) != len(want.Configs) {
			t.Fatalf("record %d config count = %d, want %d", i, len(g.Configs), len(want.Configs))
		}
		for j := range want.Configs {
			if g.Configs[j] != want.Configs[j] {
				t.Errorf("record %d config %d = %+v, want %+v", i, j, g.Configs[j], want.Configs[j])
			}
		}
	}
}

func TestSerializeEmptyLibrary(t *testing.T) {
	lib := New[*game.PCGame]()

	data, err := lib.Serialize()
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	got, err := Deserialize[*game.PCGame](data)
	if err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}
	if got.Len() != 0 {
		t.Errorf("expected empty library, got %d records", got.Len())
	}
}

func TestDeserializeCorruptData(t *testing.T) {
	if _, err := Deserialize[*game.PCGame]([]byte("{not json")); !errors.Is(err, ErrCorrupt) {
		t.Errorf("expected ErrCorrupt, got %v", err)
	}
}

func TestConsoleLibraryRoundTrip(t *testing.T) {
	lib := New[*game.ConsoleGame]()
	g, err := game.NewConsoleGame("Chrono Trigger", "SNES", "snes9x", "/roms/ct.sfc")
	if err != nil {
		t.Fatalf("NewConsoleGame failed: %v", err)
	}
	g.AddROM(game.LaunchConfig{Title: "Translation", Path: "/roms/ct-tr.sfc"})
	lib.Add(g)

	data, err := lib.Serialize()
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	got, err := Deserialize[*game.ConsoleGame](data)
	if err != nil {
		t.Fatalf("Deserialize failed: %v", err)
	}

	r, _ := got.At(0)
	if r.Platform != "SNES" || r.Emulator != "snes9x" || r.DefaultROM != "/roms/ct.sfc" {
		t.Errorf("console fields lost in round trip: %+v", r)
	}
	if len(r.ROMs) != 2 {
		t.Errorf("ROM list lost in round trip: %+v", r.ROMs)
	}
}
