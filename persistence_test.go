package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNoopStoreLeavesNoTrace(t *testing.T) {
	var s GameState
	initState(&s)
	store := noopStore{}

	if err := store.Save(&s); err != nil {
		t.Fatalf("noop save: %v", err)
	}
	if err := store.Load(&s); err != nil {
		t.Fatalf("noop load: %v", err)
	}
}

func TestIniStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.ini")
	store := &iniStore{path: path}

	var saved GameState
	initState(&saved)
	saved.CurrentChapter = 4
	saved.PlayerName = "Archivist"
	saved.Inventory = []string{"keyboard", "candle"}
	saved.Progress["ch2"] = "declined the pamphlet"

	if err := store.Save(&saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	var loaded GameState
	initState(&loaded)
	if err := store.Load(&loaded); err != nil {
		t.Fatalf("load: %v", err)
	}

	if loaded.CurrentChapter != 4 {
		t.Fatalf("unexpected CurrentChapter: %d", loaded.CurrentChapter)
	}
	if loaded.PlayerName != "Archivist" {
		t.Fatalf("unexpected PlayerName: %q", loaded.PlayerName)
	}
	if len(loaded.Inventory) != 2 || loaded.Inventory[0] != "keyboard" || loaded.Inventory[1] != "candle" {
		t.Fatalf("unexpected Inventory: %v", loaded.Inventory)
	}
	if loaded.Progress["ch2"] != "declined the pamphlet" {
		t.Fatalf("unexpected Progress: %v", loaded.Progress)
	}
}

func TestIniStoreLoadMissingFileIsNoError(t *testing.T) {
	store := &iniStore{path: filepath.Join(t.TempDir(), "nope.ini")}

	var s GameState
	initState(&s)
	s.CurrentChapter = 2

	if err := store.Load(&s); err != nil {
		t.Fatalf("load of missing file: %v", err)
	}
	if s.CurrentChapter != 2 {
		t.Fatalf("missing file must not mutate state, got chapter %d", s.CurrentChapter)
	}
}

func TestIniStoreCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "progress.ini")
	store := &iniStore{path: path}

	var s GameState
	initState(&s)
	if err := store.Save(&s); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected progress file to exist: %v", err)
	}
}
