package main

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// ProgressStore is the persistence seam behind saveProgress and
// loadProgress. The engine always goes through it; what actually
// happens depends on the configured implementation.
type ProgressStore interface {
	Save(s *GameState) error
	Load(s *GameState) error
}

// noopStore is the default: the hooks exist, nothing is written. A run
// without -autosave leaves no trace on disk.
type noopStore struct{}

func (noopStore) Save(*GameState) error { return nil }
func (noopStore) Load(*GameState) error { return nil }

// iniStore persists progress to an ini file when -autosave is set.
type iniStore struct {
	path string
}

func (st *iniStore) Save(s *GameState) error {
	cfg := ini.Empty()

	sec, _ := cfg.NewSection("Progress")
	sec.Key("CurrentChapter").SetValue(strconv.Itoa(s.CurrentChapter))
	sec.Key("PlayerName").SetValue(s.PlayerName)
	sec.Key("Inventory").SetValue(strings.Join(s.Inventory, ","))

	chapters, _ := cfg.NewSection("Chapters")
	for id, v := range s.Progress {
		chapters.Key(id).SetValue(v)
	}

	if dir := filepath.Dir(st.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return cfg.SaveTo(st.path)
}

func (st *iniStore) Load(s *GameState) error {
	if _, err := os.Stat(st.path); os.IsNotExist(err) {
		return nil
	}
	cfg, err := ini.Load(st.path)
	if err != nil {
		return err
	}

	sec := cfg.Section("Progress")
	s.CurrentChapter = sec.Key("CurrentChapter").MustInt(s.CurrentChapter)
	s.PlayerName = sec.Key("PlayerName").String()
	if inv := sec.Key("Inventory").String(); inv != "" {
		s.Inventory = strings.Split(inv, ",")
	}

	for _, key := range cfg.Section("Chapters").Keys() {
		s.Progress[key.Name()] = key.String()
	}
	return nil
}
