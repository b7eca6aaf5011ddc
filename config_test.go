package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg := loadConfig(filepath.Join(t.TempDir(), "nope.ini"))

	if cfg.MaxChapters != DefaultMaxChapters {
		t.Fatalf("expected default MaxChapters, got %d", cfg.MaxChapters)
	}
	if cfg.ChaptersDir != "chapters" {
		t.Fatalf("expected default chapters dir, got %q", cfg.ChaptersDir)
	}
	if cfg.TypeSpeed != DefaultTypeSpeed || cfg.WelcomeDelay != DefaultWelcomeDelay {
		t.Fatalf("expected default pacing, got %v / %v", cfg.TypeSpeed, cfg.WelcomeDelay)
	}
}

func TestLoadConfigReadsOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.ini")
	body := `[Game]
Title       = Ctrl+S - The Test Edition
MaxChapters = 3
ChaptersDir = episodes

[Pacing]
TypeSpeedMs    = 10
WelcomeDelayMs = 100
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := loadConfig(path)

	if cfg.Title != "Ctrl+S - The Test Edition" {
		t.Fatalf("unexpected title: %q", cfg.Title)
	}
	if cfg.MaxChapters != 3 {
		t.Fatalf("unexpected MaxChapters: %d", cfg.MaxChapters)
	}
	if cfg.ChaptersDir != "episodes" {
		t.Fatalf("unexpected ChaptersDir: %q", cfg.ChaptersDir)
	}
	if cfg.TypeSpeed != 10*time.Millisecond {
		t.Fatalf("unexpected TypeSpeed: %v", cfg.TypeSpeed)
	}
	if cfg.WelcomeDelay != 100*time.Millisecond {
		t.Fatalf("unexpected WelcomeDelay: %v", cfg.WelcomeDelay)
	}
}

func TestLoadConfigRejectsNonPositiveChapterCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.ini")
	if err := os.WriteFile(path, []byte("[Game]\nMaxChapters = 0\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if cfg := loadConfig(path); cfg.MaxChapters != DefaultMaxChapters {
		t.Fatalf("expected default MaxChapters for zero, got %d", cfg.MaxChapters)
	}
}
