package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/ini.v1"
)

// Config is the engine configuration read from game.ini. Missing files
// and malformed keys fall back to the defaults per key.
type Config struct {
	Title       string
	MaxChapters int
	ChaptersDir string

	TypeSpeed    time.Duration
	WelcomeDelay time.Duration
}

func defaultConfig() *Config {
	return &Config{
		Title:        "Ctrl+S - The World Edition",
		MaxChapters:  DefaultMaxChapters,
		ChaptersDir:  "chapters",
		TypeSpeed:    DefaultTypeSpeed,
		WelcomeDelay: DefaultWelcomeDelay,
	}
}

func loadConfig(path string) *Config {
	c := defaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return c
	}
	cfg, err := ini.Load(path)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		return c
	}

	game := cfg.Section("Game")
	c.Title = game.Key("Title").MustString(c.Title)
	c.MaxChapters = game.Key("MaxChapters").MustInt(c.MaxChapters)
	c.ChaptersDir = game.Key("ChaptersDir").MustString(c.ChaptersDir)
	if c.MaxChapters < 1 {
		c.MaxChapters = DefaultMaxChapters
	}

	pacing := cfg.Section("Pacing")
	typeMs := pacing.Key("TypeSpeedMs").MustInt(int(c.TypeSpeed / time.Millisecond))
	welcomeMs := pacing.Key("WelcomeDelayMs").MustInt(int(c.WelcomeDelay / time.Millisecond))
	c.TypeSpeed = time.Duration(typeMs) * time.Millisecond
	c.WelcomeDelay = time.Duration(welcomeMs) * time.Millisecond

	return c
}
