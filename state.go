package main

import (
	"bufio"
	"io"
	"math/rand"
	"time"
)

const (
	// BannerWidth is the width of the ===/--- banners around chapter
	// notices, matching the width the story text was written for.
	BannerWidth = 60

	// WrapWidth is the column at which wrapWriteLn breaks story text.
	WrapWidth = 79

	DefaultMaxChapters  = 5
	DefaultTypeSpeed    = 50 * time.Millisecond
	DefaultWelcomeDelay = 2 * time.Second
)

// GameState holds everything the running game knows about the player
// plus the I/O and pacing handles the console helpers need. The runner
// only ever advances CurrentChapter; PlayerName, Inventory and Progress
// exist for chapters and the progress store to fill in.
type GameState struct {
	PlayerName string
	Inventory  []string
	Progress   map[string]string

	CurrentChapter int
	MaxChapters    int
	Title          string

	IsHeadless bool
	Out        io.Writer
	In         io.Reader
	reader     *bufio.Reader

	TypeSpeed    time.Duration
	WelcomeDelay time.Duration
	Rng          *rand.Rand
}

func initState(s *GameState) {
	s.PlayerName = ""
	s.Inventory = nil
	s.Progress = map[string]string{}
	s.CurrentChapter = 1
	s.MaxChapters = DefaultMaxChapters
	s.Title = "Ctrl+S - The World Edition"
	s.IsHeadless = false
	s.TypeSpeed = DefaultTypeSpeed
	s.WelcomeDelay = DefaultWelcomeDelay
}
