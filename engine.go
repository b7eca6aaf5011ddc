package main

import (
	"errors"
	"io"
	"math/rand"
	"strings"
	"time"
)

// Engine sequences chapters in increasing order, halting the run on the
// first chapter that cannot be resolved or produces no entry point.
type Engine struct {
	state    *GameState
	registry *ChapterRegistry
	store    ProgressStore

	halted      bool
	completed   bool
	chaptersRun map[int]bool
}

// NewEngine builds an engine from cfg. A nil seed means time-based
// randomness; out defaults to stdout when nil.
func NewEngine(cfg *Config, seed *int64, out io.Writer) *Engine {
	var s GameState
	initState(&s)
	if out != nil {
		s.Out = out
	}
	s.Title = cfg.Title
	s.MaxChapters = cfg.MaxChapters
	s.TypeSpeed = cfg.TypeSpeed
	s.WelcomeDelay = cfg.WelcomeDelay

	if seed != nil {
		s.Rng = rand.New(rand.NewSource(*seed))
	} else {
		s.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	registry := NewChapterRegistry()
	registerScriptChapters(registry, cfg.ChaptersDir, cfg.MaxChapters)

	return &Engine{
		state:       &s,
		registry:    registry,
		store:       noopStore{},
		chaptersRun: map[int]bool{},
	}
}

// loadChapter resolves a chapter number through the registry. Failure
// is recoverable: it prints a diagnostic and returns nil.
func (e *Engine) loadChapter(n int) Chapter {
	c, ok := e.registry.Resolve(n)
	if !ok {
		outPrintf(e.state, "Error loading chapter %d: no such chapter\n", n)
		return nil
	}
	return c
}

// runChapter loads and executes one chapter, reporting success. Both
// failure shapes — unresolvable chapter and missing entry point — end
// the same way: a diagnostic and false.
func (e *Engine) runChapter(n int) bool {
	s := e.state
	banner := strings.Repeat("=", BannerWidth)
	outPrintf(s, "\n%s\n", banner)
	outPrintf(s, "LOADING CHAPTER %d\n", n)
	outPrintln(s, banner)

	c := e.loadChapter(n)
	if c == nil {
		outPrintf(s, "Chapter %d could not be loaded. Skipping...\n", n)
		return false
	}

	if err := c.Run(s); err != nil {
		if errors.Is(err, errNoEntryPoint) {
			outPrintf(s, "No main function found in chapter %d\n", n)
		} else {
			outPrintf(s, "Chapter %d failed: %v\n", n, err)
		}
		return false
	}
	return true
}

func (e *Engine) saveProgress() {
	if err := e.store.Save(e.state); err != nil {
		outPrintf(e.state, "Error saving progress: %v\n", err)
	}
}

func (e *Engine) loadProgress() {
	if err := e.store.Load(e.state); err != nil {
		outPrintf(e.state, "Error loading progress: %v\n", err)
	}
}

// StartGame drives the full fixed sequence: welcome, chapters 1..max in
// order with a pause between chapters, halt on first failure, and the
// completion banner — which prints whether or not the run was halted,
// as the story always did.
func (e *Engine) StartGame() {
	s := e.state

	clearScreen(s)
	welcomeMessage(s)
	pressEnterToContinue(s)

	e.halted = false
	for n := 1; n <= s.MaxChapters; n++ {
		outPrintf(s, "\n--- Beginning Chapter %d ---\n", n)

		if !e.runChapter(n) {
			outPrintln(s, "Game encountered an error. Ending...")
			e.halted = true
			break
		}

		e.chaptersRun[n] = true
		s.CurrentChapter = n + 1
		e.saveProgress()

		if n < s.MaxChapters {
			pressEnterToContinue(s)
		}
	}
	e.completed = !e.halted

	outPrintln(s)
	outPrintln(s, strings.Repeat("=", BannerWidth))
	outPrintln(s, "ADVENTURE COMPLETED!")
	outPrintln(s, strings.Repeat("=", BannerWidth))
	endGame(s)
}
