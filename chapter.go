package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// Chapter is one self-contained narrative unit. Run tells the chapter
// to play out against the game state; the runner only cares whether it
// succeeded.
type Chapter interface {
	Run(s *GameState) error
}

// ChapterFunc adapts a plain function to the Chapter interface.
type ChapterFunc func(s *GameState) error

func (f ChapterFunc) Run(s *GameState) error { return f(s) }

// ChapterRegistry maps 1-based chapter numbers to chapters. It is
// populated once at startup by explicit registration; the runner never
// probes for chapters by name at dispatch time.
type ChapterRegistry struct {
	chapters map[int]Chapter
}

func NewChapterRegistry() *ChapterRegistry {
	return &ChapterRegistry{chapters: map[int]Chapter{}}
}

func (r *ChapterRegistry) Register(n int, c Chapter) {
	r.chapters[n] = c
}

func (r *ChapterRegistry) Resolve(n int) (Chapter, bool) {
	c, ok := r.chapters[n]
	return c, ok
}

// registerScriptChapters registers a ScriptChapter for every ch<n>.lua
// present under dir, for n in 1..max. Absent files simply leave the
// slot unregistered; the runner reports that when it gets there.
func registerScriptChapters(r *ChapterRegistry, dir string, max int) {
	for n := 1; n <= max; n++ {
		path := filepath.Join(dir, fmt.Sprintf("ch%d.lua", n))
		if _, err := os.Stat(path); err != nil {
			continue
		}
		r.Register(n, &ScriptChapter{Num: n, Path: path})
	}
}
