package main

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func newTestState(input string) (*GameState, *bytes.Buffer) {
	var out bytes.Buffer
	var s GameState
	initState(&s)
	s.Out = &out
	s.In = strings.NewReader(input)
	s.IsHeadless = true
	s.Rng = rand.New(rand.NewSource(7))
	return &s, &out
}

func TestSlowTypeAppendsTrailingNewline(t *testing.T) {
	s, out := newTestState("")

	slowType(s, "save the world", 0)

	if out.String() != "save the world\n" {
		t.Fatalf("unexpected slowType output: %q", out.String())
	}
}

func TestWrapWriteLnBreaksLongLines(t *testing.T) {
	s, out := newTestState("")
	text := strings.TrimSpace(strings.Repeat("persistence ", 12))

	wrapWriteLn(s, text)

	for _, line := range strings.Split(strings.TrimRight(out.String(), "\n"), "\n") {
		if utf8.RuneCountInString(line) > WrapWidth {
			t.Fatalf("line exceeds wrap width: %q", line)
		}
	}
	joined := strings.ReplaceAll(out.String(), "\n", " ")
	if !strings.Contains(joined, "persistence persistence") {
		t.Fatalf("wrapped output lost text: %q", out.String())
	}
}

func TestPressEnterToContinueConsumesOneLine(t *testing.T) {
	s, out := newTestState("first\nsecond\n")

	pressEnterToContinue(s)

	if !strings.Contains(out.String(), "Press Enter to delve deeper") {
		t.Fatalf("expected pause prompt, output: %q", out.String())
	}
	if got := readLine(s, ""); got != "second" {
		t.Fatalf("pressEnterToContinue consumed the wrong input, next line: %q", got)
	}
}

func TestReadLineHeadlessReturnsOnEOF(t *testing.T) {
	s, _ := newTestState("")

	done := make(chan string, 1)
	go func() { done <- readLine(s, "> ") }()

	select {
	case got := <-done:
		if got != "" {
			t.Fatalf("expected empty line at EOF, got %q", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("readLine blocked on exhausted headless input")
	}
}

func TestWelcomeMessageSkipsDelayWhenHeadless(t *testing.T) {
	s, out := newTestState("")
	s.WelcomeDelay = 2 * time.Second

	start := time.Now()
	welcomeMessage(s)

	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("headless welcome should not pause, took %v", elapsed)
	}
	if !strings.Contains(out.String(), "Welcome to 'Ctrl+S - The World Edition!'") {
		t.Fatalf("missing welcome banner, output: %q", out.String())
	}
	if !strings.Contains(out.String(), "your wit is your greatest weapon") {
		t.Fatalf("missing banner tagline, output: %q", out.String())
	}
}

func TestDramaticPauseSkipsWhenHeadless(t *testing.T) {
	s, _ := newTestState("")

	start := time.Now()
	dramaticPause(s)

	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Fatalf("headless dramatic pause should return immediately, took %v", elapsed)
	}
}

func TestEndGamePrintsFarewell(t *testing.T) {
	s, out := newTestState("\n")

	endGame(s)

	if !strings.Contains(out.String(), "the adventure continues in your heart") {
		t.Fatalf("missing farewell banner, output: %q", out.String())
	}
	if !strings.Contains(out.String(), "bid farewell to this digital odyssey") {
		t.Fatalf("missing farewell prompt, output: %q", out.String())
	}
}
