package main

import (
	"bufio"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/term"
)

const enterPrompt = "\n(Your journey pauses but briefly. Press Enter to delve deeper into the odyssey.)\n"

// pace sleeps for d unless the game runs headless, where all pacing is
// skipped so tests and the MCP server never wait on theatrics.
func pace(s *GameState, d time.Duration) {
	if s.IsHeadless || d <= 0 {
		return
	}
	time.Sleep(d)
}

// clearScreen clears the terminal. When output is not a real terminal
// (tests, MCP buffers, pipes) there is no screen to clear.
func clearScreen(s *GameState) {
	if s.IsHeadless {
		return
	}
	f, ok := outWriter(s).(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return
	}
	outPrint(s, "\x1b[2J\x1b[H")
}

func welcomeMessage(s *GameState) {
	outPrintln(s)
	outPrintf(s, "Welcome to '%s!' - By Thomas J Butler\n", s.Title)
	outPrintln(s, "The indie game where keyboards are mightier than swords.")
	outPrintln(s, "Please check out my GitHub and LinkedIn profiles for more projects and to connect with me.")
	outPrintln(s, strings.Repeat("-", BannerWidth))
	outPrintln(s, "Remember, in this world, your wit is your greatest weapon.")
	outPrintln(s, strings.Repeat("-", BannerWidth))
	pace(s, s.WelcomeDelay)
}

func endGame(s *GameState) {
	outPrintln(s)
	outPrintln(s, "Your journey ends here, but the adventure continues in your heart.")
	outPrintln(s, "And also in any sequels we may develop.")
	readLine(s, "\nPress Enter to bid farewell to this digital odyssey.\n")
}

// pressEnterToContinue blocks for a single acknowledgment line (content
// discarded), then clears the screen for the next scene.
func pressEnterToContinue(s *GameState) {
	readLine(s, enterPrompt)
	clearScreen(s)
}

// slowType prints text one rune at a time with a per-character delay.
// A negative speed means "use the configured default". Unused by the
// dispatch loop itself; chapters call it through the console API.
func slowType(s *GameState, text string, speed time.Duration) {
	if speed < 0 {
		speed = s.TypeSpeed
	}
	for _, r := range text {
		outPrint(s, string(r))
		pace(s, speed)
	}
	outPrintln(s)
}

// dramaticPause blocks for a uniformly random 1-3 seconds. Every good
// story needs its dramatic pauses.
func dramaticPause(s *GameState) {
	d := time.Second + time.Duration(s.Rng.Float64()*float64(2*time.Second))
	pace(s, d)
}

// readLine prints prompt and blocks for one line of input. Headless
// mode reads from a persistent buffered reader so buffered data isn't
// lost between calls; interactive mode reads in raw terminal mode with
// a cooked-mode fallback when raw mode is unavailable.
func readLine(s *GameState, prompt string) string {
	if s.IsHeadless {
		if s.reader == nil {
			in := s.In
			if in == nil {
				in = os.Stdin
			}
			s.reader = bufio.NewReader(in)
		}
		outPrint(s, prompt)
		line, _ := s.reader.ReadString('\n')
		return strings.TrimRight(line, "\r\n")
	}

	outPrint(s, prompt)

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		reader := bufio.NewReader(os.Stdin)
		line, _ := reader.ReadString('\n')
		return strings.TrimRight(line, "\r\n")
	}

	var lineRunes []rune
	for {
		buf := make([]byte, 4)
		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			_ = term.Restore(fd, oldState)
			outPrint(s, "\r\n")
			return string(lineRunes)
		}
		b := buf[0]

		switch {
		case b == '\r' || b == '\n':
			_ = term.Restore(fd, oldState)
			outPrint(s, "\r\n")
			return string(lineRunes)

		case b == '\x04': // Ctrl-D
			_ = term.Restore(fd, oldState)
			outPrint(s, "\r\n")
			return string(lineRunes)

		case b == '\x7f' || b == '\x08': // Backspace / DEL
			if len(lineRunes) > 0 {
				lineRunes = lineRunes[:len(lineRunes)-1]
				outPrint(s, "\b \b")
			}

		default:
			if b >= ' ' {
				r, _ := utf8.DecodeRune(buf[:n])
				if r != utf8.RuneError {
					lineRunes = append(lineRunes, r)
					outPrint(s, string(r))
				}
			}
		}
	}
}
