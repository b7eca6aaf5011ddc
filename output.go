package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

func outWriter(s *GameState) io.Writer {
	if s != nil && s.Out != nil {
		return s.Out
	}
	return os.Stdout
}

func outPrint(s *GameState, a ...any) {
	_, _ = fmt.Fprint(outWriter(s), a...)
}

func outPrintln(s *GameState, a ...any) {
	_, _ = fmt.Fprintln(outWriter(s), a...)
}

func outPrintf(s *GameState, format string, a ...any) {
	_, _ = fmt.Fprintf(outWriter(s), format, a...)
}

// wrapWriteLn prints story text wrapped at WrapWidth, breaking on the
// last space that fits.
func wrapWriteLn(s *GameState, text string) {
	for utf8.RuneCountInString(text) > WrapWidth {
		runes := []rune(text)
		spacePos := WrapWidth
		for spacePos > 0 && runes[spacePos] != ' ' {
			spacePos--
		}
		if spacePos == 0 {
			spacePos = WrapWidth
		}
		outPrintln(s, string(runes[:spacePos]))
		text = strings.TrimLeft(string(runes[spacePos:]), " ")
	}
	outPrintln(s, text)
}
