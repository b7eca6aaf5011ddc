package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	lua "github.com/Shopify/go-lua"
)

// errNoEntryPoint reports a chapter script that loaded fine but exposes
// none of the recognized entry functions.
var errNoEntryPoint = errors.New("no entry function found")

// ScriptChapter is a Chapter backed by a Lua file. Each run gets a
// fresh interpreter, so scripts cannot leak state into one another.
type ScriptChapter struct {
	Num  int
	Path string
}

// entryPointNames lists the recognized zero-argument entry functions in
// priority order. The numbered forms exist for legacy chapter scripts
// that never adopted the plain main convention.
func entryPointNames(n int) []string {
	return []string{
		"main",
		fmt.Sprintf("chapter_%d", n),
		fmt.Sprintf("ch%d_main", n),
	}
}

func (c *ScriptChapter) Run(s *GameState) error {
	l := lua.NewState()
	lua.OpenLibraries(l)
	registerConsoleAPI(l, s)

	if err := lua.LoadFile(l, c.Path, ""); err != nil {
		return fmt.Errorf("load %s: %w", filepath.Base(c.Path), err)
	}
	if err := l.ProtectedCall(0, 0, 0); err != nil {
		return fmt.Errorf("run %s: %w", filepath.Base(c.Path), err)
	}

	for _, name := range entryPointNames(c.Num) {
		l.Global(name)
		if l.TypeOf(-1) == lua.TypeFunction {
			// First match wins; the others are never called.
			if err := l.ProtectedCall(0, 0, 0); err != nil {
				return fmt.Errorf("%s %s: %w", name, filepath.Base(c.Path), err)
			}
			return nil
		}
		l.Pop(1)
	}
	return errNoEntryPoint
}

// registerConsoleAPI exposes the console utilities to chapter scripts
// as a global "console" table. Chapters own their narrative text and
// prompts entirely; nothing they do here flows back into the runner.
func registerConsoleAPI(l *lua.State, s *GameState) {
	api := []lua.RegistryFunction{
		{Name: "say", Function: func(l *lua.State) int {
			wrapWriteLn(s, lua.CheckString(l, 1))
			return 0
		}},
		{Name: "slow_type", Function: func(l *lua.State) int {
			text := lua.CheckString(l, 1)
			ms := lua.OptInteger(l, 2, int(s.TypeSpeed/time.Millisecond))
			slowType(s, text, time.Duration(ms)*time.Millisecond)
			return 0
		}},
		{Name: "dramatic_pause", Function: func(l *lua.State) int {
			dramaticPause(s)
			return 0
		}},
		{Name: "press_enter", Function: func(l *lua.State) int {
			pressEnterToContinue(s)
			return 0
		}},
		{Name: "clear_screen", Function: func(l *lua.State) int {
			clearScreen(s)
			return 0
		}},
		{Name: "ask", Function: func(l *lua.State) int {
			prompt := lua.OptString(l, 1, "> ")
			l.PushString(readLine(s, prompt))
			return 1
		}},
	}

	l.NewTable()
	lua.SetFunctions(l, api, 0)
	l.SetGlobal("console")
}
