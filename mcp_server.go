package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type ChapterInput struct {
	Chapter int    `json:"chapter,omitempty" jsonschema:"Chapter number to run (1-based); 0 returns state only"`
	Reset   bool   `json:"reset,omitempty" jsonschema:"Reset the run before executing"`
	Seed    *int64 `json:"seed,omitempty" jsonschema:"Seed to use when resetting"`
}

type ChapterOutput struct {
	Output string      `json:"output" jsonschema:"Raw game output"`
	OK     bool        `json:"ok" jsonschema:"Whether the chapter ran to completion"`
	State  GameSummary `json:"state" jsonschema:"Summary of the current run"`
}

// MCPServer drives one engine per server, serialized across requests.
// The engine runs headless: no pacing delays, no terminal reads.
type MCPServer struct {
	mu          sync.Mutex
	engine      *Engine
	cfg         *Config
	defaultSeed *int64
}

func newHeadlessEngine(cfg *Config, seed *int64) *Engine {
	e := NewEngine(cfg, seed, io.Discard)
	e.state.IsHeadless = true
	e.state.In = strings.NewReader("")
	return e
}

func NewMCPServer(cfg *Config, seed *int64) *MCPServer {
	return &MCPServer{
		engine:      newHeadlessEngine(cfg, seed),
		cfg:         cfg,
		defaultSeed: seed,
	}
}

// ExecuteChapter runs one chapter with output captured, advancing the
// run bookkeeping on success exactly as the interactive loop does.
func ExecuteChapter(e *Engine, n int) (string, bool) {
	var buf bytes.Buffer
	prevOut := e.state.Out
	e.state.Out = &buf
	defer func() {
		e.state.Out = prevOut
	}()

	ok := e.runChapter(n)
	if ok {
		e.chaptersRun[n] = true
		e.state.CurrentChapter = n + 1
		e.saveProgress()
		if n >= e.state.MaxChapters {
			e.completed = true
		}
	} else {
		e.halted = true
	}
	return buf.String(), ok
}

func (s *MCPServer) HandleChapter(_ context.Context, _ *mcp.CallToolRequest, input *ChapterInput) (*mcp.CallToolResult, *ChapterOutput, error) {
	if input == nil {
		input = &ChapterInput{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if input.Reset {
		seed := s.defaultSeed
		if input.Seed != nil {
			seed = input.Seed
		}
		store := s.engine.store
		s.engine = newHeadlessEngine(s.cfg, seed)
		s.engine.store = store
	}

	if input.Chapter <= 0 {
		return nil, &ChapterOutput{
			OK:    true,
			State: SummarizeState(s.engine),
		}, nil
	}

	output, ok := ExecuteChapter(s.engine, input.Chapter)
	return nil, &ChapterOutput{
		Output: output,
		OK:     ok,
		State:  SummarizeState(s.engine),
	}, nil
}

func RunMCPHTTP(server *MCPServer, addr, path string, origins []string, token string, jsonResponse bool, stateless bool) error {
	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    "ctrls",
		Version: "v1.0.0",
	}, nil)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "chapter",
		Description: "Run a single chapter of the adventure and return its output plus a run summary.",
	}, server.HandleChapter)

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return mcpServer
	}, &mcp.StreamableHTTPOptions{
		Stateless:                  stateless,
		JSONResponse:               jsonResponse,
		Logger:                     slog.Default(),
		DisableLocalhostProtection: false,
	})

	originSet := map[string]struct{}{}
	for _, origin := range origins {
		originSet[origin] = struct{}{}
	}

	guarded := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isAllowedOrigin(r, originSet) {
			http.Error(w, "Forbidden origin", http.StatusForbidden)
			return
		}
		if token != "" && r.Header.Get("Authorization") != "Bearer "+token {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		handler.ServeHTTP(w, r)
	})

	mux := http.NewServeMux()
	mux.Handle(path, guarded)

	serverHTTP := &http.Server{
		Addr:    addr,
		Handler: mux,
	}
	return serverHTTP.ListenAndServe()
}

func isAllowedOrigin(r *http.Request, allowed map[string]struct{}) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	_, ok := allowed[origin]
	return ok
}
