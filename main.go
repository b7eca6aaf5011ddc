package main

import (
	"flag"
	"fmt"
	"log"
	"strings"
)

type stringSlice []string

func (s *stringSlice) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *stringSlice) Set(value string) error {
	*s = append(*s, value)
	return nil
}

func main() {
	configPath := flag.String("config", "data/game.ini", "Path to the game configuration file")
	chaptersDir := flag.String("chapters", "", "Override the chapter script directory")
	headless := flag.Bool("headless", false, "Run without raw terminal input or pacing delays")
	seedFlag := flag.Int64("seed", -1, "Deterministic seed for dramatic pauses (optional)")
	autosave := flag.Bool("autosave", false, "Persist progress after each chapter")
	autosavePath := flag.String("autosave-path", "data/progress.ini", "Path to the progress file")
	mcpHTTP := flag.Bool("mcp-http", false, "Run MCP Streamable HTTP server")
	mcpAddr := flag.String("mcp-addr", "127.0.0.1:8765", "MCP listen address")
	mcpPath := flag.String("mcp-path", "/mcp", "MCP endpoint path")
	mcpToken := flag.String("mcp-token", "", "Bearer token for MCP requests (optional)")
	mcpJSON := flag.Bool("mcp-json-response", false, "Force JSON responses instead of SSE")
	mcpStateless := flag.Bool("mcp-stateless", false, "Run MCP server in stateless mode (no sessions/SSE)")
	var origins stringSlice
	flag.Var(&origins, "mcp-origin", "Allowed Origin for MCP requests (repeatable)")

	flag.Usage = func() {
		fmt.Printf("Usage: ctrls [options]\n\n")
		fmt.Printf("Options:\n")
		fmt.Printf("  -h, --h, --help      Show this help message\n")
		fmt.Printf("  --config <path>      Game configuration file (default: data/game.ini)\n")
		fmt.Printf("  --chapters <dir>     Chapter script directory override\n")
		fmt.Printf("  --headless           Run without raw terminal input or pacing delays\n")
		fmt.Printf("  --seed <n>           Set the random seed\n")
		fmt.Printf("  --autosave           Persist progress after each chapter\n")
		fmt.Printf("  --autosave-path      Progress file path (default: data/progress.ini)\n")
	}

	flag.Parse()

	var seed *int64
	if *seedFlag >= 0 {
		seed = seedFlag
	}

	cfg := loadConfig(*configPath)
	if *chaptersDir != "" {
		cfg.ChaptersDir = *chaptersDir
	}

	if *mcpHTTP {
		if len(origins) == 0 {
			origins = append(origins, "http://localhost", "http://127.0.0.1")
		}
		server := NewMCPServer(cfg, seed)
		if *autosave {
			server.engine.store = &iniStore{path: *autosavePath}
		}
		if err := RunMCPHTTP(server, *mcpAddr, *mcpPath, origins, *mcpToken, *mcpJSON, *mcpStateless); err != nil {
			log.Fatal(err)
		}
		return
	}

	e := NewEngine(cfg, seed, nil)
	e.state.IsHeadless = *headless
	if *autosave {
		e.store = &iniStore{path: *autosavePath}
	}

	e.StartGame()
}
