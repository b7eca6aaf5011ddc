package main

// GameSummary is a snapshot of where a run stands, returned by the MCP
// chapter tool alongside raw output.
type GameSummary struct {
	Title          string   `json:"title" jsonschema:"Game title"`
	CurrentChapter int      `json:"current_chapter" jsonschema:"Next chapter to run (1-based)"`
	MaxChapters    int      `json:"max_chapters" jsonschema:"Total chapters in the sequence"`
	Completed      bool     `json:"completed" jsonschema:"Whether a full run finished without failure"`
	Halted         bool     `json:"halted" jsonschema:"Whether a run stopped on a chapter failure"`
	ChaptersRun    []int    `json:"chapters_run" jsonschema:"Chapter numbers that ran successfully"`
	PlayerName     string   `json:"player_name" jsonschema:"Player name, if a chapter set one"`
	Inventory      []string `json:"inventory" jsonschema:"Inventory item identifiers"`
}

func SummarizeState(e *Engine) GameSummary {
	s := e.state
	summary := GameSummary{
		Title:          s.Title,
		CurrentChapter: s.CurrentChapter,
		MaxChapters:    s.MaxChapters,
		Completed:      e.completed,
		Halted:         e.halted,
		PlayerName:     s.PlayerName,
		Inventory:      s.Inventory,
	}
	for n := 1; n <= s.MaxChapters; n++ {
		if e.chaptersRun[n] {
			summary.ChaptersRun = append(summary.ChaptersRun, n)
		}
	}
	return summary
}
