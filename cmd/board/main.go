package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"taskboard/internal/client"
	"taskboard/internal/client/ui"
	"taskboard/internal/config"
	"taskboard/internal/db"
)

func main() {
	cfg := config.LoadConfig()

	// The terminal belongs to the board, so the logger writes to a file.
	logPath := filepath.Join(db.DefaultDataDir(), "board.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err == nil {
		if f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
			log.SetOutput(f)
			defer f.Close()
		}
	}

	api := client.New(cfg.Client.APIURL)
	p := tea.NewProgram(ui.NewBoard(api), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "board: %v\n", err)
		os.Exit(1)
	}
}
