package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/ideascout/internal/config"
	"github.com/csheth/ideascout/internal/ideas"
	"github.com/csheth/ideascout/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (defaults to $IDEASCOUT_CONFIG)")
	endpoint := flag.String("endpoint", "", "idea generation endpoint (default "+ideas.DefaultEndpoint+")")
	timeout := flag.Duration("timeout", 0, "per-request timeout, eg. 90s (default "+ideas.DefaultTimeout.String()+")")
	industry := flag.String("industry", "", "prefill the industry field")
	technology := flag.String("tech", "", "prefill the technology focus field")
	logFile := flag.String("log", "", "append debug logs to this file")
	noAltScreen := flag.Bool("no-alt-screen", false, "disable the alternate screen buffer")
	flag.Parse()

	cfg, err := config.Load(*configPath, config.Overrides{
		Endpoint:        *endpoint,
		Timeout:         *timeout,
		LogFile:         *logFile,
		Industry:        *industry,
		TechnologyFocus: *technology,
	})
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(1)
	}

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		fmt.Println("failed to open log file:", err)
		os.Exit(1)
	}
	defer closeLog()
	log.Printf("[main] endpoint=%s timeout=%s", cfg.Endpoint, cfg.Timeout)

	client := ideas.New(ideas.Config{Endpoint: cfg.Endpoint})

	opts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if !*noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			Client:          client,
			Timeout:         cfg.Timeout,
			Industry:        cfg.Industry,
			TechnologyFocus: cfg.TechnologyFocus,
		}),
		opts...,
	)

	if _, err := program.Run(); err != nil {
		closeLog()
		fmt.Println("program error:", err)
		os.Exit(1)
	}
}

// setupLogging routes the standard logger to path, or discards it so log
// lines never land on the TUI.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "ideascout")
	if err != nil {
		return nil, err
	}
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	start := time.Now()
	return func() {
		log.Printf("[main] exiting after %s", time.Since(start).Round(time.Millisecond))
		_ = f.Close()
	}, nil
}
