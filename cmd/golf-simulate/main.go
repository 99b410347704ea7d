package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/golfcli/golf/internal/golf"
	"github.com/golfcli/golf/internal/simulator"
)

type CLI struct {
	Games          int   `default:"10000" help:"Number of games to simulate"`
	Seed           int64 `default:"1" help:"Base RNG seed"`
	Columns        int   `default:"7" help:"Number of tableau columns"`
	CardsPerColumn int   `default:"5" help:"Cards per tableau column"`
	Workers        int   `default:"0" help:"Concurrent workers (0 = NumCPU)"`
	Verbose        bool  `short:"v" help:"Verbose logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("golf-simulate"),
		kong.Description("Estimate Golf Solitaire win rates under a greedy policy"))

	level := log.WarnLevel
	if cli.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	workers := cli.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	stats, err := simulator.Run(context.Background(), simulator.Options{
		Games:   cli.Games,
		Seed:    cli.Seed,
		Workers: workers,
		GameConfig: golf.Config{
			Columns:        cli.Columns,
			CardsPerColumn: cli.CardsPerColumn,
		},
		Logger: logger,
	})
	if err != nil {
		log.Fatal("Simulation failed", "error", err)
	}

	lo, hi := stats.ConfidenceInterval95()
	fmt.Printf("Games:             %d\n", stats.Games)
	fmt.Printf("Layout:            %dx%d\n", cli.Columns, cli.CardsPerColumn)
	fmt.Printf("Wins:              %d\n", stats.Wins)
	fmt.Printf("Win rate:          %.2f%% (95%% CI %.2f%%-%.2f%%)\n",
		stats.WinRate()*100, lo*100, hi*100)
	fmt.Printf("Avg cards cleared: %.1f of %d\n",
		stats.AvgCardsCleared(), cli.Columns*cli.CardsPerColumn)
	fmt.Printf("Avg turns:         %.1f\n", stats.AvgTurns())

	ctx.Exit(0)
}
