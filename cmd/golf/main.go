package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/golfcli/golf/internal/config"
	"github.com/golfcli/golf/internal/deck"
	"github.com/golfcli/golf/internal/golf"
	"github.com/golfcli/golf/internal/randutil"
	"github.com/golfcli/golf/internal/tui"
)

type CLI struct {
	Config         string `short:"c" help:"Path to HCL config file" default:"golf.hcl"`
	Columns        int    `help:"Number of tableau columns (overrides config)"`
	CardsPerColumn int    `help:"Cards per tableau column (overrides config)"`
	Seed           int64  `help:"Deal seed, 0 for a random deal (overrides config)"`
	Debug          bool   `short:"d" help:"Enable debug logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("golf"),
		kong.Description("Golf Solitaire for the terminal"))

	cfg, err := config.LoadConfig(cli.Config)
	if err != nil {
		log.Fatal("Failed to load config", "path", cli.Config, "error", err)
	}

	// Flags override the config file.
	if cli.Columns != 0 {
		cfg.Game.Columns = cli.Columns
	}
	if cli.CardsPerColumn != 0 {
		cfg.Game.CardsPerColumn = cli.CardsPerColumn
	}
	if cli.Seed != 0 {
		cfg.Game.Seed = cli.Seed
	}
	if cli.Debug {
		cfg.UI.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration", "error", err)
	}

	if err := run(cfg); err != nil {
		log.Fatal("Game failed", "error", err)
	}

	ctx.Exit(0)
}

func run(cfg *config.Config) error {
	// The TUI owns the terminal, so logs go to a file.
	logFile, err := os.OpenFile(cfg.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()

	level, err := log.ParseLevel(cfg.UI.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}
	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("Starting game",
		"columns", cfg.Game.Columns,
		"cardsPerColumn", cfg.Game.CardsPerColumn,
		"seed", seed)

	d := deck.NewDeck(randutil.New(seed))
	d.Shuffle()

	game, err := golf.NewGame(cfg.GameConfig(), d, logger)
	if err != nil {
		return fmt.Errorf("failed to deal game: %w", err)
	}

	model := tui.NewModel(game, logger)
	if cfg.UI.ShowRulesOnStart {
		model.ShowRules()
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	// Echo the outcome after the alt screen is torn down.
	switch game.Status() {
	case golf.StatusWon:
		fmt.Println("You won.")
	case golf.StatusLost:
		fmt.Println("You lost.")
	}

	return nil
}
