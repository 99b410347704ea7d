// Package simulator plays Golf Solitaire games under a fixed policy to
// estimate how often a layout is winnable. It exists for tuning the
// tableau shape, not for playing the game.
package simulator

import (
	"context"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/golfcli/golf/internal/deck"
	"github.com/golfcli/golf/internal/golf"
	"github.com/golfcli/golf/internal/randutil"
)

// Options configures a simulation run
type Options struct {
	Games      int         // Number of games to play
	Seed       int64       // Base seed; game i uses stream i
	Workers    int         // Concurrent workers (0 means 1)
	GameConfig golf.Config // Tableau shape
	Logger     *log.Logger
}

// GameResult records the outcome of one simulated game
type GameResult struct {
	Game         int // Stream index, for replaying a specific deal
	Won          bool
	CardsCleared int // Tableau cards moved to the waste
	Turns        int
}

// Statistics aggregates results across a run
type Statistics struct {
	Games           int
	Wins            int
	CardsClearedSum int
	TurnsSum        int
}

// Add folds one result into the statistics
func (s *Statistics) Add(r GameResult) {
	s.Games++
	if r.Won {
		s.Wins++
	}
	s.CardsClearedSum += r.CardsCleared
	s.TurnsSum += r.Turns
}

// WinRate returns the fraction of games won
func (s *Statistics) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

// StdError returns the standard error of the win rate estimate
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	p := s.WinRate()
	return math.Sqrt(p * (1 - p) / float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for the win rate
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	p := s.WinRate()
	margin := 1.96 * s.StdError()
	return p - margin, p + margin
}

// AvgCardsCleared returns the mean number of tableau cards cleared per game
func (s *Statistics) AvgCardsCleared() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.CardsClearedSum) / float64(s.Games)
}

// AvgTurns returns the mean number of turns per game
func (s *Statistics) AvgTurns() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.TurnsSum) / float64(s.Games)
}

// Run plays opts.Games games under the greedy policy and aggregates
// the outcomes. Results are deterministic for a given seed and game
// count, independent of the worker count.
func Run(ctx context.Context, opts Options) (*Statistics, error) {
	if opts.Games <= 0 {
		return nil, fmt.Errorf("games must be positive, got %d", opts.Games)
	}
	if err := opts.GameConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	stats := &Statistics{}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < opts.Games; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			result, err := playOne(opts.GameConfig, opts.Seed, i)
			if err != nil {
				return err
			}

			mu.Lock()
			stats.Add(result)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Info("simulation complete",
		"games", stats.Games,
		"winRate", stats.WinRate(),
		"avgCleared", stats.AvgCardsCleared())

	return stats, nil
}

// playOne deals game number i from its own RNG stream and plays it
// greedily: take the leftmost legal move, otherwise deal from stock.
func playOne(cfg golf.Config, seed int64, i int) (GameResult, error) {
	d := deck.NewDeck(randutil.Stream(seed, i))
	d.Shuffle()

	game, err := golf.NewGame(cfg, d, nil)
	if err != nil {
		return GameResult{}, err
	}

	tableauCards := cfg.Columns * cfg.CardsPerColumn
	result := GameResult{Game: i}

	// Every turn removes a card from either the tableau or the stock,
	// so a full deck bounds the game length.
	for turn := 0; turn < deck.Size*2; turn++ {
		if game.Status() != golf.StatusInProgress {
			break
		}
		result.Turns++

		moved := false
		snap := game.Snapshot()
		for col, column := range snap.Tableau {
			if len(column) == 0 {
				continue
			}
			if game.CanMove(column[len(column)-1]) {
				game.MoveCard(col)
				moved = true
				break
			}
		}
		if !moved {
			game.DealFromStock()
		}
	}

	snap := game.Snapshot()
	remaining := 0
	for _, column := range snap.Tableau {
		remaining += len(column)
	}
	result.CardsCleared = tableauCards - remaining
	result.Won = game.HasWon()
	return result, nil
}
