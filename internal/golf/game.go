package golf

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/golfcli/golf/internal/deck"
)

// Status represents the state of a game
type Status int

const (
	StatusInProgress Status = iota
	StatusWon
	StatusLost
)

// String returns the string representation of a status
func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in progress"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Config describes the tableau shape
type Config struct {
	Columns        int // Number of tableau columns
	CardsPerColumn int // Cards dealt into each column
}

// DefaultConfig returns the standard 7x5 Golf layout
func DefaultConfig() Config {
	return Config{Columns: 7, CardsPerColumn: 5}
}

// Validate checks that the tableau shape fits a 52-card deck with at
// least one card left over for the initial waste
func (c Config) Validate() error {
	if c.Columns <= 0 {
		return fmt.Errorf("columns must be positive, got %d", c.Columns)
	}
	if c.CardsPerColumn <= 0 {
		return fmt.Errorf("cards per column must be positive, got %d", c.CardsPerColumn)
	}
	if c.Columns*c.CardsPerColumn > deck.Size-1 {
		return fmt.Errorf("tableau of %dx%d needs %d cards, deck holds %d plus 1 waste",
			c.Columns, c.CardsPerColumn, c.Columns*c.CardsPerColumn, deck.Size-1)
	}
	return nil
}

// Game holds the state of a single Golf Solitaire game. It is not safe
// for concurrent use; play is strictly turn-based.
type Game struct {
	cfg     Config
	tableau [][]deck.Card
	stock   []deck.Card
	waste   []deck.Card
	logger  *log.Logger
}

// NewGame deals a game from the given deck. The deck is fully consumed:
// cfg.Columns columns of cfg.CardsPerColumn cards each (the last card
// dealt into a column is its exposed card), one waste card, and the
// remainder into the stock. The caller shuffles the deck beforehand.
func NewGame(cfg Config, d *deck.Deck, logger *log.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		cfg:     cfg,
		tableau: make([][]deck.Card, 0, cfg.Columns),
		logger:  logger.WithPrefix("golf"),
	}

	for col := 0; col < cfg.Columns; col++ {
		column := make([]deck.Card, 0, cfg.CardsPerColumn)
		for i := 0; i < cfg.CardsPerColumn; i++ {
			card, ok := d.Deal()
			if !ok {
				return nil, fmt.Errorf("deck exhausted dealing card %d of column %d", i, col)
			}
			column = append(column, card)
		}
		g.tableau = append(g.tableau, column)
	}

	card, ok := d.Deal()
	if !ok {
		return nil, fmt.Errorf("deck exhausted dealing initial waste card")
	}
	g.waste = append(g.waste, card)

	for !d.IsEmpty() {
		card, _ := d.Deal()
		g.stock = append(g.stock, card)
	}

	g.logger.Debug("dealt game",
		"columns", cfg.Columns,
		"cardsPerColumn", cfg.CardsPerColumn,
		"stock", len(g.stock),
		"wasteTop", g.wasteTop())

	return g, nil
}

// wasteTop returns the topmost waste card. The waste is never empty
// after setup, so this is total.
func (g *Game) wasteTop() deck.Card {
	return g.waste[len(g.waste)-1]
}

// CanMove reports whether the given card can be moved to the waste
// pile. The card must be the exposed (last) card of some tableau
// column and its rank must differ from the waste top's rank by exactly
// one. There is no wraparound: an Ace is only adjacent to a Two, a
// King only to a Queen. Pure query, no side effects.
func (g *Game) CanMove(card deck.Card) bool {
	if card.Rank == deck.NoRank {
		return false
	}
	for _, column := range g.tableau {
		if len(column) == 0 {
			continue
		}
		if column[len(column)-1] == card {
			diff := int(card.Rank) - int(g.wasteTop().Rank)
			return diff == 1 || diff == -1
		}
	}
	return false
}

// MoveCard moves the exposed card of the given column to the waste
// pile. It does not validate the move: callers check CanMove first.
// Moving from an empty column is a no-op; an out-of-range column index
// panics, as that is a caller bug rather than a game state.
func (g *Game) MoveCard(col int) {
	column := g.tableau[col]
	if len(column) == 0 {
		return
	}
	card := column[len(column)-1]
	g.tableau[col] = column[:len(column)-1]
	g.waste = append(g.waste, card)
	g.logger.Debug("moved card", "column", col, "card", card)
}

// DealFromStock deals the top stock card to the waste pile. If the
// stock is empty it does nothing.
func (g *Game) DealFromStock() {
	if len(g.stock) == 0 {
		return
	}
	card := g.stock[len(g.stock)-1]
	g.stock = g.stock[:len(g.stock)-1]
	g.waste = append(g.waste, card)
	g.logger.Debug("dealt from stock", "card", card, "remaining", len(g.stock))
}

// HasWon reports whether every tableau column is empty
func (g *Game) HasWon() bool {
	for _, column := range g.tableau {
		if len(column) != 0 {
			return false
		}
	}
	return true
}

// LastCards returns the exposed card of each non-empty column, in
// column order
func (g *Game) LastCards() []deck.Card {
	cards := make([]deck.Card, 0, len(g.tableau))
	for _, column := range g.tableau {
		if len(column) != 0 {
			cards = append(cards, column[len(column)-1])
		}
	}
	return cards
}

// HasLost reports whether the game is lost: the stock is empty and no
// exposed card can move. Must be re-evaluated after every mutation
// since both the waste top and the exposed cards change.
func (g *Game) HasLost() bool {
	if len(g.stock) != 0 {
		return false
	}
	for _, card := range g.LastCards() {
		if g.CanMove(card) {
			return false
		}
	}
	return true
}

// Status derives the current game status. A cleared tableau wins even
// when the stock has run out, so the win check comes first.
func (g *Game) Status() Status {
	if g.HasWon() {
		return StatusWon
	}
	if g.HasLost() {
		return StatusLost
	}
	return StatusInProgress
}

// StockCount returns the number of cards left in the stock
func (g *Game) StockCount() int {
	return len(g.stock)
}

// Config returns the tableau shape the game was dealt with
func (g *Game) Config() Config {
	return g.cfg
}
