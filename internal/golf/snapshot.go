package golf

import "github.com/golfcli/golf/internal/deck"

// Snapshot is a read-only projection of the game state for display.
// All slices are copies; mutating a snapshot never touches the game.
type Snapshot struct {
	Tableau    [][]deck.Card // Column order preserved; empty columns are empty slices
	StockCount int
	WasteTop   deck.Card
	WasteCount int
}

// Snapshot returns a detached copy of the current state
func (g *Game) Snapshot() Snapshot {
	tableau := make([][]deck.Card, len(g.tableau))
	for i, column := range g.tableau {
		tableau[i] = make([]deck.Card, len(column))
		copy(tableau[i], column)
	}

	return Snapshot{
		Tableau:    tableau,
		StockCount: len(g.stock),
		WasteTop:   g.wasteTop(),
		WasteCount: len(g.waste),
	}
}

// CardCount returns the total number of cards visible in the snapshot
func (s Snapshot) CardCount() int {
	total := s.StockCount + s.WasteCount
	for _, column := range s.Tableau {
		total += len(column)
	}
	return total
}
