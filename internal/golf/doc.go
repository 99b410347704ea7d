// Package golf implements the Golf Solitaire game engine.
//
// The main type is Game, which owns the tableau, stock and waste piles
// and exposes the move rules. A Game is built from a shuffled deck and
// a Config naming the tableau shape:
//
//	rng := rand.New(rand.NewSource(42)) // Fixed seed for a repeatable deal
//	d := deck.NewDeck(rng)
//	d.Shuffle()
//	g, err := golf.NewGame(golf.DefaultConfig(), d, logger)
//
// Play alternates between moving exposed tableau cards onto the waste
// pile and dealing from the stock:
//
//	if g.CanMove(card) {
//	    g.MoveCard(col)
//	}
//	g.DealFromStock()
//	switch g.Status() {
//	case golf.StatusWon: ...
//	case golf.StatusLost: ...
//	}
//
// MoveCard deliberately performs no rule check: callers validate with
// CanMove first. This keeps the mutation permissive (moving from an
// empty column is a silent no-op) and concentrates all rule logic in
// one place.
//
// Presentation layers read state through Snapshot, a detached copy of
// the piles; the engine itself renders nothing.
package golf
