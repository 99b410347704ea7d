package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golfcli/golf/internal/deck"
	"github.com/golfcli/golf/internal/golf"
	"github.com/golfcli/golf/internal/randutil"
)

func newTestModel(t *testing.T, seed int64) *Model {
	t.Helper()

	d := deck.NewDeck(randutil.New(seed))
	d.Shuffle()
	game, err := golf.NewGame(golf.DefaultConfig(), d, nil)
	require.NoError(t, err)

	return NewModel(game, log.New(io.Discard))
}

// enter types a command and presses enter
func enter(m *Model, command string) *Model {
	if command != "" {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(command)})
		m = updated.(*Model)
	}
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(*Model)
}

func TestDealCommand(t *testing.T) {
	m := newTestModel(t, 1)
	before := m.game.Snapshot()

	m = enter(m, "d")

	after := m.game.Snapshot()
	assert.Equal(t, before.StockCount-1, after.StockCount)
	assert.Equal(t, before.WasteCount+1, after.WasteCount)
}

func TestInvalidInputIsReported(t *testing.T) {
	m := newTestModel(t, 1)

	m = enter(m, "x")
	assert.Contains(t, m.message, "Wrong input")

	m = enter(m, "9")
	assert.Contains(t, m.message, "Wrong input")
}

func TestMoveCommandValidatesBeforeMoving(t *testing.T) {
	m := newTestModel(t, 1)
	snap := m.game.Snapshot()

	// Find a column whose exposed card is not adjacent to the waste
	// top; the command must leave the game untouched.
	blocked := -1
	for col, column := range snap.Tableau {
		card := column[len(column)-1]
		if !m.game.CanMove(card) {
			blocked = col
			break
		}
	}
	if blocked == -1 {
		t.Skip("deal has no blocked column")
	}

	m = enter(m, string(rune('0'+blocked)))

	after := m.game.Snapshot()
	assert.Equal(t, snap.WasteCount, after.WasteCount)
	assert.NotEmpty(t, m.message)
}

func TestMoveCommandExecutesLegalMove(t *testing.T) {
	// Scan seeds for a deal with an immediately playable column so the
	// test does not depend on one lucky shuffle.
	for seed := int64(1); seed < 200; seed++ {
		m := newTestModel(t, seed)
		snap := m.game.Snapshot()

		for col, column := range snap.Tableau {
			card := column[len(column)-1]
			if !m.game.CanMove(card) {
				continue
			}

			m = enter(m, string(rune('0'+col)))

			after := m.game.Snapshot()
			assert.Equal(t, snap.WasteCount+1, after.WasteCount)
			assert.Equal(t, card, after.WasteTop)
			assert.Empty(t, m.message)
			return
		}
	}
	t.Fatal("no seed produced a playable opening deal")
}

func TestRulesToggle(t *testing.T) {
	m := newTestModel(t, 1)
	assert.NotContains(t, m.View(), "Objective")

	m = enter(m, "r")
	assert.Contains(t, m.View(), "Objective")

	m = enter(m, "r")
	assert.NotContains(t, m.View(), "Objective")
}

func TestQuitCommand(t *testing.T) {
	m := newTestModel(t, 1)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	m = updated.(*Model)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(*Model)

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.quitting)
}

func TestViewShowsPiles(t *testing.T) {
	m := newTestModel(t, 1)
	view := m.View()

	assert.Contains(t, view, "Golf Solitaire")
	assert.Contains(t, view, "Stock pile: 16 cards")
	assert.Contains(t, view, "Waste pile:")

	m = enter(m, "d")
	assert.Contains(t, m.View(), "Stock pile: 15 cards")
}
