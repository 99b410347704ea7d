// Package tui renders a Golf Solitaire game in the terminal and turns
// key commands into engine calls. All game rules live in the engine;
// this layer only reads snapshots and validates moves with CanMove
// before invoking the unchecked MoveCard.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/golfcli/golf/internal/deck"
	"github.com/golfcli/golf/internal/golf"
)

const rulesText = `Objective: Move all the cards from each column to the waste pile.

A card can be moved from a column to the waste pile if the
rank of that card is one higher or lower than the topmost card
of the waste pile. Only the last card of each column can be moved.

You can deal cards from the stock to the waste pile.
The game is over if the stock is finished and
there are no more moves left.

The game is won once the tableau is empty.

Commands:
  (0-%d) - integer of the column, where the topmost card will be moved
  (d) - deal a card from the stock
  (r) - toggle the rules
  (q) - quit`

// Model is the Bubble Tea model for a game of Golf Solitaire
type Model struct {
	game   *golf.Game
	logger *log.Logger

	commandInput textinput.Model

	showRules bool
	message   string // Feedback from the previous command
	quitting  bool

	width  int
	height int
}

// NewModel creates a TUI model wrapping the given game
func NewModel(game *golf.Game, logger *log.Logger) *Model {
	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("0-%d to move, d to deal, r for rules, q to quit", game.Config().Columns-1)
	ti.Focus()
	ti.CharLimit = 8
	ti.Width = 50
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.Prompt = "> "

	return &Model{
		game:         game,
		logger:       logger.WithPrefix("tui"),
		commandInput: ti,
	}
}

// ShowRules opens the rules panel before the first render
func (m *Model) ShowRules() {
	m.showRules = true
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			command := strings.TrimSpace(m.commandInput.Value())
			m.commandInput.SetValue("")
			return m.handleCommand(command)
		}
	}

	var cmd tea.Cmd
	m.commandInput, cmd = m.commandInput.Update(msg)
	return m, cmd
}

// handleCommand executes a single player command against the engine
func (m *Model) handleCommand(command string) (tea.Model, tea.Cmd) {
	m.message = ""

	if m.game.Status() != golf.StatusInProgress {
		// Terminal states accept only quit.
		if command == "q" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	switch command {
	case "":
		return m, nil
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "r":
		m.showRules = !m.showRules
		return m, nil
	case "d":
		m.game.DealFromStock()
		m.logger.Debug("dealt from stock")
		return m, nil
	}

	col, err := strconv.Atoi(command)
	if err != nil || col < 0 || col >= m.game.Config().Columns {
		m.message = ErrorStyle.Render("Wrong input " + command)
		return m, nil
	}

	snap := m.game.Snapshot()
	column := snap.Tableau[col]
	if len(column) == 0 {
		m.message = ErrorStyle.Render(fmt.Sprintf("Column %d is empty", col))
		return m, nil
	}

	card := column[len(column)-1]
	if !m.game.CanMove(card) {
		m.message = ErrorStyle.Render(fmt.Sprintf("%s cannot move onto %s", card, snap.WasteTop))
		return m, nil
	}

	m.game.MoveCard(col)
	m.logger.Debug("player moved card", "column", col, "card", card)
	return m, nil
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(HeaderStyle.Render(" ♠ ♥ Golf Solitaire ♦ ♣ "))
	b.WriteString("\n\n")
	b.WriteString(m.renderBoard())
	b.WriteString("\n")

	if m.message != "" {
		b.WriteString(m.message)
		b.WriteString("\n")
	}

	switch m.game.Status() {
	case golf.StatusWon:
		b.WriteString(SuccessStyle.Render("You won."))
		b.WriteString("\n")
		b.WriteString(InfoStyle.Render("Press q to quit"))
		b.WriteString("\n")
	case golf.StatusLost:
		b.WriteString(ErrorStyle.Render("You lost."))
		b.WriteString("\n")
		b.WriteString(InfoStyle.Render("Press q to quit"))
		b.WriteString("\n")
	default:
		if m.showRules {
			b.WriteString(RulesStyle.Render(fmt.Sprintf(rulesText, m.game.Config().Columns-1)))
			b.WriteString("\n\n")
		}
		b.WriteString(m.commandInput.View())
		b.WriteString("\n")
	}

	return b.String()
}

// renderBoard draws the tableau grid with the stock and waste summary
func (m *Model) renderBoard() string {
	snap := m.game.Snapshot()

	var b strings.Builder

	// Column index header.
	indexes := make([]string, len(snap.Tableau))
	for i := range snap.Tableau {
		indexes[i] = fmt.Sprintf("%-4d", i)
	}
	b.WriteString(ColumnIndexStyle.Render(" " + strings.Join(indexes, " ")))
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render(strings.Repeat("-", 5*len(snap.Tableau))))
	b.WriteString("\n")

	// Tableau rows: row-major over the columns, blank where a column
	// has run out.
	rows := 0
	for _, column := range snap.Tableau {
		if len(column) > rows {
			rows = len(column)
		}
	}
	for row := 0; row < rows; row++ {
		cells := make([]string, len(snap.Tableau))
		for col, column := range snap.Tableau {
			if row < len(column) {
				cells[col] = renderCard(column[row])
			} else {
				cells[col] = "    "
			}
		}
		b.WriteString(" " + strings.Join(cells, " "))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	plural := "s"
	if snap.StockCount == 1 {
		plural = ""
	}
	b.WriteString(PileInfoStyle.Render(fmt.Sprintf("Stock pile: %d card%s", snap.StockCount, plural)))
	b.WriteString("\n")
	b.WriteString(PileInfoStyle.Render("Waste pile: ") + renderCard(snap.WasteTop))
	b.WriteString("\n")

	return b.String()
}

// renderCard renders a card padded to the fixed cell width. Padding is
// appended by hand because fmt counts bytes and the suit runes are
// multi-byte.
func renderCard(c deck.Card) string {
	s := c.String() + "  "
	if c.IsRed() {
		return RedCardStyle.Render(s)
	}
	return BlackCardStyle.Render(s)
}
