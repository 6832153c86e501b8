package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

const boardSide = 3

type focus int

const (
	focusBoard focus = iota
	focusFirst
	focusSecond
)

// Model is a single local game driven from the keyboard. All state lives in
// the model and is gone when the program exits.
type Model struct {
	logger *slog.Logger
	images tictactoe.PopupImages

	session *entity.Session
	cursor  int
	focus   focus
}

func New(logger *slog.Logger, images tictactoe.PopupImages) Model {
	return Model{
		logger:  logger.With("component", "tui"),
		images:  images,
		session: entity.NewSession("local"),
		cursor:  4,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.focus = (m.focus + 1) % 3
		return m, nil
	case "shift+tab":
		m.focus = (m.focus + 2) % 3
		return m, nil
	}

	if m.focus != focusBoard {
		m.updateLabel(key)
		return m, nil
	}

	return m.updateBoard(key)
}

func (m *Model) updateLabel(key tea.KeyMsg) {
	slot := entity.FirstSlot
	if m.focus == focusSecond {
		slot = entity.SecondSlot
	}

	var raw string
	switch key.Type {
	case tea.KeyBackspace, tea.KeyDelete:
		raw = ""
	case tea.KeyRunes:
		raw = string(key.Runes)
	case tea.KeyEsc, tea.KeyEnter:
		m.focus = focusBoard
		return
	default:
		return
	}

	if err := tictactoe.SetPlayerLabel(m.session, slot, raw); err != nil {
		m.logger.Error("failed to set label", "slot", slot, "error", err)
	}
}

func (m Model) updateBoard(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	log := m.logger.With("method", "updateBoard")

	switch key.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor >= boardSide {
			m.cursor -= boardSide
		}
	case "down", "j":
		if m.cursor < entity.BoardCells-boardSide {
			m.cursor += boardSide
		}
	case "left", "h":
		if m.cursor%boardSide > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor%boardSide < boardSide-1 {
			m.cursor++
		}
	case "enter", " ":
		if err := tictactoe.Play(m.session, m.cursor); err != nil {
			log.Error("failed to play", "cell", m.cursor, "error", err)
		}
		log.Debug("move", "cell", m.cursor, "current_move", m.session.CurrentMove)
	case "[":
		m.jump(m.session.CurrentMove - 1)
	case "]":
		m.jump(m.session.CurrentMove + 1)
	case "0":
		m.jump(0)
	case "esc", "c":
		tictactoe.ClosePopup(m.session)
	case "n":
		m.session = entity.NewSession(m.session.ID)
	}

	return m, nil
}

// jump ignores targets outside the history, so stepping past either end is a no-op.
func (m *Model) jump(move int) {
	if move < 0 || move >= len(m.session.History) {
		return
	}

	if err := tictactoe.JumpTo(m.session, move); err != nil {
		m.logger.Error("failed to jump", "move", move, "error", err)
	}
}

// Session exposes the game state, mostly for tests.
func (m Model) Session() *entity.Session {
	return m.session
}
