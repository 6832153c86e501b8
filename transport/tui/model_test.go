package tui

import (
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

var testImages = tictactoe.PopupImages{
	Draw:      "draw.gif",
	FirstWin:  "first.gif",
	SecondWin: "second.gif",
}

func newTestModel() Model {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)), testImages)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()

	for _, key := range keys {
		next, _ := m.Update(key)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}

	return m
}

// playAt moves the cursor from the centre to cell and presses enter.
func playAt(cell int) []tea.KeyMsg {
	keys := []tea.KeyMsg{runes("k"), runes("k"), runes("h"), runes("h")}
	for i := 0; i < cell/boardSide; i++ {
		keys = append(keys, tea.KeyMsg{Type: tea.KeyDown})
	}
	for i := 0; i < cell%boardSide; i++ {
		keys = append(keys, tea.KeyMsg{Type: tea.KeyRight})
	}

	return append(keys, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestModel_Play(t *testing.T) {
	t.Run("Enter plays the cell under the cursor", func(t *testing.T) {
		m := newTestModel()

		m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

		assert.Equal(t, "X", m.Session().Current()[4])
		assert.Equal(t, 1, m.Session().CurrentMove)
		assert.Contains(t, m.View(), "Next move: O")
	})

	t.Run("Cursor stays on the board", func(t *testing.T) {
		m := newTestModel()

		m = press(t, m, runes("k"), runes("k"), runes("k"), runes("h"), runes("h"), runes("h"))
		assert.Equal(t, 0, m.cursor)

		m = press(t, m, runes("j"), runes("j"), runes("j"), runes("l"), runes("l"), runes("l"))
		assert.Equal(t, 8, m.cursor)
	})

	t.Run("Win shows the popup and esc closes it", func(t *testing.T) {
		m := newTestModel()
		for _, cell := range []int{0, 1, 4, 3, 8} {
			m = press(t, m, playAt(cell)...)
		}

		require.True(t, m.Session().Endgame.PopupVisible)
		view := m.View()
		assert.Contains(t, view, "Winner: X")
		assert.Contains(t, view, "first.gif")

		m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

		assert.False(t, m.Session().Endgame.PopupVisible)
		assert.NotContains(t, m.View(), "first.gif")
	})

	t.Run("Space plays too", func(t *testing.T) {
		m := newTestModel()

		m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})

		assert.Equal(t, "X", m.Session().Current()[4])
	})
}

func TestModel_History(t *testing.T) {
	m := newTestModel()
	for _, cell := range []int{0, 1, 2} {
		m = press(t, m, playAt(cell)...)
	}
	require.Equal(t, 3, m.Session().CurrentMove)

	// When: stepping back twice
	m = press(t, m, runes("["), runes("["))

	// Then: the earlier position is shown and the history is kept
	assert.Equal(t, 1, m.Session().CurrentMove)
	assert.Len(t, m.Session().History, 4)
	assert.Contains(t, m.View(), "> 2. Go to move #1")

	// When: stepping forward past the end
	m = press(t, m, runes("]"), runes("]"), runes("]"))
	assert.Equal(t, 3, m.Session().CurrentMove)

	// When: jumping to the start and stepping back
	m = press(t, m, runes("0"), runes("["))
	assert.Equal(t, 0, m.Session().CurrentMove)

	// When: playing from the start
	m = press(t, m, playAt(8)...)

	// Then: the future is dropped
	assert.Len(t, m.Session().History, 2)
	assert.Equal(t, "X", m.Session().Current()[8])
}

func TestModel_Labels(t *testing.T) {
	m := newTestModel()

	// When: typing labels for both players
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, runes("a"))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, runes("bob"))

	assert.Equal(t, entity.Labels{First: "A", Second: "B"}, m.Session().Labels)

	// Then: keys typed into a label do not reach the board
	m = press(t, m, runes("q"))
	assert.Equal(t, "Q", m.Session().Labels.Second)

	// When: clearing player 2 and returning to the board
	m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusBoard, m.focus)
	assert.Empty(t, m.Session().Labels.Second)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "A", m.Session().Current()[4])
	assert.Contains(t, m.View(), "Next move: O")
}

func TestModel_NewGame(t *testing.T) {
	m := newTestModel()
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, runes("a"), tea.KeyMsg{Type: tea.KeyEsc})
	m = press(t, m, playAt(0)...)
	require.Equal(t, 1, m.Session().CurrentMove)

	m = press(t, m, runes("n"))

	assert.Equal(t, entity.NewSession("local"), m.Session())
	assert.Contains(t, m.View(), "Next move: X")
}

func TestModel_Quit(t *testing.T) {
	for _, key := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		m := newTestModel()

		_, cmd := m.Update(key)

		require.NotNil(t, cmd)
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok)
	}
}
