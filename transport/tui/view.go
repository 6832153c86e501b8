package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-history/internal/entity"
	"github.com/rocketscienceinc/tictactoe-history/internal/tictactoe"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F1FA8C")).Bold(true)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#50FA7B")).Bold(true)
	firstStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BE9FD"))
	secondStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF79C6"))
	cellStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#BD93F9"))
	cursorStyle  = lipgloss.NewStyle().Background(lipgloss.Color("#44475A")).Foreground(lipgloss.Color("#F8F8F2")).Bold(true)
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4"))
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F8F8F2")).Bold(true).Underline(true)
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#6272A4")).Padding(0, 1)
	popupStyle   = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("#50FA7B")).Padding(1, 2)
)

func (m Model) View() string {
	view := tictactoe.NewGameView(m.session, m.images)

	left := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Tic-tac-toe"),
		"",
		m.renderPlayers(view.Labels),
		"",
		statusStyle.Render(view.Board.Status),
		m.renderBoard(view),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(left),
		" ",
		panelStyle.Render(renderHistory(view.History)),
	)

	parts := []string{body}
	if view.Popup != nil {
		parts = append(parts, renderPopup(*view.Popup))
	}
	parts = append(parts, subtleStyle.Render(helpLine))

	return lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}

const helpLine = "arrows/hjkl move • enter play • [ ] history • 0 start • tab players • esc close • n new game • q quit"

func (m Model) renderPlayers(labels entity.Labels) string {
	input := func(name, label string, focused bool) string {
		value := label
		if value == "" {
			value = subtleStyle.Render(name)
		}

		text := fmt.Sprintf("%s: [%s]", name, value)
		if focused {
			return focusedStyle.Render(text)
		}

		return text
	}

	return input("Player 1", labels.First, m.focus == focusFirst) + "  " +
		input("Player 2", labels.Second, m.focus == focusSecond)
}

func (m Model) renderBoard(view tictactoe.GameView) string {
	owners, err := tictactoe.Owners(m.session, m.session.CurrentMove)
	if err != nil {
		m.logger.Error("failed to get owners", "error", err)
	}

	var rows []string
	for _, row := range view.Board.Rows() {
		var cells []string
		for _, cell := range row {
			content := cell.Value
			if content == entity.EmptyCell {
				content = " "
			}
			text := "[" + content + "]"

			switch {
			case m.focus == focusBoard && cell.Index == m.cursor:
				cells = append(cells, cursorStyle.Render(text))
			case owners[cell.Index] == entity.FirstSlot:
				cells = append(cells, firstStyle.Render(text))
			case owners[cell.Index] == entity.SecondSlot:
				cells = append(cells, secondStyle.Render(text))
			default:
				cells = append(cells, cellStyle.Render(text))
			}
		}
		rows = append(rows, strings.Join(cells, ""))
	}

	return strings.Join(rows, "\n")
}

func renderHistory(history []tictactoe.HistoryEntry) string {
	lines := make([]string, 0, len(history))
	for _, entry := range history {
		line := fmt.Sprintf("%d. %s", entry.Move+1, entry.Label)
		if entry.Current {
			line = statusStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

func renderPopup(popup tictactoe.PopupView) string {
	return popupStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(popup.Title),
		subtleStyle.Render(popup.ImageURL),
		"",
		"press esc to close",
	))
}
