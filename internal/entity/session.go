package entity

import (
	"strings"
	"unicode/utf8"
)

// Slot identifies a player seat. First always moves on even positions.
type Slot int

const (
	NoSlot Slot = iota
	FirstSlot
	SecondSlot
)

func (that Slot) IsValid() bool {
	return that == FirstSlot || that == SecondSlot
}

// Labels holds the raw player labels as typed, already normalized.
type Labels struct {
	First  string `json:"first"`
	Second string `json:"second"`
}

// Marks are the labels with defaults applied, used for placing and display.
type Marks struct {
	First  string
	Second string
}

// Marks applies the "X" / "O" defaults to empty labels.
func (that Labels) Marks() Marks {
	marks := Marks{First: that.First, Second: that.Second}
	if marks.First == "" {
		marks.First = DefaultFirstMark
	}
	if marks.Second == "" {
		marks.Second = DefaultSecondMark
	}

	return marks
}

// Of returns the mark of the given slot.
func (that Marks) Of(slot Slot) string {
	if slot == SecondSlot {
		return that.Second
	}

	return that.First
}

// NormalizeLabel keeps only the first character of raw and uppercases it.
func NormalizeLabel(raw string) string {
	if raw == "" {
		return ""
	}

	r, _ := utf8.DecodeRuneInString(raw)
	if r == utf8.RuneError {
		return ""
	}

	return strings.ToUpper(string(r))
}

// Endgame is the popup state recorded when a move ends the game.
type Endgame struct {
	Winner       string `json:"winner,omitempty"`
	IsDraw       bool   `json:"is_draw,omitempty"`
	PopupVisible bool   `json:"popup_visible,omitempty"`
	Slot         Slot   `json:"slot,omitempty"`
}

// Session is the whole game state owned by one player surface.
type Session struct {
	ID          string  `json:"id"`
	History     []Board `json:"history"`
	CurrentMove int     `json:"current_move"`
	Labels      Labels  `json:"labels"`
	Endgame     Endgame `json:"endgame"`
}

func NewSession(id string) *Session {
	return &Session{
		ID:      id,
		History: []Board{{}},
	}
}

// Current returns the snapshot at CurrentMove.
func (that *Session) Current() Board {
	return that.History[that.CurrentMove]
}

// XIsNext reports whether player 1 moves next: even CurrentMove means player 1.
func (that *Session) XIsNext() bool {
	return that.CurrentMove%2 == 0
}

func (that *Session) NextSlot() Slot {
	if that.XIsNext() {
		return FirstSlot
	}

	return SecondSlot
}

func (that *Session) Marks() Marks {
	return that.Labels.Marks()
}
