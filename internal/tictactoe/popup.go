package tictactoe

import "github.com/rocketscienceinc/tictactoe-history/internal/entity"

// PopupImages are the external image locators shown per outcome.
// They are passed through to the display surface untouched.
type PopupImages struct {
	Draw      string
	FirstWin  string
	SecondWin string
}

// PopupView is the endgame overlay.
type PopupView struct {
	Title    string
	ImageURL string
	ImageAlt string
	IsDraw   bool
}

// NewPopupView builds the overlay for endgame. The second value is false
// when the popup is hidden.
func NewPopupView(endgame entity.Endgame, images PopupImages) (PopupView, bool) {
	if !endgame.PopupVisible {
		return PopupView{}, false
	}

	if endgame.IsDraw {
		return PopupView{
			Title:    "Draw!",
			ImageURL: images.Draw,
			ImageAlt: "Draw",
			IsDraw:   true,
		}, true
	}

	imageURL := images.FirstWin
	if endgame.Slot == entity.SecondSlot {
		imageURL = images.SecondWin
	}

	return PopupView{
		Title:    "Winner: " + endgame.Winner,
		ImageURL: imageURL,
		ImageAlt: "Winner: " + endgame.Winner,
	}, true
}
