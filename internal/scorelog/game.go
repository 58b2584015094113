package scorelog

import (
	"github.com/yawnoc/mahjong-scorer/internal/scoring"
)

// Game is one accepted game-result line together with a snapshot of the
// configuration in force when it was declared. It is never mutated after
// construction.
type Game struct {
	Date string

	Base           float64
	MaximumFaan    int
	Responsibility scoring.Responsibility
	Spiciness      scoring.Spiciness

	Names      [4]string
	WinnerSeat int // scoring.NoSeat when drawn or false-win
	WinnerFaan int
	BlameSeat  int // scoring.NoSeat when nobody is blamed
	BlameKind  scoring.BlameKind
}

// Outcome lowers the game to the score engine's input.
func (g *Game) Outcome() scoring.Outcome {
	return scoring.Outcome{
		Base:           g.Base,
		MaximumFaan:    g.MaximumFaan,
		Responsibility: g.Responsibility,
		Spiciness:      g.Spiciness,
		WinnerSeat:     g.WinnerSeat,
		WinnerFaan:     g.WinnerFaan,
		BlameSeat:      g.BlameSeat,
		BlameKind:      g.BlameKind,
	}
}

// NetScores returns the four seats' signed point changes for this game.
func (g *Game) NetScores() [4]float64 {
	return scoring.NetScores(g.Outcome())
}
