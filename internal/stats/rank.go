package stats

import (
	"math"
	"sort"
)

// Rank sorts players into presentation order, in place: real players by
// net score per game descending, an undefined ratio ranking worst, ties
// broken by name ascending; the synthetic everyone record always last.
func Rank(players []*Player) {
	sort.Slice(players, func(i, j int) bool {
		a, b := players[i], players[j]

		if a.IsEveryone() != b.IsEveryone() {
			return !a.IsEveryone()
		}

		as, bs := rankScore(a), rankScore(b)
		if as != bs {
			return as > bs
		}
		return a.Name < b.Name
	})
}

func rankScore(p *Player) float64 {
	if math.IsNaN(p.NetScorePerGame) {
		return math.Inf(-1)
	}
	return p.NetScorePerGame
}
