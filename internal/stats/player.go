package stats

import (
	log "github.com/sirupsen/logrus"

	"github.com/yawnoc/mahjong-scorer/internal/scorelog"
	"github.com/yawnoc/mahjong-scorer/pkg/numutil"
)

var logger = log.WithField("component", "stats")

// EveryoneName labels the synthetic record summing all real players.
// The roster grammar forbids asterisks in names, so it cannot collide.
const EveryoneName = "*"

// Player is the running aggregate for one declared name. The counter
// fields only ever grow; the fraction fields are derived once after all
// games are folded, and are NaN for a player with no games.
type Player struct {
	Name string

	GameCount  int
	WinCount   int
	BlameCount int
	NetScore   float64

	WinFraction     float64
	BlameFraction   float64
	NetScorePerGame float64
}

// IsEveryone reports whether this is the synthetic aggregate record.
func (p *Player) IsEveryone() bool {
	return p.Name == EveryoneName
}

func (p *Player) deriveAverages() {
	games := float64(p.GameCount)
	p.WinFraction = numutil.RobustDivide(float64(p.WinCount), games)
	p.BlameFraction = numutil.RobustDivide(float64(p.BlameCount), games)
	p.NetScorePerGame = numutil.RobustDivide(p.NetScore, games)
}

// Aggregate folds every accepted game into per-player totals, appends the
// synthetic everyone record, and derives the ratio fields. Players come
// back in first-seen declaration order with everyone last; use Rank for
// the presentation order.
func Aggregate(set *scorelog.ScoreSet) []*Player {
	players := make([]*Player, 0, len(set.Names)+1)
	byName := make(map[string]*Player, len(set.Names))
	for _, name := range set.Names {
		p := &Player{Name: name}
		players = append(players, p)
		byName[name] = p
	}

	for i := range set.Games {
		game := &set.Games[i]
		scores := game.NetScores()
		for seat, name := range game.Names {
			p := byName[name]
			p.GameCount++
			if seat == game.WinnerSeat {
				p.WinCount++
			}
			if seat == game.BlameSeat {
				p.BlameCount++
			}
			p.NetScore += scores[seat]
		}
	}

	everyone := &Player{Name: EveryoneName}
	for _, p := range players {
		everyone.GameCount += p.GameCount
		everyone.WinCount += p.WinCount
		everyone.BlameCount += p.BlameCount
		everyone.NetScore += p.NetScore
	}
	players = append(players, everyone)

	for _, p := range players {
		p.deriveAverages()
	}

	logger.Debugf("aggregated %d games over %d players",
		len(set.Games), len(set.Names))

	return players
}
