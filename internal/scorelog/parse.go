package scorelog

import (
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/yawnoc/mahjong-scorer/internal/scoring"
	"github.com/yawnoc/mahjong-scorer/pkg/errutil"
	"github.com/yawnoc/mahjong-scorer/pkg/set"
)

var logger = log.WithField("component", "scorelog")

// Options are the initial scoring configuration and the optional date
// window. Declaration lines in the scores text override the configuration
// fields from their line onward (last writer wins).
type Options struct {
	Base           float64
	MaximumFaan    int
	Responsibility scoring.Responsibility
	Spiciness      scoring.Spiciness

	StartDate string // yyyy-mm-dd, inclusive; empty means unbounded
	EndDate   string // yyyy-mm-dd, exclusive; empty means unbounded
}

// DefaultOptions returns the conventional table defaults.
func DefaultOptions() Options {
	return Options{
		Base:           1,
		MaximumFaan:    13,
		Responsibility: scoring.ResponsibilityFull,
		Spiciness:      scoring.SpicinessHalf,
	}
}

// ScoreSet is the product of one parse pass: the accepted games in file
// order, and every declared player name in first-seen order.
type ScoreSet struct {
	Games []Game
	Names []string
}

// parseContext is the mutable scoring configuration tracked across lines.
// Declaration lines overwrite exactly one field each; game lines read it.
type parseContext struct {
	date           string
	base           float64
	maximumFaan    int
	responsibility scoring.Responsibility
	spiciness      scoring.Spiciness
	roster         *[4]string
}

func (c *parseContext) inWindow(opts Options) bool {
	if opts.StartDate != "" && (c.date == "" || c.date < opts.StartDate) {
		return false
	}
	if opts.EndDate != "" && (c.date == "" || c.date >= opts.EndDate) {
		return false
	}
	return true
}

// Parse runs the single forward pass over the scores text. The first rule
// violation aborts with a *errutil.LineError; there is no partial result.
//
// When a date window is set, declaration lines are always processed and
// game lines are still validated, but only games whose current date falls
// inside the window are accepted into the ScoreSet.
func Parse(text string, opts Options) (*ScoreSet, error) {
	ctx := parseContext{
		base:           opts.Base,
		maximumFaan:    opts.MaximumFaan,
		responsibility: opts.Responsibility,
		spiciness:      opts.Spiciness,
	}
	players := set.New()
	var games []Game
	skipped := 0

	for number, raw := range strings.Split(text, "\n") {
		number++ // 1-based
		line := ClassifyLine(raw)

		switch line.Kind {
		case LineDate:
			if ctx.date != "" && line.Date < ctx.date {
				return nil, errutil.NewLineError(number, errutil.KindBadChronology,
					"bad chronological order %s < %s", line.Date, ctx.date)
			}
			ctx.date = line.Date

		case LineBase:
			base, err := strconv.ParseFloat(line.Base, 64)
			if err != nil {
				return nil, errutil.NewLineError(number, errutil.KindBadNumber,
					"unable to convert %s to float", line.Base)
			}
			ctx.base = base

		case LineMaximumFaan:
			maximumFaan, err := strconv.Atoi(line.MaximumFaan)
			if err != nil {
				return nil, errutil.NewLineError(number, errutil.KindBadNumber,
					"unable to convert %s to integer", line.MaximumFaan)
			}
			ctx.maximumFaan = maximumFaan

		case LineResponsibility:
			ctx.responsibility = line.Responsibility

		case LineSpiciness:
			ctx.spiciness = line.Spiciness

		case LineRoster:
			if dup := duplicates(line.Names); len(dup) > 0 {
				return nil, errutil.NewLineError(number, errutil.KindDuplicateNames,
					"duplicate player names %v", dup)
			}
			names := line.Names
			ctx.roster = &names
			for _, name := range names {
				if players.Add(name) {
					logger.Debugf("new player: %s", name)
				}
			}

		case LineGame:
			game, err := ctx.acceptGame(number, line.Seats)
			if err != nil {
				return nil, err
			}
			if !ctx.inWindow(opts) {
				skipped++
				continue
			}
			games = append(games, *game)

		case LineComment:
			// nothing to do

		case LineInvalid:
			return nil, errutil.NewLineError(number, errutil.KindInvalidLine,
				"invalid line\n\n%s", Explainer)
		}
	}

	logger.Debugf("parsed %d games (%d outside date window), %d players",
		len(games), skipped, players.Len())

	return &ScoreSet{Games: games, Names: players.Values()}, nil
}

// acceptGame validates one game-result line against the current context
// and builds the immutable Game snapshot.
func (c *parseContext) acceptGame(number int, seats [4]Seat) (*Game, error) {
	if c.roster == nil {
		return nil, errutil.NewLineError(number, errutil.KindNoRoster,
			"game declared without first declaring player names")
	}

	winnerSeat, winnerFaan := scoring.NoSeat, 0
	for i, seat := range seats {
		if !seat.Win {
			continue
		}
		if winnerSeat != scoring.NoSeat {
			return nil, errutil.NewLineError(number, errutil.KindMultipleWinners,
				"game declared with multiple winners (digit entries)")
		}
		faan, err := strconv.Atoi(seat.Faan)
		if err != nil {
			return nil, errutil.NewLineError(number, errutil.KindBadNumber,
				"unable to convert %s to integer", seat.Faan)
		}
		winnerSeat, winnerFaan = i, faan
	}
	if winnerSeat != scoring.NoSeat && winnerFaan > c.maximumFaan {
		return nil, errutil.NewLineError(number, errutil.KindMaximumFaanExceeded,
			"game declared with winner's faan exceeding maximum faan (%d)", c.maximumFaan)
	}

	blameSeat, blameKind := scoring.NoSeat, scoring.BlameNone
	for i, seat := range seats {
		if seat.Win || seat.Blame == scoring.BlameNone {
			continue
		}
		if blameSeat != scoring.NoSeat {
			return nil, errutil.NewLineError(number, errutil.KindMultipleBlame,
				"game declared with multiple players blamed (`d`, `D`, `S`, or `f`)")
		}
		blameSeat, blameKind = i, seat.Blame
	}

	if winnerSeat == scoring.NoSeat {
		if blameKind != scoring.BlameNone && blameKind != scoring.BlameFalseWin {
			return nil, errutil.NewLineError(number, errutil.KindBlameWithoutWinner,
				"game declared with no winner yet non-false-win blame (`d`, `D`, or `S`)")
		}
	} else if blameKind == scoring.BlameFalseWin {
		return nil, errutil.NewLineError(number, errutil.KindWinnerWithFalseBlame,
			"game declared with winner yet false-win blame (`f`)")
	}

	if c.responsibility == scoring.ResponsibilityFull && blameKind == scoring.BlameDiscardGuarantee {
		return nil, errutil.NewLineError(number, errutil.KindRedundantDiscardGuarantee,
			"discard-guarantee `D` is redundant under full responsibility (全銃)")
	}

	return &Game{
		Date:           c.date,
		Base:           c.base,
		MaximumFaan:    c.maximumFaan,
		Responsibility: c.responsibility,
		Spiciness:      c.spiciness,
		Names:          *c.roster,
		WinnerSeat:     winnerSeat,
		WinnerFaan:     winnerFaan,
		BlameSeat:      blameSeat,
		BlameKind:      blameKind,
	}, nil
}

func duplicates(names [4]string) []string {
	seen := set.New()
	var dup []string
	for _, name := range names {
		if !seen.Add(name) {
			dup = append(dup, name)
		}
	}
	return dup
}
