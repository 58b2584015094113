package tabular

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/yawnoc/mahjong-scorer/internal/stats"
	"github.com/yawnoc/mahjong-scorer/pkg/numutil"
)

// Rendering of the final standings as tab-separated values. Numeric
// fields are decimal-rounded to at most four places.

const maxDecimalPlaces = 4

type Options struct {
	// EmptyNaN renders undefined ratios as the empty string rather
	// than "nan".
	EmptyNaN bool
}

var header = []string{
	"name",
	"game_count",
	"win_count",
	"win_fraction",
	"blame_count",
	"blame_fraction",
	"net_score",
	"net_score_per_game",
}

// Write renders one row per player, in the order given; rank first with
// stats.Rank for presentation order.
func Write(w io.Writer, players []*stats.Player, opts Options) error {
	writer := csv.NewWriter(w)
	writer.Comma = '\t'

	if err := writer.Write(header); err != nil {
		return err
	}
	for _, p := range players {
		record := []string{
			p.Name,
			strconv.Itoa(p.GameCount),
			strconv.Itoa(p.WinCount),
			numutil.Blunt(p.WinFraction, maxDecimalPlaces, opts.EmptyNaN),
			strconv.Itoa(p.BlameCount),
			numutil.Blunt(p.BlameFraction, maxDecimalPlaces, opts.EmptyNaN),
			numutil.Blunt(p.NetScore, maxDecimalPlaces, opts.EmptyNaN),
			numutil.Blunt(p.NetScorePerGame, maxDecimalPlaces, opts.EmptyNaN),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
