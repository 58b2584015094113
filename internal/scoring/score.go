package scoring

import (
	"fmt"
)

// Deterministic payout engine for Hong Kong rules. Given an
// already-validated game outcome and the scoring configuration in force,
// it produces the four seats' signed point changes, which always sum to
// exactly zero.

// NoSeat marks an absent winner or blame seat.
const NoSeat = -1

// Responsibility controls how a discard-win's liability is split between
// the discarding player and the table.
type Responsibility byte

const (
	ResponsibilityHalf Responsibility = iota + 1 // 半銃
	ResponsibilityFull                           // 全銃
)

var responsibilityDesc = [...]string{
	ResponsibilityHalf: "half",
	ResponsibilityFull: "full",
}

func (r Responsibility) String() string { return responsibilityDesc[r] }

// Spiciness selects the multiplier growth curve.
type Spiciness byte

const (
	SpicinessHalf  Spiciness = iota + 1 // 半辣上
	SpicinessSpicy                      // 辣辣上
)

var spicinessDesc = [...]string{
	SpicinessHalf:  "half",
	SpicinessSpicy: "spicy",
}

func (s Spiciness) String() string { return spicinessDesc[s] }

// ParseResponsibility decodes a configuration value.
func ParseResponsibility(s string) (Responsibility, error) {
	switch s {
	case "half":
		return ResponsibilityHalf, nil
	case "full":
		return ResponsibilityFull, nil
	}
	return 0, fmt.Errorf("responsibility must be `half` or `full`, got `%s`", s)
}

// ParseSpiciness decodes a configuration value.
func ParseSpiciness(s string) (Spiciness, error) {
	switch s {
	case "half":
		return SpicinessHalf, nil
	case "spicy":
		return SpicinessSpicy, nil
	}
	return 0, fmt.Errorf("spiciness must be `half` or `spicy`, got `%s`", s)
}

// BlameKind classifies the one seat (if any) held liable in a game.
type BlameKind byte

const (
	BlameNone              BlameKind = iota
	BlameDiscard                     // 打出
	BlameDiscardGuarantee            // 包打出
	BlameSelfDrawGuarantee           // 包自摸
	BlameFalseWin                    // 詐糊
)

var blameDesc = [...]string{
	BlameNone:              "-",
	BlameDiscard:           "d",
	BlameDiscardGuarantee:  "D",
	BlameSelfDrawGuarantee: "S",
	BlameFalseWin:          "f",
}

func (b BlameKind) String() string { return blameDesc[b] }

// Outcome is a validated game classification plus the configuration that
// governed it. WinnerSeat and BlameSeat are NoSeat when absent; at most
// one of each is ever present.
type Outcome struct {
	Base           float64
	MaximumFaan    int
	Responsibility Responsibility
	Spiciness      Spiciness

	WinnerSeat int
	WinnerFaan int
	BlameSeat  int
	BlameKind  BlameKind
}

// Multiplier returns the growth factor for a hand of the given faan.
//
// Half-spicy rise doubles per faan up to 4 faan, then rises by a factor
// of 2 per two faan (odd faan landing on the 3/2 midpoint), producing
// 1,2,4,8,16,24,32,48,64,96,128,192,256,384 for faan 0..13. Spicy-spicy
// rise doubles unconditionally.
func Multiplier(spiciness Spiciness, faan int) int64 {
	if spiciness == SpicinessSpicy {
		return 1 << uint(faan)
	}

	if faan <= 4 {
		return 1 << uint(faan)
	}
	idx := 4 + (faan-4)/2
	if faan%2 == 0 {
		return 1 << uint(idx)
	}
	return 3 << uint(idx-1)
}

// Portion is the atomic payout unit: base stake times multiplier.
func Portion(base float64, spiciness Spiciness, faan int) float64 {
	return base * float64(Multiplier(spiciness, faan))
}

// NetScores maps an outcome to the four seats' signed point changes.
// The engine is total over validated outcomes; contradictory inputs are
// rejected upstream by the parser.
func NetScores(o Outcome) [4]float64 {
	var scores [4]float64

	if o.WinnerSeat == NoSeat {
		if o.BlameSeat == NoSeat { // draw (摸和)
			return scores
		}

		// False-win: the blamed seat pays every other seat the maximum
		// self-drawn win, three portions each, at maximum faan.
		portion := Portion(o.Base, o.Spiciness, o.MaximumFaan)
		for i := range scores {
			if i == o.BlameSeat {
				scores[i] = -9 * portion
			} else {
				scores[i] = +3 * portion
			}
		}
		return scores
	}

	portion := Portion(o.Base, o.Spiciness, o.WinnerFaan)

	if o.BlameSeat == NoSeat { // self-drawn win (自摸)
		for i := range scores {
			if i == o.WinnerSeat {
				scores[i] = +3 * portion
			} else {
				scores[i] = -portion
			}
		}
		return scores
	}

	switch o.BlameKind {
	case BlameDiscard:
		if o.Responsibility == ResponsibilityHalf { // 半銃
			for i := range scores {
				switch i {
				case o.WinnerSeat:
					scores[i] = +2 * portion
				case o.BlameSeat:
					scores[i] = -portion
				default:
					scores[i] = -portion / 2
				}
			}
			return scores
		}
		// Full responsibility (全銃): the discarder pays both shares.
		scores[o.WinnerSeat] = +2 * portion
		scores[o.BlameSeat] = -2 * portion
		return scores

	case BlameDiscardGuarantee:
		// Same payout as full responsibility, overriding the configured mode.
		scores[o.WinnerSeat] = +2 * portion
		scores[o.BlameSeat] = -2 * portion
		return scores

	case BlameSelfDrawGuarantee:
		scores[o.WinnerSeat] = +3 * portion
		scores[o.BlameSeat] = -3 * portion
		return scores
	}

	return scores
}
