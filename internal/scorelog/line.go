package scorelog

import (
	"regexp"

	"github.com/yawnoc/mahjong-scorer/internal/scoring"
)

// LineKind is the closed set of grammar forms a physical line can take.
// Classification is exhaustive: every line maps to exactly one kind, with
// LineInvalid as the catch-all, so downstream switches are total.
type LineKind byte

const (
	LineInvalid LineKind = iota
	LineDate
	LineBase
	LineMaximumFaan
	LineResponsibility
	LineSpiciness
	LineRoster
	LineGame
	LineComment
)

// Explainer is the grammar reference attached to invalid-line errors.
const Explainer = "A line must have one of the following forms:\n" +
	"    <yyyy>-<mm>-<dd>     # a date\n" +
	"    B=<base>             # a declaration of base points (default 1),\n" +
	"                         #   0.5 = two & five chicken (二五雞)\n" +
	"                         #   1   = five & one (五一)\n" +
	"                         #   2   = one & two bucks (一二蚊)\n" +
	"    M=<faan>             # a declaration of maximum faan (default 13)\n" +
	"    R=half | full        # a declaration of responsibility (default full)\n" +
	"                         #   half  = half responsibility (半銃)\n" +
	"                         #   full  = full responsibility (全銃)\n" +
	"    S=half | spicy       # a declaration of spiciness (default half)\n" +
	"                         #   half  = half-spicy rise (半辣上)\n" +
	"                         #   spicy = spicy-spicy rise (辣辣上)\n" +
	"    <P1> <P2> <P3> <P4>  # a declaration of player names (no hashes,\n" +
	"                         # asterisks, leading hyphens, or leading digits)\n" +
	"    <R1> <R2> <R3> <R4>  # a declaration of game results\n" +
	"                         #   <digits> = winner's faan\n" +
	"                         #   -        = blameless player\n" +
	"                         #   d        = discarding (打出) player\n" +
	"                         #   D        = discard-guaranteeing (包打出) player\n" +
	"                         #   S        = self-draw-guaranteeing (包自摸) player\n" +
	"                         #   f        = false-winning (詐糊) player\n" +
	"    # <comment>          # a comment, also allowed at the end of the forms\n" +
	"                         # above\n" +
	"All other lines are invalid.\n"

// Seat is one of the four tokens on a game-result line: either a faan
// claim (a winner) or a blame symbol.
type Seat struct {
	Win   bool
	Faan  string // raw digits, valid when Win
	Blame scoring.BlameKind
}

// Line is the classification of one physical line. Only the fields for
// its Kind are populated; declaration values are carried raw and decoded
// by the parse pass.
type Line struct {
	Kind LineKind

	Date           string
	Base           string // raw, may still fail float conversion
	MaximumFaan    string // raw digits
	Responsibility scoring.Responsibility
	Spiciness      scoring.Spiciness
	Names          [4]string
	Seats          [4]Seat
}

const namePattern = `[^\s#*0-9-][^\s#*]*`

var (
	dateLineRegexp = regexp.MustCompile(
		`^\s*([0-9]{4}-[0-9]{2}-[0-9]{2})\s*(?:#.*)?$`)
	baseLineRegexp = regexp.MustCompile(
		`^\s*B=([.0-9]+)\s*(?:#.*)?$`)
	maximumLineRegexp = regexp.MustCompile(
		`^\s*M=([0-9]+)\s*(?:#.*)?$`)
	responsibilityLineRegexp = regexp.MustCompile(
		`^\s*R=(half|full)\s*(?:#.*)?$`)
	spicinessLineRegexp = regexp.MustCompile(
		`^\s*S=(half|spicy)\s*(?:#.*)?$`)
	rosterLineRegexp = regexp.MustCompile(
		`^\s*(` + namePattern + `)\s+(` + namePattern + `)\s+(` +
			namePattern + `)\s+(` + namePattern + `)\s*(?:#.*)?$`)
	gameLineRegexp = regexp.MustCompile(
		`^\s*(?:([0-9]+)|([-dDSf]))\s+(?:([0-9]+)|([-dDSf]))\s+` +
			`(?:([0-9]+)|([-dDSf]))\s+(?:([0-9]+)|([-dDSf]))\s*(?:#.*)?$`)
	commentLineRegexp = regexp.MustCompile(
		`^\s*(?:#.*)?$`)
)

var blameFromSymbol = map[string]scoring.BlameKind{
	"-": scoring.BlameNone,
	"d": scoring.BlameDiscard,
	"D": scoring.BlameDiscardGuarantee,
	"S": scoring.BlameSelfDrawGuarantee,
	"f": scoring.BlameFalseWin,
}

// ClassifyLine tests a line against the grammar forms in fixed priority;
// the first match wins and no match is LineInvalid.
func ClassifyLine(line string) Line {
	if m := dateLineRegexp.FindStringSubmatch(line); m != nil {
		return Line{Kind: LineDate, Date: m[1]}
	}
	if m := baseLineRegexp.FindStringSubmatch(line); m != nil {
		return Line{Kind: LineBase, Base: m[1]}
	}
	if m := maximumLineRegexp.FindStringSubmatch(line); m != nil {
		return Line{Kind: LineMaximumFaan, MaximumFaan: m[1]}
	}
	if m := responsibilityLineRegexp.FindStringSubmatch(line); m != nil {
		r := scoring.ResponsibilityFull
		if m[1] == "half" {
			r = scoring.ResponsibilityHalf
		}
		return Line{Kind: LineResponsibility, Responsibility: r}
	}
	if m := spicinessLineRegexp.FindStringSubmatch(line); m != nil {
		s := scoring.SpicinessHalf
		if m[1] == "spicy" {
			s = scoring.SpicinessSpicy
		}
		return Line{Kind: LineSpiciness, Spiciness: s}
	}
	if m := rosterLineRegexp.FindStringSubmatch(line); m != nil {
		return Line{
			Kind:  LineRoster,
			Names: [4]string{m[1], m[2], m[3], m[4]},
		}
	}
	if m := gameLineRegexp.FindStringSubmatch(line); m != nil {
		var seats [4]Seat
		for i := 0; i < 4; i++ {
			faan, blame := m[1+2*i], m[2+2*i]
			if faan != "" {
				seats[i] = Seat{Win: true, Faan: faan}
			} else {
				seats[i] = Seat{Blame: blameFromSymbol[blame]}
			}
		}
		return Line{Kind: LineGame, Seats: seats}
	}
	if commentLineRegexp.MatchString(line) {
		return Line{Kind: LineComment}
	}
	return Line{Kind: LineInvalid}
}
