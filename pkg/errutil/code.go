package errutil

const (
	codeBase = 1000
)

const (
	codeUnknown = codeBase + iota
	codeInvalidLine
	codeBadNumber
	codeDuplicateNames
	codeNoRoster
	codeMultipleWinners
	codeMultipleBlame
	codeMaximumFaanExceeded
	codeBlameWithoutWinner
	codeWinnerWithFalseBlame
	codeRedundantDiscardGuarantee
	codeBadChronology
)

var codes = map[Kind]int{
	KindUnknown:                   codeUnknown,
	KindInvalidLine:               codeInvalidLine,
	KindBadNumber:                 codeBadNumber,
	KindDuplicateNames:            codeDuplicateNames,
	KindNoRoster:                  codeNoRoster,
	KindMultipleWinners:           codeMultipleWinners,
	KindMultipleBlame:             codeMultipleBlame,
	KindMaximumFaanExceeded:       codeMaximumFaanExceeded,
	KindBlameWithoutWinner:        codeBlameWithoutWinner,
	KindWinnerWithFalseBlame:      codeWinnerWithFalseBlame,
	KindRedundantDiscardGuarantee: codeRedundantDiscardGuarantee,
	KindBadChronology:             codeBadChronology,
}

// Code returns the numeric code for the error, for machine consumers.
func Code(err error) int {
	if le, ok := AsLineError(err); ok {
		if c, ok := codes[le.Kind]; ok {
			return c
		}
	}
	return codeUnknown
}
