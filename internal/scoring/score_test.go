package scoring

import (
	"testing"
)

func TestMultiplierHalfSpicy(t *testing.T) {
	// Faan 0..13 under half-spicy rise (半辣上).
	want := []int64{1, 2, 4, 8, 16, 24, 32, 48, 64, 96, 128, 192, 256, 384}
	for faan, m := range want {
		if r := Multiplier(SpicinessHalf, faan); r != m {
			t.Fatalf("expect: %d, got: %d, faan: %d", m, r, faan)
		}
	}
}

func TestMultiplierSpicySpicy(t *testing.T) {
	for faan := 0; faan <= 20; faan++ {
		want := int64(1) << uint(faan)
		if r := Multiplier(SpicinessSpicy, faan); r != want {
			t.Fatalf("expect: %d, got: %d, faan: %d", want, r, faan)
		}
	}
}

func TestNetScores(t *testing.T) {
	cases := []struct {
		name    string
		outcome Outcome
		scores  [4]float64
	}{
		{
			name: "draw",
			outcome: Outcome{
				Base: 1, MaximumFaan: 13,
				Responsibility: ResponsibilityFull, Spiciness: SpicinessHalf,
				WinnerSeat: NoSeat, BlameSeat: NoSeat,
			},
			scores: [4]float64{0, 0, 0, 0},
		},
		{
			name: "self-drawn win, zero faan",
			outcome: Outcome{
				Base: 1, MaximumFaan: 13,
				Responsibility: ResponsibilityFull, Spiciness: SpicinessHalf,
				WinnerSeat: 0, WinnerFaan: 0, BlameSeat: NoSeat,
			},
			scores: [4]float64{+3, -1, -1, -1},
		},
		{
			name: "discard win, full responsibility, faan 8",
			outcome: Outcome{
				Base: 1, MaximumFaan: 13,
				Responsibility: ResponsibilityFull, Spiciness: SpicinessHalf,
				WinnerSeat: 0, WinnerFaan: 8,
				BlameSeat: 3, BlameKind: BlameDiscard,
			},
			scores: [4]float64{+128, 0, 0, -128},
		},
		{
			name: "discard win, half responsibility, faan 2",
			outcome: Outcome{
				Base: 1, MaximumFaan: 13,
				Responsibility: ResponsibilityHalf, Spiciness: SpicinessHalf,
				WinnerSeat: 1, WinnerFaan: 2,
				BlameSeat: 2, BlameKind: BlameDiscard,
			},
			scores: [4]float64{-2, +8, -4, -2},
		},
		{
			name: "discard-guarantee overrides half responsibility",
			outcome: Outcome{
				Base: 1, MaximumFaan: 13,
				Responsibility: ResponsibilityHalf, Spiciness: SpicinessHalf,
				WinnerSeat: 0, WinnerFaan: 3,
				BlameSeat: 1, BlameKind: BlameDiscardGuarantee,
			},
			scores: [4]float64{+16, -16, 0, 0},
		},
		{
			name: "self-draw-guarantee",
			outcome: Outcome{
				Base: 1, MaximumFaan: 13,
				Responsibility: ResponsibilityFull, Spiciness: SpicinessHalf,
				WinnerSeat: 2, WinnerFaan: 5,
				BlameSeat: 0, BlameKind: BlameSelfDrawGuarantee,
			},
			scores: [4]float64{-72, 0, +72, 0},
		},
		{
			name: "false-win at maximum faan",
			outcome: Outcome{
				Base: 1, MaximumFaan: 13,
				Responsibility: ResponsibilityFull, Spiciness: SpicinessHalf,
				WinnerSeat: NoSeat, BlameSeat: 2, BlameKind: BlameFalseWin,
			},
			scores: [4]float64{+1152, +1152, -3456, +1152},
		},
		{
			name: "fractional base",
			outcome: Outcome{
				Base: 0.5, MaximumFaan: 13,
				Responsibility: ResponsibilityHalf, Spiciness: SpicinessHalf,
				WinnerSeat: 3, WinnerFaan: 0,
				BlameSeat: 0, BlameKind: BlameDiscard,
			},
			scores: [4]float64{-0.5, -0.25, -0.25, +1},
		},
	}

	for _, c := range cases {
		if r := NetScores(c.outcome); r != c.scores {
			t.Fatalf("%s: expect: %v, got: %v", c.name, c.scores, r)
		}
	}
}

// Every payout vector must sum to exactly zero, whatever the outcome.
func TestNetScoresZeroSum(t *testing.T) {
	blameKinds := []BlameKind{BlameDiscard, BlameDiscardGuarantee, BlameSelfDrawGuarantee}

	for _, spiciness := range []Spiciness{SpicinessHalf, SpicinessSpicy} {
		for _, responsibility := range []Responsibility{ResponsibilityHalf, ResponsibilityFull} {
			for faan := 0; faan <= 13; faan++ {
				for winner := 0; winner < 4; winner++ {
					// Self-drawn win.
					assertZeroSum(t, Outcome{
						Base: 0.5, MaximumFaan: 13,
						Responsibility: responsibility, Spiciness: spiciness,
						WinnerSeat: winner, WinnerFaan: faan, BlameSeat: NoSeat,
					})
					for blamed := 0; blamed < 4; blamed++ {
						if blamed == winner {
							continue
						}
						for _, kind := range blameKinds {
							assertZeroSum(t, Outcome{
								Base: 0.5, MaximumFaan: 13,
								Responsibility: responsibility, Spiciness: spiciness,
								WinnerSeat: winner, WinnerFaan: faan,
								BlameSeat: blamed, BlameKind: kind,
							})
						}
					}
				}
				// False-win.
				for blamed := 0; blamed < 4; blamed++ {
					assertZeroSum(t, Outcome{
						Base: 0.5, MaximumFaan: faan,
						Responsibility: responsibility, Spiciness: spiciness,
						WinnerSeat: NoSeat, BlameSeat: blamed, BlameKind: BlameFalseWin,
					})
				}
			}
		}
	}
}

func assertZeroSum(t *testing.T, o Outcome) {
	t.Helper()
	scores := NetScores(o)
	sum := scores[0] + scores[1] + scores[2] + scores[3]
	if sum != 0 {
		t.Fatalf("payout not zero-sum: %v, outcome: %+v", scores, o)
	}
}

// False-win payout magnitude depends only on configured maximum faan,
// never on any per-line faan value.
func TestFalseWinUsesMaximumFaan(t *testing.T) {
	outcome := Outcome{
		Base: 1, MaximumFaan: 3,
		Responsibility: ResponsibilityFull, Spiciness: SpicinessHalf,
		WinnerSeat: NoSeat, BlameSeat: 1, BlameKind: BlameFalseWin,
	}
	want := [4]float64{+24, -72, +24, +24} // 3 portions at faan 3 (multiplier 8)
	if r := NetScores(outcome); r != want {
		t.Fatalf("expect: %v, got: %v", want, r)
	}
}

func BenchmarkNetScores(b *testing.B) {
	outcome := Outcome{
		Base: 0.5, MaximumFaan: 13,
		Responsibility: ResponsibilityHalf, Spiciness: SpicinessHalf,
		WinnerSeat: 0, WinnerFaan: 7,
		BlameSeat: 2, BlameKind: BlameDiscard,
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NetScores(outcome)
	}
}
