package numutil

import (
	"math"
	"testing"
)

func TestBlunt(t *testing.T) {
	cases := []struct {
		number     float64
		places     int
		nanAsEmpty bool
		result     string
	}{
		{number: 0, places: 4, result: "0"},
		{number: 1, places: 4, result: "1"},
		{number: -1, places: 4, result: "-1"},
		{number: 1.5, places: 4, result: "1.5"},
		{number: 0.25, places: 4, result: "0.25"},
		{number: 1.0 / 3.0, places: 4, result: "0.3333"},
		{number: 2.0 / 3.0, places: 4, result: "0.6667"},
		{number: 384, places: 4, result: "384"},
		{number: -128.5, places: 4, result: "-128.5"},
		{number: 0.0001, places: 4, result: "0.0001"},
		{number: 1200, places: 0, result: "1200"},
		{number: math.NaN(), places: 4, result: "nan"},
		{number: math.NaN(), places: 4, nanAsEmpty: true, result: ""},
	}

	for _, c := range cases {
		if r := Blunt(c.number, c.places, c.nanAsEmpty); r != c.result {
			t.Fatalf("expect: %q, got: %q, number: %v", c.result, r, c.number)
		}
	}
}

func TestRobustDivide(t *testing.T) {
	if r := RobustDivide(3, 4); r != 0.75 {
		t.Fatalf("expect: 0.75, got: %v", r)
	}
	if r := RobustDivide(1, 0); !math.IsNaN(r) {
		t.Fatalf("expect: NaN, got: %v", r)
	}
	if r := RobustDivide(0, 0); !math.IsNaN(r) {
		t.Fatalf("expect: NaN, got: %v", r)
	}
}
