package search

import "testing"

func TestMatchField(t *testing.T) {
	tests := []struct {
		name      string
		field     string
		term      string
		tolerance int
		wantKind  Kind
		wantDist  int
	}{
		{name: "exact", field: "red", term: "red", wantKind: MatchExact},
		{name: "substring", field: "dark red transparent", term: "red", wantKind: MatchSubstring},
		{name: "substring at start reports substring", field: "red glass", term: "red", wantKind: MatchSubstring},
		{name: "word prefix reports as substring", field: "dark transparent", term: "tra", wantKind: MatchSubstring},
		{name: "typo within tolerance", field: "effetre glass", term: "effett", tolerance: 2, wantKind: MatchTypo, wantDist: 2},
		{name: "typo needs tolerance", field: "effetre glass", term: "effett", tolerance: 0, wantKind: MatchNone},
		{name: "typo needs four chars", field: "rod", term: "rad", tolerance: 2, wantKind: MatchNone},
		{name: "typo beyond tolerance", field: "opaque", term: "oxblood", tolerance: 2, wantKind: MatchNone},
		{name: "length prefilter beats a generous tolerance", field: "rod", term: "roddddd", tolerance: 4, wantKind: MatchNone},
		{name: "no match", field: "ivory", term: "cobalt", tolerance: 2, wantKind: MatchNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, dist := MatchField(tt.field, tt.term, tt.tolerance)
			if kind != tt.wantKind {
				t.Errorf("MatchField(%q, %q, %d) kind = %v, want %v", tt.field, tt.term, tt.tolerance, kind, tt.wantKind)
			}
			if dist != tt.wantDist {
				t.Errorf("MatchField(%q, %q, %d) dist = %d, want %d", tt.field, tt.term, tt.tolerance, dist, tt.wantDist)
			}
		})
	}
}

func TestKindStrength(t *testing.T) {
	// Stronger kinds must outrank weaker ones.
	order := []Kind{MatchExact, MatchSubstring, MatchPrefix, MatchWordPrefix, MatchTypo, MatchNone}
	for i := 1; i < len(order); i++ {
		if order[i-1].Strength() <= order[i].Strength() {
			t.Errorf("Strength(%v) = %v not greater than Strength(%v) = %v",
				order[i-1], order[i-1].Strength(), order[i], order[i].Strength())
		}
	}
}
