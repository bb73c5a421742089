package game

import (
	"testing"

	"github.com/verte-zerg/lyricbeat/internal/model"
)

func TestMultiplier(t *testing.T) {
	cases := []struct {
		combo int
		want  float64
	}{
		{0, 1.0},
		{2, 1.0},
		{3, 1.5},
		{4, 1.5},
		{5, 2.0},
		{9, 2.0},
		{10, 3.0},
		{50, 3.0},
	}
	for _, c := range cases {
		if got := Multiplier(c.combo); got != c.want {
			t.Fatalf("Multiplier(%d) = %v, want %v", c.combo, got, c.want)
		}
	}
}

func TestAwardPerfect(t *testing.T) {
	j := model.Judgment{IsCorrect: true, Perfect: true, Accuracy: 100, ErrorIndex: -1}
	if got := Award(j, 0); got != 80 {
		t.Fatalf("Award(perfect, combo 0) = %d, want 80", got)
	}
	if got := Award(j, 10); got != 240 {
		t.Fatalf("Award(perfect, combo 10) = %d, want 240", got)
	}
}

func TestAwardCorrectNonPerfect(t *testing.T) {
	j := model.Judgment{IsCorrect: true, Accuracy: 80, ErrorIndex: 4}
	// (10 + 80*0.5) * 1.0 = 50
	if got := Award(j, 0); got != 50 {
		t.Fatalf("Award = %d, want 50", got)
	}
	// (10 + 80*0.5) * 1.5 = 75
	if got := Award(j, 3); got != 75 {
		t.Fatalf("Award = %d, want 75", got)
	}
}

func TestAwardIncorrect(t *testing.T) {
	j := model.Judgment{IsCorrect: false, Accuracy: 40, ErrorIndex: 0}
	if got := Award(j, 12); got != 0 {
		t.Fatalf("Award(incorrect) = %d, want 0", got)
	}
}

func TestAwardMonotonicInCombo(t *testing.T) {
	j := model.Judgment{IsCorrect: true, Perfect: true, Accuracy: 100, ErrorIndex: -1}
	prev := 0
	for combo := 0; combo <= 12; combo++ {
		got := Award(j, combo)
		if got < prev {
			t.Fatalf("Award decreased at combo %d: %d < %d", combo, got, prev)
		}
		prev = got
	}
}
