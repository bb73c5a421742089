package game

import (
	"math"

	"github.com/verte-zerg/lyricbeat/internal/model"
)

const (
	basePoints   = 10
	perfectBonus = 20
)

// Multiplier returns the combo multiplier. The combo value is the count
// before the current submission's increment.
func Multiplier(combo int) float64 {
	switch {
	case combo <= 2:
		return 1.0
	case combo <= 4:
		return 1.5
	case combo <= 9:
		return 2.0
	default:
		return 3.0
	}
}

// Award converts a judgment and the pre-submission combo into points.
// Incorrect submissions award nothing.
func Award(j model.Judgment, combo int) int {
	if !j.IsCorrect {
		return 0
	}
	base := float64(basePoints)
	if j.Perfect {
		base += perfectBonus
	}
	total := (base + j.Accuracy*0.5) * Multiplier(combo)
	return int(math.Round(total))
}
