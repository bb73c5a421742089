// Package game implements the play session engine: typing judgment,
// scoring, difficulty progression, and the session state machine.
package game

import (
	"github.com/verte-zerg/lyricbeat/internal/match"
	"github.com/verte-zerg/lyricbeat/internal/model"
)

// CorrectThreshold is the minimum accuracy for a submission to count.
// Deliberately lenient to forgive Korean input-method quirks.
const CorrectThreshold = 60.0

// Judge validates user input against the target lyric and returns a
// judgment. Total: malformed or empty input is scored, never rejected.
func Judge(input, target string) model.Judgment {
	in := match.Normalize(input)
	tg := match.Normalize(target)

	accuracy := match.Accuracy(input, target)
	perfect := in == tg

	j := model.Judgment{
		IsCorrect:  accuracy >= CorrectThreshold,
		Accuracy:   accuracy,
		Perfect:    perfect,
		ErrorIndex: -1,
	}
	if !perfect {
		j.ErrorIndex = errorIndex([]rune(in), []rune(tg))
	}
	return j
}

// errorIndex finds the first diverging rune, scanning up to the shorter
// length. Input longer than a fully matched target diverges at the
// target's end; input still shorter with no mismatch has no error yet.
func errorIndex(input, target []rune) int {
	shortest := len(input)
	if len(target) < shortest {
		shortest = len(target)
	}
	for i := 0; i < shortest; i++ {
		if input[i] != target[i] {
			return i
		}
	}
	if len(input) > len(target) {
		return len(target)
	}
	return -1
}
