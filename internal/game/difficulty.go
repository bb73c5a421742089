package game

import (
	"math"

	"github.com/verte-zerg/lyricbeat/internal/model"
)

const (
	tempoCap     = 200
	minLengthCap = 60
	maxLengthCap = 80
)

type band struct {
	minScore  int
	maxScore  int
	baseTempo int
	minLength int
	maxLength int
}

var bands = []band{
	{0, 1000, 80, 4, 8},
	{1001, 2500, 85, 6, 12},
	{2501, 5000, 95, 10, 18},
	{5001, 10000, 110, 15, 25},
	{10001, math.MaxInt, 130, 20, 35},
}

// CurveFor maps a cumulative score to a difficulty configuration. The
// score band sets the base tempo and length range; a slow linear bump
// (tempo per 500 points, length per 1000) is layered on top, capped at
// 200 tempo and 60/80 lengths. The time limit is two seconds per average
// syllable unit, rounded to two decimals.
func CurveFor(score int) model.DifficultyConfig {
	b := bands[len(bands)-1]
	for _, candidate := range bands {
		if score >= candidate.minScore && score <= candidate.maxScore {
			b = candidate
			break
		}
	}

	tempo := b.baseTempo + score/500
	if tempo > tempoCap {
		tempo = tempoCap
	}
	lengthBump := score / 1000
	minLength := b.minLength + lengthBump
	if minLength > minLengthCap {
		minLength = minLengthCap
	}
	maxLength := b.maxLength + lengthBump
	if maxLength > maxLengthCap {
		maxLength = maxLengthCap
	}

	avgLength := float64(minLength+maxLength) / 2
	timeLimit := math.Round(avgLength*2.0*100) / 100

	return model.DifficultyConfig{
		Tempo:     tempo,
		MinLength: minLength,
		MaxLength: maxLength,
		TimeLimit: timeLimit,
	}
}

// LevelName labels a score for display.
func LevelName(score int) string {
	switch {
	case score <= 500:
		return "Beginner"
	case score <= 1500:
		return "Easy"
	case score <= 3000:
		return "Medium"
	case score <= 5000:
		return "Hard"
	default:
		return "Expert"
	}
}
