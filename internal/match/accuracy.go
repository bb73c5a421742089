package match

import (
	"math"
	"unicode/utf8"

	"github.com/antzucaro/matchr"
)

// Accuracy returns a similarity percentage in [0,100] between user input
// and target text. Both strings are normalized first; the score is derived
// from the Levenshtein distance over the longer normalized length and
// rounded to two decimal places.
func Accuracy(input, target string) float64 {
	in := Normalize(input)
	tg := Normalize(target)

	if tg == "" {
		if in == "" {
			return 100
		}
		return 0
	}

	distance := matchr.Levenshtein(in, tg)
	longest := utf8.RuneCountInString(in)
	if n := utf8.RuneCountInString(tg); n > longest {
		longest = n
	}
	accuracy := float64(longest-distance) / float64(longest) * 100
	if accuracy < 0 {
		accuracy = 0
	}
	return math.Round(accuracy*100) / 100
}
