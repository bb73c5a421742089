package lyrics

import (
	"math/rand"
	"time"

	"github.com/verte-zerg/lyricbeat/internal/model"
)

// tempoTolerance is the allowed distance from the target tempo in the
// first selection tier.
const tempoTolerance = 20

// Selector picks random lyric fragments matching a difficulty
// configuration. Selection never fails: when no entry matches, the
// filters relax step by step down to the corpus's first entry.
type Selector struct {
	entries []model.LyricEntry
	rnd     *rand.Rand
}

// NewSelector returns a Selector over the given corpus, seeded with the
// current time.
func NewSelector(entries []model.LyricEntry) *Selector {
	return &Selector{
		entries: entries,
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Select draws a uniformly random entry matching the configuration. The
// filter cascade: length band plus tempo tolerance, then a widened length
// band ignoring tempo, then the easiest tier, then the first corpus entry.
func (s *Selector) Select(cfg model.DifficultyConfig) model.LyricEntry {
	matching := s.filter(func(e model.LyricEntry) bool {
		if e.Length < cfg.MinLength || e.Length > cfg.MaxLength {
			return false
		}
		delta := e.Tempo - cfg.Tempo
		if delta < 0 {
			delta = -delta
		}
		return delta <= tempoTolerance
	})
	if len(matching) == 0 {
		matching = s.filter(func(e model.LyricEntry) bool {
			return e.Length >= cfg.MinLength-2 && e.Length <= cfg.MaxLength+2
		})
	}
	if len(matching) == 0 {
		matching = s.filter(func(e model.LyricEntry) bool {
			return e.Length <= fallbackLength
		})
	}
	if len(matching) == 0 {
		return s.entries[0]
	}
	return matching[s.rnd.Intn(len(matching))]
}

func (s *Selector) filter(keep func(model.LyricEntry) bool) []model.LyricEntry {
	var out []model.LyricEntry
	for _, e := range s.entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
