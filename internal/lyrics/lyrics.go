// Package lyrics provides the lyric corpus and random selection.
package lyrics

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/lyricbeat/internal/model"
)

//go:embed lyrics.toml
var embeddedCorpus []byte

// fallbackLength is the easiest selection tier; the corpus must cover it.
const fallbackLength = 4

type corpusFile struct {
	Lyrics []model.LyricEntry `toml:"lyric"`
}

// Load returns the embedded lyric corpus.
func Load() ([]model.LyricEntry, error) {
	var file corpusFile
	if err := toml.Unmarshal(embeddedCorpus, &file); err != nil {
		return nil, fmt.Errorf("failed to decode embedded corpus: %w", err)
	}
	if err := validate(file.Lyrics); err != nil {
		return nil, err
	}
	return file.Lyrics, nil
}

// LoadFile reads a user corpus from a TOML file of the same shape as the
// embedded one.
func LoadFile(path string) ([]model.LyricEntry, error) {
	var file corpusFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return nil, fmt.Errorf("failed to decode corpus %s: %w", path, err)
	}
	if err := validate(file.Lyrics); err != nil {
		return nil, fmt.Errorf("invalid corpus %s: %w", path, err)
	}
	return file.Lyrics, nil
}

func validate(entries []model.LyricEntry) error {
	if len(entries) == 0 {
		return fmt.Errorf("corpus is empty")
	}
	hasFallback := false
	for i, entry := range entries {
		if entry.Text == "" {
			return fmt.Errorf("corpus entry %d: text is empty", i)
		}
		if entry.Tempo <= 0 {
			return fmt.Errorf("corpus entry %d: tempo must be > 0", i)
		}
		if entry.Length <= 0 {
			return fmt.Errorf("corpus entry %d: length must be > 0", i)
		}
		if entry.Length <= fallbackLength {
			hasFallback = true
		}
	}
	if !hasFallback {
		return fmt.Errorf("corpus has no entry of length <= %d", fallbackLength)
	}
	return nil
}
