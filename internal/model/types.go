// Package model defines shared data structures.
package model

import "time"

// Phase identifies the state a game session is in.
type Phase string

// Session phases.
const (
	PhaseMenu      Phase = "menu"
	PhaseCountdown Phase = "countdown"
	PhasePlaying   Phase = "playing"
	PhaseGameOver  Phase = "gameOver"
)

// DifficultyConfig describes the tempo, lyric length band, and time budget
// for the current score level. Immutable once produced.
type DifficultyConfig struct {
	Tempo     int
	MinLength int
	MaxLength int
	TimeLimit float64 // seconds per lyric
}

// LyricEntry is one fragment from the lyric corpus.
type LyricEntry struct {
	Text   string `toml:"text"`
	Tempo  int    `toml:"tempo"`
	Length int    `toml:"length"`
	Source string `toml:"source,omitempty"`
}

// Judgment is the result of validating one typing submission.
// ErrorIndex is the first diverging rune of the normalized input, or -1
// when there is no divergence yet.
type Judgment struct {
	IsCorrect  bool
	Accuracy   float64 // 0..100
	Perfect    bool
	ErrorIndex int
}

// GameStats captures a finished game for persistence and reporting.
type GameStats struct {
	PlayedAt   time.Time
	Score      int
	Total      int
	Correct    int
	Perfect    int
	BestStreak int
	DurationMs int64
}

// LeaderboardEntry is one row of the local top-N board.
type LeaderboardEntry struct {
	Rank      int
	Name      string
	Score     int
	CreatedAt time.Time
}

// Config defines game settings.
type Config struct {
	Name       string
	Top        int
	CorpusPath string
}

// StatsConfig defines filters for stats output.
type StatsConfig struct {
	Last int
}
