package game

import (
	"github.com/verte-zerg/lyricbeat/internal/model"
)

const countdownStart = 5

// LyricSource supplies lyric fragments matching a difficulty configuration.
type LyricSource interface {
	Select(cfg model.DifficultyConfig) model.LyricEntry
}

// HighScores persists the best score across sessions. Implementations must
// not block gameplay; failures are surfaced as advisory events only.
type HighScores interface {
	Load() (int, error)
	Save(score int) error
}

// EventKind identifies a session notification.
type EventKind int

// Session event kinds.
const (
	EventPhaseChanged EventKind = iota
	EventJudged
	EventHighScore
	EventSaveFailed
)

// Event is delivered to the session's notify callback on state changes.
type Event struct {
	Kind     EventKind
	Phase    model.Phase
	Judgment model.Judgment
	Points   int
	Err      error
}

// Snapshot is a read-only copy of the session state for presentation.
type Snapshot struct {
	Phase      model.Phase
	Score      int
	Combo      int
	Lyric      model.LyricEntry
	Input      string
	Difficulty model.DifficultyConfig
	HighScore  int
	Total      int
	Correct    int
	Perfect    int
	Streak     int
	BestStreak int
	Countdown  int
}

// Session is the state machine for one play session. It owns all mutable
// game state and is driven by discrete external events: Start, Tick,
// Submit, Timeout, Restart. It holds no timer of its own; the clock
// collaborator arms Difficulty().TimeLimit per lyric and calls Timeout.
// A Session must not be shared across concurrent games.
type Session struct {
	source LyricSource
	scores HighScores
	notify func(Event)

	phase      model.Phase
	score      int
	combo      int
	lyric      model.LyricEntry
	input      string
	difficulty model.DifficultyConfig
	highScore  int

	total      int
	correct    int
	perfect    int
	streak     int
	bestStreak int

	countdown int
}

// Option configures a Session.
type Option func(*Session)

// WithNotify registers a callback fired on phase changes, judged
// submissions, new high scores, and persistence failures.
func WithNotify(fn func(Event)) Option {
	return func(s *Session) {
		s.notify = fn
	}
}

// NewSession creates a session at the menu phase. The high score is read
// once here; a load failure leaves it at zero and is reported as advisory.
func NewSession(source LyricSource, scores HighScores, opts ...Option) *Session {
	s := &Session{
		source:     source,
		scores:     scores,
		phase:      model.PhaseMenu,
		difficulty: CurveFor(0),
		countdown:  countdownStart,
	}
	for _, opt := range opts {
		opt(s)
	}
	if scores != nil {
		if hs, err := scores.Load(); err != nil {
			s.emit(Event{Kind: EventSaveFailed, Phase: s.phase, Err: err})
		} else {
			s.highScore = hs
		}
	}
	return s
}

// Start moves the session from menu to countdown. No-op in other phases.
func (s *Session) Start() {
	if s.phase != model.PhaseMenu {
		return
	}
	s.countdown = countdownStart
	s.setPhase(model.PhaseCountdown)
}

// Tick advances the countdown by one step; the final tick enters playing.
// No-op outside the countdown phase.
func (s *Session) Tick() {
	if s.phase != model.PhaseCountdown {
		return
	}
	s.countdown--
	if s.countdown <= 0 {
		s.beginPlaying()
	}
}

// UpdateInput replaces the in-progress text buffer. No-op unless playing.
func (s *Session) UpdateInput(text string) {
	if s.phase != model.PhasePlaying {
		return
	}
	s.input = text
}

// Submit judges the given text against the current lyric and applies the
// outcome: scoring, combo, streak, difficulty, and the next lyric on a
// correct submission; combo and streak reset on an incorrect one, with the
// lyric kept for retry. Returns the judgment and points awarded. Calls
// outside the playing phase are no-ops and return zero values.
func (s *Session) Submit(text string) (model.Judgment, int) {
	if s.phase != model.PhasePlaying {
		return model.Judgment{}, 0
	}

	j := Judge(text, s.lyric.Text)

	s.total++
	if j.IsCorrect {
		s.correct++
	}
	if j.Perfect {
		s.perfect++
	}

	points := 0
	if j.IsCorrect {
		points = Award(j, s.combo)
		s.score += points
		s.combo++
		s.streak++
		if s.streak > s.bestStreak {
			s.bestStreak = s.streak
		}
		if s.score > s.highScore {
			s.highScore = s.score
			s.emit(Event{Kind: EventHighScore, Phase: s.phase, Points: s.highScore})
			s.saveHighScore()
		}
		s.difficulty = CurveFor(s.score)
		s.lyric = s.source.Select(s.difficulty)
	} else {
		s.combo = 0
		s.streak = 0
	}
	s.input = ""

	s.emit(Event{Kind: EventJudged, Phase: s.phase, Judgment: j, Points: points})
	return j, points
}

// Timeout ends the game when the per-lyric timer expires. No-op unless
// playing.
func (s *Session) Timeout() {
	if s.phase != model.PhasePlaying {
		return
	}
	s.setPhase(model.PhaseGameOver)
}

// Restart begins a fresh game directly from gameOver, skipping the
// countdown. No-op in other phases.
func (s *Session) Restart() {
	if s.phase != model.PhaseGameOver {
		return
	}
	s.beginPlaying()
}

func (s *Session) beginPlaying() {
	s.score = 0
	s.combo = 0
	s.total = 0
	s.correct = 0
	s.perfect = 0
	s.streak = 0
	s.bestStreak = 0
	s.input = ""
	s.countdown = countdownStart
	s.difficulty = CurveFor(0)
	s.lyric = s.source.Select(s.difficulty)
	s.setPhase(model.PhasePlaying)
}

func (s *Session) saveHighScore() {
	if s.scores == nil {
		return
	}
	if err := s.scores.Save(s.highScore); err != nil {
		// Advisory only; gameplay proceeds regardless.
		s.emit(Event{Kind: EventSaveFailed, Phase: s.phase, Err: err})
	}
}

func (s *Session) setPhase(p model.Phase) {
	s.phase = p
	s.emit(Event{Kind: EventPhaseChanged, Phase: p})
}

func (s *Session) emit(e Event) {
	if s.notify != nil {
		s.notify(e)
	}
}

// Phase returns the current phase.
func (s *Session) Phase() model.Phase { return s.phase }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Combo returns the current combo count.
func (s *Session) Combo() int { return s.combo }

// Lyric returns the active lyric entry.
func (s *Session) Lyric() model.LyricEntry { return s.lyric }

// Input returns the in-progress text buffer.
func (s *Session) Input() string { return s.input }

// Difficulty returns the current difficulty configuration.
func (s *Session) Difficulty() model.DifficultyConfig { return s.difficulty }

// HighScore returns the best score seen, including previous sessions.
func (s *Session) HighScore() int { return s.highScore }

// Countdown returns the remaining countdown steps.
func (s *Session) Countdown() int { return s.countdown }

// BestStreak returns the longest streak of this game.
func (s *Session) BestStreak() int { return s.bestStreak }

// AccuracyRate returns the share of correct submissions in percent.
func (s *Session) AccuracyRate() float64 {
	if s.total == 0 {
		return 0
	}
	return float64(s.correct) / float64(s.total) * 100
}

// PerfectRate returns the share of perfect submissions in percent.
func (s *Session) PerfectRate() float64 {
	if s.total == 0 {
		return 0
	}
	return float64(s.perfect) / float64(s.total) * 100
}

// Snapshot copies the full session state for the presentation layer.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Phase:      s.phase,
		Score:      s.score,
		Combo:      s.combo,
		Lyric:      s.lyric,
		Input:      s.input,
		Difficulty: s.difficulty,
		HighScore:  s.highScore,
		Total:      s.total,
		Correct:    s.correct,
		Perfect:    s.perfect,
		Streak:     s.streak,
		BestStreak: s.bestStreak,
		Countdown:  s.countdown,
	}
}
