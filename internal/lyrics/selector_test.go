package lyrics

import (
	"testing"

	"github.com/verte-zerg/lyricbeat/internal/model"
)

func testCorpus() []model.LyricEntry {
	return []model.LyricEntry{
		{Text: "짧은 가사", Tempo: 80, Length: 4},
		{Text: "중간 길이의 가사 한 줄", Tempo: 90, Length: 10},
		{Text: "느린 중간 가사", Tempo: 60, Length: 10},
		{Text: "꽤 길고 빠른 가사 한 줄입니다", Tempo: 140, Length: 14},
	}
}

func TestSelectPrefersTempoMatch(t *testing.T) {
	s := NewSelector(testCorpus())
	cfg := model.DifficultyConfig{Tempo: 95, MinLength: 9, MaxLength: 11}
	for i := 0; i < 20; i++ {
		got := s.Select(cfg)
		if got.Length != 10 || got.Tempo != 90 {
			t.Fatalf("Select() = %+v, want the tempo-matched length-10 entry", got)
		}
	}
}

func TestSelectRelaxesTempo(t *testing.T) {
	s := NewSelector(testCorpus())
	// No entry within 20 BPM of 200, so tempo is ignored and the length
	// band widens by 2.
	cfg := model.DifficultyConfig{Tempo: 200, MinLength: 11, MaxLength: 12}
	for i := 0; i < 20; i++ {
		got := s.Select(cfg)
		if got.Length < 9 || got.Length > 14 {
			t.Fatalf("Select() = %+v, outside the widened length band", got)
		}
	}
}

func TestSelectFallsBackToShortEntries(t *testing.T) {
	s := NewSelector(testCorpus())
	cfg := model.DifficultyConfig{Tempo: 80, MinLength: 50, MaxLength: 60}
	for i := 0; i < 20; i++ {
		got := s.Select(cfg)
		if got.Length > 4 {
			t.Fatalf("Select() = %+v, want a fallback-tier entry", got)
		}
	}
}

func TestSelectLastResortFirstEntry(t *testing.T) {
	entries := []model.LyricEntry{
		{Text: "유일한 긴 가사", Tempo: 90, Length: 20},
	}
	s := NewSelector(entries)
	cfg := model.DifficultyConfig{Tempo: 80, MinLength: 4, MaxLength: 8}
	got := s.Select(cfg)
	if got.Text != "유일한 긴 가사" {
		t.Fatalf("Select() = %+v, want the first corpus entry", got)
	}
}

func TestSelectTotalOverEmbeddedCorpus(t *testing.T) {
	entries, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	s := NewSelector(entries)
	cfgs := []model.DifficultyConfig{
		{Tempo: 80, MinLength: 4, MaxLength: 8},
		{Tempo: 200, MinLength: 60, MaxLength: 80},
		{Tempo: 1, MinLength: 1, MaxLength: 1},
	}
	for _, cfg := range cfgs {
		got := s.Select(cfg)
		if got.Text == "" {
			t.Fatalf("Select(%+v) returned an empty entry", cfg)
		}
	}
}
