package stats

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/lyricbeat/internal/model"
)

func TestGameMetrics(t *testing.T) {
	acc, perfect := GameMetrics(model.GameStats{Total: 10, Correct: 8, Perfect: 4})
	if acc != 80 {
		t.Fatalf("accuracy = %v, want 80", acc)
	}
	if perfect != 40 {
		t.Fatalf("perfect rate = %v, want 40", perfect)
	}
}

func TestGameMetricsEmptyGame(t *testing.T) {
	acc, perfect := GameMetrics(model.GameStats{})
	if acc != 0 || perfect != 0 {
		t.Fatalf("metrics = %v/%v, want 0/0", acc, perfect)
	}
}

func TestRenderSummary(t *testing.T) {
	games := []model.GameStats{
		{Score: 400, Total: 10, Correct: 10, Perfect: 5, BestStreak: 10},
		{Score: 800, Total: 20, Correct: 15, Perfect: 10, BestStreak: 7},
	}
	var buf bytes.Buffer
	if err := RenderSummary(&buf, games); err != nil {
		t.Fatalf("RenderSummary() failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Games: 2",
		"Best score: 800",
		"Avg score: 600.0",
		"Avg accuracy: 87.50%",
		"Best streak: 10",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSummaryNoGames(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderSummary(&buf, nil); err != nil {
		t.Fatalf("RenderSummary() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No games found.") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestRenderTop(t *testing.T) {
	entries := []model.LeaderboardEntry{
		{Rank: 1, Name: "지민", Score: 12000, CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)},
		{Rank: 2, Name: "ha-eun", Score: 340, CreatedAt: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)},
	}
	var buf bytes.Buffer
	if err := RenderTop(&buf, entries); err != nil {
		t.Fatalf("RenderTop() failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "Rank") {
		t.Fatalf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "지민") || !strings.Contains(lines[1], "12000") {
		t.Fatalf("row 1 = %q", lines[1])
	}
	if !strings.Contains(lines[2], "2026-03-02") {
		t.Fatalf("row 2 = %q", lines[2])
	}
}

func TestRenderTopEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderTop(&buf, nil); err != nil {
		t.Fatalf("RenderTop() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No leaderboard entries yet.") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestFormatTableAlignment(t *testing.T) {
	lines := formatTable(
		[]string{"Rank", "Name"},
		[][]string{{"1", "alice"}, {"10", "bo"}},
		map[int]bool{0: true},
	)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[1] != "   1 alice" {
		t.Fatalf("row 1 = %q", lines[1])
	}
	if lines[2] != "  10 bo   " {
		t.Fatalf("row 2 = %q", lines[2])
	}
}

func TestResample(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}

	same := resample(values, 5)
	for i, v := range same {
		if v != values[i] {
			t.Fatalf("identity resample changed values: %v", same)
		}
	}

	up := resample([]float64{1, 5}, 4)
	if len(up) != 4 || up[0] != 1 || up[3] != 5 {
		t.Fatalf("upsample = %v", up)
	}

	down := resample(values, 2)
	if len(down) != 2 || down[0] != 1 || down[1] != 5 {
		t.Fatalf("downsample = %v", down)
	}
}

func TestPlotScores(t *testing.T) {
	games := []model.GameStats{
		{Score: 100}, {Score: 400}, {Score: 250}, {Score: 900},
	}
	var buf bytes.Buffer
	if err := PlotScores(&buf, games, 40, 6); err != nil {
		t.Fatalf("PlotScores() failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Score History (max 900)") {
		t.Fatalf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "min 100") {
		t.Fatalf("missing footer:\n%s", out)
	}
	if !strings.ContainsRune(out, '*') {
		t.Fatalf("plot has no marks:\n%s", out)
	}
}

func TestPlotScoresNoGames(t *testing.T) {
	var buf bytes.Buffer
	if err := PlotScores(&buf, nil, 40, 6); err != nil {
		t.Fatalf("PlotScores() failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}
