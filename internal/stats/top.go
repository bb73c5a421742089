package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/lyricbeat/internal/model"
)

// RenderTop prints the leaderboard as a rank/name/score/date table.
func RenderTop(w io.Writer, entries []model.LeaderboardEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No leaderboard entries yet.")
		return err
	}
	headers := []string{"Rank", "Name", "Score", "Date"}
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{
			fmt.Sprintf("%d", entry.Rank),
			entry.Name,
			fmt.Sprintf("%d", entry.Score),
			entry.CreatedAt.Format("2006-01-02"),
		})
	}
	rightAlign := map[int]bool{0: true, 2: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
