// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/lyricbeat/internal/model"
)

// GameMetrics computes the accuracy and perfect rates of a game in percent.
func GameMetrics(g model.GameStats) (accuracyRate, perfectRate float64) {
	if g.Total <= 0 {
		return 0, 0
	}
	accuracyRate = float64(g.Correct) / float64(g.Total) * 100
	perfectRate = float64(g.Perfect) / float64(g.Total) * 100
	return accuracyRate, perfectRate
}

// RenderSummary prints a summary for the given game records.
func RenderSummary(w io.Writer, games []model.GameStats) error {
	if len(games) == 0 {
		_, err := fmt.Fprintln(w, "No games found.")
		return err
	}
	var totalScore, bestScore, bestStreak int
	var totalAcc, totalPerfect float64
	for _, g := range games {
		totalScore += g.Score
		if g.Score > bestScore {
			bestScore = g.Score
		}
		if g.BestStreak > bestStreak {
			bestStreak = g.BestStreak
		}
		acc, perfect := GameMetrics(g)
		totalAcc += acc
		totalPerfect += perfect
	}
	count := float64(len(games))
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Games: %d\n", len(games)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Best score: %d\n", bestScore); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg score: %.1f\n", float64(totalScore)/count); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg accuracy: %.2f%%\n", totalAcc/count); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg perfect rate: %.2f%%\n", totalPerfect/count); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Best streak: %d\n", bestStreak); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}
