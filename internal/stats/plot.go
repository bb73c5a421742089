package stats

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/verte-zerg/lyricbeat/internal/model"
)

const (
	defaultPlotHeight   = 8
	minPlotWidth        = 10
	terminalWidthBackup = 80
	plotMark            = '*'
	plotBlank           = ' '
)

// PlotScores renders a text plot of scores over games, oldest to newest.
// Width zero sizes the plot to the terminal.
func PlotScores(w io.Writer, games []model.GameStats, width, height int) error {
	if len(games) == 0 {
		return nil
	}
	if height <= 0 {
		height = defaultPlotHeight
	}
	if width <= 0 {
		width = autoPlotWidth()
	}
	if width < minPlotWidth {
		width = minPlotWidth
	}

	values := make([]float64, len(games))
	for i, g := range games {
		values[i] = float64(g.Score)
	}
	values = resample(values, width)

	minVal, maxVal := values[0], values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		minVal--
		maxVal++
	}

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, len(values))
		for j := range grid[i] {
			grid[i][j] = plotBlank
		}
	}
	for x, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		row := height - 1 - int(math.Round(pos*float64(height-1)))
		grid[row][x] = plotMark
	}

	if _, err := fmt.Fprintf(w, "Score History (max %.0f)\n", maxVal); err != nil {
		return err
	}
	for _, row := range grid {
		if _, err := fmt.Fprintln(w, strings.TrimRight(string(row), " ")); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "min %.0f · %d games\n", minVal, len(games)); err != nil {
		return err
	}
	return nil
}

// resample stretches or shrinks values to the given width by nearest-index
// sampling.
func resample(values []float64, width int) []float64 {
	if width <= 0 || len(values) == 0 || len(values) == width {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, width)
	for i := 0; i < width; i++ {
		idx := i * (len(values) - 1)
		if width > 1 {
			idx /= width - 1
		}
		if idx >= len(values) {
			idx = len(values) - 1
		}
		out[i] = values[idx]
	}
	return out
}

func autoPlotWidth() int {
	cols, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols <= 0 {
		cols = terminalWidthBackup
	}
	return cols - 4
}
