// Package main provides the CLI entrypoint for lyricbeat.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/lyricbeat/internal/config"
	"github.com/verte-zerg/lyricbeat/internal/game"
	"github.com/verte-zerg/lyricbeat/internal/lyrics"
	"github.com/verte-zerg/lyricbeat/internal/model"
	"github.com/verte-zerg/lyricbeat/internal/stats"
	"github.com/verte-zerg/lyricbeat/internal/store"
	"github.com/verte-zerg/lyricbeat/internal/tui"
)

const (
	defaultTop     = 10
	defaultLast    = 0
	maxNameLength  = 20
	statsPlotWidth = 0 // auto
)

var (
	playName   string
	playTop    int
	playCorpus string

	statsLast int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "lyricbeat",
		Short:         "Rhythm lyric-typing game",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.Flags().StringVar(&playName, "name", "", "player name for the leaderboard")
	rootCmd.Flags().IntVar(&playTop, "top", defaultTop, "leaderboard size")
	rootCmd.Flags().StringVar(&playCorpus, "corpus", "", "path to a custom lyric corpus")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newTopCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "name", &playName, fileCfg.Game.Name)
	applyIntConfig(cmd, "top", &playTop, fileCfg.Game.Top)
	applyStringConfig(cmd, "corpus", &playCorpus, fileCfg.Game.Corpus)

	cfg := model.Config{
		Name:       playName,
		Top:        playTop,
		CorpusPath: playCorpus,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	corpus, err := loadCorpus(cfg.CorpusPath)
	if err != nil {
		return err
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	selector := lyrics.NewSelector(corpus)
	session := game.NewSession(selector, highScoreStore{st: st},
		game.WithNotify(func(e game.Event) {
			if e.Kind == game.EventSaveFailed {
				logErrf("could not save high score: %v\n", e.Err)
			}
		}),
	)

	uiModel := tui.NewModel(session, st, cfg)
	program := tea.NewProgram(uiModel, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// highScoreStore adapts the SQLite store to the session's HighScores
// interface.
type highScoreStore struct {
	st *store.Store
}

func (h highScoreStore) Load() (int, error) {
	return h.st.LoadHighScore(context.Background())
}

func (h highScoreStore) Save(score int) error {
	return h.st.SaveHighScore(context.Background(), score)
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newTopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the leaderboard",
		Args:  cobra.NoArgs,
		RunE:  runTopCmd,
	}
	cmd.Flags().IntVar(&playTop, "top", defaultTop, "leaderboard size")
	return cmd
}

func runTopCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "top", &playTop, fileCfg.Game.Top)
	if playTop <= 0 {
		return fmt.Errorf("--top must be > 0")
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	entries, err := st.FetchTop(context.Background(), playTop)
	if err != nil {
		return fmt.Errorf("failed to load leaderboard: %w", err)
	}
	return stats.RenderTop(cmd.OutOrStdout(), entries)
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show game stats",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().IntVar(&statsLast, "last", defaultLast, "limit to last N games")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	games, err := st.ListGames(context.Background(), model.StatsConfig{Last: statsLast})
	if err != nil {
		return fmt.Errorf("failed to load games: %w", err)
	}
	out := cmd.OutOrStdout()
	if err := stats.RenderSummary(out, games); err != nil {
		return fmt.Errorf("failed to render summary: %w", err)
	}
	if err := stats.PlotScores(out, games, statsPlotWidth, 0); err != nil {
		return fmt.Errorf("failed to render plot: %w", err)
	}
	return nil
}

// loadCorpus resolves the lyric corpus: an explicit path wins, then a user
// corpus at the default location, then the embedded corpus.
func loadCorpus(path string) ([]model.LyricEntry, error) {
	if path != "" {
		return lyrics.LoadFile(path)
	}
	defaultPath := config.DefaultCorpusPath()
	if _, err := os.Stat(defaultPath); err == nil {
		return lyrics.LoadFile(defaultPath)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to stat corpus: %w", err)
	}
	return lyrics.Load()
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# lyricbeat configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# name = ""     # Player name for the leaderboard (max %d chars)
# top = %d      # Leaderboard size
# corpus = ""   # Path to a custom lyric corpus (TOML)
`,
		maxNameLength,
		defaultTop,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Top <= 0 {
		return fmt.Errorf("--top must be > 0")
	}
	if len([]rune(cfg.Name)) > maxNameLength {
		return fmt.Errorf("--name must be at most %d characters", maxNameLength)
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
