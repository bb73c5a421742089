package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/lyricbeat/internal/game"
	"github.com/verte-zerg/lyricbeat/internal/model"
	"github.com/verte-zerg/lyricbeat/internal/store"
)

const (
	countdownInterval = time.Second
	timerInterval     = 100 * time.Millisecond
	timerStep         = 0.1
	maxNameLength     = 20
)

type countdownMsg time.Time

type timerMsg time.Time

var (
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	hudStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	comboStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	feedbackGood   = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	feedbackBad    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	countdownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
)

// Model implements the Bubble Tea game UI. It drives the session through
// external events: a one-second countdown tick and a 100ms gameplay timer
// that fires Timeout when the per-lyric budget runs out.
type Model struct {
	session *game.Session
	st      *store.Store
	cfg     model.Config

	input     textinput.Model
	nameInput textinput.Model
	topTable  table.Model

	remaining float64
	startedAt time.Time

	lastJudgment *model.Judgment
	lastPoints   int

	gameSaved      bool
	qualifies      bool
	scoreSubmitted bool
	advisory       string
	topEntries     []model.LeaderboardEntry

	width  int
	height int
}

// NewModel constructs the game TUI model.
func NewModel(session *game.Session, st *store.Store, cfg model.Config) *Model {
	input := textinput.New()
	input.Placeholder = "type the lyric and press enter"
	input.CharLimit = 0
	input.Prompt = "> "

	nameInput := textinput.New()
	nameInput.Placeholder = "your name"
	nameInput.CharLimit = maxNameLength
	nameInput.Prompt = "name: "
	if cfg.Name != "" {
		nameInput.SetValue(cfg.Name)
	}

	return &Model{
		session:   session,
		st:        st,
		cfg:       cfg,
		input:     input,
		nameInput: nameInput,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case countdownMsg:
		return m.updateCountdown()
	case timerMsg:
		return m.updateTimer()
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.session.Phase() {
		case model.PhaseMenu:
			return m.updateMenu(msg)
		case model.PhasePlaying:
			return m.updatePlaying(msg)
		case model.PhaseGameOver:
			return m.updateGameOver(msg)
		}
	}
	return m, nil
}

func (m *Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.session.Start()
		return m, tickCountdown()
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) updateCountdown() (tea.Model, tea.Cmd) {
	if m.session.Phase() != model.PhaseCountdown {
		return m, nil
	}
	m.session.Tick()
	if m.session.Phase() == model.PhasePlaying {
		m.beginPlaying()
		return m, tea.Batch(textinput.Blink, tickTimer())
	}
	return m, tickCountdown()
}

func (m *Model) updateTimer() (tea.Model, tea.Cmd) {
	if m.session.Phase() != model.PhasePlaying {
		return m, nil
	}
	m.remaining -= timerStep
	if m.remaining <= 0 {
		m.session.Timeout()
		m.finishGame()
		return m, nil
	}
	return m, tickTimer()
}

func (m *Model) updatePlaying(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		judgment, points := m.session.Submit(m.input.Value())
		m.lastJudgment = &judgment
		m.lastPoints = points
		m.input.SetValue("")
		// The timer re-arms on every submission, correct or not.
		m.remaining = m.session.Difficulty().TimeLimit
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.session.UpdateInput(m.input.Value())
	return m, cmd
}

func (m *Model) updateGameOver(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.qualifies && !m.scoreSubmitted {
		if msg.Type == tea.KeyEnter {
			m.submitScore()
			return m, nil
		}
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	switch msg.String() {
	case "r":
		m.session.Restart()
		m.beginPlaying()
		return m, tea.Batch(textinput.Blink, tickTimer())
	case "q":
		return m, tea.Quit
	default:
		var cmd tea.Cmd
		m.topTable, cmd = m.topTable.Update(msg)
		return m, cmd
	}
}

func (m *Model) beginPlaying() {
	m.remaining = m.session.Difficulty().TimeLimit
	m.startedAt = time.Now()
	m.lastJudgment = nil
	m.lastPoints = 0
	m.gameSaved = false
	m.qualifies = false
	m.scoreSubmitted = false
	m.advisory = ""
	m.topEntries = nil
	m.input.SetValue("")
	m.input.Focus()
}

// finishGame records the finished game and prepares the leaderboard view.
// Store failures are advisory: the game-over screen still renders.
func (m *Model) finishGame() {
	m.input.Blur()
	snap := m.session.Snapshot()
	ctx := context.Background()

	if !m.gameSaved {
		record := model.GameStats{
			PlayedAt:   m.startedAt,
			Score:      snap.Score,
			Total:      snap.Total,
			Correct:    snap.Correct,
			Perfect:    snap.Perfect,
			BestStreak: snap.BestStreak,
			DurationMs: time.Since(m.startedAt).Milliseconds(),
		}
		if _, err := m.st.InsertGame(ctx, record); err != nil {
			m.advisory = fmt.Sprintf("could not save game: %v", err)
		}
		m.gameSaved = true
	}

	if snap.Score > 0 {
		qualifies, err := m.st.QualifiesForTop(ctx, snap.Score, m.cfg.Top)
		if err != nil {
			m.advisory = fmt.Sprintf("could not check leaderboard: %v", err)
		} else {
			m.qualifies = qualifies
		}
	}
	if m.qualifies {
		m.nameInput.Focus()
	} else {
		m.refreshTop()
	}
}

func (m *Model) submitScore() {
	name := strings.TrimSpace(m.nameInput.Value())
	if name == "" {
		return
	}
	ctx := context.Background()
	if err := m.st.SubmitScore(ctx, name, m.session.Score()); err != nil {
		m.advisory = fmt.Sprintf("could not submit score: %v", err)
	}
	m.scoreSubmitted = true
	m.nameInput.Blur()
	m.refreshTop()
}

func (m *Model) refreshTop() {
	entries, err := m.st.FetchTop(context.Background(), m.cfg.Top)
	if err != nil {
		m.advisory = fmt.Sprintf("could not load leaderboard: %v", err)
		return
	}
	m.topEntries = entries

	rows := make([]table.Row, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", entry.Rank),
			entry.Name,
			fmt.Sprintf("%d", entry.Score),
			entry.CreatedAt.Format("2006-01-02"),
		})
	}
	height := len(rows)
	if height > 10 {
		height = 10
	}
	m.topTable = table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 4},
			{Title: "Name", Width: maxNameLength},
			{Title: "Score", Width: 7},
			{Title: "Date", Width: 10},
		}),
		table.WithRows(rows),
		table.WithHeight(height+1),
	)
}

// View implements tea.Model.
func (m *Model) View() string {
	var content string
	switch m.session.Phase() {
	case model.PhaseMenu:
		content = m.viewMenu()
	case model.PhaseCountdown:
		content = m.viewCountdown()
	case model.PhasePlaying:
		content = m.viewPlaying()
	case model.PhaseGameOver:
		content = m.viewGameOver()
	}
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) viewMenu() string {
	lines := []string{
		titleStyle.Render("lyricbeat"),
		"",
		hudStyle.Render(fmt.Sprintf("high score: %d", m.session.HighScore())),
		"",
		footerStyle.Render("enter: play · q: quit"),
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewCountdown() string {
	return countdownStyle.Render(fmt.Sprintf("%d", m.session.Countdown()))
}

func (m *Model) viewPlaying() string {
	snap := m.session.Snapshot()

	hud := hudStyle.Render(fmt.Sprintf(
		"score %d · high %d · streak %d · %s · tempo %d",
		snap.Score, snap.HighScore, snap.Streak,
		game.LevelName(snap.Score), snap.Difficulty.Tempo,
	))
	combo := ""
	if snap.Combo > 0 {
		combo = comboStyle.Render(fmt.Sprintf("combo %d (x%.1f)", snap.Combo, game.Multiplier(snap.Combo)))
	}

	lyricRunes := []rune(snap.Lyric.Text)
	inputRunes := []rune(m.input.Value())
	cursorIndex := -1
	if len(inputRunes) < len(lyricRunes) {
		cursorIndex = len(inputRunes)
	}
	styled := buildStyledRunes(lyricRunes, inputRunes, cursorIndex)
	lyricWidth := m.contentWidth()
	lyric := wrapStyledRunes(styled, lyricWidth)

	feedback := ""
	if m.lastJudgment != nil {
		if m.lastJudgment.IsCorrect {
			feedback = feedbackGood.Render(fmt.Sprintf("+%d (%.1f%%)", m.lastPoints, m.lastJudgment.Accuracy))
		} else {
			feedback = feedbackBad.Render(fmt.Sprintf("miss (%.1f%%) · combo lost", m.lastJudgment.Accuracy))
		}
	}

	timer := footerStyle.Render(fmt.Sprintf("time %4.1fs", m.remaining))

	lines := []string{hud}
	if combo != "" {
		lines = append(lines, combo)
	}
	lines = append(lines, "", lyric, "", m.input.View(), timer)
	if feedback != "" {
		lines = append(lines, feedback)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewGameOver() string {
	snap := m.session.Snapshot()
	lines := []string{
		titleStyle.Render("game over"),
		"",
		hudStyle.Render(fmt.Sprintf("score %d · high %d", snap.Score, snap.HighScore)),
		hudStyle.Render(fmt.Sprintf(
			"attempts %d · correct %d · perfect %d · best streak %d",
			snap.Total, snap.Correct, snap.Perfect, snap.BestStreak,
		)),
		hudStyle.Render(fmt.Sprintf(
			"accuracy %.1f%% · perfect rate %.1f%%",
			m.session.AccuracyRate(), m.session.PerfectRate(),
		)),
		"",
	}
	if m.qualifies && !m.scoreSubmitted {
		lines = append(lines,
			comboStyle.Render(fmt.Sprintf("top %d score!", m.cfg.Top)),
			m.nameInput.View(),
			footerStyle.Render("enter: submit"),
		)
	} else {
		if len(m.topEntries) > 0 {
			lines = append(lines, m.topTable.View(), "")
		}
		lines = append(lines, footerStyle.Render("r: play again · q: quit"))
	}
	if m.advisory != "" {
		lines = append(lines, "", feedbackBad.Render(m.advisory))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 0
	}
	w := int(float64(m.width) * 0.70)
	if w < 1 {
		w = 1
	}
	return w
}

func tickCountdown() tea.Cmd {
	return tea.Tick(countdownInterval, func(t time.Time) tea.Msg {
		return countdownMsg(t)
	})
}

func tickTimer() tea.Cmd {
	return tea.Tick(timerInterval, func(t time.Time) tea.Msg {
		return timerMsg(t)
	})
}
