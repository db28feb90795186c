package draftui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/enjoyedsaucer25/draft-assistant/go/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusOKStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	statusBadStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
)

// View renders the draft room: status bar, suggestion panes, the pick
// log, the enriched player table and whichever input has focus.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.statusBar())
	b.WriteString("\n\n")

	left := paneStyle.Render(m.suggestionsPane())
	right := paneStyle.Render(m.picksPane())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
	b.WriteString("\n")
	b.WriteString(paneStyle.Render(m.playersPane()))
	b.WriteString("\n")

	switch m.focus {
	case FocusForm:
		b.WriteString(m.formPane())
	case FocusTier:
		b.WriteString("tier: " + m.tierInput.View())
	case FocusNote:
		b.WriteString("note: " + m.noteInput.View())
	default:
		b.WriteString(dimStyle.Render("r reload · f filter · enter pick · p form · u undo · t tier · n note · i init · d demo · q quit"))
	}

	if m.notice != "" {
		b.WriteString("\n" + noticeStyle.Render(m.notice))
	}

	return b.String()
}

func (m Model) statusBar() string {
	health := statusBadStyle.Render("service down")
	if m.snap.Healthy {
		health = statusOKStyle.Render("service up")
	}

	filter := m.Filter()
	if filter == "" {
		filter = "ALL"
	}

	parts := []string{
		titleStyle.Render("draft room"),
		fmt.Sprintf("season %d", m.snap.Season),
		health,
		"filter " + filter,
	}
	if m.busy || m.ctrl.Store().Loading() {
		parts = append(parts, noticeStyle.Render("loading…"))
	}
	return strings.Join(parts, "  ·  ")
}

func (m Model) suggestionsPane() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("on the clock"))
	b.WriteString("\n")
	if len(m.snap.Suggestions.Top) == 0 {
		b.WriteString(dimStyle.Render("no suggestions"))
		b.WriteString("\n")
	}
	for _, p := range m.snap.Suggestions.Top {
		b.WriteString(fmt.Sprintf("%-4s %s\n", p.Position, p.CleanName))
	}
	b.WriteString(headerStyle.Render("up next"))
	b.WriteString("\n")
	for _, p := range m.snap.Suggestions.Next {
		b.WriteString(dimStyle.Render(fmt.Sprintf("%-4s %s", p.Position, p.CleanName)))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) picksPane() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("pick log"))
	b.WriteString("\n")
	if len(m.snap.Picks) == 0 {
		b.WriteString(dimStyle.Render("no picks yet"))
		return b.String()
	}
	// Show the most recent picks, newest first.
	const window = 10
	picks := m.snap.Picks
	for i := len(picks) - 1; i >= 0 && i >= len(picks)-window; i-- {
		p := picks[i]
		b.WriteString(fmt.Sprintf("#%-3d r%d slot %-2d %s\n", p.OverallNo, p.RoundNo, p.TeamSlotID, p.PlayerID))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) playersPane() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-4s %-24s %-5s %-5s %-5s %-6s %s",
		"pos", "player", "ecr", "tier", "adp", "team", "injury")))
	b.WriteString("\n")

	if len(m.snap.Players) == 0 {
		b.WriteString(dimStyle.Render("no players loaded"))
		return b.String()
	}

	for i, p := range m.snap.Players {
		row := fmt.Sprintf("%-4s %-24s %-5s %-5s %-5s %-6s %s",
			p.Pos,
			truncate(p.Name, 24),
			intOrDash(p.ECR),
			tierCell(p),
			adpCell(p.ADP),
			strOrDash(p.Team),
			strOrDash(p.InjuryStatus),
		)
		if i == m.cursor {
			row = selectedStyle.Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) formPane() string {
	labels := [fieldCount]string{"round", "overall", "slot", "player"}
	parts := make([]string, 0, fieldCount)
	for i := range m.form {
		parts = append(parts, labels[i]+": "+m.form[i].View())
	}
	return strings.Join(parts, "  ") + dimStyle.Render("  (tab next · enter submit · esc cancel)")
}

// tierCell marks manually overridden tiers with a star.
func tierCell(p models.EnrichedPlayer) string {
	if p.Tier == nil {
		return "-"
	}
	cell := strconv.Itoa(*p.Tier)
	if p.TierSource == models.TierSourceOverride {
		cell += "*"
	}
	return cell
}

func intOrDash(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

func adpCell(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}

func strOrDash(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
