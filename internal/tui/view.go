package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/ecochallenge/internal/advisor"
	"github.com/julianstephens/ecochallenge/internal/aggregate"
	"github.com/julianstephens/ecochallenge/internal/cli"
	"github.com/julianstephens/ecochallenge/internal/constants"
	"github.com/julianstephens/ecochallenge/internal/equivalency"
	"github.com/julianstephens/ecochallenge/internal/footprint"
	"github.com/julianstephens/ecochallenge/internal/models"
	"github.com/julianstephens/ecochallenge/internal/utils"
)

const barWidth = 24

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateDashboard:
		content = docStyle.Render(m.viewDashboard())
	case constants.StateHistory:
		content = docStyle.Render(m.viewHistory())
	case constants.StateGoals:
		content = docStyle.Render(m.goalList.View())
	case constants.StateChallenges:
		content = docStyle.Render(m.viewChallenges())
	case constants.StateLearn:
		content = docStyle.Render(m.articleList.View())
	case constants.StateReading:
		content = docStyle.Render(m.reader.View())
	case constants.StateCalculator, constants.StateAddGoal:
		content = m.viewForm()
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	var status string
	if m.status != "" {
		status = statusStyle.Render(m.status)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		status,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	active := m.state
	if int(active) >= len(tabTitles) {
		active = m.previousState
	}
	tabs := make([]string, 0, len(tabTitles))
	for i, title := range tabTitles {
		if active == constants.SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewDashboard() string {
	if m.footprint == nil {
		return "No footprint calculated yet.\nPress 'c' to run the calculator."
	}

	b := m.footprint.Breakdown
	perf := footprint.Grade(b.Total)

	var s strings.Builder
	fmt.Fprintf(&s, "%s %s (%s t CO₂e per year)\n", cli.HeaderStyle.Render("Annual footprint:"),
		equivalency.FormatKg(b.Total), equivalency.FormatTonnes(b.Total))
	fmt.Fprintf(&s, "%s %s\n\n", cli.ToneStyle(perf.Tone).Render(perf.Level+":"), perf.Message)

	shares := aggregate.ComputeShares(b)
	for _, c := range models.FootprintCategories {
		v, _ := b.Value(c)
		pct := shares.Of(c)
		fmt.Fprintf(&s, "  %s %-12s %s %9s  %5.1f%%\n", c.Icon(), c.Label(),
			cli.ToneStyle(cli.ShareTone(pct)).Render(cli.Bar(v, b.Total, barWidth)),
			equivalency.FormatKg(v), pct)
	}

	s.WriteString("\n")
	scale := footprint.ScaleMax(b.Total)
	for _, bm := range footprint.Benchmarks(b.Total) {
		fmt.Fprintf(&s, "  %-18s %s %9s\n", bm.Label, cli.Bar(bm.Kg, scale, barWidth), equivalency.FormatKg(bm.Kg))
	}

	if out, err := equivalency.Calculate(float64(b.Total)); err == nil && !out.IsEmpty {
		s.WriteString("\n" + cli.MutedStyle.Render(out.DisplayText) + "\n")
	}

	if recs := m.app.GetAdvisor().Recommendations(b); len(recs) > 0 {
		s.WriteString("\n" + cli.HeaderStyle.Render("Recommendations") + "\n")
		for _, r := range recs {
			fmt.Fprintf(&s, "  %s %s\n", r.Category.Icon(), r.Suggestion)
		}
	}

	level := advisor.LevelFor(m.points)
	fmt.Fprintf(&s, "\n%s %s %s, %d points\n", cli.HeaderStyle.Render("Level:"), level.Icon, level.Name, m.points)
	return s.String()
}

func (m Model) viewHistory() string {
	if len(m.history) == 0 {
		return "No history yet.\nPress 's' on the dashboard to save your current footprint."
	}

	now := m.app.Now()
	var s strings.Builder
	period, err := m.app.ResolvePeriod("")
	if err == nil {
		filtered := aggregate.FilterByPeriod(m.history, period, now)
		if trend, ok := aggregate.ComputeTrend(filtered); ok {
			fmt.Fprintf(&s, "%s %+.1f%% over %s entries (%s)\n\n", cli.HeaderStyle.Render("Trend:"),
				trend.PercentChange, equivalency.FormatNumber(int64(len(filtered))), period.Label())
		}
	}

	rows := len(m.history)
	if limit := m.height - 10; limit > 0 && rows > limit {
		rows = limit
	}
	for i, e := range m.history[:rows] {
		delta := ""
		if i+1 < len(m.history) {
			d := e.Data.Total - m.history[i+1].Data.Total
			switch {
			case d < 0:
				delta = cli.SuccessStyle.Render(fmt.Sprintf("▼ %s", equivalency.FormatNumber(int64(-d))))
			case d > 0:
				delta = cli.DangerStyle.Render(fmt.Sprintf("▲ %s", equivalency.FormatNumber(int64(d))))
			}
		}
		date := fmt.Sprintf("%s (%s)", e.Date, utils.RelativeDate(e.Date, now))
		fmt.Fprintf(&s, "  %-28s %10s  %s\n", date, equivalency.FormatKg(e.Data.Total), delta)
		if e.Notes != "" {
			s.WriteString("    " + cli.MutedStyle.Render(e.Notes) + "\n")
		}
	}
	return s.String()
}

func (m Model) viewChallenges() string {
	level := advisor.LevelFor(m.points)
	header := fmt.Sprintf("%s %s · %d points", level.Icon, level.Name, m.points)
	if next, ok := advisor.NextLevel(m.points); ok {
		header += cli.MutedStyle.Render(fmt.Sprintf(" · %d to %s", next.MinPoints-m.points, next.Name))
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, "", m.challengeList.View())
}

func (m Model) viewForm() string {
	if m.form == nil {
		return ""
	}
	title := "Carbon footprint calculator"
	switch {
	case m.state == constants.StateAddGoal && m.editingGoal != nil:
		title = "Edit goal"
	case m.state == constants.StateAddGoal:
		title = "New goal"
	}

	parts := []string{cli.HeaderStyle.Render(title), "", m.form.View()}
	if m.formError != "" {
		parts = append(parts, "", dangerStyle.Render(m.formError))
	}
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Are you sure you want to delete this goal?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
