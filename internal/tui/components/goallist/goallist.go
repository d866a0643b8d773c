package goallist

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/ecochallenge/internal/equivalency"
	"github.com/julianstephens/ecochallenge/internal/goals"
	"github.com/julianstephens/ecochallenge/internal/models"
)

type AddGoalMsg struct{}

type EditGoalMsg struct {
	Goal models.PersonalGoal
}

type ToggleGoalMsg struct {
	ID string
}

type DeleteGoalMsg struct {
	ID string
}

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Add    key.Binding
	Edit   key.Binding
	Toggle key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "toggle done"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

var (
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	overdueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Model lists goals with a progress bar against the current footprint.
type Model struct {
	goals   []models.PersonalGoal
	current models.FootprintBreakdown
	now     time.Time
	cursor  int
	keys    KeyMap
	bar     progress.Model
	width   int
	height  int
}

func New(list []models.PersonalGoal, current models.FootprintBreakdown, now time.Time) Model {
	return Model{
		goals:   list,
		current: current,
		now:     now,
		keys:    DefaultKeyMap(),
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(30)),
	}
}

func (m *Model) SetGoals(list []models.PersonalGoal, current models.FootprintBreakdown, now time.Time) {
	m.goals = list
	m.current = current
	m.now = now
	if m.cursor >= len(list) {
		m.cursor = max(0, len(list)-1)
	}
}

func (m Model) Keys() KeyMap { return m.keys }

func (m Model) Selected() (models.PersonalGoal, bool) {
	if m.cursor < 0 || m.cursor >= len(m.goals) {
		return models.PersonalGoal{}, false
	}
	return m.goals[m.cursor], true
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.goals)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Add):
		return m, func() tea.Msg { return AddGoalMsg{} }
	case key.Matches(keyMsg, m.keys.Edit):
		if g, ok := m.Selected(); ok {
			return m, func() tea.Msg { return EditGoalMsg{Goal: g} }
		}
	case key.Matches(keyMsg, m.keys.Toggle):
		if g, ok := m.Selected(); ok {
			return m, func() tea.Msg { return ToggleGoalMsg{ID: g.ID} }
		}
	case key.Matches(keyMsg, m.keys.Delete):
		if g, ok := m.Selected(); ok {
			return m, func() tea.Msg { return DeleteGoalMsg{ID: g.ID} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	if len(m.goals) == 0 {
		return "\n  No goals yet.\n  Press 'a' to add one."
	}

	var b strings.Builder
	for i, g := range m.goals {
		pct, err := goals.Progress(g, m.current)
		if err != nil {
			pct = 0
		}

		title := fmt.Sprintf("%s %s", g.Category.Icon(), g.Title)
		if g.Completed {
			title = "✓ " + title
		} else {
			title = "○ " + title
		}
		if i == m.cursor {
			title = selectedStyle.Render("> " + title)
		} else {
			title = "  " + title
		}
		b.WriteString(title + "\n")

		due := ""
		if days, err := goals.DaysRemaining(g, m.now); err == nil {
			switch {
			case g.Completed:
				due = "completed"
			case days < 0:
				due = overdueStyle.Render(fmt.Sprintf("overdue by %d days", -days))
			default:
				due = fmt.Sprintf("%d days left", days)
			}
		}
		b.WriteString(fmt.Sprintf("    %s %3.0f%%  %s\n", m.bar.ViewAs(pct/100), pct, due))
		b.WriteString(mutedStyle.Render(fmt.Sprintf("    target -%s kg by %s", equivalency.FormatFloat(g.TargetReduction, 0), g.TargetDate)))
		b.WriteString("\n\n")
	}
	return b.String()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
