package challenges

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/ecochallenge/internal/models"
)

type ToggleChallengeMsg struct {
	ID string
}

type Item struct {
	Challenge models.Challenge
	Done      bool
}

func (i Item) Title() string {
	mark := "○"
	if i.Done {
		mark = "✓"
	}
	return fmt.Sprintf("%s %s %s", mark, i.Challenge.Icon, i.Challenge.Title)
}

func (i Item) Description() string {
	c := i.Challenge
	return fmt.Sprintf("%s · %s · %s · %d pts", c.Category.Label(), c.Difficulty, c.Duration, c.Points)
}

func (i Item) FilterValue() string { return i.Challenge.Title }

type KeyMap struct {
	Toggle key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "toggle done"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func items(challenges []models.Challenge, done map[string]bool) []list.Item {
	out := make([]list.Item, len(challenges))
	for i, c := range challenges {
		out[i] = Item{Challenge: c, Done: done[c.ID]}
	}
	return out
}

func New(challenges []models.Challenge, done map[string]bool, width, height int) Model {
	l := list.New(items(challenges, done), list.NewDefaultDelegate(), width, height)
	l.Title = "Challenges"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle}
	}

	return Model{list: l, keys: keys}
}

// SetChallenges replaces the items and keeps the cursor position.
func (m *Model) SetChallenges(challenges []models.Challenge, done map[string]bool) {
	idx := m.list.Index()
	m.list.SetItems(items(challenges, done))
	if idx < len(challenges) {
		m.list.Select(idx)
	}
}

func (m Model) Selected() (Item, bool) {
	i, ok := m.list.SelectedItem().(Item)
	return i, ok
}

func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && !m.Filtering() && key.Matches(msg, m.keys.Toggle) {
		if i, ok := m.Selected(); ok {
			return m, func() tea.Msg { return ToggleChallengeMsg{ID: i.Challenge.ID} }
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return "\n  No challenges available."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
