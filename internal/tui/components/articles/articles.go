package articles

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/ecochallenge/internal/models"
)

type OpenArticleMsg struct {
	ID string
}

type Item struct {
	Content models.EducationalContent
}

func (i Item) Title() string {
	return i.Content.Category.Icon() + " " + i.Content.Title
}

func (i Item) Description() string {
	return fmt.Sprintf("%s · %s · %d min", i.Content.Type, i.Content.Level, i.Content.ReadTime)
}

func (i Item) FilterValue() string { return i.Content.Title }

type KeyMap struct {
	Open key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "read"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(content []models.EducationalContent, width, height int) Model {
	items := make([]list.Item, len(content))
	for i, c := range content {
		items[i] = Item{Content: c}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Learn"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Open}
	}
	return Model{list: l, keys: keys}
}

func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && !m.Filtering() && key.Matches(msg, m.keys.Open) {
		if i, ok := m.list.SelectedItem().(Item); ok {
			return m, func() tea.Msg { return OpenArticleMsg{ID: i.Content.ID} }
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
