package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/ecochallenge/internal/advisor"
	"github.com/julianstephens/ecochallenge/internal/cli"
	"github.com/julianstephens/ecochallenge/internal/constants"
	"github.com/julianstephens/ecochallenge/internal/education"
	"github.com/julianstephens/ecochallenge/internal/models"
	"github.com/julianstephens/ecochallenge/internal/questionnaire"
	"github.com/julianstephens/ecochallenge/internal/storage"
	"github.com/julianstephens/ecochallenge/internal/tui/components/articles"
	"github.com/julianstephens/ecochallenge/internal/tui/components/challenges"
	"github.com/julianstephens/ecochallenge/internal/tui/components/goallist"
)

var tabTitles = []string{"Dashboard", "History", "Goals", "Challenges", "Learn"}

type Model struct {
	app           *cli.Context
	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model
	goalList      goallist.Model
	challengeList challenges.Model
	articleList   articles.Model
	reader        viewport.Model
	form          *huh.Form
	calcForm      *questionnaire.FormModel
	goalForm      *questionnaire.GoalFormModel
	editingGoal   *models.PersonalGoal
	goalToDelete  string
	footprint     *models.CurrentFootprint
	history       []models.HistoricalEntry
	points        int
	status        string
	formError     string
	quitting      bool
	width         int
	height        int
}

// NewModel loads the stored data into a dashboard model.
func NewModel(app *cli.Context) (Model, error) {
	m := Model{
		app:           app,
		state:         constants.StateDashboard,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		goalList:      goallist.New(nil, models.FootprintBreakdown{}, app.Now()),
		challengeList: challenges.New(nil, nil, 0, 0),
		articleList:   articles.New(education.All(), 0, 0),
		reader:        viewport.New(0, 0),
	}
	if err := m.reload(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// reload refreshes every view from the store.
func (m *Model) reload() error {
	store := m.app.Store

	fp, err := store.GetCurrentFootprint()
	switch {
	case err == nil:
		m.footprint = &fp
	case errors.Is(err, storage.ErrNotFound):
		m.footprint = nil
	default:
		return fmt.Errorf("failed to load current footprint: %w", err)
	}

	if m.history, err = store.LoadHistory(); err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	all, err := store.LoadGoals()
	if err != nil {
		return fmt.Errorf("failed to load goals: %w", err)
	}
	m.goalList.SetGoals(all, m.breakdown(), m.app.Now())

	completed, err := store.LoadCompletedChallenges()
	if err != nil {
		return fmt.Errorf("failed to load completed challenges: %w", err)
	}
	catalog := m.app.GetAdvisor().Catalog()
	done := advisor.CompletedSet(completed)
	m.challengeList.SetChallenges(catalog, done)
	m.points = advisor.TotalPoints(catalog, done)
	return nil
}

func (m Model) breakdown() models.FootprintBreakdown {
	if m.footprint == nil {
		return models.FootprintBreakdown{}
	}
	return m.footprint.Breakdown
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Calc, m.keys.Quit, m.keys.Help}
	gk := m.goalList.Keys()
	switch m.state {
	case constants.StateDashboard:
		keys = append(keys, m.keys.Snapshot)
	case constants.StateGoals:
		keys = append(keys, gk.Add, gk.Edit, gk.Toggle, gk.Delete)
	case constants.StateChallenges:
		keys = append(keys, challenges.DefaultKeyMap().Toggle)
	case constants.StateLearn:
		keys = append(keys, articles.DefaultKeyMap().Open)
	case constants.StateReading, constants.StateCalculator, constants.StateAddGoal:
		keys = []key.Binding{m.keys.Back}
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Calc, m.keys.Quit, m.keys.Help}
	gk := m.goalList.Keys()

	var actions []key.Binding
	switch m.state {
	case constants.StateDashboard:
		actions = []key.Binding{m.keys.Snapshot}
	case constants.StateGoals:
		actions = []key.Binding{gk.Up, gk.Down, gk.Add, gk.Edit, gk.Toggle, gk.Delete}
	case constants.StateChallenges:
		actions = []key.Binding{challenges.DefaultKeyMap().Toggle}
	case constants.StateLearn:
		actions = []key.Binding{articles.DefaultKeyMap().Open}
	}
	return [][]key.Binding{global, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}
