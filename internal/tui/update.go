package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/julianstephens/ecochallenge/internal/advisor"
	"github.com/julianstephens/ecochallenge/internal/cli/history"
	"github.com/julianstephens/ecochallenge/internal/constants"
	"github.com/julianstephens/ecochallenge/internal/education"
	"github.com/julianstephens/ecochallenge/internal/equivalency"
	"github.com/julianstephens/ecochallenge/internal/footprint"
	"github.com/julianstephens/ecochallenge/internal/goals"
	"github.com/julianstephens/ecochallenge/internal/models"
	"github.com/julianstephens/ecochallenge/internal/questionnaire"
	"github.com/julianstephens/ecochallenge/internal/tui/components/articles"
	"github.com/julianstephens/ecochallenge/internal/tui/components/challenges"
	"github.com/julianstephens/ecochallenge/internal/tui/components/goallist"
	"github.com/julianstephens/ecochallenge/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.resize(size.Width, size.Height)
	}

	switch m.state {
	case constants.StateCalculator, constants.StateAddGoal:
		return m.updateForm(msg)
	case constants.StateReading:
		return m.updateReading(msg)
	case constants.StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m, nil

	case challenges.ToggleChallengeMsg:
		m.toggleChallenge(msg.ID)
		return m, nil

	case goallist.AddGoalMsg:
		return m.openGoalForm(nil)

	case goallist.EditGoalMsg:
		g := msg.Goal
		return m.openGoalForm(&g)

	case goallist.ToggleGoalMsg:
		m.toggleGoal(msg.ID)
		return m, nil

	case goallist.DeleteGoalMsg:
		m.goalToDelete = msg.ID
		m.previousState = m.state
		m.state = constants.StateConfirmDelete
		return m, nil

	case articles.OpenArticleMsg:
		m.openArticle(msg.ID)
		return m, nil

	case tea.KeyMsg:
		// Let list filters receive every key
		if m.filtering() {
			return m.updateActive(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = constants.SessionState((int(m.state) + 1) % len(tabTitles))
			m.status = ""
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = constants.SessionState((int(m.state) + len(tabTitles) - 1) % len(tabTitles))
			m.status = ""
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Calc):
			return m.openCalculator()
		case key.Matches(msg, m.keys.Snapshot) && m.state == constants.StateDashboard:
			m.saveSnapshot()
			return m, nil
		}
	}

	return m.updateActive(msg)
}

func (m Model) filtering() bool {
	switch m.state {
	case constants.StateChallenges:
		return m.challengeList.Filtering()
	case constants.StateLearn:
		return m.articleList.Filtering()
	}
	return false
}

// updateActive forwards msg to the component of the current tab.
func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case constants.StateGoals:
		m.goalList, cmd = m.goalList.Update(msg)
	case constants.StateChallenges:
		m.challengeList, cmd = m.challengeList.Update(msg)
	case constants.StateLearn:
		m.articleList, cmd = m.articleList.Update(msg)
	}
	return m, cmd
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	h, v := docStyle.GetFrameSize()
	listHeight := height - 4 // tabs and help
	m.goalList.SetSize(width-h, listHeight-v)
	m.challengeList.SetSize(width-h, listHeight-v)
	m.articleList.SetSize(width-h, listHeight-v)
	m.reader.Width = width - h
	m.reader.Height = listHeight - v
	if m.form != nil {
		m.form = m.form.WithWidth(width - h)
	}
}

func (m *Model) setStatus(format string, args ...interface{}) {
	m.status = fmt.Sprintf(format, args...)
}

func (m *Model) setError(err error) {
	m.status = dangerStyle.Render("Error: " + err.Error())
}

func (m *Model) reloadOrReport() {
	if err := m.reload(); err != nil {
		m.setError(err)
	}
}

func (m Model) startForm(form *huh.Form, state constants.SessionState) (tea.Model, tea.Cmd) {
	m.previousState = m.state
	m.state = state
	m.formError = ""
	m.status = ""
	if m.width > 0 {
		h, _ := docStyle.GetFrameSize()
		form = form.WithWidth(m.width - h)
	}
	m.form = form
	return m, m.form.Init()
}

func (m *Model) closeForm() {
	m.state = m.previousState
	m.form = nil
	m.calcForm = nil
	m.goalForm = nil
	m.editingGoal = nil
	m.formError = ""
}

func (m Model) openCalculator() (tea.Model, tea.Cmd) {
	answers := questionnaire.Defaults()
	if m.footprint != nil {
		answers = m.footprint.Answers
	}
	m.calcForm = questionnaire.NewFormModel(answers)
	return m.startForm(questionnaire.NewForm(m.calcForm), constants.StateCalculator)
}

func (m Model) openGoalForm(g *models.PersonalGoal) (tea.Model, tea.Cmd) {
	m.editingGoal = g
	m.goalForm = questionnaire.NewGoalFormModel(g, m.app.Now())
	return m.startForm(questionnaire.NewGoalForm(m.goalForm), constants.StateAddGoal)
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEsc:
			m.closeForm()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		var err error
		if m.state == constants.StateCalculator {
			err = m.submitCalculator()
		} else {
			err = m.submitGoal()
		}
		if err != nil {
			// Stay in the form so the user can correct the values
			m.formError = err.Error()
			m.form.State = huh.StateNormal
			return m, cmd
		}
		m.closeForm()
		return m, nil
	case huh.StateAborted:
		m.closeForm()
		return m, nil
	}
	return m, cmd
}

func (m *Model) submitCalculator() error {
	answers, err := m.calcForm.Answers()
	if err != nil {
		return err
	}
	return m.saveFootprint(answers)
}

// saveFootprint estimates answers and stores the result as the current
// footprint.
func (m *Model) saveFootprint(answers models.QuestionnaireAnswers) error {
	breakdown, err := footprint.Estimate(answers)
	if err != nil {
		return err
	}
	if err := m.app.Store.SaveCurrentFootprint(models.CurrentFootprint{
		Answers:   answers,
		Breakdown: breakdown,
		UpdatedAt: m.app.Now(),
	}); err != nil {
		return fmt.Errorf("failed to save footprint: %w", err)
	}

	m.previousState = constants.StateDashboard
	m.setStatus("Footprint updated: %s per year. Press 's' to save it to history.", equivalency.FormatKg(breakdown.Total))
	return m.reload()
}

func (m *Model) submitGoal() error {
	now := m.app.Now()
	all, err := m.app.Store.LoadGoals()
	if err != nil {
		return fmt.Errorf("failed to load goals: %w", err)
	}

	var g models.PersonalGoal
	if m.editingGoal == nil {
		if g, err = m.goalForm.Goal(now); err != nil {
			return err
		}
		all = goals.Add(all, g)
	} else {
		if g, err = m.goalForm.Apply(*m.editingGoal); err != nil {
			return err
		}
		if all, err = goals.Update(all, g); err != nil {
			return err
		}
	}

	m.app.PerformAutomaticBackup()
	if err := m.app.Store.SaveGoals(all); err != nil {
		return fmt.Errorf("failed to save goals: %w", err)
	}
	m.setStatus("Saved goal %q", g.Title)
	return m.reload()
}

func (m *Model) saveGoals(update func([]models.PersonalGoal) ([]models.PersonalGoal, error)) error {
	all, err := m.app.Store.LoadGoals()
	if err != nil {
		return fmt.Errorf("failed to load goals: %w", err)
	}
	if all, err = update(all); err != nil {
		return err
	}
	m.app.PerformAutomaticBackup()
	if err := m.app.Store.SaveGoals(all); err != nil {
		return fmt.Errorf("failed to save goals: %w", err)
	}
	return m.reload()
}

func (m *Model) toggleGoal(id string) {
	err := m.saveGoals(func(all []models.PersonalGoal) ([]models.PersonalGoal, error) {
		return goals.ToggleCompletion(all, id)
	})
	if err != nil {
		m.setError(err)
	}
}

func (m *Model) deleteGoal(id string) {
	err := m.saveGoals(func(all []models.PersonalGoal) ([]models.PersonalGoal, error) {
		return goals.Remove(all, id)
	})
	if err != nil {
		m.setError(err)
		return
	}
	m.setStatus("Goal deleted")
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Confirm):
		m.deleteGoal(m.goalToDelete)
	case key.Matches(keyMsg, m.keys.Cancel):
	default:
		return m, nil
	}
	m.goalToDelete = ""
	m.state = m.previousState
	return m, nil
}

func (m *Model) toggleChallenge(id string) {
	ch, ok := advisor.Find(m.app.GetAdvisor().Catalog(), id)
	if !ok {
		m.setError(fmt.Errorf("challenge %q not found", id))
		return
	}
	completed, err := m.app.Store.LoadCompletedChallenges()
	if err != nil {
		m.setError(fmt.Errorf("failed to load completed challenges: %w", err))
		return
	}
	wasDone := advisor.CompletedSet(completed)[id]

	m.app.PerformAutomaticBackup()
	if err := m.app.Store.SaveCompletedChallenges(advisor.ToggleCompleted(completed, id)); err != nil {
		m.setError(fmt.Errorf("failed to save completed challenges: %w", err))
		return
	}
	if err := m.app.RefreshProfile(); err != nil {
		m.setError(err)
		return
	}

	if wasDone {
		m.setStatus("Unmarked %s (-%d pts)", ch.Title, ch.Points)
	} else {
		m.setStatus("Completed %s (+%d pts)", ch.Title, ch.Points)
	}
	m.reloadOrReport()
}

// saveSnapshot appends the current footprint to history for today.
func (m *Model) saveSnapshot() {
	if m.footprint == nil {
		m.setStatus("Run the calculator first (press 'c')")
		return
	}
	entry := models.HistoricalEntry{
		ID:   uuid.NewString(),
		Date: utils.Today(m.app.Now()),
		Data: m.footprint.Breakdown,
	}
	if err := history.Insert(m.app, entry); err != nil {
		m.setError(err)
		return
	}
	m.setStatus("Saved snapshot for %s", entry.Date)
	m.reloadOrReport()
}

func (m *Model) openArticle(id string) {
	article, err := education.Find(id)
	if err != nil {
		m.setError(err)
		return
	}

	width := m.reader.Width
	if width <= 0 {
		width = 80
	}
	body := lipgloss.NewStyle().Width(width).Render(strings.TrimSpace(article.Content))
	m.reader.SetContent(lipgloss.JoinVertical(lipgloss.Left,
		activeTabStyle.Render(article.Title),
		inactiveTabStyle.Render(fmt.Sprintf("%s · %s · %d min read", article.Type, article.Level, article.ReadTime)),
		"",
		body,
	))
	m.reader.GotoTop()
	m.previousState = m.state
	m.state = constants.StateReading
}

func (m Model) updateReading(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.Type == tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case key.Matches(keyMsg, m.keys.Back), keyMsg.String() == "q":
			m.state = m.previousState
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.reader, cmd = m.reader.Update(msg)
	return m, cmd
}
