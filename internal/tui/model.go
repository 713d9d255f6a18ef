package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/example/perfdash/client"
)

type view int

const (
	viewObjectives view = iota
	viewForm
	viewProgress
	viewConfirm
	viewContract
)

// Model is the dashboard root. All mutation flows go through the shared
// TrackerState so the dialog lifecycle matches the tracker contract: dialogs
// settle on success and stay open on failure.
type Model struct {
	client  *client.Client
	session *client.Session
	tracker *client.TrackerState
	styles  Styles

	view       view
	cursor     int
	objectives []client.Objective
	stats      *client.Stats
	contract   *client.Contract

	form         *objectiveForm
	progress     *progressForm
	statusMsg    string
	statusFilter int // index into filterOptions
	width        int
	height       int
	loading      bool
}

var filterOptions = []string{"", "On Track", "At Risk", "Delayed", "Completed"}

func NewModel(c *client.Client, session *client.Session) *Model {
	return &Model{
		client:  c,
		session: session,
		tracker: client.NewTrackerState(),
		styles:  DefaultStyles(),
		loading: true,
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadObjectives(), m.loadStats())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case objectivesMsg:
		m.objectives = msg
		m.loading = false
		if m.cursor >= len(m.objectives) {
			m.cursor = 0
		}
		return m, nil

	case statsMsg:
		m.stats = msg
		return m, nil

	case contractMsg:
		m.contract = msg
		return m, nil

	case saveSettledMsg:
		if msg.err != nil {
			// Keep the dialog open so the entered data survives.
			m.tracker.SaveSettled(false)
			m.form.errText = msg.err.Error()
			return m, nil
		}
		m.tracker.SaveSettled(true)
		m.form = nil
		m.view = viewObjectives
		m.statusMsg = "Objective saved"
		return m, tea.Batch(m.loadObjectives(), m.loadStats())

	case progressSettledMsg:
		if msg.err != nil {
			m.tracker.ProgressSettled(false)
			m.progress.errText = msg.err.Error()
			return m, nil
		}
		m.tracker.ProgressSettled(true)
		m.progress = nil
		m.view = viewObjectives
		m.statusMsg = "Progress updated"
		return m, tea.Batch(m.loadObjectives(), m.loadStats())

	case deleteSettledMsg:
		m.tracker.DeleteSettled(msg.err == nil)
		if msg.err != nil {
			// Stay on the confirm dialog for retry or cancel.
			m.statusMsg = "Delete failed: " + msg.err.Error()
			return m, nil
		}
		m.view = viewObjectives
		m.statusMsg = "Objective deleted"
		return m, tea.Batch(m.loadObjectives(), m.loadStats())

	case errMsg:
		m.loading = false
		m.statusMsg = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, m.updateActiveForm(msg)
}

func (m *Model) updateActiveForm(msg tea.Msg) tea.Cmd {
	switch m.view {
	case viewForm:
		if m.form != nil {
			return m.form.update(msg)
		}
	case viewProgress:
		if m.progress != nil {
			return m.progress.update(msg)
		}
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.view {
	case viewForm:
		return m.handleFormKey(msg)
	case viewProgress:
		return m.handleProgressKey(msg)
	case viewConfirm:
		return m.handleConfirmKey(msg)
	case viewContract:
		return m.handleContractKey(msg)
	}
	return m.handleListKey(msg)
}

func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.objectives)-1 {
			m.cursor++
		}

	case "enter", " ":
		if o := m.selected(); o != nil {
			m.tracker.ToggleExpand(o.ID)
		}

	case "a":
		m.tracker.OpenCreate()
		m.form = newObjectiveForm(nil)
		m.view = viewForm

	case "e":
		if o := m.selected(); o != nil {
			m.tracker.OpenEdit(*o)
			m.form = newObjectiveForm(o)
			m.view = viewForm
		}

	case "p":
		if o := m.selected(); o != nil {
			m.tracker.OpenProgress(*o)
			m.progress = newProgressForm(*o)
			m.view = viewProgress
		}

	case "d":
		if o := m.selected(); o != nil {
			m.tracker.RequestDelete(o.ID)
			m.view = viewConfirm
		}

	case "f":
		m.statusFilter = (m.statusFilter + 1) % len(filterOptions)
		m.tracker.SetStatusFilter(filterOptions[m.statusFilter])
		m.loading = true
		return m, m.loadObjectives()

	case "s":
		if m.tracker.Filters.SortOrder == "asc" {
			m.tracker.SetSort("due_date", "desc")
		} else {
			m.tracker.SetSort("due_date", "asc")
		}
		m.loading = true
		return m, m.loadObjectives()

	case "c":
		m.view = viewContract
		return m, m.loadContract()

	case "r":
		m.client.Cache().Invalidate("objectives:")
		m.loading = true
		return m, tea.Batch(m.loadObjectives(), m.loadStats())
	}

	return m, nil
}

func (m *Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form = nil
		m.tracker.SaveDialogOpen = false
		m.tracker.Editing = nil
		m.view = viewObjectives
		return m, nil

	case "tab", "down":
		m.form.nextField()
		return m, nil
	case "shift+tab", "up":
		m.form.prevField()
		return m, nil

	case "left":
		if m.form.focus == fieldCount {
			m.form.cycleStatus(-1)
			return m, nil
		}
	case "right":
		if m.form.focus == fieldCount {
			m.form.cycleStatus(1)
			return m, nil
		}

	case "enter":
		form, err := m.form.values()
		if err != nil {
			m.form.errText = err.Error()
			return m, nil
		}
		m.form.errText = ""
		return m, m.saveObjective(form)
	}

	return m, m.form.update(msg)
}

func (m *Model) handleProgressKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.progress = nil
		m.tracker.ProgressDialogOpen = false
		m.tracker.ProgressTarget = nil
		m.view = viewObjectives
		return m, nil

	case "left":
		if !m.progress.noteFocus {
			m.progress.adjust(-5)
			return m, nil
		}
	case "right":
		if !m.progress.noteFocus {
			m.progress.adjust(5)
			return m, nil
		}

	case "s":
		if !m.progress.noteFocus {
			m.progress.statusIdx = (m.progress.statusIdx + 1) % len(statusOptions)
			return m, nil
		}

	case "n":
		if !m.progress.noteFocus {
			m.progress.noteFocus = true
			m.progress.note.Focus()
			return m, nil
		}

	case "enter":
		target := m.tracker.ProgressTarget
		if target == nil {
			m.view = viewObjectives
			return m, nil
		}
		form, err := m.progress.values()
		if err != nil {
			m.progress.errText = err.Error()
			return m, nil
		}
		m.progress.errText = ""
		return m, m.saveProgress(target.ID, form)
	}

	return m, m.progress.update(msg)
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		id := m.tracker.ConfirmDelete()
		if id == "" {
			m.view = viewObjectives
			return m, nil
		}
		return m, m.deleteObjective(id)

	case "n", "esc":
		m.tracker.CancelDelete()
		m.view = viewObjectives
	}
	return m, nil
}

func (m *Model) handleContractKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "c":
		m.view = viewObjectives
	}
	return m, nil
}

func (m *Model) selected() *client.Objective {
	if m.cursor < 0 || m.cursor >= len(m.objectives) {
		return nil
	}
	return &m.objectives[m.cursor]
}
