package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/taskdeck/taskdeck/internal/app"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/view"
)

// tickInterval drives notice expiry while the dashboard is idle.
const tickInterval = time.Second

// Model is the dashboard model.
type Model struct {
	container *app.Container
	keys      KeyMap
	styles    Styles

	titleInput textinput.Model
	descInput  textinput.Model

	mode      Mode
	filter    string // status filter, or domain.StatusFilterAll
	page      int    // requested 1-based page
	cursor    int    // selection index within the current page
	editingID string // task being edited by the input flow, "" = creating
	confirmID string // task awaiting delete confirmation
	errText   string // last operation error, cleared on the next action

	width  int
	height int
}

// New creates the dashboard model over the given container.
func New(c *app.Container) Model {
	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 200

	desc := textinput.New()
	desc.Placeholder = "Description"
	desc.CharLimit = 500

	return Model{
		container:  c,
		keys:       DefaultKeyMap(),
		styles:     DefaultStyles(),
		titleInput: title,
		descInput:  desc,
		filter:     domain.StatusFilterAll,
		page:       1,
	}
}

// Run opens the dashboard and blocks until the user quits.
func Run(c *app.Container) error {
	p := tea.NewProgram(New(c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return MsgTick{}
	})
}

// derivePage computes the currently visible page. A derivation that had
// to reset the selection also resets the model's requested page so the
// next render agrees with what is shown.
func (m *Model) derivePage() view.Page {
	page := view.Derive(view.Input{
		Tasks:  m.container.Store.Tasks(),
		Hidden: m.container.Store.PendingRemoval(),
		Status: m.filter,
		Page:   m.page,
	})
	if page.Reset {
		m.page = page.Page
		m.cursor = 0
	}
	if m.cursor >= len(page.Tasks) && len(page.Tasks) > 0 {
		m.cursor = len(page.Tasks) - 1
	}
	return page
}

// selectedTask returns the task under the cursor, if any.
func (m *Model) selectedTask() (domain.Task, bool) {
	page := m.derivePage()
	if m.cursor < 0 || m.cursor >= len(page.Tasks) {
		return domain.Task{}, false
	}
	return page.Tasks[m.cursor], true
}

// cycleFilter advances the status filter: all, pending, in-progress,
// completed, back to all. Changing the filter resets the page.
func cycleFilter(current string) string {
	switch current {
	case domain.StatusFilterAll:
		return string(domain.StatusPending)
	case string(domain.StatusPending):
		return string(domain.StatusInProgress)
	case string(domain.StatusInProgress):
		return string(domain.StatusCompleted)
	default:
		return domain.StatusFilterAll
	}
}

// nextStatus advances a task status: pending, in-progress, completed,
// back to pending. Unknown statuses restart at pending.
func nextStatus(current domain.Status) domain.Status {
	switch current {
	case domain.StatusPending:
		return domain.StatusInProgress
	case domain.StatusInProgress:
		return domain.StatusCompleted
	default:
		return domain.StatusPending
	}
}
