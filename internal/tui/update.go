package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/usecase"

	"github.com/charmbracelet/bubbles/key"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case MsgTick:
		// Re-render so expired notices disappear.
		return m, tickCmd()

	case MsgTaskCreated, MsgTaskUpdated, MsgDeleteCommitted:
		m.derivePage()
		return m, nil

	case MsgError:
		m.errText = msg.Err.Error()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeInputTitle, ModeInputDesc:
		return m.handleInputKey(msg)
	case ModeConfirm:
		return m.handleConfirmKey(msg)
	case ModeHelp:
		m.mode = ModeNormal
		return m, nil
	case ModeNormal:
	}
	return m.handleNormalKey(msg)
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errText = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		page := m.derivePage()
		if m.cursor < len(page.Tasks)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		if m.page > 1 {
			m.page--
			m.cursor = 0
		}
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		page := m.derivePage()
		if m.page < page.TotalPages {
			m.page++
			m.cursor = 0
		}
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.filter = cycleFilter(m.filter)
		m.page = 1
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.New):
		m.editingID = ""
		m.titleInput.SetValue("")
		m.descInput.SetValue("")
		m.mode = ModeInputTitle
		return m, m.titleInput.Focus()

	case key.Matches(msg, m.keys.Edit):
		task, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		m.editingID = task.ID
		m.titleInput.SetValue(task.Title)
		m.descInput.SetValue(task.Description)
		m.mode = ModeInputTitle
		return m, m.titleInput.Focus()

	case key.Matches(msg, m.keys.EditStatus):
		task, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		return m, m.setStatusCmd(task.ID, nextStatus(task.Status))

	case key.Matches(msg, m.keys.Delete):
		task, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		m.confirmID = task.ID
		m.mode = ModeConfirm
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.container.Store.SetIdentity(m.container.Store.Identity())
		m.page = 1
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil
	}

	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.titleInput.Blur()
		m.descInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if m.mode == ModeInputTitle {
			m.mode = ModeInputDesc
			m.titleInput.Blur()
			return m, m.descInput.Focus()
		}
		// Description submitted: run the create or edit.
		m.mode = ModeNormal
		m.descInput.Blur()
		title := m.titleInput.Value()
		description := m.descInput.Value()
		if m.editingID != "" {
			return m, m.editCmd(m.editingID, title, description)
		}
		return m, m.createCmd(title, description)
	}

	var cmd tea.Cmd
	if m.mode == ModeInputTitle {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.descInput, cmd = m.descInput.Update(msg)
	}
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := m.confirmID
	m.confirmID = ""
	m.mode = ModeNormal

	if key.Matches(msg, m.keys.Confirm) {
		return m, m.deleteCmd(id)
	}
	return m, nil
}

// createCmd runs the create use case off the update loop.
func (m Model) createCmd(title, description string) tea.Cmd {
	uc := m.container.CreateTaskUseCase()
	return func() tea.Msg {
		out, err := uc.Execute(context.Background(), usecase.CreateTaskInput{
			Title:       title,
			Description: description,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskCreated{Task: out.Task}
	}
}

// editCmd runs the edit use case for the task being edited.
func (m Model) editCmd(id, title, description string) tea.Cmd {
	uc := m.container.EditTaskUseCase()
	return func() tea.Msg {
		out, err := uc.Execute(context.Background(), usecase.EditTaskInput{
			ID:          id,
			Title:       &title,
			Description: &description,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskUpdated{Task: out.Task}
	}
}

// setStatusCmd advances the task to the given status.
func (m Model) setStatusCmd(id string, status domain.Status) tea.Cmd {
	uc := m.container.SetStatusUseCase()
	return func() tea.Msg {
		out, err := uc.Execute(context.Background(), usecase.SetStatusInput{ID: id, Status: status})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskUpdated{Task: out.Task}
	}
}

// deleteCmd schedules the delete. The task is hidden from the view
// immediately; the command resolves once the delete commits.
func (m Model) deleteCmd(id string) tea.Cmd {
	uc := m.container.DeleteTaskUseCase()
	return func() tea.Msg {
		out, err := uc.Execute(context.Background(), usecase.DeleteTaskInput{ID: id})
		if err != nil {
			return MsgError{Err: err}
		}
		<-out.Done
		return MsgDeleteCommitted{TaskID: id}
	}
}
