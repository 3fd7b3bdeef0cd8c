package usecase

import (
	"context"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/store"
)

// ShowTaskInput contains the parameters for showing a task.
type ShowTaskInput struct {
	ID string
}

// ShowTaskOutput contains the task details.
type ShowTaskOutput struct {
	Task domain.Task
}

// ShowTask is the use case for displaying a single task.
type ShowTask struct {
	store *store.Store
}

// NewShowTask creates a new ShowTask use case.
func NewShowTask(s *store.Store) *ShowTask {
	return &ShowTask{store: s}
}

// Execute returns the task with the given id.
func (uc *ShowTask) Execute(_ context.Context, in ShowTaskInput) (*ShowTaskOutput, error) {
	task, ok := uc.store.Get(in.ID)
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return &ShowTaskOutput{Task: task}, nil
}
