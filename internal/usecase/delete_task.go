package usecase

import (
	"context"
	"log/slog"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/store"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	ID  string
	Now bool // commit immediately instead of after the removal delay
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct {
	// Done is closed when the delete has committed. For immediate
	// deletes it is already closed on return.
	Done <-chan struct{}
}

// DeleteTask is the use case for removing a task. By default the task is
// hidden right away and the delete commits after the store's removal
// delay; once scheduled it cannot be cancelled.
type DeleteTask struct {
	store  *store.Store
	logger *slog.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(s *store.Store, logger *slog.Logger) *DeleteTask {
	return &DeleteTask{store: s, logger: logger}
}

// Execute deletes the task with the given id.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	if _, ok := uc.store.Get(in.ID); !ok {
		return nil, domain.ErrTaskNotFound
	}

	if uc.logger != nil {
		uc.logger.Info("task deleted", "id", in.ID, "immediate", in.Now)
	}

	if in.Now {
		uc.store.Delete(in.ID)
		done := make(chan struct{})
		close(done)
		return &DeleteTaskOutput{Done: done}, nil
	}

	return &DeleteTaskOutput{Done: uc.store.ScheduleDelete(in.ID)}, nil
}
