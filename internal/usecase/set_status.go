package usecase

import (
	"context"
	"log/slog"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/store"
)

// SetStatusInput contains the parameters for a status transition.
type SetStatusInput struct {
	ID     string
	Status domain.Status
}

// SetStatusOutput contains the result of a status transition.
type SetStatusOutput struct {
	Task domain.Task
}

// SetStatus is the use case for moving a task between statuses.
// Any known status can transition to any other; there is no ordering
// between them.
type SetStatus struct {
	store  *store.Store
	logger *slog.Logger
}

// NewSetStatus creates a new SetStatus use case.
func NewSetStatus(s *store.Store, logger *slog.Logger) *SetStatus {
	return &SetStatus{store: s, logger: logger}
}

// Execute sets the task's status.
func (uc *SetStatus) Execute(_ context.Context, in SetStatusInput) (*SetStatusOutput, error) {
	if !in.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}
	if _, ok := uc.store.Get(in.ID); !ok {
		return nil, domain.ErrTaskNotFound
	}

	status := in.Status
	uc.store.Update(in.ID, domain.TaskPatch{Status: &status})
	task, _ := uc.store.Get(in.ID)

	if uc.logger != nil {
		uc.logger.Info("status changed", "id", in.ID, "status", string(in.Status))
	}

	return &SetStatusOutput{Task: task}, nil
}
