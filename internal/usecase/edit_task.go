package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/store"
)

// EditTaskInput contains the parameters for editing a task.
// Nil fields are left unchanged.
type EditTaskInput struct {
	Title       *string
	Description *string
	Status      *domain.Status
	ID          string
}

// EditTaskOutput contains the result of editing a task.
type EditTaskOutput struct {
	Task domain.Task
}

// EditTask is the use case for editing an existing task.
type EditTask struct {
	store  *store.Store
	logger *slog.Logger
}

// NewEditTask creates a new EditTask use case.
func NewEditTask(s *store.Store, logger *slog.Logger) *EditTask {
	return &EditTask{store: s, logger: logger}
}

// Execute applies the set fields to the task. Set text fields must not
// trim to empty, and a set status must be a known value.
func (uc *EditTask) Execute(_ context.Context, in EditTaskInput) (*EditTaskOutput, error) {
	patch := domain.TaskPatch{Status: in.Status}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, domain.ErrEmptyTitle
		}
		patch.Title = &title
	}
	if in.Description != nil {
		description := strings.TrimSpace(*in.Description)
		if description == "" {
			return nil, domain.ErrEmptyDescription
		}
		patch.Description = &description
	}
	if in.Status != nil && !in.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}
	if patch.IsZero() {
		return nil, domain.ErrNoFieldsToUpdate
	}

	if _, ok := uc.store.Get(in.ID); !ok {
		return nil, domain.ErrTaskNotFound
	}

	uc.store.Update(in.ID, patch)
	task, _ := uc.store.Get(in.ID)

	if uc.logger != nil {
		uc.logger.Info("task updated", "id", in.ID)
	}

	return &EditTaskOutput{Task: task}, nil
}
