// Package usecase contains application use cases.
package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/store"
)

// CreateTaskInput contains the parameters for creating a task.
type CreateTaskInput struct {
	Title       string // required, trimmed before validation
	Description string // required, trimmed before validation
}

// CreateTaskOutput contains the result of creating a task.
type CreateTaskOutput struct {
	Task domain.Task
}

// CreateTask is the use case for creating a task.
type CreateTask struct {
	store  *store.Store
	ids    domain.IDGenerator
	clock  domain.Clock
	logger *slog.Logger
}

// NewCreateTask creates a new CreateTask use case.
func NewCreateTask(s *store.Store, ids domain.IDGenerator, clock domain.Clock, logger *slog.Logger) *CreateTask {
	return &CreateTask{store: s, ids: ids, clock: clock, logger: logger}
}

// Execute validates the input and appends a new pending task. A task
// whose trimmed title and description both match an existing task
// case-insensitively is rejected as a duplicate.
func (uc *CreateTask) Execute(_ context.Context, in CreateTaskInput) (*CreateTaskOutput, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, domain.ErrEmptyTitle
	}
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return nil, domain.ErrEmptyDescription
	}

	task := domain.Task{
		ID:          uc.ids.NewID(),
		Title:       title,
		Description: description,
		Status:      domain.StatusPending,
		CreatedAt:   uc.clock.Now().UTC().Format(time.RFC3339),
	}

	for _, existing := range uc.store.Tasks() {
		if domain.SameContent(existing, task) {
			return nil, domain.ErrDuplicateTask
		}
	}

	uc.store.Add(task)

	if uc.logger != nil {
		uc.logger.Info("task created", "id", task.ID, "title", task.Title)
	}

	return &CreateTaskOutput{Task: task}, nil
}
