package usecase

import (
	"context"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/view"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	Status string // status filter, or domain.StatusFilterAll
	Page   int    // 1-based page, values < 1 mean page 1
}

// ListTasksOutput contains one derived page of tasks.
type ListTasksOutput struct {
	Page view.Page
}

// ListTasks is the use case for viewing the collection: newest first,
// optionally filtered by status, five per page.
type ListTasks struct {
	store *store.Store
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(s *store.Store) *ListTasks {
	return &ListTasks{store: s}
}

// Execute derives the requested page.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	if in.Status != domain.StatusFilterAll && !domain.Status(in.Status).IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	page := view.Derive(view.Input{
		Tasks:  uc.store.Tasks(),
		Hidden: uc.store.PendingRemoval(),
		Status: in.Status,
		Page:   in.Page,
	})
	return &ListTasksOutput{Page: page}, nil
}
