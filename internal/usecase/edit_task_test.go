package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/domain"
)

func seedTask(t *testing.T, f *fixture, title, description string) domain.Task {
	t.Helper()
	out, err := f.createTask().Execute(context.Background(), CreateTaskInput{Title: title, Description: description})
	require.NoError(t, err)
	return out.Task
}

func strPtr(s string) *string { return &s }

func statusPtr(s domain.Status) *domain.Status { return &s }

func TestEditTask_Execute(t *testing.T) {
	f := newFixture(t)
	seeded := seedTask(t, f, "original", "original description")
	uc := NewEditTask(f.store, nil)

	out, err := uc.Execute(context.Background(), EditTaskInput{
		ID:     seeded.ID,
		Title:  strPtr("  renamed  "),
		Status: statusPtr(domain.StatusInProgress),
	})

	require.NoError(t, err)
	assert.Equal(t, "renamed", out.Task.Title)
	assert.Equal(t, domain.StatusInProgress, out.Task.Status)
	assert.Equal(t, "original description", out.Task.Description, "unset fields untouched")
	assert.Equal(t, seeded.CreatedAt, out.Task.CreatedAt, "timestamp never changes on edit")
}

func TestEditTask_NotFound(t *testing.T) {
	f := newFixture(t)
	uc := NewEditTask(f.store, nil)

	_, err := uc.Execute(context.Background(), EditTaskInput{ID: "missing", Title: strPtr("x")})

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestEditTask_Validation(t *testing.T) {
	f := newFixture(t)
	seeded := seedTask(t, f, "original", "original description")
	uc := NewEditTask(f.store, nil)

	_, err := uc.Execute(context.Background(), EditTaskInput{ID: seeded.ID})
	assert.ErrorIs(t, err, domain.ErrNoFieldsToUpdate)

	_, err = uc.Execute(context.Background(), EditTaskInput{ID: seeded.ID, Title: strPtr("  ")})
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)

	_, err = uc.Execute(context.Background(), EditTaskInput{ID: seeded.ID, Description: strPtr("")})
	assert.ErrorIs(t, err, domain.ErrEmptyDescription)

	_, err = uc.Execute(context.Background(), EditTaskInput{ID: seeded.ID, Status: statusPtr("archived")})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	got, _ := f.store.Get(seeded.ID)
	assert.Equal(t, seeded, got, "failed edits change nothing")
}

func TestSetStatus_Execute(t *testing.T) {
	f := newFixture(t)
	seeded := seedTask(t, f, "task", "description")
	uc := NewSetStatus(f.store, nil)

	out, err := uc.Execute(context.Background(), SetStatusInput{ID: seeded.ID, Status: domain.StatusCompleted})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, out.Task.Status)

	// Any status can move to any other, including back.
	out, err = uc.Execute(context.Background(), SetStatusInput{ID: seeded.ID, Status: domain.StatusPending})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, out.Task.Status)
}

func TestSetStatus_Errors(t *testing.T) {
	f := newFixture(t)
	seeded := seedTask(t, f, "task", "description")
	uc := NewSetStatus(f.store, nil)

	_, err := uc.Execute(context.Background(), SetStatusInput{ID: seeded.ID, Status: "archived"})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	_, err = uc.Execute(context.Background(), SetStatusInput{ID: "missing", Status: domain.StatusCompleted})
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}
