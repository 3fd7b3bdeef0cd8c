package domain

import "errors"

// Domain errors.
var (
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrEmptyDescription = errors.New("description cannot be empty")
	ErrDuplicateTask    = errors.New("a task with the same title and description already exists")
	ErrTaskNotFound     = errors.New("task not found")
	ErrNoIdentity       = errors.New("no user identity (set --user, TASKDECK_USER, or the identity config key)")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
	ErrInvalidStatus    = errors.New("invalid status")
)
