package tui

import "github.com/taskdeck/taskdeck/internal/domain"

// Msg is the sealed interface for all dashboard messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgTaskCreated is sent when a new task is created.
type MsgTaskCreated struct {
	Task domain.Task
}

func (MsgTaskCreated) sealed() {}

// MsgTaskUpdated is sent when a task is edited or its status changes.
type MsgTaskUpdated struct {
	Task domain.Task
}

func (MsgTaskUpdated) sealed() {}

// MsgDeleteCommitted is sent when a scheduled delete has committed.
type MsgDeleteCommitted struct {
	TaskID string
}

func (MsgDeleteCommitted) sealed() {}

// MsgError is sent when an operation fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgTick is sent periodically so expired notices disappear without
// user input.
type MsgTick struct{}

func (MsgTick) sealed() {}
