// Package domain contains core business entities and interfaces.
package domain

import "strings"

// Task represents a single tracked work item owned by one user.
// Fields are ordered to minimize memory padding.
type Task struct {
	ID          string `json:"id" yaml:"id"`                   // Opaque unique identifier, immutable after creation
	Title       string `json:"title" yaml:"title"`             // Title (non-empty, trimmed at creation)
	Description string `json:"description" yaml:"description"` // Description (non-empty, trimmed at creation)
	Status      Status `json:"status" yaml:"status"`           // Current status
	CreatedAt   string `json:"createdAt" yaml:"createdAt"`     // RFC3339 creation timestamp, used only for ordering
}

// TaskPatch describes a partial update to a task. Nil fields are left
// untouched; set fields replace the existing value.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *Status
}

// Apply merges the patch over the task, replacing only the set fields.
func (p TaskPatch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
}

// IsZero returns true if the patch changes nothing.
func (p TaskPatch) IsZero() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil
}

// SameContent reports whether two tasks carry the same title and
// description after trimming, compared case-insensitively. Both must match
// for the tasks to count as duplicates of each other.
func SameContent(a, b Task) bool {
	return strings.EqualFold(strings.TrimSpace(a.Title), strings.TrimSpace(b.Title)) &&
		strings.EqualFold(strings.TrimSpace(a.Description), strings.TrimSpace(b.Description))
}

// CollectionKey derives the persistence key for a user identity.
func CollectionKey(identity string) string {
	return "tasks_" + identity
}
