// Package persist implements the persistence adapter that maps a user's
// task collection onto the key-value medium. Load and Save never fail from
// the caller's point of view: every failure path degrades to an empty
// collection or a dropped write, plus a diagnostic.
package persist

import (
	"encoding/json"
	"log/slog"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// User-facing diagnostic texts.
const (
	msgLoadFailed  = "Failed to load tasks."
	msgSaveFailed  = "Failed to save tasks."
	msgUnavailable = "Task storage is unavailable."
)

// taskPayload is the serialized form of a task. Required fields are
// pointers so that missing or non-string values fail shape validation.
// createdAt is deliberately unchecked: records written without it still
// load, they just sort last.
type taskPayload struct {
	ID          *string `json:"id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	CreatedAt   string  `json:"createdAt"`
}

// Adapter reads and writes serialized task collections.
type Adapter struct {
	kv       domain.KV
	notifier domain.Notifier
	logger   *slog.Logger
}

// New creates an Adapter over the given medium. notifier and logger may be
// nil; diagnostics are then dropped.
func New(kv domain.KV, notifier domain.Notifier, logger *slog.Logger) *Adapter {
	return &Adapter{kv: kv, notifier: notifier, logger: logger}
}

// Load returns the collection previously saved under key, or an empty
// collection if the key is absent, the stored value is malformed, or any
// element fails shape validation.
func (a *Adapter) Load(key string) []domain.Task {
	if !a.kv.Available() {
		a.diag(msgUnavailable, "key", key)
		return []domain.Task{}
	}

	raw, found, err := a.kv.Get(key)
	if err != nil {
		a.diag(msgLoadFailed, "key", key, "error", err)
		return []domain.Task{}
	}
	if !found {
		return []domain.Task{}
	}

	var payloads []taskPayload
	if err := json.Unmarshal([]byte(raw), &payloads); err != nil {
		a.diag(msgLoadFailed, "key", key, "error", err)
		return []domain.Task{}
	}

	tasks := make([]domain.Task, 0, len(payloads))
	for _, p := range payloads {
		if p.ID == nil || p.Title == nil || p.Description == nil || p.Status == nil {
			// One bad element invalidates the whole collection.
			a.diag(msgLoadFailed, "key", key, "error", "invalid task shape")
			return []domain.Task{}
		}
		tasks = append(tasks, domain.Task{
			ID:          *p.ID,
			Title:       *p.Title,
			Description: *p.Description,
			Status:      domain.Status(*p.Status),
			CreatedAt:   p.CreatedAt,
		})
	}

	return tasks
}

// Save durably stores tasks under key, fully replacing any prior value.
// Failures drop the write and surface a diagnostic.
func (a *Adapter) Save(key string, tasks []domain.Task) {
	if !a.kv.Available() {
		a.diag(msgUnavailable, "key", key)
		return
	}

	payloads := make([]taskPayload, 0, len(tasks))
	for i := range tasks {
		t := tasks[i]
		status := string(t.Status)
		payloads = append(payloads, taskPayload{
			ID:          &t.ID,
			Title:       &t.Title,
			Description: &t.Description,
			Status:      &status,
			CreatedAt:   t.CreatedAt,
		})
	}

	content, err := json.Marshal(payloads)
	if err != nil {
		a.diag(msgSaveFailed, "key", key, "error", err)
		return
	}

	if err := a.kv.Set(key, string(content)); err != nil {
		a.diag(msgSaveFailed, "key", key, "error", err)
	}
}

// diag publishes a user-visible notification and logs the detail.
func (a *Adapter) diag(text string, args ...any) {
	if a.notifier != nil {
		a.notifier.Publish(text)
	}
	if a.logger != nil {
		a.logger.Warn(text, args...)
	}
}
