// Package store holds the in-memory authoritative task collection for the
// current session and keeps it synchronized with the persistence adapter.
package store

import (
	"sync"
	"time"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/persist"
)

// DeleteDelay is how long a task stays pending-removal before its delete
// commits. The window exists so the UI can show a removal transition.
const DeleteDelay = 500 * time.Millisecond

// Store is the single authoritative task collection for one session.
// The collection is partitioned by user identity: switching identity
// discards the in-memory state and loads that user's collection.
type Store struct {
	adapter     *persist.Adapter
	pending     map[string]struct{}
	identity    string
	tasks       []domain.Task
	deleteDelay time.Duration
	mu          sync.Mutex
}

// New creates a Store over the given adapter.
func New(adapter *persist.Adapter) *Store {
	return NewWithDelay(adapter, DeleteDelay)
}

// NewWithDelay creates a Store with a custom pending-removal delay.
// Useful for testing.
func NewWithDelay(adapter *persist.Adapter, delay time.Duration) *Store {
	return &Store{
		adapter:     adapter,
		pending:     make(map[string]struct{}),
		deleteDelay: delay,
	}
}

// SetIdentity reacts to an identity transition. A non-empty identity
// discards the in-memory collection and loads that identity's collection,
// immediately re-persisting it. An empty identity detaches the store: the
// collection empties and persistence stops.
func (s *Store) SetIdentity(identity string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = identity
	if identity == "" {
		s.tasks = nil
		return
	}

	s.tasks = s.adapter.Load(domain.CollectionKey(identity))
	s.saveLocked()
}

// Identity returns the current partition identity, or "" if detached.
func (s *Store) Identity() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

// Tasks returns a snapshot of the in-memory collection in storage order.
func (s *Store) Tasks() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Get returns the task with the given id.
func (s *Store) Get(id string) (domain.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Task{}, false
}

// Add appends task to the end of the collection and persists. The store
// performs no validation here; duplicate detection belongs to the creation
// flow.
func (s *Store) Add(task domain.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = append(s.tasks, task)
	s.saveLocked()
}

// Replace swaps the whole collection for tasks and persists. Used by
// import, where the new collection supersedes the old wholesale.
func (s *Store) Replace(tasks []domain.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = make([]domain.Task, len(tasks))
	copy(s.tasks, tasks)
	s.saveLocked()
}

// Update shallow-merges patch over the task with the given id and
// persists. Unknown ids are a silent no-op.
func (s *Store) Update(id string, patch domain.TaskPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			patch.Apply(&s.tasks[i])
			s.saveLocked()
			return
		}
	}
}

// Delete removes the task with the given id, preserving the relative order
// of the survivors, and persists. Unknown ids are a silent no-op.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteLocked(id)
}

// ScheduleDelete marks the task pending-removal and commits the delete
// after the configured delay. There is no cancellation: once scheduled,
// the delete runs regardless of later UI state. The returned channel is
// closed when the delete has committed.
func (s *Store) ScheduleDelete(id string) <-chan struct{} {
	s.mu.Lock()
	s.pending[id] = struct{}{}
	s.mu.Unlock()

	done := make(chan struct{})
	time.AfterFunc(s.deleteDelay, func() {
		s.mu.Lock()
		s.deleteLocked(id)
		delete(s.pending, id)
		s.mu.Unlock()
		close(done)
	})
	return done
}

// PendingRemoval returns the set of ids currently hidden while their
// delete is in flight.
func (s *Store) PendingRemoval() map[string]struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]struct{}, len(s.pending))
	for id := range s.pending {
		out[id] = struct{}{}
	}
	return out
}

func (s *Store) deleteLocked(id string) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.saveLocked()
			return
		}
	}
}

// saveLocked persists the current collection under the current identity's
// key. Without an identity there is nothing to persist against. Saves are
// best-effort: a later save of a newer collection state supersedes a
// dropped one.
func (s *Store) saveLocked() {
	if s.identity == "" {
		return
	}
	s.adapter.Save(domain.CollectionKey(s.identity), s.tasks)
}
