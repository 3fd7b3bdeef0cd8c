package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/persist"
	"github.com/taskdeck/taskdeck/internal/testutil"
)

func newTestStore(t *testing.T) (*Store, *testutil.MockKV, *testutil.MockNotifier) {
	t.Helper()

	kv := testutil.NewMockKV()
	notifier := &testutil.MockNotifier{}
	s := NewWithDelay(persist.New(kv, notifier, nil), 10*time.Millisecond)
	return s, kv, notifier
}

func task(id, title string) domain.Task {
	return domain.Task{
		ID:          id,
		Title:       title,
		Description: "description of " + title,
		Status:      domain.StatusPending,
		CreatedAt:   "2024-01-01T00:00:00Z",
	}
}

func TestStore_SetIdentityLoadsCollection(t *testing.T) {
	s, kv, _ := newTestStore(t)
	kv.Values["tasks_alice"] = `[{"id":"1","title":"t","description":"d","status":"pending","createdAt":"2024-01-01T00:00:00Z"}]`

	s.SetIdentity("alice")

	tasks := s.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "1", tasks[0].ID)
	assert.Equal(t, "alice", s.Identity())
}

func TestStore_LoadReplacesWholesale(t *testing.T) {
	s, kv, _ := newTestStore(t)
	s.SetIdentity("alice")
	s.Add(task("a", "Alice task"))

	kv.Values["tasks_bob"] = `[{"id":"b","title":"Bob task","description":"d","status":"pending","createdAt":"2024-01-01T00:00:00Z"}]`
	s.SetIdentity("bob")

	tasks := s.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "b", tasks[0].ID, "no merge with the previous identity's collection")
}

func TestStore_SuccessfulLoadResaves(t *testing.T) {
	s, kv, _ := newTestStore(t)
	kv.Values["tasks_alice"] = `[{"id":"1","title":"t","description":"d","status":"pending","createdAt":"2024-01-01T00:00:00Z"}]`

	before := kv.SetCalls
	s.SetIdentity("alice")

	assert.Equal(t, before+1, kv.SetCalls, "a fresh load immediately round-trips back to storage")
}

func TestStore_EmptyIdentityDetaches(t *testing.T) {
	s, kv, _ := newTestStore(t)
	s.SetIdentity("alice")
	s.Add(task("a", "one"))

	before := kv.SetCalls
	s.SetIdentity("")

	assert.Empty(t, s.Tasks())
	assert.Equal(t, before, kv.SetCalls, "no persistence without an identity")
}

func TestStore_LoadFailureIsolatedPerIdentity(t *testing.T) {
	s, kv, notifier := newTestStore(t)
	kv.Values["tasks_alice"] = `{not valid json`
	kv.Values["tasks_bob"] = `[{"id":"b","title":"t","description":"d","status":"pending","createdAt":"2024-01-01T00:00:00Z"}]`

	s.SetIdentity("alice")
	assert.Empty(t, s.Tasks())
	assert.Equal(t, "Failed to load tasks.", notifier.Last())

	s.SetIdentity("bob")
	assert.Len(t, s.Tasks(), 1)
}

func TestStore_AddAppendsAndSaves(t *testing.T) {
	s, kv, _ := newTestStore(t)
	s.SetIdentity("alice")

	s.Add(task("1", "first"))
	s.Add(task("2", "second"))

	tasks := s.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, "1", tasks[0].ID)
	assert.Equal(t, "2", tasks[1].ID)
	assert.Contains(t, kv.Values["tasks_alice"], `"id":"2"`)
}

func TestStore_AddWithoutIdentityKeepsInMemory(t *testing.T) {
	s, kv, _ := newTestStore(t)

	s.Add(task("1", "first"))

	assert.Len(t, s.Tasks(), 1)
	assert.Equal(t, 0, kv.SetCalls)
}

func TestStore_UpdateLocality(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.SetIdentity("alice")
	s.Add(task("1", "first"))
	s.Add(task("2", "second"))

	title := "renamed"
	s.Update("2", domain.TaskPatch{Title: &title})

	tasks := s.Tasks()
	assert.Equal(t, task("1", "first"), tasks[0], "other tasks are unchanged in every field")
	assert.Equal(t, "renamed", tasks[1].Title)
	assert.Equal(t, "description of second", tasks[1].Description)
}

func TestStore_UpdateUnknownIDIsNoop(t *testing.T) {
	s, kv, _ := newTestStore(t)
	s.SetIdentity("alice")
	s.Add(task("1", "first"))

	before := kv.SetCalls
	title := "x"
	s.Update("missing", domain.TaskPatch{Title: &title})

	assert.Equal(t, "first", s.Tasks()[0].Title)
	assert.Equal(t, before, kv.SetCalls)
}

func TestStore_DeleteLocality(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.SetIdentity("alice")
	s.Add(task("1", "first"))
	s.Add(task("2", "second"))
	s.Add(task("3", "third"))

	s.Delete("2")

	tasks := s.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, "1", tasks[0].ID)
	assert.Equal(t, "3", tasks[1].ID, "survivors keep their relative order")

	s.Delete("missing")
	assert.Len(t, s.Tasks(), 2)
}

func TestStore_ScheduleDelete(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.SetIdentity("alice")
	s.Add(task("1", "first"))

	done := s.ScheduleDelete("1")

	_, pending := s.PendingRemoval()["1"]
	assert.True(t, pending, "marked pending-removal immediately")
	assert.Len(t, s.Tasks(), 1, "store mutation is deferred")

	<-done
	assert.Empty(t, s.Tasks())
	assert.Empty(t, s.PendingRemoval())
}

func TestStore_ScheduleDeleteIndependentTimers(t *testing.T) {
	s, _, _ := newTestStore(t)
	s.SetIdentity("alice")
	s.Add(task("1", "first"))
	s.Add(task("2", "second"))

	done1 := s.ScheduleDelete("1")
	done2 := s.ScheduleDelete("2")

	assert.Len(t, s.PendingRemoval(), 2)

	<-done1
	<-done2
	assert.Empty(t, s.Tasks())
}

func TestStore_SaveFailureLeavesMemoryIntact(t *testing.T) {
	s, kv, notifier := newTestStore(t)
	s.SetIdentity("alice")
	kv.SetErr = assert.AnError

	s.Add(task("1", "first"))

	assert.Len(t, s.Tasks(), 1, "in-memory state survives a dropped write")
	assert.Equal(t, "Failed to save tasks.", notifier.Last())

	// The next mutation retries the save with the full collection.
	kv.SetErr = nil
	s.Add(task("2", "second"))
	assert.Contains(t, kv.Values["tasks_alice"], `"id":"1"`)
	assert.Contains(t, kv.Values["tasks_alice"], `"id":"2"`)
}
