package usecase

import (
	"testing"
	"time"

	"github.com/taskdeck/taskdeck/internal/persist"
	"github.com/taskdeck/taskdeck/internal/store"
	"github.com/taskdeck/taskdeck/internal/testutil"
)

// fixture bundles the store and its collaborators for use case tests.
type fixture struct {
	store    *store.Store
	kv       *testutil.MockKV
	notifier *testutil.MockNotifier
	clock    *testutil.MockClock
	ids      *testutil.SeqIDGenerator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	kv := testutil.NewMockKV()
	notifier := &testutil.MockNotifier{}
	s := store.NewWithDelay(persist.New(kv, notifier, nil), 10*time.Millisecond)
	s.SetIdentity("alice")

	return &fixture{
		store:    s,
		kv:       kv,
		notifier: notifier,
		clock:    testutil.NewMockClock(),
		ids:      &testutil.SeqIDGenerator{},
	}
}

func (f *fixture) createTask() *CreateTask {
	return NewCreateTask(f.store, f.ids, f.clock, nil)
}
