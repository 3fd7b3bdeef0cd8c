package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/domain"
)

func TestExportTasks_RoundTrip(t *testing.T) {
	f := newFixture(t)
	seedTask(t, f, "first", "description one")
	seedTask(t, f, "second", "description two")

	exported, err := NewExportTasks(f.store).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, exported.Count)

	// Import into a fresh collection reproduces the export exactly.
	g := newFixture(t)
	imported, err := NewImportTasks(g.store, g.ids, g.clock, nil).Execute(context.Background(), ImportTasksInput{Data: exported.Data})
	require.NoError(t, err)
	assert.Equal(t, 2, imported.Imported)
	assert.Equal(t, f.store.Tasks(), g.store.Tasks())
}

func TestExportTasks_EmptyCollection(t *testing.T) {
	f := newFixture(t)

	out, err := NewExportTasks(f.store).Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, out.Count)
	assert.Equal(t, "[]\n", string(out.Data))
}

func TestImportTasks_FillsMissingFields(t *testing.T) {
	f := newFixture(t)
	data := []byte(`
- title: bare minimum
  description: only the required fields
`)

	out, err := NewImportTasks(f.store, f.ids, f.clock, nil).Execute(context.Background(), ImportTasksInput{Data: data})

	require.NoError(t, err)
	assert.Equal(t, 1, out.Imported)

	tasks := f.store.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "id-1", tasks[0].ID)
	assert.Equal(t, domain.StatusPending, tasks[0].Status)
	assert.Equal(t, "2024-01-01T12:00:00Z", tasks[0].CreatedAt)
}

func TestImportTasks_MergeSkipsDuplicates(t *testing.T) {
	f := newFixture(t)
	seedTask(t, f, "Buy milk", "2% milk")

	data := []byte(`
- title: BUY MILK
  description: 2% milk
- title: new task
  description: something else
`)

	out, err := NewImportTasks(f.store, f.ids, f.clock, nil).Execute(context.Background(), ImportTasksInput{Data: data})

	require.NoError(t, err)
	assert.Equal(t, 1, out.Imported)
	assert.Equal(t, 1, out.Skipped)
	assert.Len(t, f.store.Tasks(), 2)
}

func TestImportTasks_ReplaceSupersedesCollection(t *testing.T) {
	f := newFixture(t)
	seedTask(t, f, "old task", "will disappear")

	data := []byte(`
- title: replacement
  description: the only survivor
`)

	out, err := NewImportTasks(f.store, f.ids, f.clock, nil).Execute(context.Background(), ImportTasksInput{Data: data, Replace: true})

	require.NoError(t, err)
	assert.Equal(t, 1, out.Imported)

	tasks := f.store.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "replacement", tasks[0].Title)
}

func TestImportTasks_RejectsInvalidEntries(t *testing.T) {
	f := newFixture(t)

	_, err := NewImportTasks(f.store, f.ids, f.clock, nil).Execute(context.Background(), ImportTasksInput{
		Data: []byte("- title: \"\"\n  description: d\n"),
	})
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)

	_, err = NewImportTasks(f.store, f.ids, f.clock, nil).Execute(context.Background(), ImportTasksInput{
		Data: []byte("not: a: sequence"),
	})
	assert.Error(t, err)

	assert.Empty(t, f.store.Tasks())
}
