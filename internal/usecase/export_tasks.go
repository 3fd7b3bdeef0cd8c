package usecase

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/store"
)

// ExportTasksOutput contains the exported collection.
type ExportTasksOutput struct {
	Data  []byte // YAML document
	Count int
}

// ExportTasks is the use case for exporting the collection as YAML.
// Tasks are exported in storage order so a later import reproduces the
// collection exactly.
type ExportTasks struct {
	store *store.Store
}

// NewExportTasks creates a new ExportTasks use case.
func NewExportTasks(s *store.Store) *ExportTasks {
	return &ExportTasks{store: s}
}

// Execute marshals the current collection.
func (uc *ExportTasks) Execute(_ context.Context) (*ExportTasksOutput, error) {
	tasks := uc.store.Tasks()
	if tasks == nil {
		tasks = []domain.Task{}
	}

	data, err := yaml.Marshal(tasks)
	if err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}
	return &ExportTasksOutput{Data: data, Count: len(tasks)}, nil
}
