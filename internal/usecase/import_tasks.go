package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/store"
)

// ImportTasksInput contains the parameters for importing tasks.
type ImportTasksInput struct {
	Data    []byte // YAML document, a sequence of tasks
	Replace bool   // replace the collection instead of merging into it
}

// ImportTasksOutput contains the result of an import.
type ImportTasksOutput struct {
	Imported int
	Skipped  int // duplicates not merged
}

// ImportTasks is the use case for importing a YAML export. In merge mode
// entries duplicating an existing task are skipped; in replace mode the
// imported collection supersedes the current one wholesale.
type ImportTasks struct {
	store  *store.Store
	ids    domain.IDGenerator
	clock  domain.Clock
	logger *slog.Logger
}

// NewImportTasks creates a new ImportTasks use case.
func NewImportTasks(s *store.Store, ids domain.IDGenerator, clock domain.Clock, logger *slog.Logger) *ImportTasks {
	return &ImportTasks{store: s, ids: ids, clock: clock, logger: logger}
}

// Execute parses and applies the import. Entries must carry a non-empty
// title and description; missing ids, statuses, and timestamps are
// filled in.
func (uc *ImportTasks) Execute(_ context.Context, in ImportTasksInput) (*ImportTasksOutput, error) {
	var tasks []domain.Task
	if err := yaml.Unmarshal(in.Data, &tasks); err != nil {
		return nil, fmt.Errorf("parse import: %w", err)
	}

	for i := range tasks {
		t := &tasks[i]
		t.Title = strings.TrimSpace(t.Title)
		t.Description = strings.TrimSpace(t.Description)
		if t.Title == "" {
			return nil, fmt.Errorf("entry %d: %w", i+1, domain.ErrEmptyTitle)
		}
		if t.Description == "" {
			return nil, fmt.Errorf("entry %d: %w", i+1, domain.ErrEmptyDescription)
		}
		if t.ID == "" {
			t.ID = uc.ids.NewID()
		}
		if t.Status == "" {
			t.Status = domain.StatusPending
		}
		if t.CreatedAt == "" {
			t.CreatedAt = uc.clock.Now().UTC().Format(time.RFC3339)
		}
	}

	out := &ImportTasksOutput{}

	if in.Replace {
		uc.store.Replace(tasks)
		out.Imported = len(tasks)
	} else {
		existing := uc.store.Tasks()
		for _, t := range tasks {
			if containsSameContent(existing, t) {
				out.Skipped++
				continue
			}
			uc.store.Add(t)
			existing = append(existing, t)
			out.Imported++
		}
	}

	if uc.logger != nil {
		uc.logger.Info("tasks imported", "imported", out.Imported, "skipped", out.Skipped, "replace", in.Replace)
	}

	return out, nil
}

func containsSameContent(tasks []domain.Task, t domain.Task) bool {
	for _, existing := range tasks {
		if domain.SameContent(existing, t) {
			return true
		}
	}
	return false
}
