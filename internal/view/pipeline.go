// Package view derives what the dashboard displays from the current
// collection. Derivation is pure: it is recomputed from its inputs on
// every call and caches nothing.
package view

import (
	"sort"
	"time"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// PageSize is the fixed number of tasks per dashboard page.
const PageSize = 5

// Input is everything a derivation depends on.
type Input struct {
	Tasks  []domain.Task       // current collection, storage order
	Hidden map[string]struct{} // ids pending removal, excluded from view
	Status string              // status filter value, or domain.StatusFilterAll
	Page   int                 // requested 1-based page
}

// Page is one derived dashboard page.
type Page struct {
	Tasks      []domain.Task // the visible window
	Page       int           // effective page (may differ from requested, see Reset)
	TotalPages int
	Total      int  // visible tasks across all pages
	Reset      bool // requested page exceeded TotalPages and was reset to 1
}

// Derive sorts, filters, and paginates the collection. If the requested
// page falls beyond the last page while any page exists, the selection
// resets to page 1; the caller must re-render with the returned page.
func Derive(in Input) Page {
	sorted := sortByRecency(in.Tasks)

	visible := make([]domain.Task, 0, len(sorted))
	for _, t := range sorted {
		if in.Status != domain.StatusFilterAll && string(t.Status) != in.Status {
			continue
		}
		if _, hidden := in.Hidden[t.ID]; hidden {
			continue
		}
		visible = append(visible, t)
	}

	totalPages := (len(visible) + PageSize - 1) / PageSize

	page := in.Page
	if page < 1 {
		page = 1
	}
	reset := false
	if page > totalPages && totalPages > 0 {
		page = 1
		reset = true
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > len(visible) {
		start = len(visible)
	}
	if end > len(visible) {
		end = len(visible)
	}

	return Page{
		Tasks:      visible[start:end],
		Page:       page,
		TotalPages: totalPages,
		Total:      len(visible),
		Reset:      reset,
	}
}

// sortByRecency returns the tasks ordered most recently created first.
// The sort is stable, so tasks with identical timestamps keep their
// storage order. Unparseable timestamps sort last.
func sortByRecency(tasks []domain.Task) []domain.Task {
	out := make([]domain.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		return createdTime(out[i]).After(createdTime(out[j]))
	})
	return out
}

func createdTime(t domain.Task) time.Time {
	ts, err := time.Parse(time.RFC3339, t.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return ts
}
