package domain

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusPending    Status = "pending"     // Created, not yet started
	StatusInProgress Status = "in-progress" // Being worked on
	StatusCompleted  Status = "completed"   // Finished
)

// StatusFilterAll is the sentinel filter value meaning "no filtering".
const StatusFilterAll = "all"

// AllStatuses returns all valid status values.
func AllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusInProgress,
		StatusCompleted,
	}
}

// IsValid returns true if the status is a known value.
// Persisted data is deliberately not checked against this: unknown status
// strings loaded from storage pass through and simply never match a
// concrete filter.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// Display returns a human-readable representation of the status.
func (s Status) Display() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}
