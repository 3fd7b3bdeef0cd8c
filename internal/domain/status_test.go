package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_IsValid(t *testing.T) {
	for _, s := range AllStatuses() {
		assert.True(t, s.IsValid(), "status %q should be valid", s)
	}

	assert.False(t, Status("done").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestStatus_Display(t *testing.T) {
	assert.Equal(t, "Pending", StatusPending.Display())
	assert.Equal(t, "In Progress", StatusInProgress.Display())
	assert.Equal(t, "Completed", StatusCompleted.Display())

	// Unknown statuses loaded from storage display as-is.
	assert.Equal(t, "archived", Status("archived").Display())
}
