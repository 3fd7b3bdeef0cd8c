// Package notify surfaces persistence failures to the user without
// interrupting the store. Only the most recent notice is kept, and a
// notice expires on its own after a fixed duration.
package notify

import (
	"sync"
	"time"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// TTL is how long a notice stays visible before auto-expiring.
const TTL = 5 * time.Second

// Notifier holds at most one visible notice.
type Notifier struct {
	clock domain.Clock
	text  string
	at    time.Time
	mu    sync.Mutex
}

// New creates a Notifier using the given clock for expiry.
func New(clock domain.Clock) *Notifier {
	return &Notifier{clock: clock}
}

// Publish makes text the visible notice, replacing any still-visible one.
func (n *Notifier) Publish(text string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.text = text
	n.at = n.clock.Now()
}

// Current returns the visible notice, if any. A notice older than TTL has
// expired and is no longer returned.
func (n *Notifier) Current() (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.text == "" {
		return "", false
	}
	if n.clock.Now().Sub(n.at) >= TTL {
		n.text = ""
		return "", false
	}
	return n.text, true
}

// Dismiss clears the visible notice.
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.text = ""
}

// Ensure Notifier implements the domain port.
var _ domain.Notifier = (*Notifier)(nil)
