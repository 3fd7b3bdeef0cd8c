// Package identity resolves which user's task collection a session
// operates on. Every collection is partitioned by this identity; without
// one the store stays detached and nothing persists.
package identity

import (
	"os"
	"strings"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// EnvVar names the environment variable consulted when no --user flag
// is given.
const EnvVar = "TASKDECK_USER"

// Resolve picks the session identity. Precedence: the explicit flag
// value, then the environment, then the configured default. Each source
// is trimmed; a source that trims to empty falls through to the next.
func Resolve(flagValue string, cfg *domain.Config) string {
	if v := strings.TrimSpace(flagValue); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv(EnvVar)); v != "" {
		return v
	}
	if cfg != nil {
		return strings.TrimSpace(cfg.Identity)
	}
	return ""
}

// Require resolves the identity and returns domain.ErrNoIdentity when
// every source is empty.
func Require(flagValue string, cfg *domain.Config) (string, error) {
	id := Resolve(flagValue, cfg)
	if id == "" {
		return "", domain.ErrNoIdentity
	}
	return id, nil
}
