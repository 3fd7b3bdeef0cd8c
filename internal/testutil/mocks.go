// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"time"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// NewMockClock creates a MockClock at a fixed, non-zero instant.
func NewMockClock() *MockClock {
	return &MockClock{NowTime: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// Advance moves the clock forward by d.
func (m *MockClock) Advance(d time.Duration) {
	m.NowTime = m.NowTime.Add(d)
}

// MockKV is a test double for domain.KV backed by a map.
// Fields are ordered to minimize memory padding.
type MockKV struct {
	Values      map[string]string
	GetErr      error
	SetErr      error
	SetCalls    int
	Unavailable bool
}

// NewMockKV creates a new MockKV with an initialized map.
func NewMockKV() *MockKV {
	return &MockKV{Values: make(map[string]string)}
}

// Available reports the configured availability.
func (m *MockKV) Available() bool {
	return !m.Unavailable
}

// Get returns the stored value for key.
func (m *MockKV) Get(key string) (string, bool, error) {
	if m.GetErr != nil {
		return "", false, m.GetErr
	}
	v, ok := m.Values[key]
	return v, ok, nil
}

// Set stores value under key.
func (m *MockKV) Set(key, value string) error {
	m.SetCalls++
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Values[key] = value
	return nil
}

// MockNotifier records published diagnostics.
type MockNotifier struct {
	Messages []string
}

// Publish appends the message.
func (m *MockNotifier) Publish(text string) {
	m.Messages = append(m.Messages, text)
}

// Last returns the most recent message, or "" if none.
func (m *MockNotifier) Last() string {
	if len(m.Messages) == 0 {
		return ""
	}
	return m.Messages[len(m.Messages)-1]
}

// SeqIDGenerator is a test double for domain.IDGenerator producing
// id-1, id-2, ... in order.
type SeqIDGenerator struct {
	N int
}

// NewID returns the next sequential identifier.
func (g *SeqIDGenerator) NewID() string {
	g.N++
	return fmt.Sprintf("id-%d", g.N)
}
