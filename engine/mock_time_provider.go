package engine

import "time"

// MockTimeProvider is a manually driven clock for frame and heartbeat tests.
// Like Game it belongs to a single goroutine.
type MockTimeProvider struct {
	now time.Time
}

var _ TimeProvider = (*MockTimeProvider)(nil)

// NewMockTimeProvider creates a mock clock reading start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

// Now returns the mocked time
func (m *MockTimeProvider) Now() time.Time {
	return m.now
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.now = m.now.Add(d)
}

// AdvanceFrames moves the clock forward by n frames of the given interval
func (m *MockTimeProvider) AdvanceFrames(n int, interval time.Duration) {
	m.Advance(time.Duration(n) * interval)
}
