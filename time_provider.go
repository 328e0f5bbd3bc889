package drift

import "time"

// StampLayout is the timestamp layout embedded in artifact filenames.
const StampLayout = "20060102_150405"

// TimeProvider supplies the generation timestamp for artifact filenames.
// Inject [MockTimeProvider] in tests for stable filenames.
type TimeProvider interface {
	// Now returns the current time.
	Now() time.Time

	// Stamp returns the current time formatted with [StampLayout],
	// e.g. "20250419_142551".
	Stamp() string
}

// DefaultTimeProvider is the standard TimeProvider using the system clock.
type DefaultTimeProvider struct{}

// NewDefaultTimeProvider creates a new DefaultTimeProvider.
func NewDefaultTimeProvider() *DefaultTimeProvider {
	return &DefaultTimeProvider{}
}

// Now returns the current system time.
func (p *DefaultTimeProvider) Now() time.Time {
	return time.Now()
}

// Stamp returns the current system time formatted with StampLayout.
func (p *DefaultTimeProvider) Stamp() string {
	return p.Now().Format(StampLayout)
}

// MockTimeProvider is a TimeProvider that returns a fixed time.
type MockTimeProvider struct {
	fixedTime time.Time
}

// NewMockTimeProvider creates a MockTimeProvider with the given fixed time.
func NewMockTimeProvider(t time.Time) *MockTimeProvider {
	return &MockTimeProvider{fixedTime: t}
}

// SetTime updates the fixed time returned by Now().
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.fixedTime = t
}

// Now returns the fixed time.
func (m *MockTimeProvider) Now() time.Time {
	return m.fixedTime
}

// Stamp returns the fixed time formatted with StampLayout.
func (m *MockTimeProvider) Stamp() string {
	return m.fixedTime.Format(StampLayout)
}

// Compile-time checks that both providers implement TimeProvider.
var (
	_ TimeProvider = (*DefaultTimeProvider)(nil)
	_ TimeProvider = (*MockTimeProvider)(nil)
)
