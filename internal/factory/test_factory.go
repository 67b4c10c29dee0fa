package factory

import (
	"time"

	"github.com/mcoot/pig-go/internal/dependencies/mocks"
	"github.com/mcoot/pig-go/internal/storage/memory"
	"github.com/mcoot/pig-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New(0)
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// QueueGame scripts the next game: its ID and every die face it will roll
func (t *TestApp) QueueGame(id string, faces ...int) {
	t.MockRandom.QueueString(id)
	t.MockRandom.QueueRolls(faces...)
}
