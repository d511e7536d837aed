package core

import "github.com/benbjohnson/clock"

// Clock abstracts wall-clock time so TransactionId.Generate is testable
// without sleeping or mocking time.Now globally.
type Clock = clock.Clock

// NewSystemClock returns a Clock backed by the real OS clock.
func NewSystemClock() Clock { return clock.New() }

// NewMockClock returns a Clock a test can advance deterministically.
func NewMockClock() *clock.Mock { return clock.NewMock() }
