// Package clock supplies the injectable notion of "now" used anywhere the
// validation core reasons about time: timestamp generation-time
// comparisons, signing-time checks, revocation-timing analysis. Production
// code asks for the real wall clock; tests substitute a fake one so that
// scenarios like "timestamp generated before the signing certificate was
// revoked" (S-style scenarios) are deterministic.
package clock

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Clock is the capability the core depends on. It is exactly
// clockwork.Clock's read surface, named locally so callers outside this
// package never need to import clockwork directly.
type Clock interface {
	Now() time.Time
}

// System returns the real wall clock.
func System() Clock {
	return clockwork.NewRealClock()
}

// NewFake returns a Clock pinned at t, advanced only by explicit calls on
// the returned clockwork.FakeClock — useful in tests that need to move
// time forward between two observations (e.g. "was revoked before
// signing").
func NewFake(t time.Time) *clockwork.FakeClock {
	return clockwork.NewFakeClockAt(t)
}
