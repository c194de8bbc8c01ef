package clock

import "time"

// Clock supplies the current instant. The ledger stamps new transactions and
// computes report windows from it.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock in the local zone.
type System struct{}

// Now returns time.Now().
func (System) Now() time.Time { return time.Now() }

// Func adapts a plain function to Clock.
type Func func() time.Time

// Now calls f.
func (f Func) Now() time.Time { return f() }

// Fixed returns a Clock that always reports t.
func Fixed(t time.Time) Clock {
	return Func(func() time.Time { return t })
}
