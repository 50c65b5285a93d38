// Package clock abstracts the wall clock so token expiry and date windows can be
// tested deterministically.
package clock

import "time"

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// System is the real clock. Times are returned in UTC.
type System struct{}

func (System) Now() time.Time { return time.Now().UTC() }

// Func adapts a plain function to Clock.
type Func func() time.Time

func (f Func) Now() time.Time { return f() }
