package kernel

import (
	"time"
)

// Expiry is a value object for a regulatory expiry date that may be unset.
// Modelling the absence explicitly keeps "no date on file" distinguishable
// from "date in the future" without nil checks scattered through callers:
// an unset expiry is never expired, but callers that require a date can ask
// IsSet first.
//
// The zero value is a valid unset expiry.
type Expiry struct {
	set  bool
	date time.Time
}

// NoExpiry returns an Expiry with no date on file.
func NoExpiry() Expiry {
	return Expiry{}
}

// ExpiryOn returns an Expiry set to the given date.
func ExpiryOn(date time.Time) Expiry {
	return Expiry{set: true, date: date}
}

// IsSet reports whether a date is on file.
func (e Expiry) IsSet() bool {
	return e.set
}

// Date returns the expiry date and whether one is on file.
func (e Expiry) Date() (time.Time, bool) {
	return e.date, e.set
}

// IsExpired reports whether the date on file is strictly before now.
// An unset expiry is never expired; callers that treat a missing date as a
// failure must check IsSet separately.
func (e Expiry) IsExpired(now time.Time) bool {
	return e.set && e.date.Before(now)
}
