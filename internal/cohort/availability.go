package cohort

import (
	"time"

	"github.com/tadreeb/tadreeb-api/internal/types"
)

// Availability classifies whether a cohort can be selected for
// checkout. It is derived from raw counters and dates so every page
// gates selection on the same rule, independent of (but expected to
// agree with) the status stored by the backend.
type Availability string

const (
	// Available means the registration window is open and seats remain.
	Available Availability = "AVAILABLE"
	// Upcoming means the registration window has lapsed but the cohort
	// itself has not started; shown but not orderable.
	Upcoming Availability = "UPCOMING"
	// ComingSoon means the registration window has not opened yet.
	ComingSoon Availability = "COMING_SOON"
	// Full means no seats remain, or registration closed after the
	// cohort began.
	Full Availability = "FULL"
)

// Resolution is the resolver's output for one cohort snapshot.
type Resolution struct {
	Availability   Availability `json:"availability"`
	AvailableSeats int32        `json:"available_seats"`
}

// Resolve classifies a cohort snapshot at the given instant. Checks run
// in order and the first match wins:
//
//  1. no seats remain (or capacity is zero) -> FULL, regardless of dates
//  2. registration window not yet open -> COMING_SOON
//  3. registration window lapsed -> UPCOMING if the cohort has not
//     started, FULL once it has
//  4. otherwise -> AVAILABLE
//
// Boundary instants are inclusive on both ends of the registration
// window. A nil RegistrationStartDate means registration has always
// been open; a nil RegistrationEndDate means it never closes.
func Resolve(c types.Cohort, now time.Time) Resolution {
	seats := c.Capacity - c.EnrolledCount
	if seats < 0 {
		seats = 0
	}

	if c.EnrolledCount >= c.Capacity {
		return Resolution{Availability: Full, AvailableSeats: seats}
	}
	if c.RegistrationStartDate != nil && now.Before(*c.RegistrationStartDate) {
		return Resolution{Availability: ComingSoon, AvailableSeats: seats}
	}
	if c.RegistrationEndDate != nil && now.After(*c.RegistrationEndDate) {
		if c.StartDate.After(now) {
			return Resolution{Availability: Upcoming, AvailableSeats: seats}
		}
		return Resolution{Availability: Full, AvailableSeats: seats}
	}
	return Resolution{Availability: Available, AvailableSeats: seats}
}

// Selectable reports whether a cohort with the given classification may
// be chosen for checkout.
func Selectable(a Availability) bool {
	return a == Available
}
