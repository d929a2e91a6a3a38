package swydo

// UserState is the state of a team member. Transmitted by name.
type UserState string

// User states.
const (
	UserStateRevoked UserState = "revoked"
	UserStatePending UserState = "pending"
	UserStateActive  UserState = "active"
)

// ComparePeriod selects the period a report compares against.
// Transmitted by name.
type ComparePeriod string

// Compare periods.
const (
	ComparePeriodPrevious      ComparePeriod = "previous"
	ComparePeriodLastYear      ComparePeriod = "lastYear"
	ComparePeriodPreviousMonth ComparePeriod = "previousMonth"
)

// Valid reports whether s is a known user state.
func (s UserState) Valid() bool {
	switch s {
	case UserStateRevoked, UserStatePending, UserStateActive:
		return true
	}

	return false
}

// Valid reports whether p is a known compare period.
func (p ComparePeriod) Valid() bool {
	switch p {
	case ComparePeriodPrevious, ComparePeriodLastYear, ComparePeriodPreviousMonth:
		return true
	}

	return false
}
