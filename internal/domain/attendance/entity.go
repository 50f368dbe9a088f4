package attendance

import (
	"strings"
	"time"
)

// Status is the canonical attendance status. Upstream feeds use several
// spellings; ParseStatus is the only place they are interpreted, so the rest
// of the codebase only ever sees these values.
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusHalfDay Status = "half-day"
	StatusLeave   Status = "leave"
)

// ParseStatus normalizes an upstream status string. Matching is
// case-insensitive; "half-day", "halfday" and "half_day" are all half-day.
// Anything unrecognized counts as absent.
func ParseStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "present":
		return StatusPresent
	case "absent":
		return StatusAbsent
	case "half-day", "halfday", "half_day":
		return StatusHalfDay
	case "leave":
		return StatusLeave
	default:
		return StatusAbsent
	}
}

type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     Status
	SiteName   string
	Department string
	CreatedAt  time.Time

	// Joined fields
	EmployeeName *string
}

// Aggregate is the per-employee reduction of raw attendance records for a
// period. It is derived, never persisted.
type Aggregate struct {
	EmployeeID       string
	PresentDays      int
	AbsentDays       int
	HalfDays         int
	LeaveDays        int
	TotalWorkingDays int
}
