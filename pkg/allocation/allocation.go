package allocation

import (
	"time"
)

type AllocationStatus string

const (
	StatusActive    AllocationStatus = "active"
	StatusTentative AllocationStatus = "tentative"
	StatusFinished  AllocationStatus = "finished"
)

func (s AllocationStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusTentative, StatusFinished:
		return true
	}
	return false
}

// Allocation assigns an employee to a project for a contiguous date range at a
// fixed daily-hour rate.
type Allocation struct {
	ID          int
	EmployeeID  int
	ProjectID   int
	StartDate   time.Time
	EndDate     time.Time
	HoursPerDay float64
	Status      AllocationStatus
}

// Overlaps reports whether the allocation covers any day of [from, to].
// Dates are inclusive on both ends.
func (a Allocation) Overlaps(from, to time.Time) bool {
	return !a.StartDate.After(to) && !a.EndDate.Before(from)
}
