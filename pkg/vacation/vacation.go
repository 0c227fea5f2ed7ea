package vacation

import (
	"time"
)

type Vacation struct {
	ID         int
	EmployeeID int
	// EmployeeName is denormalized so lists render without a join.
	EmployeeName string
	StartDate    time.Time
	EndDate      time.Time
	Type         string
}

// Overlaps reports whether the vacation covers any day of [from, to].
func (v Vacation) Overlaps(from, to time.Time) bool {
	return !v.StartDate.After(to) && !v.EndDate.Before(from)
}
