package capacity

import (
	"time"

	"github.com/resourceflow/resourceflow/pkg/allocation"
	"github.com/resourceflow/resourceflow/pkg/holiday"
	"github.com/resourceflow/resourceflow/pkg/member"
)

// WorkingDaysPerWeek is the assumed Monday-Friday work week used to derive a
// daily-hours figure from the weekly constant.
const WorkingDaysPerWeek = 5.0

// MonthRange returns the first and last day of the given month.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first, last
}

// WorkingDays counts the days in [from, to] that are neither weekends nor
// holidays observed in the given country.
func WorkingDays(from, to time.Time, country member.Country, holidays []holiday.Holiday) int {
	days := 0
	for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
		if isWorkingDay(date, country, holidays) {
			days++
		}
	}
	return days
}

// AllocatedHours computes the hours an allocation contributes within [from, to]:
// working days in the overlap of the allocation range and the period,
// multiplied by the daily-hour rate.
func AllocatedHours(alloc allocation.Allocation, from, to time.Time, country member.Country, holidays []holiday.Holiday) float64 {
	start := alloc.StartDate
	if start.Before(from) {
		start = from
	}
	end := alloc.EndDate
	if end.After(to) {
		end = to
	}
	if start.After(end) {
		return 0
	}
	return float64(WorkingDays(start, end, country, holidays)) * alloc.HoursPerDay
}

// BufferHours is the share of total monthly hours reserved by the buffer
// percentage.
func BufferHours(totalMonthlyHours, bufferPercent float64) float64 {
	return totalMonthlyHours * bufferPercent / 100
}

// MonthlyAvailableHours computes the hours an employee can be allocated in a
// month: total monthly capacity minus buffer, holiday, and vacation hours.
// Negative results are clamped to zero.
func MonthlyAvailableHours(weeklyHours, weeksPerMonth, bufferPercent, holidayHours, vacationHours float64) float64 {
	total := weeklyHours * weeksPerMonth
	available := total - BufferHours(total, bufferPercent) - holidayHours - vacationHours
	if available < 0 {
		return 0
	}
	return available
}

// Utilization is allocated over available hours as a percentage. It returns 0
// when no hours are available; values above 100 indicate overallocation and
// are reported as-is.
func Utilization(allocatedHours, availableHours float64) float64 {
	if availableHours <= 0 {
		return 0
	}
	return allocatedHours / availableHours * 100
}

func isWorkingDay(date time.Time, country member.Country, holidays []holiday.Holiday) bool {
	if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
		return false
	}
	for _, h := range holidays {
		if sameDay(h.Date, date) && h.AppliesTo(country) {
			return false
		}
	}
	return true
}

func sameDay(date1, date2 time.Time) bool {
	year1, month1, day1 := date1.Date()
	year2, month2, day2 := date2.Date()
	return year1 == year2 && month1 == month2 && day1 == day2
}
