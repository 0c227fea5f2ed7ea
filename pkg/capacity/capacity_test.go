package capacity

import (
	"testing"
	"time"

	"github.com/resourceflow/resourceflow/pkg/allocation"
	"github.com/resourceflow/resourceflow/pkg/holiday"
	"github.com/resourceflow/resourceflow/pkg/member"
	"github.com/stretchr/testify/assert"
)

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestMonthRange(t *testing.T) {
	first, last := MonthRange(2026, time.February)

	assert.Equal(t, date("2026-02-01"), first)
	assert.Equal(t, date("2026-02-28"), last)
}

func TestWorkingDays(t *testing.T) {
	t.Run("should count a full Monday to Friday week as five days", func(t *testing.T) {
		// 2026-01-05 is a Monday
		days := WorkingDays(date("2026-01-05"), date("2026-01-09"), member.CountryCanada, nil)

		assert.Equal(t, 5, days)
	})

	t.Run("should skip weekends", func(t *testing.T) {
		// Friday through Monday
		days := WorkingDays(date("2026-01-09"), date("2026-01-12"), member.CountryCanada, nil)

		assert.Equal(t, 2, days)
	})

	t.Run("should skip holidays of the member's country", func(t *testing.T) {
		holidays := []holiday.Holiday{
			{Name: "Family Day", Date: date("2026-01-06"), Country: holiday.CountryCanada},
		}

		days := WorkingDays(date("2026-01-05"), date("2026-01-09"), member.CountryCanada, holidays)

		assert.Equal(t, 4, days)
	})

	t.Run("should ignore holidays of the other country", func(t *testing.T) {
		holidays := []holiday.Holiday{
			{Name: "Family Day", Date: date("2026-01-06"), Country: holiday.CountryCanada},
		}

		days := WorkingDays(date("2026-01-05"), date("2026-01-09"), member.CountryBrazil, holidays)

		assert.Equal(t, 5, days)
	})

	t.Run("should apply holidays marked for both countries to everyone", func(t *testing.T) {
		holidays := []holiday.Holiday{
			{Name: "New Year's Day", Date: date("2026-01-06"), Country: holiday.CountryBoth},
		}

		assert.Equal(t, 4, WorkingDays(date("2026-01-05"), date("2026-01-09"), member.CountryCanada, holidays))
		assert.Equal(t, 4, WorkingDays(date("2026-01-05"), date("2026-01-09"), member.CountryBrazil, holidays))
	})
}

func TestAllocatedHours(t *testing.T) {
	t.Run("should multiply working days by the daily rate", func(t *testing.T) {
		alloc := allocation.Allocation{
			StartDate:   date("2026-01-05"),
			EndDate:     date("2026-01-09"),
			HoursPerDay: 8,
		}

		hours := AllocatedHours(alloc, date("2026-01-01"), date("2026-01-31"), member.CountryCanada, nil)

		assert.Equal(t, 40.0, hours)
	})

	t.Run("should clamp the allocation range to the reporting period", func(t *testing.T) {
		alloc := allocation.Allocation{
			StartDate:   date("2025-12-01"),
			EndDate:     date("2026-03-31"),
			HoursPerDay: 8,
		}

		// only the Mon-Fri week inside the period counts
		hours := AllocatedHours(alloc, date("2026-01-05"), date("2026-01-09"), member.CountryCanada, nil)

		assert.Equal(t, 40.0, hours)
	})

	t.Run("should return zero when the allocation is outside the period", func(t *testing.T) {
		alloc := allocation.Allocation{
			StartDate:   date("2026-03-01"),
			EndDate:     date("2026-03-31"),
			HoursPerDay: 8,
		}

		hours := AllocatedHours(alloc, date("2026-01-01"), date("2026-01-31"), member.CountryCanada, nil)

		assert.Equal(t, 0.0, hours)
	})
}

func TestBufferHours(t *testing.T) {
	assert.Equal(t, 30.0, BufferHours(150, 20))
	assert.Equal(t, 0.0, BufferHours(150, 0))
}

func TestMonthlyAvailableHours(t *testing.T) {
	t.Run("should compute the Canadian default capacity", func(t *testing.T) {
		// 37.5 weekly * 4 weeks = 150, minus 20% buffer = 120
		available := MonthlyAvailableHours(37.5, 4, 20, 0, 0)

		assert.Equal(t, 120.0, available)
	})

	t.Run("should subtract holiday and vacation hours", func(t *testing.T) {
		available := MonthlyAvailableHours(37.5, 4, 20, 7.5, 37.5)

		assert.Equal(t, 75.0, available)
	})

	t.Run("should clamp negative capacity to zero", func(t *testing.T) {
		available := MonthlyAvailableHours(37.5, 4, 20, 100, 100)

		assert.Equal(t, 0.0, available)
	})
}

func TestUtilization(t *testing.T) {
	t.Run("should report allocated over available as a percentage", func(t *testing.T) {
		assert.Equal(t, 50.0, Utilization(60, 120))
	})

	t.Run("should report overallocation above one hundred", func(t *testing.T) {
		assert.Equal(t, 150.0, Utilization(180, 120))
	})

	t.Run("should return zero when nothing is available", func(t *testing.T) {
		assert.Equal(t, 0.0, Utilization(60, 0))
	})
}
