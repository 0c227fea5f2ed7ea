package settings

import (
	"github.com/resourceflow/resourceflow/pkg/member"
)

// Settings is the global scheduling configuration, stored as a single row.
type Settings struct {
	// BufferPercent is the share of monthly capacity reserved and excluded
	// from allocatable hours.
	BufferPercent     float64
	CanadaWeeklyHours float64
	BrazilWeeklyHours float64
}

// WeeklyHoursFor returns the weekly-hours constant for the given country.
func (s Settings) WeeklyHoursFor(country member.Country) float64 {
	if country == member.CountryBrazil {
		return s.BrazilWeeklyHours
	}
	return s.CanadaWeeklyHours
}
