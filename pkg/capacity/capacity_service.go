package capacity

import (
	"context"
	"fmt"
	"time"

	"github.com/resourceflow/resourceflow/internal/utils"
	"github.com/resourceflow/resourceflow/pkg/allocation"
	"github.com/resourceflow/resourceflow/pkg/holiday"
	"github.com/resourceflow/resourceflow/pkg/member"
	"github.com/resourceflow/resourceflow/pkg/settings"
	"github.com/resourceflow/resourceflow/pkg/vacation"
	log "github.com/sirupsen/logrus"
)

// ProjectHours is one project's share of a member's allocated hours in a month.
type ProjectHours struct {
	ProjectID int
	Hours     float64
}

type MemberReport struct {
	Member         member.Member
	AvailableHours float64
	AllocatedHours float64
	HolidayHours   float64
	VacationHours  float64
	// Utilization is AllocatedHours / AvailableHours as a percentage.
	Utilization float64
	Projects    []ProjectHours
}

type MonthlyReport struct {
	Year    int
	Month   time.Month
	Members []MemberReport
}

type CapacityService interface {
	MonthlyReport(ctx context.Context, year int, month time.Month) (MonthlyReport, error)
}

type CapacityServiceImpl struct {
	settingsRepo   settings.SettingsRepo
	memberRepo     member.MemberRepo
	holidayRepo    holiday.HolidayRepo
	vacationRepo   vacation.VacationRepo
	allocationRepo allocation.AllocationRepo
	weeksPerMonth  float64
	clock          utils.Clock
}

func NewCapacityService(
	settingsRepo settings.SettingsRepo,
	memberRepo member.MemberRepo,
	holidayRepo holiday.HolidayRepo,
	vacationRepo vacation.VacationRepo,
	allocationRepo allocation.AllocationRepo,
	weeksPerMonth float64,
	clock utils.Clock,
) *CapacityServiceImpl {
	return &CapacityServiceImpl{
		settingsRepo:   settingsRepo,
		memberRepo:     memberRepo,
		holidayRepo:    holidayRepo,
		vacationRepo:   vacationRepo,
		allocationRepo: allocationRepo,
		weeksPerMonth:  weeksPerMonth,
		clock:          clock,
	}
}

// MonthlyReport computes available hours, allocated hours, and utilization for
// every active team member in the given month. Year 0 means the current month.
func (s *CapacityServiceImpl) MonthlyReport(ctx context.Context, year int, month time.Month) (MonthlyReport, error) {
	if year == 0 {
		now := s.clock.Now()
		year = now.Year()
		month = now.Month()
	}
	monthStart, monthEnd := MonthRange(year, month)

	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return MonthlyReport{}, fmt.Errorf("failed to load settings: %w", err)
	}
	members, err := s.memberRepo.GetAll(ctx, true)
	if err != nil {
		return MonthlyReport{}, fmt.Errorf("failed to load team members: %w", err)
	}
	holidays, err := s.holidayRepo.GetByYear(ctx, year)
	if err != nil {
		return MonthlyReport{}, fmt.Errorf("failed to load holidays: %w", err)
	}
	allocations, err := s.allocationRepo.GetAll(ctx, allocation.Filter{From: monthStart, To: monthEnd})
	if err != nil {
		return MonthlyReport{}, fmt.Errorf("failed to load allocations: %w", err)
	}

	report := MonthlyReport{Year: year, Month: month}
	for _, m := range members {
		memberReport, err := s.reportForMember(ctx, m, cfg, holidays, allocations, monthStart, monthEnd)
		if err != nil {
			return MonthlyReport{}, err
		}
		report.Members = append(report.Members, memberReport)
	}

	log.Debugf("computed capacity report for %d-%02d covering %d member(s)", year, month, len(report.Members))
	return report, nil
}

func (s *CapacityServiceImpl) reportForMember(
	ctx context.Context,
	m member.Member,
	cfg settings.Settings,
	holidays []holiday.Holiday,
	allocations []allocation.Allocation,
	monthStart, monthEnd time.Time,
) (MemberReport, error) {
	weeklyHours := cfg.WeeklyHoursFor(m.Country)
	dailyHours := weeklyHours / WorkingDaysPerWeek

	holidayHours := float64(holidayDays(monthStart, monthEnd, m.Country, holidays)) * dailyHours

	vacations, err := s.vacationRepo.GetByEmployee(ctx, m.ID)
	if err != nil {
		return MemberReport{}, fmt.Errorf("failed to load vacations: %w", err)
	}
	vacationHours := 0.0
	for _, v := range vacations {
		if !v.Overlaps(monthStart, monthEnd) {
			continue
		}
		start := v.StartDate
		if start.Before(monthStart) {
			start = monthStart
		}
		end := v.EndDate
		if end.After(monthEnd) {
			end = monthEnd
		}
		vacationHours += float64(WorkingDays(start, end, m.Country, holidays)) * dailyHours
	}

	allocatedHours := 0.0
	var projects []ProjectHours
	byProject := map[int]float64{}
	for _, a := range allocations {
		if a.EmployeeID != m.ID {
			continue
		}
		hours := AllocatedHours(a, monthStart, monthEnd, m.Country, holidays)
		allocatedHours += hours
		byProject[a.ProjectID] += hours
	}
	for projectId, hours := range byProject {
		projects = append(projects, ProjectHours{ProjectID: projectId, Hours: hours})
	}

	availableHours := MonthlyAvailableHours(weeklyHours, s.weeksPerMonth, cfg.BufferPercent, holidayHours, vacationHours)

	return MemberReport{
		Member:         m,
		AvailableHours: availableHours,
		AllocatedHours: allocatedHours,
		HolidayHours:   holidayHours,
		VacationHours:  vacationHours,
		Utilization:    Utilization(allocatedHours, availableHours),
		Projects:       projects,
	}, nil
}

// holidayDays counts weekday holidays within [from, to] observed by the given
// country.
func holidayDays(from, to time.Time, country member.Country, holidays []holiday.Holiday) int {
	days := 0
	for _, h := range holidays {
		if h.Date.Before(from) || h.Date.After(to) {
			continue
		}
		if h.Date.Weekday() == time.Saturday || h.Date.Weekday() == time.Sunday {
			continue
		}
		if h.AppliesTo(country) {
			days++
		}
	}
	return days
}
