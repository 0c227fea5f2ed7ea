package capacity

import (
	"context"
	"testing"
	"time"

	"github.com/resourceflow/resourceflow/internal/utils"
	"github.com/resourceflow/resourceflow/pkg/allocation"
	"github.com/resourceflow/resourceflow/pkg/holiday"
	"github.com/resourceflow/resourceflow/pkg/member"
	"github.com/resourceflow/resourceflow/pkg/settings"
	"github.com/resourceflow/resourceflow/pkg/vacation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

var (
	settingsRepoStub   = settings.NewStubSettingsRepo()
	memberRepoStub     = member.NewStubMemberRepo()
	holidayRepoStub    = holiday.NewStubHolidayRepo()
	vacationRepoStub   = vacation.NewStubVacationRepo()
	allocationRepoStub = allocation.NewStubAllocationRepo()
)

var service CapacityService

func setup(t *testing.T) func() {
	clock := &utils.MockClock{FixedNow: date("2026-03-15")}
	service = NewCapacityService(settingsRepoStub, memberRepoStub, holidayRepoStub,
		vacationRepoStub, allocationRepoStub, 4.0, clock)
	return func() {
		t.Log("Teardown after test")
		memberRepoStub.Cleanup()
		holidayRepoStub.Cleanup()
		vacationRepoStub.Cleanup()
		allocationRepoStub.Cleanup()
	}
}

func storeMember(t *testing.T, country member.Country) member.Member {
	t.Helper()
	m := member.Member{Name: "Test Member", Role: "Developer", Country: country, Active: true}
	id, err := memberRepoStub.Store(ctx, m)
	require.NoError(t, err)
	m.ID = id
	return m
}

func TestCapacityServiceImpl_MonthlyReport(t *testing.T) {
	t.Run("should compute allocated and available hours for a plain month", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given a Canadian member allocated Mon-Fri at 6h/day in March 2026
		m := storeMember(t, member.CountryCanada)
		_, err := allocationRepoStub.Store(ctx, allocation.Allocation{
			EmployeeID:  m.ID,
			ProjectID:   7,
			StartDate:   date("2026-03-02"),
			EndDate:     date("2026-03-06"),
			HoursPerDay: 6,
			Status:      allocation.StatusActive,
		})
		require.NoError(t, err)

		// when
		report, err := service.MonthlyReport(ctx, 2026, time.March)

		// then
		require.NoError(t, err)
		require.Len(t, report.Members, 1)
		memberReport := report.Members[0]
		assert.Equal(t, 30.0, memberReport.AllocatedHours)
		// 37.5 weekly * 4 weeks = 150, minus 20% buffer
		assert.Equal(t, 120.0, memberReport.AvailableHours)
		assert.Equal(t, 25.0, memberReport.Utilization)
		assert.Equal(t, 0.0, memberReport.HolidayHours)
		assert.Equal(t, 0.0, memberReport.VacationHours)
		require.Len(t, memberReport.Projects, 1)
		assert.Equal(t, 7, memberReport.Projects[0].ProjectID)
		assert.Equal(t, 30.0, memberReport.Projects[0].Hours)
	})

	t.Run("should subtract weekday holidays from capacity and allocations", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given a holiday on Tuesday 2026-03-03 inside the allocation range
		m := storeMember(t, member.CountryCanada)
		_, err := holidayRepoStub.Store(ctx, holiday.Holiday{
			Name:    "Provincial Holiday",
			Date:    date("2026-03-03"),
			Country: holiday.CountryCanada,
		})
		require.NoError(t, err)
		_, err = allocationRepoStub.Store(ctx, allocation.Allocation{
			EmployeeID:  m.ID,
			ProjectID:   7,
			StartDate:   date("2026-03-02"),
			EndDate:     date("2026-03-06"),
			HoursPerDay: 6,
			Status:      allocation.StatusActive,
		})
		require.NoError(t, err)

		// when
		report, err := service.MonthlyReport(ctx, 2026, time.March)

		// then
		require.NoError(t, err)
		require.Len(t, report.Members, 1)
		memberReport := report.Members[0]
		assert.Equal(t, 7.5, memberReport.HolidayHours)
		// four working days left in the allocation week
		assert.Equal(t, 24.0, memberReport.AllocatedHours)
		assert.Equal(t, 112.5, memberReport.AvailableHours)
		assert.InDelta(t, 21.33, memberReport.Utilization, 0.01)
	})

	t.Run("should not charge a member for the other country's holidays", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		storeMember(t, member.CountryBrazil)
		_, err := holidayRepoStub.Store(ctx, holiday.Holiday{
			Name:    "Provincial Holiday",
			Date:    date("2026-03-03"),
			Country: holiday.CountryCanada,
		})
		require.NoError(t, err)

		// when
		report, err := service.MonthlyReport(ctx, 2026, time.March)

		// then
		require.NoError(t, err)
		require.Len(t, report.Members, 1)
		assert.Equal(t, 0.0, report.Members[0].HolidayHours)
		// 44 weekly * 4 weeks = 176, minus 20% buffer
		assert.Equal(t, 140.8, report.Members[0].AvailableHours)
	})

	t.Run("should subtract vacation working days clamped to the month", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		m := storeMember(t, member.CountryCanada)
		_, err := vacationRepoStub.Store(ctx, vacation.Vacation{
			EmployeeID: m.ID,
			StartDate:  date("2026-03-09"),
			EndDate:    date("2026-03-13"),
			Type:       "vacation",
		})
		require.NoError(t, err)

		// when
		report, err := service.MonthlyReport(ctx, 2026, time.March)

		// then
		require.NoError(t, err)
		require.Len(t, report.Members, 1)
		assert.Equal(t, 37.5, report.Members[0].VacationHours)
		assert.Equal(t, 82.5, report.Members[0].AvailableHours)
	})

	t.Run("should default to the current month when year is zero", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		storeMember(t, member.CountryCanada)

		// when
		report, err := service.MonthlyReport(ctx, 0, time.January)

		// then
		require.NoError(t, err)
		assert.Equal(t, 2026, report.Year)
		assert.Equal(t, time.March, report.Month)
	})

	t.Run("should skip inactive members", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		_, err := memberRepoStub.Store(ctx, member.Member{
			Name: "Former Member", Country: member.CountryCanada, Active: false,
		})
		require.NoError(t, err)

		// when
		report, err := service.MonthlyReport(ctx, 2026, time.March)

		// then
		require.NoError(t, err)
		assert.Empty(t, report.Members)
	})
}
