package vacation

import (
	"context"
	"testing"
	"time"

	"github.com/resourceflow/resourceflow/pkg/member"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

var (
	vacationRepoStub = NewStubVacationRepo()
	memberRepoStub   = member.NewStubMemberRepo()
)

var service VacationService

func setup(t *testing.T) func() {
	service = NewVacationService(vacationRepoStub, memberRepoStub)
	return func() {
		t.Log("Teardown after test")
		vacationRepoStub.Cleanup()
		memberRepoStub.Cleanup()
	}
}

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func storeMember(t *testing.T) member.Member {
	t.Helper()
	m := member.Member{Name: "Bruno Costa", Country: member.CountryBrazil, Active: true}
	id, err := memberRepoStub.Store(ctx, m)
	require.NoError(t, err)
	m.ID = id
	return m
}

func TestVacationServiceImpl_Create(t *testing.T) {
	t.Run("should create a vacation and denormalize the employee name", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		m := storeMember(t)

		// when
		created, err := service.Create(ctx, Vacation{
			EmployeeID: m.ID,
			StartDate:  date("2026-07-06"),
			EndDate:    date("2026-07-17"),
			Type:       "vacation",
		})

		// then
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, "Bruno Costa", created.EmployeeName)
	})

	t.Run("should reject a vacation for an unknown employee", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		_, err := service.Create(ctx, Vacation{
			EmployeeID: 42,
			StartDate:  date("2026-07-06"),
			EndDate:    date("2026-07-17"),
		})

		assert.ErrorIs(t, err, ErrUnknownEmployee)
	})

	t.Run("should reject a start date after the end date", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		m := storeMember(t)

		_, err := service.Create(ctx, Vacation{
			EmployeeID: m.ID,
			StartDate:  date("2026-07-17"),
			EndDate:    date("2026-07-06"),
		})

		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})
}

func TestVacationServiceImpl_GetAll(t *testing.T) {
	t.Run("should filter by employee when an id is given", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given two employees with one vacation each
		first := storeMember(t)
		secondId, err := memberRepoStub.Store(ctx, member.Member{
			Name: "Carol Nguyen", Country: member.CountryCanada, Active: true,
		})
		require.NoError(t, err)

		_, err = service.Create(ctx, Vacation{
			EmployeeID: first.ID, StartDate: date("2026-07-06"), EndDate: date("2026-07-10"),
		})
		require.NoError(t, err)
		_, err = service.Create(ctx, Vacation{
			EmployeeID: secondId, StartDate: date("2026-08-03"), EndDate: date("2026-08-07"),
		})
		require.NoError(t, err)

		// when
		all, err := service.GetAll(ctx, 0)
		require.NoError(t, err)
		filtered, err := service.GetAll(ctx, first.ID)
		require.NoError(t, err)

		// then
		assert.Len(t, all, 2)
		require.Len(t, filtered, 1)
		assert.Equal(t, first.ID, filtered[0].EmployeeID)
	})
}

func TestVacationServiceImpl_DeleteByEmployee(t *testing.T) {
	t.Run("should remove all vacations of one employee", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		m := storeMember(t)
		_, err := service.Create(ctx, Vacation{
			EmployeeID: m.ID, StartDate: date("2026-07-06"), EndDate: date("2026-07-10"),
		})
		require.NoError(t, err)
		_, err = service.Create(ctx, Vacation{
			EmployeeID: m.ID, StartDate: date("2026-12-21"), EndDate: date("2026-12-24"),
		})
		require.NoError(t, err)

		// when
		deleted, err := service.DeleteByEmployee(ctx, m.ID)

		// then
		require.NoError(t, err)
		assert.Equal(t, 2, deleted)
		remaining, err := service.GetAll(ctx, m.ID)
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})
}
