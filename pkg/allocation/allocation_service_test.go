package allocation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

var allocationRepoStub = NewStubAllocationRepo()

var service AllocationService

func setup(t *testing.T) func() {
	service = NewAllocationService(allocationRepoStub)
	return func() {
		t.Log("Teardown after test")
		allocationRepoStub.Cleanup()
	}
}

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func sampleAllocation() Allocation {
	return Allocation{
		EmployeeID:  1,
		ProjectID:   2,
		StartDate:   date("2026-03-02"),
		EndDate:     date("2026-03-13"),
		HoursPerDay: 6,
	}
}

func TestAllocationServiceImpl_Create(t *testing.T) {
	t.Run("should create an allocation with active status by default", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		created, err := service.Create(ctx, sampleAllocation())

		// then
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, StatusActive, created.Status)
	})

	t.Run("should reject an overlapping allocation for the same employee and project", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		_, err := service.Create(ctx, sampleAllocation())
		require.NoError(t, err)

		// when a second allocation touches the existing range
		overlapping := sampleAllocation()
		overlapping.StartDate = date("2026-03-13")
		overlapping.EndDate = date("2026-03-20")
		_, err = service.Create(ctx, overlapping)

		// then
		assert.ErrorIs(t, err, ErrOverlap)
	})

	t.Run("should allow the same range on a different project", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		_, err := service.Create(ctx, sampleAllocation())
		require.NoError(t, err)

		// when
		other := sampleAllocation()
		other.ProjectID = 3
		_, err = service.Create(ctx, other)

		// then
		assert.NoError(t, err)
	})

	t.Run("should allow adjacent non-overlapping ranges", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		_, err := service.Create(ctx, sampleAllocation())
		require.NoError(t, err)

		// when the next allocation starts the day after the existing one ends
		next := sampleAllocation()
		next.StartDate = date("2026-03-14")
		next.EndDate = date("2026-03-20")
		_, err = service.Create(ctx, next)

		// then
		assert.NoError(t, err)
	})

	t.Run("should reject a start date after the end date", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		invalid := sampleAllocation()
		invalid.StartDate = date("2026-03-20")
		invalid.EndDate = date("2026-03-02")
		_, err := service.Create(ctx, invalid)

		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("should reject non-positive hours per day", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		invalid := sampleAllocation()
		invalid.HoursPerDay = 0
		_, err := service.Create(ctx, invalid)

		assert.ErrorIs(t, err, ErrInvalidHours)
	})
}

func TestAllocationServiceImpl_Update(t *testing.T) {
	t.Run("should not conflict with the allocation being updated", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		created, err := service.Create(ctx, sampleAllocation())
		require.NoError(t, err)

		// when the same allocation is extended over its own range
		created.EndDate = date("2026-03-20")
		updated, err := service.Update(ctx, created)

		// then
		require.NoError(t, err)
		assert.Equal(t, date("2026-03-20"), updated.EndDate)
	})

	t.Run("should return not found for an unknown id", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		missing := sampleAllocation()
		missing.ID = 42
		missing.Status = StatusActive
		_, err := service.Update(ctx, missing)

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAllocationServiceImpl_Shift(t *testing.T) {
	t.Run("should move both dates by the given number of days", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		created, err := service.Create(ctx, sampleAllocation())
		require.NoError(t, err)

		// when
		shifted, err := service.Shift(ctx, created.ID, 7)

		// then
		require.NoError(t, err)
		assert.Equal(t, date("2026-03-09"), shifted.StartDate)
		assert.Equal(t, date("2026-03-20"), shifted.EndDate)
	})

	t.Run("should move dates earlier for negative days", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		created, err := service.Create(ctx, sampleAllocation())
		require.NoError(t, err)

		shifted, err := service.Shift(ctx, created.ID, -2)

		require.NoError(t, err)
		assert.Equal(t, date("2026-02-28"), shifted.StartDate)
		assert.Equal(t, date("2026-03-11"), shifted.EndDate)
	})

	t.Run("should return not found for an unknown id", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		_, err := service.Shift(ctx, 42, 7)

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAllocationServiceImpl_Resize(t *testing.T) {
	t.Run("should move only the start edge", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		created, err := service.Create(ctx, sampleAllocation())
		require.NoError(t, err)

		resized, err := service.Resize(ctx, created.ID, EdgeStart, date("2026-03-04"))

		require.NoError(t, err)
		assert.Equal(t, date("2026-03-04"), resized.StartDate)
		assert.Equal(t, date("2026-03-13"), resized.EndDate)
	})

	t.Run("should move only the end edge", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		created, err := service.Create(ctx, sampleAllocation())
		require.NoError(t, err)

		resized, err := service.Resize(ctx, created.ID, EdgeEnd, date("2026-03-27"))

		require.NoError(t, err)
		assert.Equal(t, date("2026-03-02"), resized.StartDate)
		assert.Equal(t, date("2026-03-27"), resized.EndDate)
	})

	t.Run("should reject a resize that inverts the range", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		created, err := service.Create(ctx, sampleAllocation())
		require.NoError(t, err)

		_, err = service.Resize(ctx, created.ID, EdgeEnd, date("2026-02-27"))

		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("should reject an unknown edge", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		created, err := service.Create(ctx, sampleAllocation())
		require.NoError(t, err)

		_, err = service.Resize(ctx, created.ID, ResizeEdge("middle"), date("2026-03-04"))

		assert.Error(t, err)
	})
}

func TestAllocationServiceImpl_DeleteBy(t *testing.T) {
	t.Run("should delete all allocations of a project", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given two allocations on project 2 and one on project 3
		_, err := service.Create(ctx, sampleAllocation())
		require.NoError(t, err)
		second := sampleAllocation()
		second.EmployeeID = 9
		_, err = service.Create(ctx, second)
		require.NoError(t, err)
		other := sampleAllocation()
		other.ProjectID = 3
		_, err = service.Create(ctx, other)
		require.NoError(t, err)

		// when
		deleted, err := service.DeleteByProject(ctx, 2)

		// then
		require.NoError(t, err)
		assert.Equal(t, 2, deleted)
		remaining, err := service.GetAll(ctx, Filter{})
		require.NoError(t, err)
		assert.Len(t, remaining, 1)
	})

	t.Run("should delete all allocations of an employee", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		_, err := service.Create(ctx, sampleAllocation())
		require.NoError(t, err)
		other := sampleAllocation()
		other.EmployeeID = 9
		_, err = service.Create(ctx, other)
		require.NoError(t, err)

		// when
		deleted, err := service.DeleteByEmployee(ctx, 1)

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, deleted)
	})
}
