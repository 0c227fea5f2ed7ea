package project

import (
	"context"
	"testing"
	"time"

	"github.com/resourceflow/resourceflow/internal/event_bus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

var projectRepoStub = NewStubProjectRepo()

var (
	bus     *event_bus.EventBus
	service ProjectService
)

func setup(t *testing.T) func() {
	bus = event_bus.NewEventBus()
	service = NewProjectService(projectRepoStub, bus)
	return func() {
		t.Log("Teardown after test")
		projectRepoStub.Cleanup()
	}
}

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestProjectServiceImpl_Create(t *testing.T) {
	t.Run("should default a new project to active status", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		created, err := service.Create(ctx, Project{Name: "Website Redesign"})

		// then
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, StatusActive, created.Status)
	})

	t.Run("should reject an unknown status", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		_, err := service.Create(ctx, Project{Name: "Website Redesign", Status: ProjectStatus("paused")})

		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("should reject a start date after the end date", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		_, err := service.Create(ctx, Project{
			Name:      "Website Redesign",
			StartDate: date("2026-06-30"),
			EndDate:   date("2026-01-05"),
		})

		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("should allow open-ended dates", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		created, err := service.Create(ctx, Project{
			Name:      "Ongoing Support",
			StartDate: date("2026-01-05"),
		})

		require.NoError(t, err)
		assert.True(t, created.EndDate.IsZero())
	})
}

func TestProjectServiceImpl_Delete(t *testing.T) {
	t.Run("should publish a deletion event for cleanup subscribers", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		created, err := service.Create(ctx, Project{Name: "Website Redesign"})
		require.NoError(t, err)

		var received *event_bus.ProjectDeleted
		event_bus.SubscribeTyped(bus, event_bus.ProjectDeletedEvent,
			func(e event_bus.EventT[event_bus.ProjectDeleted]) error {
				received = &e.Data
				return nil
			})

		// when
		deleted, err := service.Delete(ctx, created.ID)

		// then
		require.NoError(t, err)
		assert.True(t, deleted)
		require.NotNil(t, received)
		assert.Equal(t, created.ID, received.ProjectId)
		assert.Equal(t, "Website Redesign", received.Name)
	})

	t.Run("should return false for an unknown id", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		deleted, err := service.Delete(ctx, 42)

		assert.NoError(t, err)
		assert.False(t, deleted)
	})
}
