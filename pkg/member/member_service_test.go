package member

import (
	"context"
	"testing"

	"github.com/resourceflow/resourceflow/internal/event_bus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

var memberRepoStub = NewStubMemberRepo()

var (
	bus     *event_bus.EventBus
	service MemberService
)

func setup(t *testing.T) func() {
	bus = event_bus.NewEventBus()
	service = NewMemberService(memberRepoStub, bus)
	return func() {
		t.Log("Teardown after test")
		memberRepoStub.Cleanup()
	}
}

func TestMemberServiceImpl_Create(t *testing.T) {
	t.Run("should create a team member", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// when
		created, err := service.Create(ctx, Member{
			Name: "Alice Tremblay", Role: "Developer", Country: CountryCanada, Active: true,
		})

		// then
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, "Alice Tremblay", created.Name)
	})

	t.Run("should reject an empty name", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		_, err := service.Create(ctx, Member{Country: CountryCanada})

		assert.Error(t, err)
	})

	t.Run("should reject an unknown country", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		_, err := service.Create(ctx, Member{Name: "Alice", Country: Country("france")})

		assert.ErrorIs(t, err, ErrInvalidCountry)
	})
}

func TestMemberServiceImpl_GetAll(t *testing.T) {
	t.Run("should filter to active members when requested", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		_, err := service.Create(ctx, Member{Name: "Active", Country: CountryCanada, Active: true})
		require.NoError(t, err)
		_, err = service.Create(ctx, Member{Name: "Former", Country: CountryBrazil, Active: false})
		require.NoError(t, err)

		// when
		all, err := service.GetAll(ctx, false)
		require.NoError(t, err)
		active, err := service.GetAll(ctx, true)
		require.NoError(t, err)

		// then
		assert.Len(t, all, 2)
		require.Len(t, active, 1)
		assert.Equal(t, "Active", active[0].Name)
	})
}

func TestMemberServiceImpl_Delete(t *testing.T) {
	t.Run("should publish a deletion event for cleanup subscribers", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		created, err := service.Create(ctx, Member{Name: "Alice", Country: CountryCanada, Active: true})
		require.NoError(t, err)

		var received *event_bus.TeamMemberDeleted
		event_bus.SubscribeTyped(bus, event_bus.TeamMemberDeletedEvent,
			func(e event_bus.EventT[event_bus.TeamMemberDeleted]) error {
				received = &e.Data
				return nil
			})

		// when
		deleted, err := service.Delete(ctx, created.ID)

		// then
		require.NoError(t, err)
		assert.True(t, deleted)
		require.NotNil(t, received)
		assert.Equal(t, created.ID, received.MemberId)
		assert.Equal(t, "Alice", received.Name)
	})

	t.Run("should report the deletion even when a cleanup subscriber fails", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		created, err := service.Create(ctx, Member{Name: "Alice", Country: CountryCanada, Active: true})
		require.NoError(t, err)

		event_bus.SubscribeTyped(bus, event_bus.TeamMemberDeletedEvent,
			func(e event_bus.EventT[event_bus.TeamMemberDeleted]) error {
				return assert.AnError
			})

		// when
		deleted, err := service.Delete(ctx, created.ID)

		// then
		assert.True(t, deleted)
		assert.ErrorContains(t, err, "cleanup failed")
	})

	t.Run("should return false for an unknown id", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		deleted, err := service.Delete(ctx, 42)

		assert.NoError(t, err)
		assert.False(t, deleted)
	})
}
