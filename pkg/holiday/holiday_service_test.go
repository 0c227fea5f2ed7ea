package holiday

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

var holidayRepoStub = NewStubHolidayRepo()

var service HolidayService

func setup(t *testing.T) func() {
	service = NewHolidayService(holidayRepoStub)
	return func() {
		t.Log("Teardown after test")
		holidayRepoStub.Cleanup()
	}
}

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestHolidayServiceImpl_GetAll(t *testing.T) {
	t.Run("should filter by year when one is given", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		// given
		_, err := service.Create(ctx, Holiday{Name: "Canada Day", Date: date("2026-07-01"), Country: CountryCanada})
		require.NoError(t, err)
		_, err = service.Create(ctx, Holiday{Name: "Canada Day", Date: date("2027-07-01"), Country: CountryCanada})
		require.NoError(t, err)

		// when
		all, err := service.GetAll(ctx, 0)
		require.NoError(t, err)
		filtered, err := service.GetAll(ctx, 2026)
		require.NoError(t, err)

		// then
		assert.Len(t, all, 2)
		require.Len(t, filtered, 1)
		assert.Equal(t, 2026, filtered[0].Date.Year())
	})
}

func TestHolidayServiceImpl_Create(t *testing.T) {
	t.Run("should reject an unknown country", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		_, err := service.Create(ctx, Holiday{Name: "Bastille Day", Date: date("2026-07-14"), Country: Country("france")})

		assert.Error(t, err)
	})

	t.Run("should accept a holiday observed in both countries", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		created, err := service.Create(ctx, Holiday{
			Name: "New Year's Day", Date: date("2026-01-01"), Country: CountryBoth,
		})

		require.NoError(t, err)
		assert.NotZero(t, created.ID)
	})
}

func TestHoliday_AppliesTo(t *testing.T) {
	canadian := Holiday{Country: CountryCanada}
	shared := Holiday{Country: CountryBoth}

	assert.True(t, canadian.AppliesTo("canada"))
	assert.False(t, canadian.AppliesTo("brazil"))
	assert.True(t, shared.AppliesTo("canada"))
	assert.True(t, shared.AppliesTo("brazil"))
}
