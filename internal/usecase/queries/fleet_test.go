//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"rental-marketplace/internal/domain/reservation"
	"rental-marketplace/internal/infra"
	"rental-marketplace/internal/pkg/clock"
	"rental-marketplace/internal/pkg/ptr"
	"rental-marketplace/internal/usecase/queries"
	queriesmock "rental-marketplace/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newFactory(t *testing.T) *reservation.Factory {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Muscat")
	require.NoError(t, err)
	now := time.Date(2024, 3, 1, 8, 0, 0, 0, loc)
	return reservation.NewFactory(clock.NewMockClock(now), loc, reservation.NewDailyRateCalculator())
}

func TestFleetSearch(t *testing.T) {
	tests := []struct {
		name   string
		filter queries.FleetFilter
		expect func(*testing.T, queries.FleetSearch)
		errIs  error
	}{
		{
			name:   "success: empty filter searches everything",
			filter: queries.FleetFilter{Category: "all"},
			expect: func(t *testing.T, s queries.FleetSearch) {
				assert.Nil(t, s.Category)
				assert.Nil(t, s.MinRate)
				assert.Nil(t, s.Dates)
				assert.Empty(t, s.Features)
			},
		},
		{
			name:   "success: prices are converted to baisa",
			filter: queries.FleetFilter{Category: " Heavy ", MinPrice: ptr.Of(12.5), MaxPrice: ptr.Of(40.0)},
			expect: func(t *testing.T, s queries.FleetSearch) {
				require.NotNil(t, s.Category)
				assert.Equal(t, "heavy", *s.Category)
				assert.EqualValues(t, 12500, *s.MinRate)
				assert.EqualValues(t, 40000, *s.MaxRate)
			},
		},
		{
			name:   "success: comma separated features are split",
			filter: queries.FleetFilter{Features: []string{"GPS, Bluetooth", " ", "4x4"}},
			expect: func(t *testing.T, s queries.FleetSearch) {
				assert.Equal(t, []string{"GPS", "Bluetooth", "4x4"}, s.Features)
			},
		},
		{
			name:   "success: one-sided dates are ignored",
			filter: queries.FleetFilter{StartDate: "2024-03-05"},
			expect: func(t *testing.T, s queries.FleetSearch) {
				assert.Nil(t, s.Dates)
			},
		},
		{
			name:   "success: date window is parsed",
			filter: queries.FleetFilter{StartDate: "2024-03-05", EndDate: "2024-03-08"},
			expect: func(t *testing.T, s queries.FleetSearch) {
				require.NotNil(t, s.Dates)
				assert.Equal(t, 3, s.Dates.Days())
			},
		},
		{
			name:   "error: unknown category",
			filter: queries.FleetFilter{Category: "boat"},
			errIs:  queries.ErrInvalidFilter,
		},
		{
			name:   "error: min above max",
			filter: queries.FleetFilter{MinPrice: ptr.Of(50.0), MaxPrice: ptr.Of(10.0)},
			errIs:  queries.ErrInvalidFilter,
		},
		{
			name:   "error: reversed dates",
			filter: queries.FleetFilter{StartDate: "2024-03-08", EndDate: "2024-03-05"},
			errIs:  queries.ErrInvalidDates,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockFleetReadStore(ctrl)
			q := queries.NewFleetQueries(store, newFactory(t))

			var got queries.FleetSearch
			if tt.errIs == nil {
				store.EXPECT().Search(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, s queries.FleetSearch) ([]queries.FleetItemView, error) {
						got = s
						return []queries.FleetItemView{}, nil
					})
			}

			items, err := q.Search(context.Background(), tt.filter)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, items)
			tt.expect(t, got)
		})
	}
}

func TestFleetGetListing(t *testing.T) {
	id := uuid.New()

	t.Run("error: missing listing maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockFleetReadStore(ctrl)
		store.EXPECT().FindAvailableByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("find listing", errors.New("no rows"), infra.KindNotFound))

		_, err := queries.NewFleetQueries(store, newFactory(t)).GetListing(context.Background(), id)
		require.ErrorIs(t, err, queries.ErrListingNotFound)
	})
}

func TestCheckAvailability(t *testing.T) {
	id := uuid.New()

	t.Run("success: free window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockAvailabilityReadStore(ctrl)
		store.EXPECT().CountBlockingOverlaps(gomock.Any(), id, gomock.Any()).Return(int64(0), nil)

		view, err := queries.NewAvailabilityQueries(store, newFactory(t)).
			CheckAvailability(context.Background(), id, "2024-03-05", "2024-03-07")
		require.NoError(t, err)
		assert.True(t, view.Available)
	})

	t.Run("success: store failure fails closed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockAvailabilityReadStore(ctrl)
		store.EXPECT().CountBlockingOverlaps(gomock.Any(), id, gomock.Any()).Return(int64(0), errors.New("connection reset"))

		view, err := queries.NewAvailabilityQueries(store, newFactory(t)).
			CheckAvailability(context.Background(), id, "2024-03-05", "2024-03-07")
		require.NoError(t, err)
		assert.False(t, view.Available)
		assert.Equal(t, "System error", view.Message)
	})

	t.Run("error: malformed date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockAvailabilityReadStore(ctrl)

		_, err := queries.NewAvailabilityQueries(store, newFactory(t)).
			CheckAvailability(context.Background(), id, "tomorrow-ish", "2024-03-07")
		require.ErrorIs(t, err, queries.ErrInvalidDates)
	})
}
