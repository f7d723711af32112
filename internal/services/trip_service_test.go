package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kyotabi/internal/models/request_models"
	"kyotabi/internal/repositories"
	"kyotabi/pkg/utils"
)

func TestCreateTripValidation(t *testing.T) {
	db := newTestDB(t)
	service := NewTripService(repositories.NewTripRepository(db))
	user := newTestUser(t, db, "akiko")
	ctx := context.Background()

	_, err := service.CreateTrip(ctx, user.ID.String(), request_models.CreateTripRequest{
		TripName:  "   ",
		StartDate: "2026-04-01",
		EndDate:   "2026-04-03",
	})
	assert.ErrorIs(t, err, utils.ErrEmptyTripName)

	_, err = service.CreateTrip(ctx, user.ID.String(), request_models.CreateTripRequest{
		TripName:  "Cherry blossoms",
		StartDate: "2026-04-03",
		EndDate:   "2026-04-01",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidDateRange)

	trip, err := service.CreateTrip(ctx, user.ID.String(), request_models.CreateTripRequest{
		TripName:  "Cherry blossoms",
		StartDate: "2026-04-01",
		EndDate:   "2026-04-03",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, trip.DaySpan)

	// Single-day trips are allowed.
	trip, err = service.CreateTrip(ctx, user.ID.String(), request_models.CreateTripRequest{
		TripName:  "Day trip",
		StartDate: "2026-04-01",
		EndDate:   "2026-04-01",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, trip.DaySpan)
}

func TestAddItemAssignsOrderWithinDay(t *testing.T) {
	db := newTestDB(t)
	service := NewTripService(repositories.NewTripRepository(db))
	user := newTestUser(t, db, "akiko")
	ctx := context.Background()

	trip, err := service.CreateTrip(ctx, user.ID.String(), request_models.CreateTripRequest{
		TripName:  "Three days in Kyoto",
		StartDate: "2026-04-01",
		EndDate:   "2026-04-03",
	})
	require.NoError(t, err)

	first, err := service.AddItemToTrip(ctx, user.ID.String(), trip.ID, request_models.AddTripItemRequest{
		ItemType: "restaurant", ItemID: 1, ItemName: "Gion Sushi Kappo", DayNumber: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, first.OrderInDay)

	second, err := service.AddItemToTrip(ctx, user.ID.String(), trip.ID, request_models.AddTripItemRequest{
		ItemType: "attraction", ItemID: 7, ItemName: "Kinkaku-ji", DayNumber: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, second.OrderInDay)

	// A different day starts its own sequence.
	other, err := service.AddItemToTrip(ctx, user.ID.String(), trip.ID, request_models.AddTripItemRequest{
		ItemType: "hotel", ItemID: 3, ItemName: "Kyoto Grand", DayNumber: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, other.OrderInDay)

	// Day 4 of a 3-day trip is out of range.
	_, err = service.AddItemToTrip(ctx, user.ID.String(), trip.ID, request_models.AddTripItemRequest{
		ItemType: "restaurant", ItemID: 2, ItemName: "Kyoto Ramen Alley", DayNumber: 4,
	})
	assert.ErrorIs(t, err, utils.ErrDayOutOfRange)

	_, err = service.AddItemToTrip(ctx, user.ID.String(), trip.ID, request_models.AddTripItemRequest{
		ItemType: "museum", ItemID: 2, ItemName: "Somewhere", DayNumber: 1,
	})
	assert.ErrorIs(t, err, utils.ErrInvalidItemType)
}

func TestDeleteTripCascadesItems(t *testing.T) {
	db := newTestDB(t)
	tripRepo := repositories.NewTripRepository(db)
	service := NewTripService(tripRepo)
	user := newTestUser(t, db, "akiko")
	ctx := context.Background()

	trip, err := service.CreateTrip(ctx, user.ID.String(), request_models.CreateTripRequest{
		TripName:  "Weekend",
		StartDate: "2026-05-01",
		EndDate:   "2026-05-02",
	})
	require.NoError(t, err)

	_, err = service.AddItemToTrip(ctx, user.ID.String(), trip.ID, request_models.AddTripItemRequest{
		ItemType: "restaurant", ItemID: 1, ItemName: "Gion Sushi Kappo", DayNumber: 1,
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteTrip(ctx, user.ID.String(), trip.ID))

	_, err = service.GetTripByID(ctx, user.ID.String(), trip.ID)
	assert.ErrorIs(t, err, utils.ErrTripNotFound)

	var itemCount int64
	require.NoError(t, db.Table("trip_items").Count(&itemCount).Error)
	assert.Zero(t, itemCount)
}

func TestUpdateTripPartial(t *testing.T) {
	db := newTestDB(t)
	service := NewTripService(repositories.NewTripRepository(db))
	user := newTestUser(t, db, "akiko")
	ctx := context.Background()

	trip, err := service.CreateTrip(ctx, user.ID.String(), request_models.CreateTripRequest{
		TripName:  "Autumn leaves",
		StartDate: "2026-11-20",
		EndDate:   "2026-11-23",
	})
	require.NoError(t, err)

	newName := "Autumn leaves and temples"
	updated, err := service.UpdateTrip(ctx, user.ID.String(), trip.ID, request_models.UpdateTripRequest{
		TripName: &newName,
	})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.TripName)
	assert.Equal(t, trip.StartDate, updated.StartDate)
	assert.GreaterOrEqual(t, updated.UpdatedAt, trip.UpdatedAt)

	// Moving the end before the start is rejected even across two fields.
	badEnd := "2026-11-01"
	_, err = service.UpdateTrip(ctx, user.ID.String(), trip.ID, request_models.UpdateTripRequest{
		EndDate: &badEnd,
	})
	assert.ErrorIs(t, err, utils.ErrInvalidDateRange)
}

func TestForeignTripLooksMissing(t *testing.T) {
	db := newTestDB(t)
	service := NewTripService(repositories.NewTripRepository(db))
	owner := newTestUser(t, db, "akiko")
	intruder := newTestUser(t, db, "botan")
	ctx := context.Background()

	trip, err := service.CreateTrip(ctx, owner.ID.String(), request_models.CreateTripRequest{
		TripName:  "Private plans",
		StartDate: "2026-06-01",
		EndDate:   "2026-06-02",
	})
	require.NoError(t, err)

	_, err = service.GetTripByID(ctx, intruder.ID.String(), trip.ID)
	assert.ErrorIs(t, err, utils.ErrTripNotFound)

	err = service.DeleteTrip(ctx, intruder.ID.String(), trip.ID)
	assert.ErrorIs(t, err, utils.ErrTripNotFound)
}

func TestRemoveItemKeepsRemainingSlots(t *testing.T) {
	db := newTestDB(t)
	service := NewTripService(repositories.NewTripRepository(db))
	user := newTestUser(t, db, "akiko")
	ctx := context.Background()

	trip, err := service.CreateTrip(ctx, user.ID.String(), request_models.CreateTripRequest{
		TripName:  "Food tour",
		StartDate: "2026-07-01",
		EndDate:   "2026-07-01",
	})
	require.NoError(t, err)

	first, err := service.AddItemToTrip(ctx, user.ID.String(), trip.ID, request_models.AddTripItemRequest{
		ItemType: "restaurant", ItemID: 1, ItemName: "Gion Sushi Kappo", DayNumber: 1,
	})
	require.NoError(t, err)
	second, err := service.AddItemToTrip(ctx, user.ID.String(), trip.ID, request_models.AddTripItemRequest{
		ItemType: "restaurant", ItemID: 2, ItemName: "Kyoto Ramen Alley", DayNumber: 1,
	})
	require.NoError(t, err)

	require.NoError(t, service.RemoveItemFromTrip(ctx, user.ID.String(), first.ID))

	items, err := service.GetTripItems(ctx, user.ID.String(), trip.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	// The survivor keeps slot 2; gaps are fine.
	assert.Equal(t, second.ID, items[0].ID)
	assert.Equal(t, 2, items[0].OrderInDay)
}
