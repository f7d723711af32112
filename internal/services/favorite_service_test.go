package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kyotabi/internal/models/db_models"
	"kyotabi/internal/models/request_models"
	"kyotabi/internal/repositories"
	"kyotabi/pkg/utils"
)

func TestToggleFavoriteTwiceIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	service := NewFavoriteService(repositories.NewFavoriteRepository(db))
	user := newTestUser(t, db, "akiko")
	ctx := context.Background()

	request := request_models.ToggleFavoriteRequest{
		ItemType: "restaurant", ItemID: 1, ItemName: "Gion Sushi Kappo",
	}

	result, err := service.ToggleFavorite(ctx, user.ID.String(), request)
	require.NoError(t, err)
	assert.True(t, result.Favorited)

	favorited, err := service.IsFavorited(ctx, user.ID.String(), db_models.ItemTypeRestaurant, 1)
	require.NoError(t, err)
	assert.True(t, favorited)

	result, err = service.ToggleFavorite(ctx, user.ID.String(), request)
	require.NoError(t, err)
	assert.False(t, result.Favorited)

	favorited, err = service.IsFavorited(ctx, user.ID.String(), db_models.ItemTypeRestaurant, 1)
	require.NoError(t, err)
	assert.False(t, favorited)

	// Remove then re-add must work; nothing lingers from the first round.
	result, err = service.ToggleFavorite(ctx, user.ID.String(), request)
	require.NoError(t, err)
	assert.True(t, result.Favorited)
}

func TestToggleFavoriteRejectsUnknownType(t *testing.T) {
	db := newTestDB(t)
	service := NewFavoriteService(repositories.NewFavoriteRepository(db))
	user := newTestUser(t, db, "akiko")

	_, err := service.ToggleFavorite(context.Background(), user.ID.String(), request_models.ToggleFavoriteRequest{
		ItemType: "museum", ItemID: 1, ItemName: "Somewhere",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidItemType)
}

func TestFavoriteCountsSumAcrossTypes(t *testing.T) {
	db := newTestDB(t)
	service := NewFavoriteService(repositories.NewFavoriteRepository(db))
	user := newTestUser(t, db, "akiko")
	ctx := context.Background()

	toggles := []request_models.ToggleFavoriteRequest{
		{ItemType: "restaurant", ItemID: 1, ItemName: "Gion Sushi Kappo"},
		{ItemType: "restaurant", ItemID: 2, ItemName: "Kyoto Ramen Alley"},
		{ItemType: "hotel", ItemID: 3, ItemName: "Kyoto Grand"},
	}
	for _, toggle := range toggles {
		_, err := service.ToggleFavorite(ctx, user.ID.String(), toggle)
		require.NoError(t, err)
	}

	counts, err := service.GetFavoritesCount(ctx, user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 2, counts.Restaurant)
	assert.Equal(t, 1, counts.Hotel)
	assert.Equal(t, 0, counts.Attraction)
	assert.Equal(t, 3, counts.Total)

	// Another user's favorites do not leak in.
	other := newTestUser(t, db, "botan")
	counts, err = service.GetFavoritesCount(ctx, other.ID.String())
	require.NoError(t, err)
	assert.Zero(t, counts.Total)
}

func TestFavoriteMetadataRoundTrip(t *testing.T) {
	db := newTestDB(t)
	service := NewFavoriteService(repositories.NewFavoriteRepository(db))
	user := newTestUser(t, db, "akiko")
	ctx := context.Background()

	payload := json.RawMessage(`{"station":"Gion-Shijo","rating":4.5}`)
	_, err := service.ToggleFavorite(ctx, user.ID.String(), request_models.ToggleFavoriteRequest{
		ItemType: "restaurant", ItemID: 1, ItemName: "Gion Sushi Kappo", ItemData: payload,
	})
	require.NoError(t, err)

	favorites, err := service.GetUserFavorites(ctx, user.ID.String(), nil)
	require.NoError(t, err)
	require.Len(t, favorites, 1)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(favorites[0].ItemData, &decoded))
	assert.Equal(t, "Gion-Shijo", decoded["station"])
	assert.Equal(t, 4.5, decoded["rating"])
}

func TestGetFavoritesByIDsBadgesEveryRequestedID(t *testing.T) {
	db := newTestDB(t)
	service := NewFavoriteService(repositories.NewFavoriteRepository(db))
	user := newTestUser(t, db, "akiko")
	ctx := context.Background()

	for _, toggle := range []request_models.ToggleFavoriteRequest{
		{ItemType: "restaurant", ItemID: 1, ItemName: "Gion Sushi Kappo"},
		{ItemType: "restaurant", ItemID: 3, ItemName: "Arashiyama Tofu House"},
	} {
		_, err := service.ToggleFavorite(ctx, user.ID.String(), toggle)
		require.NoError(t, err)
	}

	states, err := service.GetFavoritesByIDs(ctx, user.ID.String(), db_models.ItemTypeRestaurant, []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, map[int64]bool{1: true, 2: false, 3: true}, states)

	// A favorite of another type does not badge restaurant ids.
	states, err = service.GetFavoritesByIDs(ctx, user.ID.String(), db_models.ItemTypeHotel, []int64{1})
	require.NoError(t, err)
	assert.Equal(t, map[int64]bool{1: false}, states)

	states, err = service.GetFavoritesByIDs(ctx, user.ID.String(), db_models.ItemTypeRestaurant, nil)
	require.NoError(t, err)
	assert.Empty(t, states)

	_, err = service.GetFavoritesByIDs(ctx, user.ID.String(), "museum", []int64{1})
	assert.ErrorIs(t, err, utils.ErrInvalidItemType)
}

func TestGetUserFavoritesFilteredByType(t *testing.T) {
	db := newTestDB(t)
	service := NewFavoriteService(repositories.NewFavoriteRepository(db))
	user := newTestUser(t, db, "akiko")
	ctx := context.Background()

	for _, toggle := range []request_models.ToggleFavoriteRequest{
		{ItemType: "restaurant", ItemID: 1, ItemName: "Gion Sushi Kappo"},
		{ItemType: "hotel", ItemID: 3, ItemName: "Kyoto Grand"},
	} {
		_, err := service.ToggleFavorite(ctx, user.ID.String(), toggle)
		require.NoError(t, err)
	}

	hotelType := db_models.ItemTypeHotel
	favorites, err := service.GetUserFavorites(ctx, user.ID.String(), &hotelType)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, "hotel", favorites[0].ItemType)
}

func TestClearUserFavorites(t *testing.T) {
	db := newTestDB(t)
	service := NewFavoriteService(repositories.NewFavoriteRepository(db))
	user := newTestUser(t, db, "akiko")
	ctx := context.Background()

	for _, toggle := range []request_models.ToggleFavoriteRequest{
		{ItemType: "restaurant", ItemID: 1, ItemName: "Gion Sushi Kappo"},
		{ItemType: "restaurant", ItemID: 2, ItemName: "Kyoto Ramen Alley"},
		{ItemType: "hotel", ItemID: 3, ItemName: "Kyoto Grand"},
	} {
		_, err := service.ToggleFavorite(ctx, user.ID.String(), toggle)
		require.NoError(t, err)
	}

	restaurantType := db_models.ItemTypeRestaurant
	cleared, err := service.ClearUserFavorites(ctx, user.ID.String(), &restaurantType)
	require.NoError(t, err)
	assert.Equal(t, int64(2), cleared)

	counts, err := service.GetFavoritesCount(ctx, user.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 1, counts.Total)
}
