package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kyotabi/internal/models/db_models"
	"kyotabi/internal/repositories"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestImportRestaurantsRejectsBadRows(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewRestaurantRepository(db)
	service := NewDatasetService(repo,
		repositories.NewHotelRepository(db),
		repositories.NewAttractionRepository(db),
		repositories.NewReviewRepository(db),
		repositories.NewBookingRepository(db))

	dir := t.TempDir()
	writeFile(t, dir, "restaurants.csv",
		"Restaurant_ID,Name,Station,SecondCategory,TotalRating,ReviewNum\n"+
			"1,Gion Sushi Kappo,Gion-Shijo,Sushi,4.5,320\n"+
			",Missing ID,Kyoto,Ramen,3.8,10\n"+
			"3,,Kyoto,Ramen,3.8,10\n"+
			"4,Short Row\n")

	n, err := service.ImportRestaurants(context.Background(), filepath.Join(dir, "restaurants.csv"))
	require.NoError(t, err)
	// Rows missing id or name are dropped; the short row keeps its id and name.
	assert.Equal(t, 2, n)

	row, err := repo.ByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, "Gion Sushi Kappo", row.Name)
	assert.Equal(t, "Sushi", row.SecondCategory)
	assert.Equal(t, 320, row.ReviewNum)
}

func TestImportBookingsValidatesStatus(t *testing.T) {
	db := newTestDB(t)
	bookingRepo := repositories.NewBookingRepository(db)
	service := NewDatasetService(
		repositories.NewRestaurantRepository(db),
		repositories.NewHotelRepository(db),
		repositories.NewAttractionRepository(db),
		repositories.NewReviewRepository(db),
		bookingRepo)

	dir := t.TempDir()
	writeFile(t, dir, "bookings.csv",
		"booking_id,hotel_id,booking_date,check_in_date,price_paid,status,room_type\n"+
			"B1,1,2026-01-02,2026-01-10,10000,Confirmed,Double\n"+
			"B2,1,2026-01-03,2026-01-11,0,Cancelled,Single\n"+
			"B3,1,2026-01-04,2026-01-12,9000,Pending,Single\n"+
			"B4,1,not-a-date,2026-01-12,9000,Confirmed,Single\n")

	n, err := service.ImportBookings(context.Background(), filepath.Join(dir, "bookings.csv"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	rows, err := bookingRepo.ByHotel(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestImportAllRecomputesAggregates(t *testing.T) {
	db := newTestDB(t)
	restaurantRepo := repositories.NewRestaurantRepository(db)
	service := NewDatasetService(restaurantRepo,
		repositories.NewHotelRepository(db),
		repositories.NewAttractionRepository(db),
		repositories.NewReviewRepository(db),
		repositories.NewBookingRepository(db))

	dir := t.TempDir()
	writeFile(t, dir, "Kyoto_Restaurant_Info_Full.csv",
		"Restaurant_ID,Name,TotalRating,ReviewNum\n"+
			"1,Gion Sushi Kappo,0,0\n")
	writeFile(t, dir, "Reviews.csv",
		"Restaurant_ID,ReviewText,Rating,ReviewDate\n"+
			"1,Excellent omakase,5,2026-01-10\n"+
			"1,A bit rushed,3,2026-01-12\n")

	require.NoError(t, service.ImportAll(context.Background(), dir))

	row, err := restaurantRepo.ByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.InDelta(t, 4.0, row.TotalRating, 0.001)
	assert.Equal(t, 2, row.ReviewNum)

	// Absent optional files are skipped, not errors.
	var hotelCount int64
	require.NoError(t, db.Model(&db_models.Hotel{}).Count(&hotelCount).Error)
	assert.Zero(t, hotelCount)
}
