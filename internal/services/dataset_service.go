package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"kyotabi/internal/models/db_models"
	"kyotabi/internal/repositories"
	"kyotabi/pkg/utils"
)

// DatasetService imports the flat CSV datasets into the store and recomputes
// the aggregate rating columns from reviews. Rows missing required fields are
// rejected at this boundary instead of becoming half-empty records.
type DatasetService struct {
	restaurantRepo repositories.RestaurantRepository
	hotelRepo      repositories.HotelRepository
	attractionRepo repositories.AttractionRepository
	reviewRepo     repositories.ReviewRepository
	bookingRepo    repositories.BookingRepository
}

func NewDatasetService(
	restaurantRepo repositories.RestaurantRepository,
	hotelRepo repositories.HotelRepository,
	attractionRepo repositories.AttractionRepository,
	reviewRepo repositories.ReviewRepository,
	bookingRepo repositories.BookingRepository,
) *DatasetService {
	return &DatasetService{
		restaurantRepo: restaurantRepo,
		hotelRepo:      hotelRepo,
		attractionRepo: attractionRepo,
		reviewRepo:     reviewRepo,
		bookingRepo:    bookingRepo,
	}
}

// csvRecord is one row keyed by header name.
type csvRecord map[string]string

func readCSV(path string) ([]csvRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}

	var records []csvRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		record := make(csvRecord, len(header))
		for i, col := range header {
			if i < len(row) {
				record[col] = row[i]
			}
		}
		records = append(records, record)
	}
	return records, nil
}

func (r csvRecord) str(key string) string { return r[key] }

func (r csvRecord) f64(key string) float64 {
	v, err := strconv.ParseFloat(r[key], 64)
	if err != nil {
		return 0
	}
	return v
}

func (r csvRecord) i64(key string) int64 {
	v, err := strconv.ParseInt(r[key], 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func (r csvRecord) i(key string) int { return int(r.i64(key)) }

func (s *DatasetService) ImportRestaurants(ctx context.Context, path string) (int, error) {
	records, err := readCSV(path)
	if err != nil {
		return 0, err
	}

	rows := make([]db_models.Restaurant, 0, len(records))
	skipped := 0
	for _, rec := range records {
		id := rec.i64("Restaurant_ID")
		name := rec.str("Name")
		if id == 0 || name == "" {
			skipped++
			continue
		}
		rows = append(rows, db_models.Restaurant{
			ID:             id,
			Name:           name,
			JapaneseName:   rec.str("JapaneseName"),
			Station:        rec.str("Station"),
			FirstCategory:  rec.str("FirstCategory"),
			SecondCategory: rec.str("SecondCategory"),
			TotalRating:    rec.f64("TotalRating"),
			Lat:            rec.f64("Lat"),
			Long:           rec.f64("Long"),
			DinnerPrice:    rec.str("DinnerPrice"),
			LunchPrice:     rec.str("LunchPrice"),
			PriceCategory:  rec.str("Price_Category"),
			DinnerRating:   rec.f64("DinnerRating"),
			LunchRating:    rec.f64("LunchRating"),
			ReviewNum:      rec.i("ReviewNum"),
			RatingCategory: rec.str("Rating_Category"),
		})
	}
	if skipped > 0 {
		log.Printf("Skipped %d restaurant rows missing id or name", skipped)
	}

	if err := s.restaurantRepo.ReplaceAll(ctx, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (s *DatasetService) ImportHotels(ctx context.Context, path string) (int, error) {
	records, err := readCSV(path)
	if err != nil {
		return 0, err
	}

	rows := make([]db_models.Hotel, 0, len(records))
	skipped := 0
	for _, rec := range records {
		id := rec.i64("Hotel_ID")
		name := rec.str("HotelName")
		if id == 0 || name == "" {
			skipped++
			continue
		}
		rows = append(rows, db_models.Hotel{
			ID:            id,
			Name:          name,
			JapaneseName:  rec.str("JapaneseName"),
			Station:       rec.str("Station"),
			Lat:           rec.f64("Lat"),
			Long:          rec.f64("Long"),
			Price:         rec.f64("Price"),
			StarRating:    rec.f64("StarRating"),
			TotalRating:   rec.f64("TotalRating"),
			ReviewNum:     rec.i("ReviewNum"),
			PriceCategory: rec.str("Price_Category"),
		})
	}
	if skipped > 0 {
		log.Printf("Skipped %d hotel rows missing id or name", skipped)
	}

	if err := s.hotelRepo.ReplaceAll(ctx, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (s *DatasetService) ImportAttractions(ctx context.Context, path string) (int, error) {
	records, err := readCSV(path)
	if err != nil {
		return 0, err
	}

	rows := make([]db_models.Attraction, 0, len(records))
	skipped := 0
	for _, rec := range records {
		id := rec.i64("Attraction_ID")
		name := rec.str("Name")
		if id == 0 || name == "" {
			skipped++
			continue
		}
		rows = append(rows, db_models.Attraction{
			ID:           id,
			Name:         name,
			JapaneseName: rec.str("JapaneseName"),
			Category:     rec.str("Category"),
			Station:      rec.str("Station"),
			Lat:          rec.f64("Lat"),
			Long:         rec.f64("Long"),
			TotalRating:  rec.f64("TotalRating"),
			ReviewNum:    rec.i("ReviewNum"),
			Description:  rec.str("Description"),
		})
	}
	if skipped > 0 {
		log.Printf("Skipped %d attraction rows missing id or name", skipped)
	}

	if err := s.attractionRepo.ReplaceAll(ctx, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

// ImportReviews loads restaurant and hotel review files. Review dates are
// YYYY-MM-DD strings in the datasets.
func (s *DatasetService) ImportReviews(ctx context.Context, restaurantPath, hotelPath string) (int, error) {
	var rows []db_models.Review
	nextID := int64(1)

	appendFile := func(path string, itemType db_models.ItemType, idCol, textCol, ratingCol, dateCol string) error {
		if path == "" {
			return nil
		}
		records, err := readCSV(path)
		if err != nil {
			return err
		}
		for _, rec := range records {
			itemID := rec.i64(idCol)
			if itemID == 0 {
				continue
			}
			date, err := utils.ParseDateJST(rec.str(dateCol))
			if err != nil {
				continue
			}
			rows = append(rows, db_models.Review{
				ID:         nextID,
				ItemType:   itemType,
				ItemID:     itemID,
				Text:       rec.str(textCol),
				Rating:     rec.f64(ratingCol),
				ReviewDate: date,
			})
			nextID++
		}
		return nil
	}

	if err := appendFile(restaurantPath, db_models.ItemTypeRestaurant, "Restaurant_ID", "ReviewText", "Rating", "ReviewDate"); err != nil {
		return 0, err
	}
	if err := appendFile(hotelPath, db_models.ItemTypeHotel, "Hotel_ID", "Review_Text", "Review_Rating", "Review_Date"); err != nil {
		return 0, err
	}

	if err := s.reviewRepo.ReplaceAll(ctx, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

func (s *DatasetService) ImportBookings(ctx context.Context, path string) (int, error) {
	records, err := readCSV(path)
	if err != nil {
		return 0, err
	}

	rows := make([]db_models.Booking, 0, len(records))
	skipped := 0
	for _, rec := range records {
		id := rec.str("booking_id")
		hotelID := rec.i64("hotel_id")
		status := rec.str("status")
		if id == "" || hotelID == 0 || (status != db_models.BookingConfirmed && status != db_models.BookingCancelled) {
			skipped++
			continue
		}
		bookingDate, err := utils.ParseDateJST(rec.str("booking_date"))
		if err != nil {
			skipped++
			continue
		}
		checkInDate, err := utils.ParseDateJST(rec.str("check_in_date"))
		if err != nil {
			skipped++
			continue
		}
		rows = append(rows, db_models.Booking{
			BookingID:   id,
			HotelID:     hotelID,
			BookingDate: bookingDate,
			CheckInDate: checkInDate,
			PricePaid:   rec.f64("price_paid"),
			Status:      status,
			RoomType:    rec.str("room_type"),
		})
	}
	if skipped > 0 {
		log.Printf("Skipped %d malformed booking rows", skipped)
	}

	if err := s.bookingRepo.ReplaceAll(ctx, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

// RecomputeAggregates refreshes each catalog entity's stored rating and
// review count from the review table (arithmetic mean).
func (s *DatasetService) RecomputeAggregates(ctx context.Context) error {
	for _, itemType := range db_models.ItemTypes() {
		ids, err := s.reviewRepo.ItemIDs(ctx, itemType)
		if err != nil {
			return err
		}
		for _, id := range ids {
			reviews, err := s.reviewRepo.ByItem(ctx, itemType, id)
			if err != nil {
				return err
			}
			if len(reviews) == 0 {
				continue
			}
			var sum float64
			for _, r := range reviews {
				sum += r.Rating
			}
			mean := sum / float64(len(reviews))

			switch itemType {
			case db_models.ItemTypeRestaurant:
				err = s.restaurantRepo.UpdateAggregates(ctx, id, mean, len(reviews))
			case db_models.ItemTypeHotel:
				err = s.hotelRepo.UpdateAggregates(ctx, id, mean, len(reviews))
			case db_models.ItemTypeAttraction:
				err = s.attractionRepo.UpdateAggregates(ctx, id, mean, len(reviews))
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// ImportAll loads every dataset found under dir, skipping absent files.
func (s *DatasetService) ImportAll(ctx context.Context, dir string) error {
	type step struct {
		name string
		run  func() (int, error)
	}

	optional := func(name string) string {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			return ""
		}
		return path
	}

	steps := []step{
		{"restaurants", func() (int, error) {
			if p := optional("Kyoto_Restaurant_Info_Full.csv"); p != "" {
				return s.ImportRestaurants(ctx, p)
			}
			return 0, nil
		}},
		{"hotels", func() (int, error) {
			if p := optional("Hotels.csv"); p != "" {
				return s.ImportHotels(ctx, p)
			}
			return 0, nil
		}},
		{"attractions", func() (int, error) {
			if p := optional("kyoto_attractions.csv"); p != "" {
				return s.ImportAttractions(ctx, p)
			}
			return 0, nil
		}},
		{"reviews", func() (int, error) {
			return s.ImportReviews(ctx, optional("Reviews.csv"), optional("HotelReviews.csv"))
		}},
		{"bookings", func() (int, error) {
			if p := optional("bookings.csv"); p != "" {
				return s.ImportBookings(ctx, p)
			}
			return 0, nil
		}},
	}

	for _, st := range steps {
		n, err := st.run()
		if err != nil {
			return fmt.Errorf("import %s: %w", st.name, err)
		}
		log.Printf("Imported %d %s", n, st.name)
	}

	return s.RecomputeAggregates(ctx)
}
