package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"kyotabi/internal/models/db_models"
	"kyotabi/internal/models/response_models"
	"kyotabi/internal/repositories"
	"kyotabi/pkg/utils"
)

// Coarse sentiment proxy: a review "mentions a problem" if it contains any of
// these, case-insensitively. English terms come from the review generator's
// vocabulary; Japanese terms cover the scraped reviews.
var negativeKeywords = []string{
	"terrible", "poor", "disappointing", "below expectations",
	"dirty", "noisy", "bad", "worst",
	"最悪", "汚い", "残念", "うるさい", "狭い",
}

const trendWindow = 30

type AnalyticsServiceInterface interface {
	HotelSummaries(ctx context.Context) ([]response_models.HotelSummary, error)
	BookingHistory(ctx context.Context, hotelID *int64) ([]response_models.BookingResponse, error)
	RatingTrend(ctx context.Context, hotelID *int64, from, to *time.Time) ([]response_models.TrendPoint, error)
	RatingDistribution(ctx context.Context, hotelID *int64, from, to *time.Time) ([]response_models.RatingBucket, error)
}

type AnalyticsService struct {
	hotelRepo   repositories.HotelRepository
	bookingRepo repositories.BookingRepository
	reviewRepo  repositories.ReviewRepository
}

func NewAnalyticsService(
	hotelRepo repositories.HotelRepository,
	bookingRepo repositories.BookingRepository,
	reviewRepo repositories.ReviewRepository,
) AnalyticsServiceInterface {
	return &AnalyticsService{
		hotelRepo:   hotelRepo,
		bookingRepo: bookingRepo,
		reviewRepo:  reviewRepo,
	}
}

// AveragePaidPrice is the mean price over confirmed bookings only. Cancelled
// bookings record a price of zero and would drag the mean down. Returns nil
// when no booking was confirmed.
func AveragePaidPrice(bookings []db_models.Booking) *float64 {
	var sum float64
	var n int
	for _, b := range bookings {
		if b.Status == db_models.BookingConfirmed {
			sum += b.PricePaid
			n++
		}
	}
	if n == 0 {
		return nil
	}
	avg := sum / float64(n)
	return &avg
}

// CancellationRate is cancelled/total. Nil when there are no bookings at all:
// that is "no data", not a zero rate.
func CancellationRate(bookings []db_models.Booking) *float64 {
	if len(bookings) == 0 {
		return nil
	}
	var cancelled int
	for _, b := range bookings {
		if b.Status == db_models.BookingCancelled {
			cancelled++
		}
	}
	rate := float64(cancelled) / float64(len(bookings))
	return &rate
}

// NegativeMentionRatio is the fraction of reviews containing at least one
// negative keyword. Nil when the hotel has no reviews.
func NegativeMentionRatio(reviews []db_models.Review) *float64 {
	if len(reviews) == 0 {
		return nil
	}
	var negative int
	for _, r := range reviews {
		text := strings.ToLower(r.Text)
		for _, kw := range negativeKeywords {
			if strings.Contains(text, kw) {
				negative++
				break
			}
		}
	}
	ratio := float64(negative) / float64(len(reviews))
	return &ratio
}

// RollingMean computes the trailing mean over a window of up to `window`
// entries with min-periods 1: early points average whatever came before them.
func RollingMean(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	var sum float64
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		n := i + 1
		if n > window {
			n = window
		}
		out[i] = sum / float64(n)
	}
	return out
}

func averageRating(reviews []db_models.Review) *float64 {
	if len(reviews) == 0 {
		return nil
	}
	var sum float64
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := sum / float64(len(reviews))
	return &avg
}

func (s *AnalyticsService) HotelSummaries(ctx context.Context) ([]response_models.HotelSummary, error) {
	hotels, err := s.hotelRepo.All(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	allBookings, err := s.bookingRepo.All(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	bookingsByHotel := make(map[int64][]db_models.Booking)
	for _, b := range allBookings {
		bookingsByHotel[b.HotelID] = append(bookingsByHotel[b.HotelID], b)
	}

	out := make([]response_models.HotelSummary, 0, len(hotels))
	for _, h := range hotels {
		reviews, err := s.reviewRepo.ByItem(ctx, db_models.ItemTypeHotel, h.ID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		bookings := bookingsByHotel[h.ID]

		out = append(out, response_models.HotelSummary{
			HotelID:              h.ID,
			HotelName:            h.Name,
			AveragePrice:         AveragePaidPrice(bookings),
			CancellationRate:     CancellationRate(bookings),
			NegativeMentionRatio: NegativeMentionRatio(reviews),
			AverageRating:        averageRating(reviews),
			BookingCount:         len(bookings),
			ReviewCount:          len(reviews),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].HotelID < out[j].HotelID })
	return out, nil
}

// BookingHistory is the raw booking table behind the summary numbers,
// optionally narrowed to one hotel.
func (s *AnalyticsService) BookingHistory(ctx context.Context, hotelID *int64) ([]response_models.BookingResponse, error) {
	var (
		bookings []db_models.Booking
		err      error
	)
	if hotelID != nil {
		bookings, err = s.bookingRepo.ByHotel(ctx, *hotelID)
	} else {
		bookings, err = s.bookingRepo.All(ctx)
	}
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, response_models.BookingResponse{
			BookingID:   b.BookingID,
			HotelID:     b.HotelID,
			BookingDate: utils.FormatDateJST(b.BookingDate),
			CheckInDate: utils.FormatDateJST(b.CheckInDate),
			PricePaid:   b.PricePaid,
			Status:      b.Status,
			RoomType:    b.RoomType,
		})
	}
	return out, nil
}

func (s *AnalyticsService) RatingTrend(ctx context.Context, hotelID *int64, from, to *time.Time) ([]response_models.TrendPoint, error) {
	reviews, err := s.reviewRepo.Filtered(ctx, repositories.ReviewFilter{
		ItemType: db_models.ItemTypeHotel,
		ItemID:   hotelID,
		From:     from,
		To:       to,
	})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(reviews) == 0 {
		return nil, utils.ErrNoAnalyticsData
	}

	ratings := make([]float64, len(reviews))
	for i, r := range reviews {
		ratings[i] = r.Rating
	}
	rolling := RollingMean(ratings, trendWindow)

	out := make([]response_models.TrendPoint, len(reviews))
	for i, r := range reviews {
		out[i] = response_models.TrendPoint{
			Date:       utils.FormatDateJST(r.ReviewDate),
			Rating:     r.Rating,
			RollingAvg: rolling[i],
		}
	}
	return out, nil
}

func (s *AnalyticsService) RatingDistribution(ctx context.Context, hotelID *int64, from, to *time.Time) ([]response_models.RatingBucket, error) {
	reviews, err := s.reviewRepo.Filtered(ctx, repositories.ReviewFilter{
		ItemType: db_models.ItemTypeHotel,
		ItemID:   hotelID,
		From:     from,
		To:       to,
	})
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(reviews) == 0 {
		return nil, utils.ErrNoAnalyticsData
	}

	counts := make(map[int]int)
	for _, r := range reviews {
		bucket := int(r.Rating + 0.5)
		if bucket < 1 {
			bucket = 1
		}
		if bucket > 5 {
			bucket = 5
		}
		counts[bucket]++
	}

	out := make([]response_models.RatingBucket, 0, 5)
	for rating := 1; rating <= 5; rating++ {
		out = append(out, response_models.RatingBucket{Rating: rating, Count: counts[rating]})
	}
	return out, nil
}
