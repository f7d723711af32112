package response_models

// HotelSummary aggregates bookings and reviews per hotel. Pointer fields are
// nil when there is no underlying data: zero bookings means no cancellation
// rate, not a rate of zero.
type HotelSummary struct {
	HotelID              int64    `json:"hotel_id"`
	HotelName            string   `json:"hotel_name"`
	AveragePrice         *float64 `json:"average_price"`
	CancellationRate     *float64 `json:"cancellation_rate"`
	NegativeMentionRatio *float64 `json:"negative_mention_ratio"`
	AverageRating        *float64 `json:"average_rating"`
	BookingCount         int      `json:"booking_count"`
	ReviewCount          int      `json:"review_count"`
}

type TrendPoint struct {
	Date       string  `json:"date"`
	Rating     float64 `json:"rating"`
	RollingAvg float64 `json:"rolling_avg"`
}

type RatingBucket struct {
	Rating int `json:"rating"`
	Count  int `json:"count"`
}

type BookingResponse struct {
	BookingID   string  `json:"booking_id"`
	HotelID     int64   `json:"hotel_id"`
	BookingDate string  `json:"booking_date"`
	CheckInDate string  `json:"check_in_date"`
	PricePaid   float64 `json:"price_paid"`
	Status      string  `json:"status"`
	RoomType    string  `json:"room_type"`
}
