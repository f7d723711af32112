package db_models

import "time"

const (
	BookingConfirmed = "Confirmed"
	BookingCancelled = "Cancelled"
)

// Booking is synthetic hotel booking data used only by analytics. A cancelled
// booking records a price of zero, which is why averages exclude them.
type Booking struct {
	BookingID   string    `gorm:"primaryKey"`
	HotelID     int64     `gorm:"not null;index"`
	BookingDate time.Time `gorm:"not null"`
	CheckInDate time.Time `gorm:"not null"`
	PricePaid   float64
	Status      string `gorm:"size:20;not null;index"`
	RoomType    string
}
