package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Trip struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	TripName    string    `gorm:"not null"`
	StartDate   time.Time `gorm:"not null"`
	EndDate     time.Time `gorm:"not null"`
	Description string

	Items []TripItem `gorm:"foreignKey:TripID"`
}

// TripItem pins one catalog reference to a day and an ordering slot.
// OrderInDay is assigned as max+1 within (trip, day) and never reused, so
// deletions leave gaps.
type TripItem struct {
	BaseModel
	TripID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemType   ItemType  `gorm:"size:20;not null"`
	ItemID     int64     `gorm:"not null"`
	ItemName   string    `gorm:"not null"`
	DayNumber  int       `gorm:"not null"`
	OrderInDay int       `gorm:"not null"`
	Notes      string
	TimeOfDay  string
	Cost       *float64
}
