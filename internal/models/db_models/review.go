package db_models

import "time"

// Review is both seed data and the source for recomputing an entity's
// aggregate rating via arithmetic mean.
type Review struct {
	ID         int64     `gorm:"primaryKey"`
	ItemType   ItemType  `gorm:"size:20;not null;index:idx_review_item"`
	ItemID     int64     `gorm:"not null;index:idx_review_item"`
	Text       string    `gorm:"type:text"`
	Rating     float64   `gorm:"not null"`
	ReviewDate time.Time `gorm:"index"`
}
