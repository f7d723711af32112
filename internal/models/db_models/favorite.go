package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Favorite is a user-saved pointer to a catalog item. The composite unique
// index is what makes double-toggle safe: a concurrent duplicate insert fails
// the constraint and the add path reads that as "already favorited".
type Favorite struct {
	BaseModel
	UserID   uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:idx_user_item"`
	ItemType ItemType       `gorm:"size:20;not null;uniqueIndex:idx_user_item"`
	ItemID   int64          `gorm:"not null;uniqueIndex:idx_user_item"`
	ItemName string         `gorm:"not null"`
	ItemData datatypes.JSON `gorm:"type:json"`
}
