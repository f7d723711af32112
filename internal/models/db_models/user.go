package db_models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	BaseModel
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Email        string
	ProfilePhoto string
	LastLogin    int64

	Favorites []Favorite
	Trips     []Trip
}

// Session is a server-side login session. Expired rows are inert on lookup
// even before the lazy purge removes them.
type Session struct {
	Token     string    `gorm:"primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	ExpiresAt time.Time `gorm:"not null;index"`
}
