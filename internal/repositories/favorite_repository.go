package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kyotabi/internal/models/db_models"
)

type FavoriteCounts struct {
	Restaurant int `json:"restaurant"`
	Hotel      int `json:"hotel"`
	Attraction int `json:"attraction"`
	Total      int `json:"total"`
}

type FavoriteRepository interface {
	Insert(ctx context.Context, fav *db_models.Favorite) error
	Remove(ctx context.Context, userID uuid.UUID, itemType db_models.ItemType, itemID int64) (bool, error)
	Exists(ctx context.Context, userID uuid.UUID, itemType db_models.ItemType, itemID int64) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID, itemType *db_models.ItemType) ([]db_models.Favorite, error)
	ListByIDs(ctx context.Context, userID uuid.UUID, itemType db_models.ItemType, itemIDs []int64) ([]db_models.Favorite, error)
	CountsByType(ctx context.Context, userID uuid.UUID) (FavoriteCounts, error)
	ClearByUser(ctx context.Context, userID uuid.UUID, itemType *db_models.ItemType) (int64, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// IsUniqueViolation reports whether err is the (user, type, item) uniqueness
// constraint firing; both sqlite and postgres phrasings are covered.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}

func (r *favoriteRepository) Insert(ctx context.Context, fav *db_models.Favorite) error {
	return r.db.WithContext(ctx).Create(fav).Error
}

func (r *favoriteRepository) Remove(ctx context.Context, userID uuid.UUID, itemType db_models.ItemType, itemID int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND item_type = ? AND item_id = ?", userID, itemType, itemID).
		Delete(&db_models.Favorite{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *favoriteRepository) Exists(ctx context.Context, userID uuid.UUID, itemType db_models.ItemType, itemID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Favorite{}).
		Where("user_id = ? AND item_type = ? AND item_id = ?", userID, itemType, itemID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID uuid.UUID, itemType *db_models.ItemType) ([]db_models.Favorite, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if itemType != nil {
		q = q.Where("item_type = ?", *itemType)
	}

	var rows []db_models.Favorite
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *favoriteRepository) ListByIDs(ctx context.Context, userID uuid.UUID, itemType db_models.ItemType, itemIDs []int64) ([]db_models.Favorite, error) {
	if len(itemIDs) == 0 {
		return []db_models.Favorite{}, nil
	}

	var rows []db_models.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND item_type = ? AND item_id IN ?", userID, itemType, itemIDs).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *favoriteRepository) CountsByType(ctx context.Context, userID uuid.UUID) (FavoriteCounts, error) {
	type typeCount struct {
		ItemType db_models.ItemType
		Count    int
	}

	var rows []typeCount
	err := r.db.WithContext(ctx).
		Model(&db_models.Favorite{}).
		Select("item_type, COUNT(*) as count").
		Where("user_id = ?", userID).
		Group("item_type").
		Scan(&rows).Error
	if err != nil {
		return FavoriteCounts{}, err
	}

	counts := FavoriteCounts{}
	for _, row := range rows {
		switch row.ItemType {
		case db_models.ItemTypeRestaurant:
			counts.Restaurant = row.Count
		case db_models.ItemTypeHotel:
			counts.Hotel = row.Count
		case db_models.ItemTypeAttraction:
			counts.Attraction = row.Count
		}
		counts.Total += row.Count
	}
	return counts, nil
}

func (r *favoriteRepository) ClearByUser(ctx context.Context, userID uuid.UUID, itemType *db_models.ItemType) (int64, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if itemType != nil {
		q = q.Where("item_type = ?", *itemType)
	}
	result := q.Delete(&db_models.Favorite{})
	return result.RowsAffected, result.Error
}
