package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"kyotabi/internal/models/db_models"
)

type ReviewFilter struct {
	ItemType db_models.ItemType
	ItemID   *int64
	From     *time.Time
	To       *time.Time
}

type ReviewRepository interface {
	ByItem(ctx context.Context, itemType db_models.ItemType, itemID int64) ([]db_models.Review, error)
	Filtered(ctx context.Context, filter ReviewFilter) ([]db_models.Review, error)
	ItemIDs(ctx context.Context, itemType db_models.ItemType) ([]int64, error)
	ReplaceAll(ctx context.Context, rows []db_models.Review) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) ByItem(ctx context.Context, itemType db_models.ItemType, itemID int64) ([]db_models.Review, error) {
	var rows []db_models.Review
	err := r.db.WithContext(ctx).
		Where("item_type = ? AND item_id = ?", itemType, itemID).
		Order("review_date").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Filtered returns reviews ordered by review date ascending, the order the
// rolling trend is computed in.
func (r *reviewRepository) Filtered(ctx context.Context, filter ReviewFilter) ([]db_models.Review, error) {
	q := r.db.WithContext(ctx).Where("item_type = ?", filter.ItemType)
	if filter.ItemID != nil {
		q = q.Where("item_id = ?", *filter.ItemID)
	}
	if filter.From != nil {
		q = q.Where("review_date >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("review_date <= ?", *filter.To)
	}

	var rows []db_models.Review
	if err := q.Order("review_date").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reviewRepository) ItemIDs(ctx context.Context, itemType db_models.ItemType) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Review{}).
		Distinct("item_id").
		Where("item_type = ?", itemType).
		Order("item_id").
		Pluck("item_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *reviewRepository) ReplaceAll(ctx context.Context, rows []db_models.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&db_models.Review{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 500).Error
	})
}
