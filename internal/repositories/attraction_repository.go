package repositories

import (
	"context"
	"errors"
	"sort"

	"gorm.io/gorm"

	"kyotabi/internal/models/db_models"
)

type AttractionRepository interface {
	All(ctx context.Context) ([]db_models.Attraction, error)
	ByID(ctx context.Context, id int64) (*db_models.Attraction, error)
	RandomTop(ctx context.Context, n int, minRating float64) ([]db_models.Attraction, error)
	Nearby(ctx context.Context, lat, lng, radiusKM float64) ([]db_models.Attraction, error)
	UniqueCategories(ctx context.Context) ([]string, error)
	ReplaceAll(ctx context.Context, rows []db_models.Attraction) error
	UpdateAggregates(ctx context.Context, id int64, rating float64, reviewNum int) error
}

type attractionRepository struct {
	db *gorm.DB
}

func NewAttractionRepository(db *gorm.DB) AttractionRepository {
	return &attractionRepository{db: db}
}

func (r *attractionRepository) All(ctx context.Context) ([]db_models.Attraction, error) {
	var rows []db_models.Attraction
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *attractionRepository) ByID(ctx context.Context, id int64) (*db_models.Attraction, error) {
	var row db_models.Attraction
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *attractionRepository) RandomTop(ctx context.Context, n int, minRating float64) ([]db_models.Attraction, error) {
	var rows []db_models.Attraction
	err := r.db.WithContext(ctx).
		Where("total_rating >= ?", minRating).
		Order("RANDOM()").
		Limit(n).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *attractionRepository) Nearby(ctx context.Context, lat, lng, radiusKM float64) ([]db_models.Attraction, error) {
	all, err := r.All(ctx)
	if err != nil {
		return nil, err
	}

	type withDist struct {
		row  db_models.Attraction
		dist float64
	}

	within := make([]withDist, 0)
	for _, row := range all {
		d := HaversineKM(lat, lng, row.Lat, row.Long)
		if d <= radiusKM {
			within = append(within, withDist{row: row, dist: d})
		}
	}

	sort.Slice(within, func(i, j int) bool { return within[i].dist < within[j].dist })

	out := make([]db_models.Attraction, 0, len(within))
	for _, w := range within {
		out = append(out, w.row)
	}
	return out, nil
}

func (r *attractionRepository) UniqueCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).
		Model(&db_models.Attraction{}).
		Distinct("category").
		Where("category IS NOT NULL AND category <> ''").
		Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *attractionRepository) ReplaceAll(ctx context.Context, rows []db_models.Attraction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&db_models.Attraction{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 500).Error
	})
}

func (r *attractionRepository) UpdateAggregates(ctx context.Context, id int64, rating float64, reviewNum int) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Attraction{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"total_rating": rating,
			"review_num":   reviewNum,
		}).Error
}
