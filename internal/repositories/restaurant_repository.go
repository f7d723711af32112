package repositories

import (
	"context"
	"errors"
	"sort"

	"gorm.io/gorm"

	"kyotabi/internal/models/db_models"
)

type RestaurantRepository interface {
	All(ctx context.Context) ([]db_models.Restaurant, error)
	ByID(ctx context.Context, id int64) (*db_models.Restaurant, error)
	RandomTop(ctx context.Context, n int, minRating float64) ([]db_models.Restaurant, error)
	Nearby(ctx context.Context, lat, lng, radiusKM float64) ([]db_models.Restaurant, error)
	UniqueStations(ctx context.Context) ([]string, error)
	UniqueCuisines(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
	ReplaceAll(ctx context.Context, rows []db_models.Restaurant) error
	UpdateAggregates(ctx context.Context, id int64, rating float64, reviewNum int) error
}

type restaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) All(ctx context.Context) ([]db_models.Restaurant, error) {
	var rows []db_models.Restaurant
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *restaurantRepository) ByID(ctx context.Context, id int64) (*db_models.Restaurant, error) {
	var row db_models.Restaurant
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// RandomTop picks up to n rows at random from the pool rated at or above
// minRating. n larger than the pool just returns the whole pool.
func (r *restaurantRepository) RandomTop(ctx context.Context, n int, minRating float64) ([]db_models.Restaurant, error) {
	var rows []db_models.Restaurant
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

func (r *restaurantRepository) Nearby(ctx context.Context, lat, lng, radiusKM float64) ([]db_models.Restaurant, error) {
	all, err := r.All(ctx)
	if err != nil {
		return nil, err
	}

	type withDist struct {
		row  db_models.Restaurant
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

	out := make([]db_models.Restaurant, 0, len(within))
	for _, w := range within {
		out = append(out, w.row)
	}
	return out, nil
}

func (r *restaurantRepository) UniqueStations(ctx context.Context) ([]string, error) {
	var stations []string
	err := r.db.WithContext(ctx).
		Model(&db_models.Restaurant{}).
		Distinct("station").
		Where("station IS NOT NULL AND station <> ''").
		Order("station").
		Pluck("station", &stations).Error
	if err != nil {
		return nil, err
	}
	return stations, nil
}

func (r *restaurantRepository) UniqueCuisines(ctx context.Context) ([]string, error) {
	var cuisines []string
	err := r.db.WithContext(ctx).
		Model(&db_models.Restaurant{}).
		Distinct("second_category").
		Where("second_category IS NOT NULL AND second_category <> ''").
		Order("second_category").
		Pluck("second_category", &cuisines).Error
	if err != nil {
		return nil, err
	}
	return cuisines, nil
}

func (r *restaurantRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Restaurant{}).Count(&count).Error
	return count, err
}

func (r *restaurantRepository) ReplaceAll(ctx context.Context, rows []db_models.Restaurant) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&db_models.Restaurant{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 500).Error
	})
}

func (r *restaurantRepository) UpdateAggregates(ctx context.Context, id int64, rating float64, reviewNum int) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Restaurant{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"total_rating": rating,
			"review_num":   reviewNum,
		}).Error
}
