package repositories

import (
	"context"
	"errors"
	"sort"

	"gorm.io/gorm"

	"kyotabi/internal/models/db_models"
)

type HotelRepository interface {
	All(ctx context.Context) ([]db_models.Hotel, error)
	ByID(ctx context.Context, id int64) (*db_models.Hotel, error)
	RandomTop(ctx context.Context, n int, minRating float64) ([]db_models.Hotel, error)
	Nearby(ctx context.Context, lat, lng, radiusKM float64) ([]db_models.Hotel, error)
	UniqueStations(ctx context.Context) ([]string, error)
	ReplaceAll(ctx context.Context, rows []db_models.Hotel) error
	UpdateAggregates(ctx context.Context, id int64, rating float64, reviewNum int) error
}

type hotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) HotelRepository {
	return &hotelRepository{db: db}
}

func (r *hotelRepository) All(ctx context.Context) ([]db_models.Hotel, error) {
	var rows []db_models.Hotel
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *hotelRepository) ByID(ctx context.Context, id int64) (*db_models.Hotel, error) {
	var row db_models.Hotel
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *hotelRepository) RandomTop(ctx context.Context, n int, minRating float64) ([]db_models.Hotel, error) {
	var rows []db_models.Hotel
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

func (r *hotelRepository) Nearby(ctx context.Context, lat, lng, radiusKM float64) ([]db_models.Hotel, error) {
	all, err := r.All(ctx)
	if err != nil {
		return nil, err
	}

	type withDist struct {
		row  db_models.Hotel
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

	out := make([]db_models.Hotel, 0, len(within))
	for _, w := range within {
		out = append(out, w.row)
	}
	return out, nil
}

func (r *hotelRepository) UniqueStations(ctx context.Context) ([]string, error) {
	var stations []string
	err := r.db.WithContext(ctx).
		Model(&db_models.Hotel{}).
		Distinct("station").
		Where("station IS NOT NULL AND station <> ''").
		Order("station").
		Pluck("station", &stations).Error
	if err != nil {
		return nil, err
	}
	return stations, nil
}

func (r *hotelRepository) ReplaceAll(ctx context.Context, rows []db_models.Hotel) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&db_models.Hotel{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 500).Error
	})
}

func (r *hotelRepository) UpdateAggregates(ctx context.Context, id int64, rating float64, reviewNum int) error {
	return r.db.WithContext(ctx).
		Model(&db_models.Hotel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"total_rating": rating,
			"review_num":   reviewNum,
		}).Error
}
