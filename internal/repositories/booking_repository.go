package repositories

import (
	"context"

	"gorm.io/gorm"

	"kyotabi/internal/models/db_models"
)

type BookingRepository interface {
	ByHotel(ctx context.Context, hotelID int64) ([]db_models.Booking, error)
	All(ctx context.Context) ([]db_models.Booking, error)
	ReplaceAll(ctx context.Context, rows []db_models.Booking) error
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) ByHotel(ctx context.Context, hotelID int64) ([]db_models.Booking, error) {
	var rows []db_models.Booking
	err := r.db.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *bookingRepository) All(ctx context.Context) ([]db_models.Booking, error) {
	var rows []db_models.Booking
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *bookingRepository) ReplaceAll(ctx context.Context, rows []db_models.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&db_models.Booking{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 500).Error
	})
}
