package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kyotabi/internal/models/db_models"
)

type TripRepository interface {
	Insert(ctx context.Context, trip *db_models.Trip) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Trip, error)
	ByID(ctx context.Context, tripID uuid.UUID) (*db_models.Trip, error)
	Update(ctx context.Context, trip *db_models.Trip) error
	DeleteCascade(ctx context.Context, tripID uuid.UUID) error

	AddItem(ctx context.Context, item *db_models.TripItem) error
	ItemsByTrip(ctx context.Context, tripID uuid.UUID) ([]db_models.TripItem, error)
	ItemByID(ctx context.Context, itemID uuid.UUID) (*db_models.TripItem, error)
	DeleteItem(ctx context.Context, itemID uuid.UUID) (bool, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Insert(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.Trip, error) {
	var trips []db_models.Trip
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date DESC").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

func (r *tripRepository) ByID(ctx context.Context, tripID uuid.UUID) (*db_models.Trip, error) {
	var trip db_models.Trip
	err := r.db.WithContext(ctx).First(&trip, "id = ?", tripID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) Update(ctx context.Context, trip *db_models.Trip) error {
	return r.db.WithContext(ctx).Save(trip).Error
}

// DeleteCascade removes a trip and all of its items in one transaction.
// Partial deletion would orphan items, so it is all-or-nothing.
func (r *tripRepository) DeleteCascade(ctx context.Context, tripID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("trip_id = ?", tripID).Delete(&db_models.TripItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&db_models.Trip{}, "id = ?", tripID).Error
	})
}

// AddItem assigns order_in_day = current max for (trip, day) + 1 inside a
// transaction, so concurrent inserts on the same day cannot share a slot.
func (r *tripRepository) AddItem(ctx context.Context, item *db_models.TripItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxOrder int
		err := tx.Model(&db_models.TripItem{}).
			Select("COALESCE(MAX(order_in_day), 0)").
			Where("trip_id = ? AND day_number = ?", item.TripID, item.DayNumber).
			Scan(&maxOrder).Error
		if err != nil {
			return err
		}

		item.OrderInDay = maxOrder + 1
		return tx.Create(item).Error
	})
}

func (r *tripRepository) ItemsByTrip(ctx context.Context, tripID uuid.UUID) ([]db_models.TripItem, error) {
	var items []db_models.TripItem
	err := r.db.WithContext(ctx).
		Where("trip_id = ?", tripID).
		Order("day_number, order_in_day").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *tripRepository) ItemByID(ctx context.Context, itemID uuid.UUID) (*db_models.TripItem, error) {
	var item db_models.TripItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", itemID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *tripRepository) DeleteItem(ctx context.Context, itemID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&db_models.TripItem{}, "id = ?", itemID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
