package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"kyotabi/internal/models/db_models"
)

type SessionRepository interface {
	Insert(ctx context.Context, session *db_models.Session) error
	// FindActive returns nil for missing AND for expired sessions: an expired
	// row that has not been purged yet must behave as if it were gone.
	FindActive(ctx context.Context, token string) (*db_models.Session, error)
	Delete(ctx context.Context, token string) error
	PurgeExpired(ctx context.Context) (int64, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Insert(ctx context.Context, session *db_models.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepository) FindActive(ctx context.Context, token string) (*db_models.Session, error) {
	var session db_models.Session
	err := r.db.WithContext(ctx).
		Where("token = ? AND expires_at > ?", token, time.Now()).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Delete(&db_models.Session{}, "token = ?", token).Error
}

func (r *sessionRepository) PurgeExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at <= ?", time.Now()).
		Delete(&db_models.Session{})
	return result.RowsAffected, result.Error
}
