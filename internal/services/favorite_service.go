package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"kyotabi/internal/models/db_models"
	"kyotabi/internal/models/request_models"
	"kyotabi/internal/models/response_models"
	"kyotabi/internal/repositories"
	"kyotabi/pkg/utils"
)

type FavoriteServiceInterface interface {
	ToggleFavorite(ctx context.Context, userID string, request request_models.ToggleFavoriteRequest) (*response_models.ToggleFavoriteResponse, error)
	IsFavorited(ctx context.Context, userID string, itemType db_models.ItemType, itemID int64) (bool, error)
	GetFavoritesByIDs(ctx context.Context, userID string, itemType db_models.ItemType, itemIDs []int64) (map[int64]bool, error)
	GetUserFavorites(ctx context.Context, userID string, itemType *db_models.ItemType) ([]response_models.FavoriteResponse, error)
	GetFavoritesCount(ctx context.Context, userID string) (repositories.FavoriteCounts, error)
	ClearUserFavorites(ctx context.Context, userID string, itemType *db_models.ItemType) (int64, error)
}

type FavoriteService struct {
	favoriteRepo repositories.FavoriteRepository
}

func NewFavoriteService(favoriteRepo repositories.FavoriteRepository) FavoriteServiceInterface {
	return &FavoriteService{favoriteRepo: favoriteRepo}
}

func toFavoriteResponse(f db_models.Favorite) response_models.FavoriteResponse {
	return response_models.FavoriteResponse{
		ID:        f.ID.String(),
		ItemType:  string(f.ItemType),
		ItemID:    f.ItemID,
		ItemName:  f.ItemName,
		ItemData:  json.RawMessage(f.ItemData),
		CreatedAt: f.CreatedAt,
	}
}

// ToggleFavorite adds the item if absent and removes it if present, returning
// the resulting state. A uniqueness violation on the add path means another
// toggle won the race; it is reported as "already favorited", not a failure.
func (s *FavoriteService) ToggleFavorite(ctx context.Context, userID string, request request_models.ToggleFavoriteRequest) (*response_models.ToggleFavoriteResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	itemType := db_models.ItemType(request.ItemType)
	if !itemType.Valid() {
		return nil, utils.ErrInvalidItemType
	}

	exists, err := s.favoriteRepo.Exists(ctx, uid, itemType, request.ItemID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if exists {
		if _, err := s.favoriteRepo.Remove(ctx, uid, itemType, request.ItemID); err != nil {
			return nil, utils.ErrDatabaseError
		}
		return &response_models.ToggleFavoriteResponse{
			Favorited: false,
			Message:   fmt.Sprintf("%s removed from favorites", request.ItemName),
		}, nil
	}

	fav := &db_models.Favorite{
		UserID:   uid,
		ItemType: itemType,
		ItemID:   request.ItemID,
		ItemName: request.ItemName,
		ItemData: datatypes.JSON(request.ItemData),
	}
	if err := s.favoriteRepo.Insert(ctx, fav); err != nil {
		if repositories.IsUniqueViolation(err) {
			return &response_models.ToggleFavoriteResponse{
				Favorited: true,
				Message:   fmt.Sprintf("%s is already in favorites", request.ItemName),
			}, nil
		}
		return nil, utils.ErrDatabaseError
	}

	return &response_models.ToggleFavoriteResponse{
		Favorited: true,
		Message:   fmt.Sprintf("%s added to favorites", request.ItemName),
	}, nil
}

func (s *FavoriteService) IsFavorited(ctx context.Context, userID string, itemType db_models.ItemType, itemID int64) (bool, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return false, utils.ErrInvalidInput
	}
	if !itemType.Valid() {
		return false, utils.ErrInvalidItemType
	}

	exists, err := s.favoriteRepo.Exists(ctx, uid, itemType, itemID)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	return exists, nil
}

// GetFavoritesByIDs reports favorite state for each requested item id. IDs
// absent from the result were never favorited; the map carries every
// requested id so callers can badge lists without a second lookup.
func (s *FavoriteService) GetFavoritesByIDs(ctx context.Context, userID string, itemType db_models.ItemType, itemIDs []int64) (map[int64]bool, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if !itemType.Valid() {
		return nil, utils.ErrInvalidItemType
	}

	rows, err := s.favoriteRepo.ListByIDs(ctx, uid, itemType, itemIDs)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make(map[int64]bool, len(itemIDs))
	for _, id := range itemIDs {
		out[id] = false
	}
	for _, f := range rows {
		out[f.ItemID] = true
	}
	return out, nil
}

func (s *FavoriteService) GetUserFavorites(ctx context.Context, userID string, itemType *db_models.ItemType) ([]response_models.FavoriteResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if itemType != nil && !itemType.Valid() {
		return nil, utils.ErrInvalidItemType
	}

	rows, err := s.favoriteRepo.ListByUser(ctx, uid, itemType)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.FavoriteResponse, 0, len(rows))
	for _, f := range rows {
		out = append(out, toFavoriteResponse(f))
	}
	return out, nil
}

func (s *FavoriteService) GetFavoritesCount(ctx context.Context, userID string) (repositories.FavoriteCounts, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return repositories.FavoriteCounts{}, utils.ErrInvalidInput
	}

	counts, err := s.favoriteRepo.CountsByType(ctx, uid)
	if err != nil {
		return repositories.FavoriteCounts{}, utils.ErrDatabaseError
	}
	return counts, nil
}

func (s *FavoriteService) ClearUserFavorites(ctx context.Context, userID string, itemType *db_models.ItemType) (int64, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return 0, utils.ErrInvalidInput
	}
	if itemType != nil && !itemType.Valid() {
		return 0, utils.ErrInvalidItemType
	}

	cleared, err := s.favoriteRepo.ClearByUser(ctx, uid, itemType)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	return cleared, nil
}
