package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"kyotabi/internal/models/db_models"
	"kyotabi/internal/models/request_models"
	"kyotabi/internal/models/response_models"
	"kyotabi/internal/repositories"
	"kyotabi/pkg/utils"
)

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, userID string, request request_models.CreateTripRequest) (*response_models.TripResponse, error)
	GetUserTrips(ctx context.Context, userID string) ([]response_models.TripResponse, error)
	GetTripByID(ctx context.Context, userID, tripID string) (*response_models.TripResponse, error)
	UpdateTrip(ctx context.Context, userID, tripID string, request request_models.UpdateTripRequest) (*response_models.TripResponse, error)
	DeleteTrip(ctx context.Context, userID, tripID string) error

	AddItemToTrip(ctx context.Context, userID, tripID string, request request_models.AddTripItemRequest) (*response_models.TripItemResponse, error)
	GetTripItems(ctx context.Context, userID, tripID string) ([]response_models.TripItemResponse, error)
	RemoveItemFromTrip(ctx context.Context, userID, itemID string) error
}

type TripService struct {
	tripRepo repositories.TripRepository
}

func NewTripService(tripRepo repositories.TripRepository) TripServiceInterface {
	return &TripService{tripRepo: tripRepo}
}

func toTripResponse(t db_models.Trip) response_models.TripResponse {
	return response_models.TripResponse{
		ID:          t.ID.String(),
		TripName:    t.TripName,
		StartDate:   utils.FormatDateJST(t.StartDate),
		EndDate:     utils.FormatDateJST(t.EndDate),
		Description: t.Description,
		DaySpan:     utils.DaySpan(t.StartDate, t.EndDate),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toTripItemResponse(item db_models.TripItem) response_models.TripItemResponse {
	return response_models.TripItemResponse{
		ID:         item.ID.String(),
		ItemType:   string(item.ItemType),
		ItemID:     item.ItemID,
		ItemName:   item.ItemName,
		DayNumber:  item.DayNumber,
		OrderInDay: item.OrderInDay,
		Notes:      item.Notes,
		TimeOfDay:  item.TimeOfDay,
		Cost:       item.Cost,
	}
}

// ownedTrip loads a trip and checks it belongs to the caller. A trip owned by
// someone else looks like a missing trip to avoid leaking existence.
func (s *TripService) ownedTrip(ctx context.Context, userID, tripID string) (*db_models.Trip, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	tid, err := uuid.Parse(tripID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	trip, err := s.tripRepo.ByID(ctx, tid)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil || trip.UserID != uid {
		return nil, utils.ErrTripNotFound
	}
	return trip, nil
}

func (s *TripService) CreateTrip(ctx context.Context, userID string, request request_models.CreateTripRequest) (*response_models.TripResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	if strings.TrimSpace(request.TripName) == "" {
		return nil, utils.ErrEmptyTripName
	}

	start, err := utils.ParseDateJST(request.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	end, err := utils.ParseDateJST(request.EndDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	if end.Before(start) {
		return nil, utils.ErrInvalidDateRange
	}

	trip := &db_models.Trip{
		UserID:      uid,
		TripName:    strings.TrimSpace(request.TripName),
		StartDate:   start,
		EndDate:     end,
		Description: request.Description,
	}
	if err := s.tripRepo.Insert(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toTripResponse(*trip)
	return &resp, nil
}

func (s *TripService) GetUserTrips(ctx context.Context, userID string) ([]response_models.TripResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	trips, err := s.tripRepo.ListByUser(ctx, uid)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripResponse, 0, len(trips))
	for _, t := range trips {
		out = append(out, toTripResponse(t))
	}
	return out, nil
}

func (s *TripService) GetTripByID(ctx context.Context, userID, tripID string) (*response_models.TripResponse, error) {
	trip, err := s.ownedTrip(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}
	resp := toTripResponse(*trip)
	return &resp, nil
}

// UpdateTrip applies only the provided fields. Any successful update bumps
// the updated-at timestamp via the model hook.
func (s *TripService) UpdateTrip(ctx context.Context, userID, tripID string, request request_models.UpdateTripRequest) (*response_models.TripResponse, error) {
	trip, err := s.ownedTrip(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	if request.TripName != nil {
		if strings.TrimSpace(*request.TripName) == "" {
			return nil, utils.ErrEmptyTripName
		}
		trip.TripName = strings.TrimSpace(*request.TripName)
	}
	if request.StartDate != nil {
		start, err := utils.ParseDateJST(*request.StartDate)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		trip.StartDate = start
	}
	if request.EndDate != nil {
		end, err := utils.ParseDateJST(*request.EndDate)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		trip.EndDate = end
	}
	if trip.EndDate.Before(trip.StartDate) {
		return nil, utils.ErrInvalidDateRange
	}
	if request.Description != nil {
		trip.Description = *request.Description
	}

	if err := s.tripRepo.Update(ctx, trip); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toTripResponse(*trip)
	return &resp, nil
}

func (s *TripService) DeleteTrip(ctx context.Context, userID, tripID string) error {
	trip, err := s.ownedTrip(ctx, userID, tripID)
	if err != nil {
		return err
	}
	if err := s.tripRepo.DeleteCascade(ctx, trip.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// AddItemToTrip validates the type tag and the day span, then lets the
// repository assign the next ordering slot. The referenced catalog item is
// deliberately not checked for existence.
func (s *TripService) AddItemToTrip(ctx context.Context, userID, tripID string, request request_models.AddTripItemRequest) (*response_models.TripItemResponse, error) {
	trip, err := s.ownedTrip(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	itemType := db_models.ItemType(request.ItemType)
	if !itemType.Valid() {
		return nil, utils.ErrInvalidItemType
	}

	span := utils.DaySpan(trip.StartDate, trip.EndDate)
	if request.DayNumber < 1 || request.DayNumber > span {
		return nil, utils.ErrDayOutOfRange
	}

	item := &db_models.TripItem{
		TripID:    trip.ID,
		ItemType:  itemType,
		ItemID:    request.ItemID,
		ItemName:  request.ItemName,
		DayNumber: request.DayNumber,
		Notes:     request.Notes,
		TimeOfDay: request.TimeOfDay,
		Cost:      request.Cost,
	}
	if err := s.tripRepo.AddItem(ctx, item); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toTripItemResponse(*item)
	return &resp, nil
}

func (s *TripService) GetTripItems(ctx context.Context, userID, tripID string) ([]response_models.TripItemResponse, error) {
	trip, err := s.ownedTrip(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}

	items, err := s.tripRepo.ItemsByTrip(ctx, trip.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, toTripItemResponse(item))
	}
	return out, nil
}

// RemoveItemFromTrip removes by the item's own row id. Remaining items keep
// their slots; gaps are expected.
func (s *TripService) RemoveItemFromTrip(ctx context.Context, userID, itemID string) error {
	iid, err := uuid.Parse(itemID)
	if err != nil {
		return utils.ErrInvalidInput
	}

	item, err := s.tripRepo.ItemByID(ctx, iid)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if item == nil {
		return utils.ErrTripItemNotFound
	}

	// Ownership check through the parent trip.
	if _, err := s.ownedTrip(ctx, userID, item.TripID.String()); err != nil {
		return utils.ErrTripItemNotFound
	}

	removed, err := s.tripRepo.DeleteItem(ctx, iid)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if !removed {
		return utils.ErrTripItemNotFound
	}
	return nil
}
