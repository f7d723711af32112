package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrDatabaseError      = errors.New("database error")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrSessionExpired     = errors.New("session expired or not found")
	ErrTripNotFound       = errors.New("trip not found")
	ErrTripItemNotFound   = errors.New("trip item not found")
	ErrEmptyTripName      = errors.New("trip name must not be empty")
	ErrInvalidDateRange   = errors.New("end date must not be before start date")
	ErrDayOutOfRange      = errors.New("day number is outside the trip's date span")
	ErrInvalidItemType    = errors.New("item type must be restaurant, hotel or attraction")
	ErrAlreadyFavorited   = errors.New("item already favorited")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrHotelNotFound      = errors.New("hotel not found")
	ErrAttractionNotFound = errors.New("attraction not found")
	ErrNoAnalyticsData    = errors.New("no analytics data for the requested range")
)
