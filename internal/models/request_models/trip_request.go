package request_models

type CreateTripRequest struct {
	TripName    string `json:"trip_name" binding:"required"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	Description string `json:"description"`
}

// UpdateTripRequest is a partial update: only non-nil fields change.
type UpdateTripRequest struct {
	TripName    *string `json:"trip_name"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Description *string `json:"description"`
}

type AddTripItemRequest struct {
	ItemType  string   `json:"item_type" binding:"required"`
	ItemID    int64    `json:"item_id" binding:"required"`
	ItemName  string   `json:"item_name" binding:"required"`
	DayNumber int      `json:"day_number" binding:"required,min=1"`
	Notes     string   `json:"notes"`
	TimeOfDay string   `json:"time"`
	Cost      *float64 `json:"cost"`
}
