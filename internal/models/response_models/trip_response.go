package response_models

type TripResponse struct {
	ID          string `json:"id"`
	TripName    string `json:"trip_name"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description,omitempty"`
	DaySpan     int    `json:"day_span"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}

type TripItemResponse struct {
	ID         string   `json:"id"`
	ItemType   string   `json:"item_type"`
	ItemID     int64    `json:"item_id"`
	ItemName   string   `json:"item_name"`
	DayNumber  int      `json:"day_number"`
	OrderInDay int      `json:"order_in_day"`
	Notes      string   `json:"notes,omitempty"`
	TimeOfDay  string   `json:"time,omitempty"`
	Cost       *float64 `json:"cost,omitempty"`
}
