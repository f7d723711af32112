package request_models

// RestaurantSearchRequest carries the keyword plus the structured filters.
// Every filter is optional; present filters are ANDed together.
type RestaurantSearchRequest struct {
	Keyword    string   `json:"keyword"`
	Cuisine    string   `json:"cuisine"`
	MinRating  *float64 `json:"min_rating"`
	PriceTiers []string `json:"price_tiers"`
	Stations   []string `json:"stations"`
	MinReviews *int     `json:"min_reviews"`
	SortBy     string   `json:"sort_by"`
}
