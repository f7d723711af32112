package response_models

type RestaurantResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	JapaneseName   string  `json:"japanese_name,omitempty"`
	Station        string  `json:"station,omitempty"`
	FirstCategory  string  `json:"first_category,omitempty"`
	SecondCategory string  `json:"second_category,omitempty"`
	TotalRating    float64 `json:"total_rating"`
	Lat            float64 `json:"lat"`
	Long           float64 `json:"long"`
	DinnerPrice    string  `json:"dinner_price,omitempty"`
	LunchPrice     string  `json:"lunch_price,omitempty"`
	PriceCategory  string  `json:"price_category,omitempty"`
	ReviewNum      int     `json:"review_num"`
}

type HotelResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	JapaneseName  string  `json:"japanese_name,omitempty"`
	Station       string  `json:"station,omitempty"`
	Lat           float64 `json:"lat"`
	Long          float64 `json:"long"`
	Price         float64 `json:"price"`
	StarRating    float64 `json:"star_rating"`
	TotalRating   float64 `json:"total_rating"`
	ReviewNum     int     `json:"review_num"`
	PriceCategory string  `json:"price_category,omitempty"`
}

type AttractionResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	JapaneseName string  `json:"japanese_name,omitempty"`
	Category     string  `json:"category,omitempty"`
	Station      string  `json:"station,omitempty"`
	Lat          float64 `json:"lat"`
	Long         float64 `json:"long"`
	TotalRating  float64 `json:"total_rating"`
	ReviewNum    int     `json:"review_num"`
	Description  string  `json:"description,omitempty"`
}
