package db_models

// Restaurant mirrors the Kyoto_Restaurant_Info dataset columns. IDs come from
// the dataset, not from the store.
type Restaurant struct {
	ID             int64  `gorm:"primaryKey;autoIncrement:false"`
	Name           string `gorm:"not null;index"`
	JapaneseName   string
	Station        string `gorm:"index"`
	FirstCategory  string `gorm:"index"`
	SecondCategory string
	TotalRating    float64 `gorm:"index"`
	Lat            float64
	Long           float64
	DinnerPrice    string
	LunchPrice     string
	PriceCategory  string
	DinnerRating   float64
	LunchRating    float64
	ReviewNum      int `gorm:"index"`
	RatingCategory string
}
