package db_models

type Hotel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement:false"`
	Name          string `gorm:"not null;index"`
	JapaneseName  string
	Station       string `gorm:"index"`
	Lat           float64
	Long          float64
	Price         float64
	StarRating    float64
	TotalRating   float64 `gorm:"index"`
	ReviewNum     int
	PriceCategory string
}
