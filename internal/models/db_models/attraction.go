package db_models

type Attraction struct {
	ID           int64  `gorm:"primaryKey;autoIncrement:false"`
	Name         string `gorm:"not null;index"`
	JapaneseName string
	Category     string `gorm:"index"`
	Station      string
	Lat          float64
	Long         float64
	TotalRating  float64 `gorm:"index"`
	ReviewNum    int
	Description  string
}
