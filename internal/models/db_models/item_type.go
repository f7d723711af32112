package db_models

// ItemType tags which catalog an item reference points at. It is the single
// dispatch point for favorite and trip-item lookups; anything outside the
// three variants is rejected at the service boundary.
type ItemType string

const (
	ItemTypeRestaurant ItemType = "restaurant"
	ItemTypeHotel      ItemType = "hotel"
	ItemTypeAttraction ItemType = "attraction"
)

func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeRestaurant, ItemTypeHotel, ItemTypeAttraction:
		return true
	}
	return false
}

func ItemTypes() []ItemType {
	return []ItemType{ItemTypeRestaurant, ItemTypeHotel, ItemTypeAttraction}
}
