package request_models

import "encoding/json"

type ToggleFavoriteRequest struct {
	ItemType string          `json:"item_type" binding:"required"`
	ItemID   int64           `json:"item_id" binding:"required"`
	ItemName string          `json:"item_name" binding:"required"`
	ItemData json.RawMessage `json:"item_data"`
}

// FavoriteLookupRequest asks which of a list of items the caller has
// favorited, so result lists can be badged in one round trip.
type FavoriteLookupRequest struct {
	ItemType string  `json:"item_type" binding:"required"`
	ItemIDs  []int64 `json:"item_ids" binding:"required"`
}
