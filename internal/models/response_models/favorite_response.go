package response_models

import "encoding/json"

type FavoriteResponse struct {
	ID        string          `json:"id"`
	ItemType  string          `json:"item_type"`
	ItemID    int64           `json:"item_id"`
	ItemName  string          `json:"item_name"`
	ItemData  json.RawMessage `json:"item_data,omitempty"`
	CreatedAt int64           `json:"created_at"`
}

type ToggleFavoriteResponse struct {
	Favorited bool   `json:"favorited"`
	Message   string `json:"message"`
}
