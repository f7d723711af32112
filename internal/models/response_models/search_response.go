package response_models

import mem "kyotabi/pkg/memcache"

type PopularSearch struct {
	Term  string `json:"term"`
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// SearchResponse is the full output contract of one executed search. Page is
// always 1: a new search never preserves the previous page.
type SearchResponse struct {
	Results []RestaurantResponse     `json:"results"`
	Page    int                      `json:"page"`
	Params  map[string]string        `json:"params"`
	History []mem.SearchHistoryEntry `json:"history"`
	Popular []PopularSearch          `json:"popular"`
}
