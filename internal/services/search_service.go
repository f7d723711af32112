package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"kyotabi/internal/models/db_models"
	"kyotabi/internal/models/request_models"
	"kyotabi/internal/models/response_models"
	"kyotabi/internal/repositories"
	mem "kyotabi/pkg/memcache"
	"kyotabi/pkg/utils"
)

const (
	SortRatingDesc  = "rating_desc"
	SortRatingAsc   = "rating_asc"
	SortReviewsDesc = "reviews_desc"
	SortNameAsc     = "name_asc"

	historyCap      = 10
	historySurfaced = 5
	popularSurfaced = 5
	searchStateTTL  = 24 * time.Hour
)

type SearchServiceInterface interface {
	SearchRestaurants(ctx context.Context, sessionToken string, request request_models.RestaurantSearchRequest) (*response_models.SearchResponse, error)
	History(sessionToken string) []mem.SearchHistoryEntry
	Popular(sessionToken string) []response_models.PopularSearch
}

type SearchService struct {
	restaurantRepo repositories.RestaurantRepository
	states         mem.SearchStateStore
}

func NewSearchService(restaurantRepo repositories.RestaurantRepository, states mem.SearchStateStore) SearchServiceInterface {
	return &SearchService{
		restaurantRepo: restaurantRepo,
		states:         states,
	}
}

// MatchesKeyword is a case-insensitive substring match across the name,
// localized name, both category fields and the station. A record matches if
// any single field contains the keyword; an empty keyword matches everything.
func MatchesKeyword(r db_models.Restaurant, keyword string) bool {
	keyword = strings.TrimSpace(strings.ToLower(keyword))
	if keyword == "" {
		return true
	}
	for _, field := range []string{r.Name, r.JapaneseName, r.FirstCategory, r.SecondCategory, r.Station} {
		if strings.Contains(strings.ToLower(field), keyword) {
			return true
		}
	}
	return false
}

// FilterRestaurants applies the keyword plus every present structured filter,
// ANDed together.
func FilterRestaurants(rows []db_models.Restaurant, request request_models.RestaurantSearchRequest) []db_models.Restaurant {
	tiers := make(map[string]bool, len(request.PriceTiers))
	for _, t := range request.PriceTiers {
		tiers[t] = true
	}
	stations := make(map[string]bool, len(request.Stations))
	for _, s := range request.Stations {
		stations[s] = true
	}

	out := make([]db_models.Restaurant, 0, len(rows))
	for _, r := range rows {
		if !MatchesKeyword(r, request.Keyword) {
			continue
		}
		if request.Cuisine != "" && r.SecondCategory != request.Cuisine {
			continue
		}
		if request.MinRating != nil && r.TotalRating < *request.MinRating {
			continue
		}
		if len(tiers) > 0 && !tiers[r.PriceCategory] {
			continue
		}
		if len(stations) > 0 && !stations[r.Station] {
			continue
		}
		if request.MinReviews != nil && r.ReviewNum < *request.MinReviews {
			continue
		}
		out = append(out, r)
	}
	return out
}

// SortRestaurants orders rows by the requested key, breaking ties by ID
// ascending so the result order is deterministic.
func SortRestaurants(rows []db_models.Restaurant, sortBy string) {
	var less func(i, j db_models.Restaurant) bool

	switch sortBy {
	case SortRatingAsc:
		less = func(i, j db_models.Restaurant) bool {
			if i.TotalRating != j.TotalRating {
				return i.TotalRating < j.TotalRating
			}
			return i.ID < j.ID
		}
	case SortReviewsDesc:
		less = func(i, j db_models.Restaurant) bool {
			if i.ReviewNum != j.ReviewNum {
				return i.ReviewNum > j.ReviewNum
			}
			return i.ID < j.ID
		}
	case SortNameAsc:
		less = func(i, j db_models.Restaurant) bool {
			if i.Name != j.Name {
				return i.Name < j.Name
			}
			return i.ID < j.ID
		}
	default: // SortRatingDesc
		less = func(i, j db_models.Restaurant) bool {
			if i.TotalRating != j.TotalRating {
				return i.TotalRating > j.TotalRating
			}
			return i.ID < j.ID
		}
	}

	sort.Slice(rows, func(i, j int) bool { return less(rows[i], rows[j]) })
}

// FilterSnapshot is the structured-filter echo stored with each history entry.
func FilterSnapshot(request request_models.RestaurantSearchRequest) map[string]string {
	filters := map[string]string{}
	if request.Cuisine != "" {
		filters["cuisine"] = request.Cuisine
	}
	if request.MinRating != nil {
		filters["min_rating"] = strconv.FormatFloat(*request.MinRating, 'f', -1, 64)
	}
	if len(request.PriceTiers) > 0 {
		filters["price_tiers"] = strings.Join(request.PriceTiers, ",")
	}
	if len(request.Stations) > 0 {
		filters["stations"] = strings.Join(request.Stations, ",")
	}
	if request.MinReviews != nil {
		filters["min_reviews"] = strconv.Itoa(*request.MinReviews)
	}
	return filters
}

func sameFilters(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}

// AddToHistory prepends the new search, dropping an identical earlier entry
// (same query and filters) so repeats float to the top. Capped at historyCap.
func AddToHistory(history []mem.SearchHistoryEntry, query string, filters map[string]string) []mem.SearchHistoryEntry {
	entry := mem.SearchHistoryEntry{
		Query:     query,
		Filters:   filters,
		Timestamp: time.Now().In(utils.JST()).Format("2006-01-02 15:04:05"),
	}

	out := make([]mem.SearchHistoryEntry, 0, len(history)+1)
	out = append(out, entry)
	for _, h := range history {
		if h.Query == entry.Query && sameFilters(h.Filters, entry.Filters) {
			continue
		}
		out = append(out, h)
	}

	if len(out) > historyCap {
		out = out[:historyCap]
	}
	return out
}

// UpdatePopular bumps the counter for (searchType, term), creating it with
// the next first-seen sequence number on first use.
func UpdatePopular(state *mem.SearchState, term, searchType string) {
	if term == "" {
		return
	}
	key := fmt.Sprintf("%s:%s", searchType, term)
	if counter, ok := state.Popular[key]; ok {
		counter.Count++
		return
	}
	state.NextSeq++
	state.Popular[key] = &mem.PopularCounter{
		Term:  term,
		Type:  searchType,
		Count: 1,
		Seq:   state.NextSeq,
	}
}

// TopPopular returns the n highest counters, ties broken by first-seen order.
func TopPopular(state *mem.SearchState, n int) []response_models.PopularSearch {
	counters := make([]*mem.PopularCounter, 0, len(state.Popular))
	for _, c := range state.Popular {
		counters = append(counters, c)
	}
	sort.Slice(counters, func(i, j int) bool {
		if counters[i].Count != counters[j].Count {
			return counters[i].Count > counters[j].Count
		}
		return counters[i].Seq < counters[j].Seq
	})

	if len(counters) > n {
		counters = counters[:n]
	}

	out := make([]response_models.PopularSearch, 0, len(counters))
	for _, c := range counters {
		out = append(out, response_models.PopularSearch{Term: c.Term, Type: c.Type, Count: c.Count})
	}
	return out
}

func (s *SearchService) SearchRestaurants(ctx context.Context, sessionToken string, request request_models.RestaurantSearchRequest) (*response_models.SearchResponse, error) {
	all, err := s.restaurantRepo.All(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	results := FilterRestaurants(all, request)
	SortRestaurants(results, request.SortBy)

	filters := FilterSnapshot(request)
	keyword := strings.TrimSpace(request.Keyword)

	// All side-state mutation happens inside the store's lock; state here is
	// a private snapshot.
	state := s.states.Update(sessionToken, searchStateTTL, func(live *mem.SearchState) {
		live.History = AddToHistory(live.History, keyword, filters)
		if keyword != "" {
			UpdatePopular(live, keyword, "query")
		}
		UpdatePopular(live, request.Cuisine, "cuisine")
		for _, station := range request.Stations {
			UpdatePopular(live, station, "station")
		}
	})

	params := map[string]string{}
	for k, v := range filters {
		params[k] = v
	}
	if keyword != "" {
		params["keyword"] = keyword
	}
	if request.SortBy != "" {
		params["sort_by"] = request.SortBy
	}

	surfaced := state.History
	if len(surfaced) > historySurfaced {
		surfaced = surfaced[:historySurfaced]
	}

	out := make([]response_models.RestaurantResponse, 0, len(results))
	for _, r := range results {
		out = append(out, toRestaurantResponse(r))
	}

	return &response_models.SearchResponse{
		Results: out,
		Page:    1,
		Params:  params,
		History: surfaced,
		Popular: TopPopular(state, popularSurfaced),
	}, nil
}

func (s *SearchService) History(sessionToken string) []mem.SearchHistoryEntry {
	state := s.states.Get(sessionToken)
	if len(state.History) > historySurfaced {
		return state.History[:historySurfaced]
	}
	return state.History
}

func (s *SearchService) Popular(sessionToken string) []response_models.PopularSearch {
	return TopPopular(s.states.Get(sessionToken), popularSurfaced)
}
