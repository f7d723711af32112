package services

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kyotabi/internal/models/db_models"
	"kyotabi/internal/models/request_models"
	"kyotabi/internal/repositories"
	mem "kyotabi/pkg/memcache"
)

func searchFixtures() []db_models.Restaurant {
	return []db_models.Restaurant{
		{
			ID: 1, Name: "Gion Sushi Kappo", JapaneseName: "祇園寿司割烹",
			Station: "Gion-Shijo", SecondCategory: "Sushi",
			TotalRating: 4.5, PriceCategory: "High", ReviewNum: 320,
		},
		{
			ID: 2, Name: "Kyoto Ramen Alley", JapaneseName: "京都ラーメン横丁",
			Station: "Kyoto", SecondCategory: "Ramen",
			TotalRating: 3.8, PriceCategory: "Low", ReviewNum: 980,
		},
		{
			ID: 3, Name: "Arashiyama Tofu House", JapaneseName: "嵐山豆腐",
			Station: "Arashiyama", SecondCategory: "Tofu",
			TotalRating: 4.5, PriceCategory: "Medium", ReviewNum: 150,
		},
		{
			ID: 4, Name: "Shijo Sushi Bar", JapaneseName: "四条寿司",
			Station: "Karasuma", SecondCategory: "Sushi",
			TotalRating: 3.9, PriceCategory: "Medium", ReviewNum: 45,
		},
	}
}

func TestMatchesKeyword(t *testing.T) {
	r := searchFixtures()[0]

	assert.True(t, MatchesKeyword(r, "sushi"))
	assert.True(t, MatchesKeyword(r, "GION"))
	assert.True(t, MatchesKeyword(r, "寿司"))
	assert.True(t, MatchesKeyword(r, ""))
	assert.True(t, MatchesKeyword(r, "  sushi  "))
	assert.False(t, MatchesKeyword(r, "ramen"))
}

func TestFilterRestaurantsConjunction(t *testing.T) {
	rows := searchFixtures()
	minRating := 4.0

	// Keyword alone matches both sushi places; adding min_rating cuts it to one.
	got := FilterRestaurants(rows, request_models.RestaurantSearchRequest{Keyword: "sushi"})
	require.Len(t, got, 2)

	got = FilterRestaurants(rows, request_models.RestaurantSearchRequest{
		Keyword:   "sushi",
		MinRating: &minRating,
	})
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestFilterRestaurantsStructuredFilters(t *testing.T) {
	rows := searchFixtures()
	minReviews := 100

	got := FilterRestaurants(rows, request_models.RestaurantSearchRequest{
		PriceTiers: []string{"Low", "Medium"},
		MinReviews: &minReviews,
	})
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)

	got = FilterRestaurants(rows, request_models.RestaurantSearchRequest{
		Cuisine:  "Sushi",
		Stations: []string{"Karasuma"},
	})
	require.Len(t, got, 1)
	assert.Equal(t, int64(4), got[0].ID)
}

func TestSortRestaurantsTieBreakByID(t *testing.T) {
	rows := searchFixtures()

	SortRestaurants(rows, SortRatingDesc)
	// 1 and 3 share 4.5; lower ID wins the tie.
	assert.Equal(t, int64(1), rows[0].ID)
	assert.Equal(t, int64(3), rows[1].ID)
	assert.Equal(t, int64(4), rows[2].ID)
	assert.Equal(t, int64(2), rows[3].ID)

	SortRestaurants(rows, SortReviewsDesc)
	assert.Equal(t, int64(2), rows[0].ID)

	SortRestaurants(rows, SortNameAsc)
	assert.Equal(t, "Arashiyama Tofu House", rows[0].Name)

	// Unknown keys fall back to rating descending.
	SortRestaurants(rows, "bogus")
	assert.Equal(t, int64(1), rows[0].ID)
}

func TestAddToHistoryDedupAndCap(t *testing.T) {
	var history []mem.SearchHistoryEntry

	history = AddToHistory(history, "sushi", map[string]string{"cuisine": "Sushi"})
	history = AddToHistory(history, "ramen", nil)
	history = AddToHistory(history, "sushi", map[string]string{"cuisine": "Sushi"})

	// The repeated search floats to the top instead of duplicating.
	require.Len(t, history, 2)
	assert.Equal(t, "sushi", history[0].Query)
	assert.Equal(t, "ramen", history[1].Query)

	// Same query with different filters is a distinct entry.
	history = AddToHistory(history, "sushi", nil)
	require.Len(t, history, 3)

	for i := 0; i < 20; i++ {
		history = AddToHistory(history, fmt.Sprintf("query-%d", i), nil)
	}
	assert.Len(t, history, historyCap)
	assert.Equal(t, "query-19", history[0].Query)
}

func TestPopularCountAndTieBreak(t *testing.T) {
	state := mem.NewSearchState()

	UpdatePopular(state, "sushi", "query")
	UpdatePopular(state, "ramen", "query")
	UpdatePopular(state, "ramen", "query")
	UpdatePopular(state, "Gion-Shijo", "station")
	UpdatePopular(state, "", "query") // empty terms are ignored

	top := TopPopular(state, 5)
	require.Len(t, top, 3)
	assert.Equal(t, "ramen", top[0].Term)
	assert.Equal(t, 2, top[0].Count)
	// sushi and the station both have count 1; sushi was seen first.
	assert.Equal(t, "sushi", top[1].Term)
	assert.Equal(t, "Gion-Shijo", top[2].Term)

	top = TopPopular(state, 1)
	assert.Len(t, top, 1)
}

func TestSearchRestaurantsResetsPageAndRecordsState(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewRestaurantRepository(db)
	require.NoError(t, repo.ReplaceAll(context.Background(), searchFixtures()))

	service := NewSearchService(repo, mem.NewSearchStates())
	const token = "session-a"

	resp, err := service.SearchRestaurants(context.Background(), token, request_models.RestaurantSearchRequest{
		Keyword: "sushi",
		Cuisine: "Sushi",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Page)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "sushi", resp.Params["keyword"])
	assert.Equal(t, "Sushi", resp.Params["cuisine"])

	require.Len(t, resp.History, 1)
	assert.Equal(t, "sushi", resp.History[0].Query)

	// Keyword and cuisine are both counted.
	require.Len(t, resp.Popular, 2)

	// A second search from the same session accumulates.
	resp, err = service.SearchRestaurants(context.Background(), token, request_models.RestaurantSearchRequest{Keyword: "tofu"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Page)
	assert.Len(t, resp.History, 2)

	// A different session sees none of it.
	assert.Empty(t, service.History("session-b"))
	assert.Empty(t, service.Popular("session-b"))
}

func TestSearchRestaurantsConcurrentSameSession(t *testing.T) {
	db := newTestDB(t)
	repo := repositories.NewRestaurantRepository(db)
	require.NoError(t, repo.ReplaceAll(context.Background(), searchFixtures()))

	service := NewSearchService(repo, mem.NewSearchStates())
	const token = "session-a"
	const searches = 8

	var wg sync.WaitGroup
	errs := make(chan error, searches)
	for i := 0; i < searches; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.SearchRestaurants(context.Background(), token, request_models.RestaurantSearchRequest{
				Keyword: "sushi",
				Cuisine: "Sushi",
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	// Every search was counted exactly once despite the contention.
	popular := service.Popular(token)
	require.Len(t, popular, 2)
	assert.Equal(t, searches, popular[0].Count)
	assert.Equal(t, searches, popular[1].Count)

	// Identical searches dedup to one history entry.
	assert.Len(t, service.History(token), 1)
}
