package catalog_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"bnb_finder/internal/domain/entity"
	"bnb_finder/internal/domain/service/catalog"
	"bnb_finder/internal/domain/value"
	"bnb_finder/pkg/tests"
)

func listing(id int64, neighbourhood string, price, rating float64) entity.Listing {
	return entity.Listing{
		ID:            id,
		Neighbourhood: neighbourhood,
		Price:         price,
		Rating:        rating,
	}
}

func listingIDs(listings []entity.Listing) []int64 {
	ids := make([]int64, 0, len(listings))
	for _, l := range listings {
		ids = append(ids, l.ID)
	}

	return ids
}

func TestTopRated(t *testing.T) {
	rq := require.New(t)

	svc := catalog.NewCatalogService()

	listings := []entity.Listing{
		listing(1, "Back Bay", 120, 5),
		listing(2, "Fenway", 80, 2.5),
		listing(3, "Allston", 60, 4),
		listing(4, "Fenway", 90, 0),
	}

	testCases := []struct {
		name           string
		minRating      float64
		neighbourhoods []string
		ids            []int64
	}{
		{name: "Zero threshold keeps everything", minRating: 0, ids: []int64{1, 2, 3, 4}},
		{name: "Threshold is inclusive", minRating: 2.5, ids: []int64{1, 2, 3}},
		{name: "Strictly above", minRating: 4.5, ids: []int64{1}},
		{name: "Neighbourhood set restricts", minRating: 0, neighbourhoods: []string{"Fenway"}, ids: []int64{2, 4}},
		{name: "Set and threshold combine", minRating: 2, neighbourhoods: []string{"Fenway", "Allston"}, ids: []int64{2, 3}},
		{name: "Unknown neighbourhood", minRating: 0, neighbourhoods: []string{"Nowhere"}, ids: []int64{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			got := svc.TopRated(listings, tc.minRating, tc.neighbourhoods)

			rq.Equal(tc.ids, listingIDs(got), "input order must be preserved")
		})
	}
}

func TestTopRatedMonotonicNarrowing(t *testing.T) {
	rq := require.New(t)

	svc := catalog.NewCatalogService()
	random := tests.NewRandomizer()

	listings := make([]entity.Listing, 0, 200)
	for i := range 200 {
		price := float64(random.IntBetween(20, 400))
		listings = append(listings, listing(int64(i), "Back Bay", price, random.Float64()*5))
	}

	wide := svc.TopRated(listings, 1.5, nil)
	narrow := svc.TopRated(listings, 3.5, nil)

	rq.LessOrEqual(len(narrow), len(wide))

	wideIDs := make(map[int64]struct{}, len(wide))
	for _, l := range wide {
		wideIDs[l.ID] = struct{}{}
	}

	for _, l := range narrow {
		rq.Contains(wideIDs, l.ID, "raising the threshold must only narrow the result")
	}
}

func TestFilterByPrice(t *testing.T) {
	rq := require.New(t)

	svc := catalog.NewCatalogService()

	listings := []entity.Listing{
		listing(1, "Back Bay", 50, 5),
		listing(2, "Fenway", 100, 3),
		listing(3, "Fenway", 200, 2),
		listing(4, "Allston", 350, 1),
		listing(5, "Allston", math.NaN(), 1),
	}

	testCases := []struct {
		name          string
		minPrice      float64
		maxPrice      float64
		neighbourhood value.Selector
		ids           []int64
	}{
		{name: "Boundaries are inclusive", minPrice: 50, maxPrice: 200, neighbourhood: "All", ids: []int64{1, 2, 3}},
		{name: "Window inside", minPrice: 60, maxPrice: 199, neighbourhood: "All", ids: []int64{2}},
		{name: "Empty selector means all", minPrice: 0, maxPrice: 1000, neighbourhood: "", ids: []int64{1, 2, 3, 4}},
		{name: "Exact neighbourhood", minPrice: 0, maxPrice: 1000, neighbourhood: "Fenway", ids: []int64{2, 3}},
		{name: "Inverted range is empty", minPrice: 200, maxPrice: 50, neighbourhood: "All", ids: []int64{}},
		{name: "No upper bound", minPrice: 0, maxPrice: math.Inf(1), neighbourhood: "All", ids: []int64{1, 2, 3, 4}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			got := svc.FilterByPrice(listings, tc.minPrice, tc.maxPrice, tc.neighbourhood)

			rq.Equal(tc.ids, listingIDs(got))
		})
	}
}

func TestFilterByPriceSkipsUnknownPrice(t *testing.T) {
	rq := require.New(t)

	svc := catalog.NewCatalogService()

	got := svc.FilterByPrice([]entity.Listing{listing(1, "Back Bay", math.NaN(), 5)}, 0, math.Inf(1), "All")

	rq.Empty(got, "a row with an unknown price never matches a price window")
}

func TestMostAffordable(t *testing.T) {
	rq := require.New(t)

	svc := catalog.NewCatalogService()

	listings := []entity.Listing{
		listing(1, "Back Bay", 150, 5),
		listing(2, "Fenway", 70, 3),
		listing(3, "Fenway", 250, 2),
		listing(4, "Allston", 70, 1),
		listing(5, "Back Bay", 10, 1),
	}

	got := svc.MostAffordable(listings, "All")

	rq.Equal([]int64{5, 2, 4, 1}, listingIDs(got), "ascending by price, ties keep input order")

	for _, l := range got {
		rq.LessOrEqual(l.Price, 200.0)
	}

	got = svc.MostAffordable(listings, "Fenway")
	rq.Equal([]int64{2}, listingIDs(got))
}

func TestMostAffordableLimit(t *testing.T) {
	rq := require.New(t)

	svc := catalog.NewCatalogService()

	listings := make([]entity.Listing, 0, 30)
	for i := range 30 {
		listings = append(listings, listing(int64(i), "Back Bay", float64(100-i), 3))
	}

	got := svc.MostAffordable(listings, "All")

	rq.Len(got, 10)

	for i := 1; i < len(got); i++ {
		rq.LessOrEqual(got[i-1].Price, got[i].Price, "result must be sorted ascending")
	}

	custom := catalog.NewCatalogService().
		WithAffordableCeiling(80).
		WithAffordableLimit(3)

	got = custom.MostAffordable(listings, "All")

	rq.Len(got, 3)
	for _, l := range got {
		rq.LessOrEqual(l.Price, 80.0)
	}
}

func TestFilterRestaurants(t *testing.T) {
	rq := require.New(t)

	svc := catalog.NewCatalogService()

	restaurants := []entity.Restaurant{
		{Name: "Dumpling Cafe", Location: "Chinatown", Cuisine: "Chinese"},
		{Name: "No Frills", Location: "Allston", Cuisine: "Korean"},
		{Name: "Gene's", Location: "Chinatown", Cuisine: "Chinese"},
		{Name: "Sweet Basil", Location: "Needham", Cuisine: "Italian"},
	}

	names := func(rs []entity.Restaurant) []string {
		result := make([]string, 0, len(rs))
		for _, r := range rs {
			result = append(result, r.Name)
		}

		return result
	}

	all := svc.FilterRestaurants(restaurants, "All", "All")
	rq.Equal(restaurants, all, "All/All returns the table untouched")

	byLocation := svc.FilterRestaurants(restaurants, "Chinatown", "All")
	rq.Equal([]string{"Dumpling Cafe", "Gene's"}, names(byLocation))

	byCuisine := svc.FilterRestaurants(restaurants, "All", "Italian")
	rq.Equal([]string{"Sweet Basil"}, names(byCuisine))

	both := svc.FilterRestaurants(restaurants, "Chinatown", "Italian")
	rq.Empty(both, "filters combine with AND")
}

func TestRestaurantFilterDomains(t *testing.T) {
	rq := require.New(t)

	svc := catalog.NewCatalogService()

	restaurants := []entity.Restaurant{
		{Name: "Dumpling Cafe", Location: "Chinatown", Cuisine: "Chinese"},
		{Name: "Gene's", Location: "Chinatown", Cuisine: "Chinese"},
		{Name: "No Frills", Location: "Allston", Cuisine: "Korean"},
		{Name: "Nameless", Location: "", Cuisine: ""},
	}

	rq.Equal([]string{"Allston", "Chinatown"}, svc.RestaurantLocations(restaurants))
	rq.Equal([]string{"Chinese", "Korean"}, svc.RestaurantCuisines(restaurants))
}

func TestMeanPriceByNeighbourhood(t *testing.T) {
	rq := require.New(t)

	svc := catalog.NewCatalogService()

	listings := []entity.Listing{
		listing(1, "Back Bay", 100, 5),
		listing(2, "Back Bay", 101, 3),
		listing(3, "Fenway", 100, 2),
		listing(4, "Allston", math.NaN(), 1),
		listing(5, "Back Bay", 100, 1),
	}

	means := svc.MeanPriceByNeighbourhood(listings)

	rq.InDelta(100.33, means["Back Bay"], 1e-9, "mean is rounded to two decimal places")
	rq.InDelta(100, means["Fenway"], 1e-9, "a single listing yields its own price")
	rq.NotContains(means, "Allston", "a neighbourhood with no known prices is omitted")

	rq.Empty(svc.MeanPriceByNeighbourhood(nil))
}

func TestPriceWindowScenario(t *testing.T) {
	rq := require.New(t)

	svc := catalog.NewCatalogService()

	listings := []entity.Listing{
		{ID: 1, Neighbourhood: "A", Price: 50, ReviewsPerMonth: 1, Rating: 5},
		{ID: 2, Neighbourhood: "B", Price: 250, ReviewsPerMonth: 0, Rating: 0},
	}

	filtered := svc.FilterByPrice(listings, 0, 200, "All")
	rq.Equal([]int64{1}, listingIDs(filtered))

	affordable := svc.MostAffordable(listings, "")
	rq.Equal([]int64{1}, listingIDs(affordable))

	means := svc.MeanPriceByNeighbourhood(filtered)
	rq.Equal(map[string]float64{"A": 50}, means, "the mean runs over the already filtered rows")
}
