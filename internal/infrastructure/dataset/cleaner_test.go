package dataset_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"bnb_finder/internal/infrastructure/dataset"
)

func TestCleanerCleanListings(t *testing.T) {
	rq := require.New(t)

	cleaner := dataset.NewCleaner()

	table := dataset.Table{
		Columns: []string{
			"id", "name", "neighbourhood", "price", "availability_365",
			"number_of_reviews", "reviews_per_month", "latitude", "longitude",
		},
		Rows: []dataset.Row{
			{
				"id": "1", "name": "Cozy loft", "neighbourhood": "Back Bay",
				"price": "120", "availability_365": "300", "number_of_reviews": "50",
				"reviews_per_month": "1.2", "latitude": "42.35", "longitude": "-71.08",
			},
			{
				"id": "2", "name": "No price", "neighbourhood": "Fenway",
				"price": "", "availability_365": "10", "number_of_reviews": "3",
				"reviews_per_month": "0.5",
			},
			{
				"id": "3", "name": "Blank availability", "neighbourhood": "Fenway",
				"price": "90", "availability_365": "   ", "number_of_reviews": "3",
				"reviews_per_month": "0.5",
			},
			{
				"id": "4", "name": "Unparsable price", "neighbourhood": "Fenway",
				"price": "n/a", "availability_365": "10", "number_of_reviews": "3",
				"reviews_per_month": "2",
			},
			{
				"id": "5", "name": "Quiet room", "neighbourhood": "Allston",
				"price": "250", "availability_365": "100", "number_of_reviews": "7",
				"reviews_per_month": "",
			},
		},
	}

	listings := cleaner.CleanListings(table)

	rq.Len(listings, 3, "rows with empty required columns must be dropped")

	loft := listings[0]
	rq.Equal(int64(1), loft.ID)
	rq.Equal("Cozy loft", loft.Name)
	rq.Equal("Back Bay", loft.Neighbourhood)
	rq.InDelta(120, loft.Price, 1e-9)
	rq.InDelta(300, loft.Availability365, 1e-9)
	rq.InDelta(50, loft.NumberOfReviews, 1e-9)
	rq.InDelta(5, loft.Rating, 1e-9, "1.2 reviews per month hits the rating cap")
	rq.True(loft.HasCoordinates())

	unparsable := listings[1]
	rq.True(math.IsNaN(unparsable.Price), "unparsable price becomes NaN, the row itself stays")
	rq.False(unparsable.HasPrice())
	rq.InDelta(5, unparsable.Rating, 1e-9)
	rq.False(unparsable.HasCoordinates(), "absent coordinates are NaN")

	quiet := listings[2]
	rq.Zero(quiet.ReviewsPerMonth, "missing reviews_per_month defaults to zero")
	rq.Zero(quiet.Rating, "rating is zero exactly when reviews_per_month is zero")
}

func TestCleanerRatingDerivation(t *testing.T) {
	rq := require.New(t)

	cleaner := dataset.NewCleaner()

	testCases := []struct {
		name            string
		reviewsPerMonth string
		rating          float64
	}{
		{name: "Zero reviews", reviewsPerMonth: "0", rating: 0},
		{name: "Below cap", reviewsPerMonth: "0.3", rating: 1.5},
		{name: "At cap", reviewsPerMonth: "1", rating: 5},
		{name: "Above cap", reviewsPerMonth: "7", rating: 5},
		{name: "Missing", reviewsPerMonth: "", rating: 0},
		{name: "Unparsable", reviewsPerMonth: "many", rating: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			listings := cleaner.CleanListings(dataset.Table{
				Rows: []dataset.Row{{
					"price": "100", "availability_365": "1", "number_of_reviews": "1",
					"neighbourhood": "A", "reviews_per_month": tc.reviewsPerMonth,
				}},
			})

			rq.Len(listings, 1)
			rq.InDelta(tc.rating, listings[0].Rating, 1e-9)
			rq.GreaterOrEqual(listings[0].Rating, 0.0)
			rq.LessOrEqual(listings[0].Rating, 5.0)
		})
	}
}

func TestCleanerNeighbourhoods(t *testing.T) {
	rq := require.New(t)

	cleaner := dataset.NewCleaner()

	neighbourhoods := cleaner.Neighbourhoods(dataset.Table{
		Columns: []string{"neighbourhood"},
		Rows: []dataset.Row{
			{"neighbourhood": "Back Bay"},
			{"neighbourhood": "  "},
			{"neighbourhood": "Fenway"},
		},
	})

	rq.Len(neighbourhoods, 2)
	rq.Equal("Back Bay", neighbourhoods[0].Name)
	rq.Equal("Fenway", neighbourhoods[1].Name)
}

func TestCleanerRestaurants(t *testing.T) {
	rq := require.New(t)

	cleaner := dataset.NewCleaner()

	restaurants := cleaner.Restaurants(dataset.Table{
		Columns: []string{"name", "Location", "Cuisine", "Rank", "Reviews"},
		Rows: []dataset.Row{
			{"name": "Dumpling Cafe", "Location": "Chinatown", "Cuisine": "Chinese", "Rank": "3", "Reviews": "812"},
			{"name": "No Frills", "Location": "Allston", "Cuisine": "Korean", "Rank": "", "Reviews": ""},
		},
	})

	rq.Len(restaurants, 2)

	dumpling := restaurants[0]
	rq.Equal("Dumpling Cafe", dumpling.Name)
	rq.Equal("Chinatown", dumpling.Location)
	rq.Equal("Chinese", dumpling.Cuisine)
	rq.Equal(map[string]string{"Rank": "3", "Reviews": "812"}, dumpling.Details)

	rq.Nil(restaurants[1].Details, "empty extra columns do not produce details")
}
