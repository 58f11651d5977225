package server

import (
	"math"
	"sort"

	"bnb_finder/internal/domain/entity"
	"bnb_finder/pkg/lox"
	"bnb_finder/pkg/rest"
)

// Стартовый зум слоёв карты. Топовые объявления кучкуются ближе к центру,
// дешёвые разбросаны шире.
const (
	zoomTopRated   = 13
	zoomAffordable = 12
)

func newRESTListing(listing entity.Listing) rest.Listing {
	return rest.Listing{
		ID:              listing.ID,
		Name:            listing.Name,
		Neighbourhood:   listing.Neighbourhood,
		Price:           nullableFloat(listing.Price),
		Availability365: nullableFloat(listing.Availability365),
		NumberOfReviews: nullableFloat(listing.NumberOfReviews),
		ReviewsPerMonth: listing.ReviewsPerMonth,
		Latitude:        nullableFloat(listing.Latitude),
		Longitude:       nullableFloat(listing.Longitude),
		Rating:          listing.Rating,
	}
}

func newRESTListings(listings []entity.Listing) []rest.Listing {
	return lox.Map(listings, newRESTListing)
}

func newRESTListingMap(listings []entity.Listing, zoom int) rest.ListingMap {
	return rest.ListingMap{
		Items: newRESTListings(listings),
		View:  newRESTMapView(listings, zoom),
	}
}

// newRESTMapView центрирует карту по среднему валидных координат. Когда ни у
// одной строки координат нет, вью не отдаётся и клиент оставляет карту как есть.
func newRESTMapView(listings []entity.Listing, zoom int) *rest.MapView {
	var (
		latSum, lonSum float64
		count          int
	)

	for _, listing := range listings {
		if !listing.HasCoordinates() {
			continue
		}

		latSum += listing.Latitude
		lonSum += listing.Longitude
		count++
	}

	if count == 0 {
		return nil
	}

	return &rest.MapView{
		Latitude:  latSum / float64(count),
		Longitude: lonSum / float64(count),
		Zoom:      zoom,
	}
}

func newRESTMeanPrices(means map[string]float64) []rest.NeighbourhoodMeanPrice {
	prices := lox.ReverseMap(means, func(neighbourhood string, mean float64) rest.NeighbourhoodMeanPrice {
		return rest.NeighbourhoodMeanPrice{
			Neighbourhood: neighbourhood,
			MeanPrice:     mean,
		}
	})

	sort.Slice(prices, func(i, j int) bool {
		return prices[i].Neighbourhood < prices[j].Neighbourhood
	})

	return prices
}

func newRESTRestaurant(restaurant entity.Restaurant) rest.Restaurant {
	return rest.Restaurant{
		Name:     restaurant.Name,
		Location: restaurant.Location,
		Cuisine:  restaurant.Cuisine,
		Details:  restaurant.Details,
	}
}

func newRESTRestaurants(restaurants []entity.Restaurant) []rest.Restaurant {
	return lox.Map(restaurants, newRESTRestaurant)
}

func newRESTNeighbourhoods(neighbourhoods []entity.Neighbourhood) rest.Neighbourhoods {
	return rest.Neighbourhoods{
		Items: lox.Map(neighbourhoods, func(n entity.Neighbourhood) string { return n.Name }),
	}
}

func newRESTDatasetStats(stats entity.DatasetStats) rest.DatasetStats {
	return rest.DatasetStats{
		City:           stats.City,
		Listings:       stats.Listings,
		Neighbourhoods: stats.Neighbourhoods,
		Restaurants:    stats.Restaurants,
		Reviews:        stats.Reviews,
		LoadedAt:       stats.LoadedAt,
	}
}

func nullableFloat(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}

	return &v
}
