package server

import (
	"fmt"
	"net/http"

	"bnb_finder/internal/domain/entity"
	"bnb_finder/internal/domain/value"
	"bnb_finder/pkg/httpx/reply"
	"bnb_finder/pkg/rest"
)

type restaurantCatalog interface {
	FilterRestaurants(restaurants []entity.Restaurant, location, cuisine value.Selector) []entity.Restaurant
	RestaurantLocations(restaurants []entity.Restaurant) []string
	RestaurantCuisines(restaurants []entity.Restaurant) []string
}

type RestaurantServer struct {
	datasetProvider datasetProvider
	catalog         restaurantCatalog
}

func NewRestaurantServer(datasetProvider datasetProvider, catalog restaurantCatalog) RestaurantServer {
	return RestaurantServer{
		datasetProvider: datasetProvider,
		catalog:         catalog,
	}
}

// getV1Restaurants отдаёт рестораны по выбранным селекторам. Значения для
// самих селекторов всегда считаются по полной таблице, а не по выборке.
func (s RestaurantServer) getV1Restaurants(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	params := newRestaurantParams(r)

	snapshot, err := s.datasetProvider.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("datasetProvider.Snapshot: %w", err)
	}

	filtered := s.catalog.FilterRestaurants(snapshot.Restaurants, params.Location, params.Cuisine)

	reply.JSON(ctx, w, http.StatusOK, rest.Restaurants{
		Items:     newRESTRestaurants(filtered),
		Locations: s.catalog.RestaurantLocations(snapshot.Restaurants),
		Cuisines:  s.catalog.RestaurantCuisines(snapshot.Restaurants),
	})

	return nil
}
