package server

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"bnb_finder/internal/domain"
	"bnb_finder/internal/domain/value"
	"bnb_finder/pkg/errcodes"
)

// topRatedParams параметры GET /v1/listings/top-rated.
type topRatedParams struct {
	MinRating      float64 `validate:"gte=0,lte=5"`
	Neighbourhoods []string
}

func newTopRatedParams(r *http.Request) (topRatedParams, error) {
	minRating, err := queryFloat(r, "minRating", 0)
	if err != nil {
		return topRatedParams{}, err
	}

	return topRatedParams{
		MinRating:      minRating,
		Neighbourhoods: queryList(r, "neighbourhoods"),
	}, nil
}

// priceRangeParams параметры GET /v1/listings/price-distribution.
// Отсутствующий maxPrice означает диапазон без верхней границы.
type priceRangeParams struct {
	MinPrice      float64 `validate:"gte=0"`
	MaxPrice      float64 `validate:"gtefield=MinPrice"`
	Neighbourhood value.Selector
}

func newPriceRangeParams(r *http.Request) (priceRangeParams, error) {
	minPrice, err := queryFloat(r, "minPrice", 0)
	if err != nil {
		return priceRangeParams{}, err
	}

	maxPrice, err := queryFloat(r, "maxPrice", math.Inf(1))
	if err != nil {
		return priceRangeParams{}, err
	}

	return priceRangeParams{
		MinPrice:      minPrice,
		MaxPrice:      maxPrice,
		Neighbourhood: querySelector(r, "neighbourhood"),
	}, nil
}

// restaurantParams параметры GET /v1/restaurants.
type restaurantParams struct {
	Location value.Selector
	Cuisine  value.Selector
}

func newRestaurantParams(r *http.Request) restaurantParams {
	return restaurantParams{
		Location: querySelector(r, "location"),
		Cuisine:  querySelector(r, "cuisine"),
	}
}

func queryFloat(r *http.Request, name string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}

	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, domain.NewError(errcodes.ValidationError, fmt.Sprintf("%s must be a number", name))
	}

	return parsed, nil
}

// queryList принимает и повторяющийся параметр, и значения через запятую.
func queryList(r *http.Request, name string) []string {
	var values []string

	for _, raw := range r.URL.Query()[name] {
		for _, item := range strings.Split(raw, ",") {
			if item = strings.TrimSpace(item); item != "" {
				values = append(values, item)
			}
		}
	}

	return values
}

func querySelector(r *http.Request, name string) value.Selector {
	return value.Selector(strings.TrimSpace(r.URL.Query().Get(name)))
}
