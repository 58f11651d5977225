package dataset

import (
	"math"
	"strconv"
	"strings"

	"bnb_finder/internal/domain/entity"
)

const (
	columnID              = "id"
	columnName            = "name"
	columnNeighbourhood   = "neighbourhood"
	columnPrice           = "price"
	columnAvailability    = "availability_365"
	columnNumberOfReviews = "number_of_reviews"
	columnReviewsPerMonth = "reviews_per_month"
	columnLatitude        = "latitude"
	columnLongitude       = "longitude"

	columnRestaurantLocation = "Location"
	columnRestaurantCuisine  = "Cuisine"
)

// Колонки, без которых строка объявления не имеет смысла для дашборда.
var requiredListingColumns = []string{ //nolint:gochecknoglobals
	columnPrice,
	columnAvailability,
	columnNeighbourhood,
	columnNumberOfReviews,
}

const (
	ratingScale = 5
	ratingMax   = 5
)

// Cleaner превращает сырые таблицы в доменные сущности: выбрасывает пустые
// строки, приводит числа и доделывает производные поля.
type Cleaner struct{}

func NewCleaner() Cleaner {
	return Cleaner{}
}

// CleanListings сначала выбрасывает строки с пустыми обязательными полями,
// и только потом приводит числовые колонки. Значение, которое не удалось
// привести, становится NaN, сама строка при этом остаётся.
func (c Cleaner) CleanListings(table Table) []entity.Listing {
	listings := make([]entity.Listing, 0, len(table.Rows))

	for _, row := range table.Rows {
		if !hasRequiredColumns(row) {
			continue
		}

		reviewsPerMonth := coerceNumeric(row[columnReviewsPerMonth])
		if math.IsNaN(reviewsPerMonth) {
			reviewsPerMonth = 0
		}

		listings = append(listings, entity.Listing{
			ID:              coerceID(row[columnID]),
			Name:            strings.TrimSpace(row[columnName]),
			Neighbourhood:   strings.TrimSpace(row[columnNeighbourhood]),
			Price:           coerceNumeric(row[columnPrice]),
			Availability365: coerceNumeric(row[columnAvailability]),
			NumberOfReviews: coerceNumeric(row[columnNumberOfReviews]),
			ReviewsPerMonth: reviewsPerMonth,
			Latitude:        coerceNumeric(row[columnLatitude]),
			Longitude:       coerceNumeric(row[columnLongitude]),
			Rating:          deriveRating(reviewsPerMonth),
		})
	}

	return listings
}

// Neighbourhoods собирает список районов, пропуская пустые имена.
func (c Cleaner) Neighbourhoods(table Table) []entity.Neighbourhood {
	neighbourhoods := make([]entity.Neighbourhood, 0, len(table.Rows))

	for _, row := range table.Rows {
		name := strings.TrimSpace(row[columnNeighbourhood])
		if name == "" {
			continue
		}

		neighbourhoods = append(neighbourhoods, entity.Neighbourhood{Name: name})
	}

	return neighbourhoods
}

// Restaurants переносит известные колонки в поля сущности, все остальные
// непустые колонки складываются в Details как есть.
func (c Cleaner) Restaurants(table Table) []entity.Restaurant {
	restaurants := make([]entity.Restaurant, 0, len(table.Rows))

	for _, row := range table.Rows {
		restaurant := entity.Restaurant{
			Name:     strings.TrimSpace(row[columnName]),
			Location: strings.TrimSpace(row[columnRestaurantLocation]),
			Cuisine:  strings.TrimSpace(row[columnRestaurantCuisine]),
		}

		details := make(map[string]string)

		for _, column := range table.Columns {
			if column == columnName || column == columnRestaurantLocation || column == columnRestaurantCuisine {
				continue
			}

			if value := strings.TrimSpace(row[column]); value != "" {
				details[column] = value
			}
		}

		if len(details) > 0 {
			restaurant.Details = details
		}

		restaurants = append(restaurants, restaurant)
	}

	return restaurants
}

func hasRequiredColumns(row Row) bool {
	for _, column := range requiredListingColumns {
		if strings.TrimSpace(row[column]) == "" {
			return false
		}
	}

	return true
}

// deriveRating считает рейтинг из отзывов в месяц по шкале до пяти.
func deriveRating(reviewsPerMonth float64) float64 {
	return math.Min(reviewsPerMonth*ratingScale, ratingMax)
}

func coerceNumeric(raw string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return math.NaN()
	}

	return value
}

func coerceID(raw string) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0
	}

	return id
}
