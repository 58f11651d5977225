package persistence

import (
	"database/sql"
	"math"
	"time"

	"bnb_finder/internal/domain/entity"
)

// listingSchema — внутренняя структура для маппинга строки БД.
// NaN в домене соответствует NULL в базе.
type listingSchema struct {
	ListingID       int64           `db:"listing_id"`
	City            string          `db:"city"`
	Name            string          `db:"name"`
	Neighbourhood   string          `db:"neighbourhood"`
	Price           sql.NullFloat64 `db:"price"`
	Availability365 sql.NullFloat64 `db:"availability_365"`
	NumberOfReviews sql.NullFloat64 `db:"number_of_reviews"`
	ReviewsPerMonth float64         `db:"reviews_per_month"`
	Latitude        sql.NullFloat64 `db:"latitude"`
	Longitude       sql.NullFloat64 `db:"longitude"`
	Rating          float64         `db:"rating"`
	LoadedAt        time.Time       `db:"loaded_at"`
}

func fromListing(city string, loadedAt time.Time, e entity.Listing) listingSchema {
	return listingSchema{
		ListingID:       e.ID,
		City:            city,
		Name:            e.Name,
		Neighbourhood:   e.Neighbourhood,
		Price:           nullFromFloat(e.Price),
		Availability365: nullFromFloat(e.Availability365),
		NumberOfReviews: nullFromFloat(e.NumberOfReviews),
		ReviewsPerMonth: e.ReviewsPerMonth,
		Latitude:        nullFromFloat(e.Latitude),
		Longitude:       nullFromFloat(e.Longitude),
		Rating:          e.Rating,
		LoadedAt:        loadedAt,
	}
}

func (s *listingSchema) toDomain() entity.Listing {
	return entity.Listing{
		ID:              s.ListingID,
		Name:            s.Name,
		Neighbourhood:   s.Neighbourhood,
		Price:           floatFromNull(s.Price),
		Availability365: floatFromNull(s.Availability365),
		NumberOfReviews: floatFromNull(s.NumberOfReviews),
		ReviewsPerMonth: s.ReviewsPerMonth,
		Latitude:        floatFromNull(s.Latitude),
		Longitude:       floatFromNull(s.Longitude),
		Rating:          s.Rating,
	}
}

func nullFromFloat(v float64) sql.NullFloat64 {
	if math.IsNaN(v) {
		return sql.NullFloat64{}
	}

	return sql.NullFloat64{Float64: v, Valid: true}
}

func floatFromNull(v sql.NullFloat64) float64 {
	if !v.Valid {
		return math.NaN()
	}

	return v.Float64
}
