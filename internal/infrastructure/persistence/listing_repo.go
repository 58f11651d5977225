package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/samber/lo"

	"bnb_finder/internal/domain"
	"bnb_finder/internal/domain/entity"
	"bnb_finder/pkg/errcodes"
)

// Вставка идёт пачками, чтобы не упереться в лимит параметров postgres.
const insertBatchSize = 1000

const listingsDDL = `
	CREATE TABLE IF NOT EXISTS listings (
		row_id            BIGSERIAL PRIMARY KEY,
		listing_id        BIGINT NOT NULL,
		city              TEXT NOT NULL,
		name              TEXT NOT NULL,
		neighbourhood     TEXT NOT NULL,
		price             DOUBLE PRECISION,
		availability_365  DOUBLE PRECISION,
		number_of_reviews DOUBLE PRECISION,
		reviews_per_month DOUBLE PRECISION NOT NULL,
		latitude          DOUBLE PRECISION,
		longitude         DOUBLE PRECISION,
		rating            DOUBLE PRECISION NOT NULL,
		loaded_at         TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_listings_city ON listings (city)`

type ListingRepository struct {
	db *sqlx.DB
}

// NewListingRepository создаёт новый экземпляр репозитория.
func NewListingRepository(db *sqlx.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

// withTx выполняет функцию в транзакции.
func (r *ListingRepository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to begin transaction")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return domain.WrapError(
				fmt.Errorf("%w; rollback: %v", err, rbErr),
				errcodes.InternalServerError,
				"transaction failed",
			)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to commit")
	}

	return nil
}

// EnsureSchema создаёт таблицу объявлений, если её ещё нет.
func (r *ListingRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, listingsDDL); err != nil {
		return domain.WrapError(err, errcodes.InternalServerError, "failed to ensure listings schema")
	}

	return nil
}

// ReplaceAll атомарно заменяет все объявления города свежим срезом.
func (r *ListingRepository) ReplaceAll(ctx context.Context, city string, loadedAt time.Time, listings []entity.Listing) error {
	schemas := lo.Map(listings, func(l entity.Listing, _ int) listingSchema {
		return fromListing(city, loadedAt, l)
	})

	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM listings WHERE city = $1`, city); err != nil {
			return domain.WrapError(err, errcodes.InternalServerError, "failed to delete stale listings")
		}

		query := `
			INSERT INTO listings (
				listing_id, city, name, neighbourhood, price, availability_365,
				number_of_reviews, reviews_per_month, latitude, longitude, rating, loaded_at
			) VALUES (
				:listing_id, :city, :name, :neighbourhood, :price, :availability_365,
				:number_of_reviews, :reviews_per_month, :latitude, :longitude, :rating, :loaded_at
			)`

		for i, batch := range lo.Chunk(schemas, insertBatchSize) {
			if _, err := tx.NamedExecContext(ctx, query, batch); err != nil {
				return domain.WrapError(err, errcodes.InternalServerError,
					fmt.Sprintf("failed at batch %d", i))
			}
		}

		return nil
	})
}

// FetchAll возвращает объявления города в порядке вставки.
func (r *ListingRepository) FetchAll(ctx context.Context, city string) ([]entity.Listing, error) {
	query := `
		SELECT listing_id, city, name, neighbourhood, price, availability_365,
		       number_of_reviews, reviews_per_month, latitude, longitude, rating, loaded_at
		FROM listings
		WHERE city = $1
		ORDER BY row_id ASC`

	var schemas []listingSchema
	if err := r.db.SelectContext(ctx, &schemas, query, city); err != nil {
		return nil, domain.WrapError(err, errcodes.InternalServerError, "failed to fetch listings")
	}

	listings := make([]entity.Listing, 0, len(schemas))
	for _, s := range schemas {
		listings = append(listings, s.toDomain())
	}

	return listings, nil
}

// CountByCity возвращает число сохранённых объявлений города.
func (r *ListingRepository) CountByCity(ctx context.Context, city string) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM listings WHERE city = $1`, city); err != nil {
		return 0, domain.WrapError(err, errcodes.InternalServerError, "failed to count listings")
	}

	return count, nil
}
