package server

import (
	"fmt"
	"net/http"

	"bnb_finder/internal/domain/entity"
	"bnb_finder/internal/domain/value"
	"bnb_finder/pkg/httpx/reply"
	"bnb_finder/pkg/httpx/req"
	"bnb_finder/pkg/rest"
)

type listingCatalog interface {
	TopRated(listings []entity.Listing, minRating float64, neighbourhoods []string) []entity.Listing
	FilterByPrice(listings []entity.Listing, minPrice, maxPrice float64, neighbourhood value.Selector) []entity.Listing
	MostAffordable(listings []entity.Listing, neighbourhood value.Selector) []entity.Listing
	MeanPriceByNeighbourhood(listings []entity.Listing) map[string]float64
}

type ListingServer struct {
	datasetProvider datasetProvider
	catalog         listingCatalog
}

func NewListingServer(datasetProvider datasetProvider, catalog listingCatalog) ListingServer {
	return ListingServer{
		datasetProvider: datasetProvider,
		catalog:         catalog,
	}
}

// getV1ListingsTopRated отдаёт слой карты с лучшими объявлениями.
func (s ListingServer) getV1ListingsTopRated(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	params, err := newTopRatedParams(r)
	if err != nil {
		return fmt.Errorf("newTopRatedParams: %w", err)
	}

	if err := req.Validate(ctx, params); err != nil {
		return fmt.Errorf("req.Validate: %w", err)
	}

	snapshot, err := s.datasetProvider.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("datasetProvider.Snapshot: %w", err)
	}

	listings := s.catalog.TopRated(snapshot.Listings, params.MinRating, params.Neighbourhoods)

	reply.JSON(ctx, w, http.StatusOK, newRESTListingMap(listings, zoomTopRated))

	return nil
}

// getV1ListingsPriceDistribution отдаёт строки ценового диапазона вместе
// со средними ценами по районам, посчитанными по этим же строкам.
func (s ListingServer) getV1ListingsPriceDistribution(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	params, err := newPriceRangeParams(r)
	if err != nil {
		return fmt.Errorf("newPriceRangeParams: %w", err)
	}

	if err := req.Validate(ctx, params); err != nil {
		return fmt.Errorf("req.Validate: %w", err)
	}

	snapshot, err := s.datasetProvider.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("datasetProvider.Snapshot: %w", err)
	}

	filtered := s.catalog.FilterByPrice(snapshot.Listings, params.MinPrice, params.MaxPrice, params.Neighbourhood)

	reply.JSON(ctx, w, http.StatusOK, rest.PriceDistribution{
		Items:      newRESTListings(filtered),
		MeanPrices: newRESTMeanPrices(s.catalog.MeanPriceByNeighbourhood(filtered)),
	})

	return nil
}

// getV1ListingsAffordable отдаёт слой карты с дешёвыми объявлениями.
func (s ListingServer) getV1ListingsAffordable(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	snapshot, err := s.datasetProvider.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("datasetProvider.Snapshot: %w", err)
	}

	listings := s.catalog.MostAffordable(snapshot.Listings, querySelector(r, "neighbourhood"))

	reply.JSON(ctx, w, http.StatusOK, newRESTListingMap(listings, zoomAffordable))

	return nil
}
