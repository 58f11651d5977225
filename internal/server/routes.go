package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"bnb_finder/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) { //nolint:funlen
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			// unauthorized zone
			r.Get("/home", handler(s.getV1Home))
			r.Get("/neighbourhoods", handler(s.getV1Neighbourhoods))

			r.Route("/listings", func(r chi.Router) {
				r.Get("/top-rated", handler(s.getV1ListingsTopRated))
				r.Get("/price-distribution", handler(s.getV1ListingsPriceDistribution))
				r.Get("/affordable", handler(s.getV1ListingsAffordable))
			})

			r.Get("/restaurants", handler(s.getV1Restaurants))

			r.Route("/dataset", func(r chi.Router) {
				r.Post("/reload", handler(s.postV1DatasetReload))
			})
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
