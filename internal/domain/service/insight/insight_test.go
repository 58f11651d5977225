package insight_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"bnb_finder/internal/domain/entity"
	"bnb_finder/internal/domain/service/insight"
)

func ids(listings []entity.Listing) []int64 {
	result := make([]int64, 0, len(listings))
	for _, l := range listings {
		result = append(result, l.ID)
	}

	return result
}

func TestInsightReport(t *testing.T) {
	rq := require.New(t)

	svc := insight.NewInsightService()

	listings := []entity.Listing{
		{ID: 1, Name: "Cozy loft", Neighbourhood: "Back Bay", Price: 120, Rating: 5},
		{ID: 2, Name: "Quiet room", Neighbourhood: "Fenway", Price: 40, Rating: 2},
		{ID: 3, Name: "Unknown price", Neighbourhood: "Fenway", Price: math.NaN(), Rating: 4},
		{ID: 4, Name: "Penthouse", Neighbourhood: "Back Bay", Price: 800, Rating: 1},
	}

	report := svc.Report(listings)

	rq.Equal(4, report.TotalListings, "rows without a price still count")
	rq.InDelta(320, report.AveragePrice, 1e-9)
	rq.InDelta(40, report.MinPrice, 1e-9)
	rq.InDelta(800, report.MaxPrice, 1e-9)

	rq.NotNil(report.MostExpensive)
	rq.Equal(int64(4), report.MostExpensive.ID, "NaN price must never win the most expensive slot")

	rq.Equal(map[string]int{"Back Bay": 2, "Fenway": 2}, report.ListingsByNeighbourhood)

	rq.Equal([]int64{1, 3, 2, 4}, ids(report.TopRated), "sorted by rating descending")
}

func TestInsightReportEmpty(t *testing.T) {
	rq := require.New(t)

	report := insight.NewInsightService().Report(nil)

	rq.Zero(report.TotalListings)
	rq.Zero(report.AveragePrice)
	rq.Zero(report.MinPrice)
	rq.Zero(report.MaxPrice)
	rq.Nil(report.MostExpensive)
	rq.Empty(report.TopRated)
	rq.Empty(report.ListingsByNeighbourhood)
}

func TestInsightTopRatedLimit(t *testing.T) {
	rq := require.New(t)

	svc := insight.NewInsightService().WithTopRatedLimit(2)

	listings := []entity.Listing{
		{ID: 1, Rating: 1},
		{ID: 2, Rating: 3},
		{ID: 3, Rating: 2},
	}

	report := svc.Report(listings)

	rq.Equal([]int64{2, 3}, ids(report.TopRated))
}
