package insight

import (
	"sort"

	"bnb_finder/internal/domain/entity"
)

const defaultTopRatedLimit = 5

// InsightService строит сводку по очищенной таблице объявлений.
// Ценовые агрегаты считаются только по строкам с числовой ценой.
type InsightService struct {
	topRatedLimit int
}

func NewInsightService() *InsightService {
	return &InsightService{
		topRatedLimit: defaultTopRatedLimit,
	}
}

func (s *InsightService) WithTopRatedLimit(limit int) *InsightService {
	s.topRatedLimit = limit
	return s
}

func (s *InsightService) Report(listings []entity.Listing) entity.InsightReport {
	report := entity.InsightReport{
		TotalListings:           len(listings),
		ListingsByNeighbourhood: make(map[string]int, len(listings)),
	}

	var (
		priced float64
		count  int
	)

	for i := range listings {
		l := &listings[i]

		report.ListingsByNeighbourhood[l.Neighbourhood]++

		if !l.HasPrice() {
			continue
		}

		priced += l.Price
		count++

		if report.MostExpensive == nil || l.Price > report.MostExpensive.Price {
			report.MostExpensive = l
		}

		if count == 1 || l.Price < report.MinPrice {
			report.MinPrice = l.Price
		}

		if count == 1 || l.Price > report.MaxPrice {
			report.MaxPrice = l.Price
		}
	}

	if count > 0 {
		report.AveragePrice = priced / float64(count)
	}

	report.TopRated = s.topRated(listings)

	return report
}

func (s *InsightService) topRated(listings []entity.Listing) []entity.Listing {
	top := make([]entity.Listing, len(listings))
	copy(top, listings)

	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Rating > top[j].Rating
	})

	if len(top) > s.topRatedLimit {
		top = top[:s.topRatedLimit]
	}

	return top
}
