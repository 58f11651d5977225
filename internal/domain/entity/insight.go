package entity

// InsightReport сводка по очищенным объявлениям, печатается экспортёром
// снапшота после записи в базу.
type InsightReport struct {
	TotalListings           int
	AveragePrice            float64
	MinPrice                float64
	MaxPrice                float64
	MostExpensive           *Listing
	TopRated                []Listing
	ListingsByNeighbourhood map[string]int
}
