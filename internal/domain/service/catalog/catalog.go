package catalog

import (
	"math"
	"sort"

	"bnb_finder/internal/domain/entity"
	"bnb_finder/internal/domain/value"
	"bnb_finder/pkg/lox"
)

const (
	defaultAffordableCeiling = 200.0
	defaultAffordableLimit   = 10
)

// CatalogService — слой запросов поверх снапшота. Все методы чистые: таблица
// приходит параметром, вход не мутируется, результат всегда новый срез.
// Ячейки, не прошедшие приведение типов (NaN), не проходят ни один
// диапазонный фильтр и не участвуют в среднем.
type CatalogService struct {
	affordableCeiling float64
	affordableLimit   int
}

func NewCatalogService() *CatalogService {
	return &CatalogService{
		affordableCeiling: defaultAffordableCeiling,
		affordableLimit:   defaultAffordableLimit,
	}
}

func (s *CatalogService) WithAffordableCeiling(ceiling float64) *CatalogService {
	s.affordableCeiling = ceiling
	return s
}

func (s *CatalogService) WithAffordableLimit(limit int) *CatalogService {
	s.affordableLimit = limit
	return s
}

// TopRated возвращает строки с рейтингом не ниже minRating. Непустой список
// районов дополнительно сужает выборку. Порядок строк исходный.
func (s *CatalogService) TopRated(listings []entity.Listing, minRating float64, neighbourhoods []string) []entity.Listing {
	allowed := make(map[string]struct{}, len(neighbourhoods))
	for _, n := range neighbourhoods {
		allowed[n] = struct{}{}
	}

	result := make([]entity.Listing, 0, len(listings))

	for _, l := range listings {
		if l.Rating < minRating {
			continue
		}

		if len(allowed) > 0 {
			if _, ok := allowed[l.Neighbourhood]; !ok {
				continue
			}
		}

		result = append(result, l)
	}

	return result
}

// FilterByPrice возвращает строки с ценой в [minPrice, maxPrice], обе границы
// включительно. Селектор района сужает до точного совпадения, если не "All".
func (s *CatalogService) FilterByPrice(listings []entity.Listing, minPrice, maxPrice float64, neighbourhood value.Selector) []entity.Listing {
	result := make([]entity.Listing, 0, len(listings))

	for _, l := range listings {
		// NaN-цена не проходит ни одно из сравнений.
		if !(l.Price >= minPrice && l.Price <= maxPrice) {
			continue
		}

		if !neighbourhood.Matches(l.Neighbourhood) {
			continue
		}

		result = append(result, l)
	}

	return result
}

// MostAffordable — цена в [0, ceiling], сортировка по возрастанию цены,
// не больше limit строк. Сортировка стабильная: равные цены сохраняют
// исходный порядок таблицы.
func (s *CatalogService) MostAffordable(listings []entity.Listing, neighbourhood value.Selector) []entity.Listing {
	result := s.FilterByPrice(listings, 0, s.affordableCeiling, neighbourhood)

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Price < result[j].Price
	})

	if len(result) > s.affordableLimit {
		result = result[:s.affordableLimit]
	}

	return result
}

// FilterRestaurants фильтрует каталог по локации и кухне; оба селектора
// независимы, "All" отключает своё измерение. Порядок строк исходный.
func (s *CatalogService) FilterRestaurants(restaurants []entity.Restaurant, location, cuisine value.Selector) []entity.Restaurant {
	result := make([]entity.Restaurant, 0, len(restaurants))

	for _, r := range restaurants {
		if !location.Matches(r.Location) || !cuisine.Matches(r.Cuisine) {
			continue
		}

		result = append(result, r)
	}

	return result
}

// RestaurantLocations возвращает отсортированный список локаций для селектора UI.
func (s *CatalogService) RestaurantLocations(restaurants []entity.Restaurant) []string {
	return distinctSorted(lox.FilterAssociate(restaurants, func(r entity.Restaurant) (string, bool) {
		return r.Location, r.Location != ""
	}))
}

// RestaurantCuisines возвращает отсортированный список кухонь для селектора UI.
func (s *CatalogService) RestaurantCuisines(restaurants []entity.Restaurant) []string {
	return distinctSorted(lox.FilterAssociate(restaurants, func(r entity.Restaurant) (string, bool) {
		return r.Cuisine, r.Cuisine != ""
	}))
}

// MeanPriceByNeighbourhood группирует строки по району и считает среднюю цену
// с округлением до двух знаков. Район без единой числовой цены в результат
// не попадает. Ключи не упорядочены, сортировка остаётся за потребителем.
func (s *CatalogService) MeanPriceByNeighbourhood(listings []entity.Listing) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, l := range listings {
		if !l.HasPrice() {
			continue
		}

		sums[l.Neighbourhood] += l.Price
		counts[l.Neighbourhood]++
	}

	means := make(map[string]float64, len(sums))
	for name, sum := range sums {
		means[name] = round2(sum / float64(counts[name]))
	}

	return means
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func distinctSorted(set map[string]entity.Restaurant) []string {
	values := make([]string, 0, len(set))
	for v := range set {
		values = append(values, v)
	}

	sort.Strings(values)

	return values
}
