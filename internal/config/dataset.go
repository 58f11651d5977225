package config

import "time"

// Dataset адреса источников и настройки кеша среза. Адресом источника может
// быть путь на диске или http(s) ссылка, токен нужен только для закрытых
// http источников.
type Dataset struct {
	City                   string        `env:"DATASET_CITY" envDefault:"Boston"`
	ListingsLocation       string        `env:"DATASET_LISTINGS" envDefault:"data/listings.csv"`
	NeighbourhoodsLocation string        `env:"DATASET_NEIGHBOURHOODS" envDefault:"data/neighbourhoods.csv"`
	ReviewsLocation        string        `env:"DATASET_REVIEWS" envDefault:"data/reviews.csv"`
	RestaurantsLocation    string        `env:"DATASET_RESTAURANTS" envDefault:"data/restaurants.xlsx"`
	AuthToken              string        `env:"DATASET_AUTH_TOKEN" json:"-"`
	CacheTTL               time.Duration `env:"DATASET_CACHE_TTL" envDefault:"15m"`
	HTTPTimeout            time.Duration `env:"DATASET_HTTP_TIMEOUT" envDefault:"30s"`
}
