// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

import "time"

// Listing строка очищенной таблицы объявлений. Числовые поля, которые могли
// не распарситься при загрузке, передаются как null.
type Listing struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Neighbourhood   string   `json:"neighbourhood"`
	Price           *float64 `json:"price"`
	Availability365 *float64 `json:"availability365"`
	NumberOfReviews *float64 `json:"numberOfReviews"`
	ReviewsPerMonth float64  `json:"reviewsPerMonth"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	Rating          float64  `json:"rating"`
}

// MapView начальная позиция карты: центр и зум.
type MapView struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Zoom      int     `json:"zoom"`
}

// ListingMap слой карты: строки для тултипов/грида и вью. View отсутствует,
// если ни у одной строки нет валидных координат.
type ListingMap struct {
	Items []Listing `json:"items"`
	View  *MapView  `json:"view,omitempty"`
}

type NeighbourhoodMeanPrice struct {
	Neighbourhood string  `json:"neighbourhood"`
	MeanPrice     float64 `json:"meanPrice"`
}

type PriceDistribution struct {
	Items []Listing `json:"items"`
	// MeanPrices считается по уже отфильтрованным строкам Items.
	MeanPrices []NeighbourhoodMeanPrice `json:"meanPriceByNeighbourhood"`
}

type Restaurant struct {
	Name     string            `json:"name"`
	Location string            `json:"location"`
	Cuisine  string            `json:"cuisine"`
	Details  map[string]string `json:"details,omitempty"`
}

// Restaurants каталог ресторанов вместе с доменами фильтров для селекторов UI.
type Restaurants struct {
	Items     []Restaurant `json:"items"`
	Locations []string     `json:"locations"`
	Cuisines  []string     `json:"cuisines"`
}

type Neighbourhoods struct {
	Items []string `json:"items"`
}

type DatasetStats struct {
	City           string    `json:"city"`
	Listings       int       `json:"listings"`
	Neighbourhoods int       `json:"neighbourhoods"`
	Restaurants    int       `json:"restaurants"`
	Reviews        int       `json:"reviews"`
	LoadedAt       time.Time `json:"loadedAt"`
}

type Home struct {
	AppName     string       `json:"appName"`
	City        string       `json:"city"`
	Description string       `json:"description"`
	Stats       DatasetStats `json:"stats"`
}

type DatasetReload struct {
	Force bool `json:"force"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`
}

// ErrorCode Код ошибки
type ErrorCode string
