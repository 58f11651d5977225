package entity

import "math"

// Listing одна строка очищенной таблицы объявлений.
//
// Числовые поля — float64, потому что ячейка могла не пройти приведение типов
// при очистке: такая ячейка хранится как NaN и автоматически не проходит ни
// один диапазонный фильтр. Строки с пустыми обязательными полями до сущности
// не доживают, их отбрасывает Cleaner.
type Listing struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Neighbourhood   string  `json:"neighbourhood"`
	Price           float64 `json:"price"`
	Availability365 float64 `json:"availability_365"`
	NumberOfReviews float64 `json:"number_of_reviews"`
	ReviewsPerMonth float64 `json:"reviews_per_month"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	Rating          float64 `json:"rating"` // производный, всегда в [0, 5]
}

// HasPrice сообщает, удалось ли привести цену к числу.
func (l Listing) HasPrice() bool {
	return !math.IsNaN(l.Price)
}

// HasCoordinates сообщает, можно ли ставить точку на карту.
func (l Listing) HasCoordinates() bool {
	return !math.IsNaN(l.Latitude) && !math.IsNaN(l.Longitude)
}
