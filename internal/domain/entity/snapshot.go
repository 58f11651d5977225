package entity

import "time"

// Snapshot неизменяемый срез датасета одного города: очищенные объявления
// и сопутствующие таблицы. Это явный хэндл, который прокидывается в каждый
// запрос к каталогу; после сборки снапшот только читается, поэтому его можно
// безопасно разделять между конкурентными запросами.
type Snapshot struct {
	City           string
	Listings       []Listing
	Neighbourhoods []Neighbourhood
	Restaurants    []Restaurant
	ReviewCount    int // таблица отзывов ядром не используется, держим только счётчик
	LoadedAt       time.Time
}

// DatasetStats сводка по снапшоту для главной страницы и ответа на reload.
type DatasetStats struct {
	City           string
	Listings       int
	Neighbourhoods int
	Restaurants    int
	Reviews        int
	LoadedAt       time.Time
}

func (s *Snapshot) Stats() DatasetStats {
	return DatasetStats{
		City:           s.City,
		Listings:       len(s.Listings),
		Neighbourhoods: len(s.Neighbourhoods),
		Restaurants:    len(s.Restaurants),
		Reviews:        s.ReviewCount,
		LoadedAt:       s.LoadedAt,
	}
}
