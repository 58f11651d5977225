package server

import (
	"context"

	"bnb_finder/internal/domain/entity"
)

// Данный сервер просто объединяет специфичные HTTP сервера, отвечающие за обработку конкретных частей дашборда
type Server struct {
	DatasetServer
	ListingServer
	RestaurantServer
}

func NewServer(
	datasetServer DatasetServer,
	listingServer ListingServer,
	restaurantServer RestaurantServer,
) Server {
	return Server{
		DatasetServer:    datasetServer,
		ListingServer:    listingServer,
		RestaurantServer: restaurantServer,
	}
}

// datasetProvider отдаёт актуальный срез датасета. Все сервера ходят за
// данными только через него.
type datasetProvider interface {
	Snapshot(ctx context.Context) (*entity.Snapshot, error)
	Reload(ctx context.Context) (*entity.Snapshot, error)
}
