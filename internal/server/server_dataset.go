package server

import (
	"fmt"
	"net/http"

	"bnb_finder/internal/domain/entity"
	"bnb_finder/pkg/httpx/reply"
	"bnb_finder/pkg/httpx/req"
	"bnb_finder/pkg/rest"
)

type DatasetServer struct {
	datasetProvider datasetProvider
	appName         string
	description     string
}

func NewDatasetServer(datasetProvider datasetProvider, appName, description string) DatasetServer {
	return DatasetServer{
		datasetProvider: datasetProvider,
		appName:         appName,
		description:     description,
	}
}

// getV1Home отдаёт шапку дашборда со статистикой загруженного датасета.
func (s DatasetServer) getV1Home(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	snapshot, err := s.datasetProvider.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("datasetProvider.Snapshot: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.Home{
		AppName:     s.appName,
		City:        snapshot.City,
		Description: s.description,
		Stats:       newRESTDatasetStats(snapshot.Stats()),
	})

	return nil
}

// getV1Neighbourhoods отдаёт список районов для selectbox.
func (s DatasetServer) getV1Neighbourhoods(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	snapshot, err := s.datasetProvider.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("datasetProvider.Snapshot: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTNeighbourhoods(snapshot.Neighbourhoods))

	return nil
}

// postV1DatasetReload прогревает срез. force=true сбрасывает кеш и
// перечитывает источники, force=false довольствуется живым кешем.
func (s DatasetServer) postV1DatasetReload(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.DatasetReload

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	var (
		snapshot *entity.Snapshot
		err      error
	)

	if request.Force {
		snapshot, err = s.datasetProvider.Reload(ctx)
	} else {
		snapshot, err = s.datasetProvider.Snapshot(ctx)
	}

	if err != nil {
		return fmt.Errorf("datasetProvider: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTDatasetStats(snapshot.Stats()))

	return nil
}
