package dataset

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"bnb_finder/internal/domain"
	"bnb_finder/pkg/errcodes"
	"bnb_finder/pkg/logx"
)

// Locations адреса четырёх табличных источников датасета.
type Locations struct {
	Listings       string
	Neighbourhoods string
	Reviews        string
	Restaurants    string
}

// RawDataset сырые таблицы датасета до очистки.
type RawDataset struct {
	Listings       Table
	Neighbourhoods Table
	Reviews        Table
	Restaurants    Table
}

// Loader загружает все источники датасета. Загрузка атомарна: если хотя бы
// один источник недоступен или не разбирается, не возвращается ничего.
type Loader struct {
	locations Locations
	opener    SourceOpener
}

func NewLoader(locations Locations) *Loader {
	return &Loader{
		locations: locations,
		opener:    NewSourceOpener(nil),
	}
}

func (l *Loader) WithHTTPClient(httpClient *http.Client) *Loader {
	l.opener = NewSourceOpener(httpClient)

	return l
}

func (l *Loader) Load(ctx context.Context) (RawDataset, error) {
	var (
		dataset RawDataset
		err     error
	)

	if dataset.Listings, err = l.loadTable(ctx, "listings", l.locations.Listings); err != nil {
		return RawDataset{}, err
	}

	if dataset.Neighbourhoods, err = l.loadTable(ctx, "neighbourhoods", l.locations.Neighbourhoods); err != nil {
		return RawDataset{}, err
	}

	if dataset.Reviews, err = l.loadTable(ctx, "reviews", l.locations.Reviews); err != nil {
		return RawDataset{}, err
	}

	if dataset.Restaurants, err = l.loadTable(ctx, "restaurants", l.locations.Restaurants); err != nil {
		return RawDataset{}, err
	}

	return dataset, nil
}

func (l *Loader) loadTable(ctx context.Context, name, location string) (Table, error) {
	source, err := l.opener.Open(ctx, location)
	if err != nil {
		return Table{}, domain.WrapError(
			err,
			errcodes.SourceNotFound,
			fmt.Sprintf("%s source is unavailable: %s", name, location),
		)
	}
	defer source.Close() //nolint:errcheck

	table, err := parseTable(location, source)
	if err != nil {
		return Table{}, domain.WrapError(
			err,
			errcodes.SourceUnparseable,
			fmt.Sprintf("%s source is malformed: %s", name, location),
		)
	}

	logger(ctx).Debug(
		"dataset source loaded",
		slog.String(logx.FieldSource, name),
		slog.Int("rows", len(table.Rows)),
	)

	return table, nil
}

func parseTable(location string, source io.Reader) (Table, error) {
	if strings.EqualFold(filepath.Ext(trimQuery(location)), ".xlsx") {
		return parseXLSX(source)
	}

	return parseCSV(source)
}

func trimQuery(location string) string {
	if i := strings.IndexByte(location, '?'); i >= 0 {
		return location[:i]
	}

	return location
}
