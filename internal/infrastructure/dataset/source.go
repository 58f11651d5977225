package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// SourceOpener открывает источник данных по его адресу. Адресом может быть
// путь в локальной файловой системе или http(s) ссылка.
type SourceOpener struct {
	httpClient *http.Client
}

func NewSourceOpener(httpClient *http.Client) SourceOpener {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return SourceOpener{httpClient: httpClient}
}

func (o SourceOpener) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	if isRemote(location) {
		return o.openRemote(ctx, location)
	}

	file, err := os.Open(location)
	if err != nil {
		return nil, fmt.Errorf("os.Open: %w", err)
	}

	return file, nil
}

func (o SourceOpener) openRemote(ctx context.Context, location string) (io.ReadCloser, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, location, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	response, err := o.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Do: %w", err)
	}

	if response.StatusCode != http.StatusOK {
		_ = response.Body.Close()

		return nil, fmt.Errorf("unexpected response status: %s", response.Status)
	}

	return response.Body, nil
}

func isRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}
