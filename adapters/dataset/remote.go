package dataset

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"measlesmon/domain/school"
	"measlesmon/internal"
	"measlesmon/internal/errors"
)

// RemoteReader fetches the published coverage CSV over HTTP.
type RemoteReader struct {
	url    string
	client *http.Client
	logger *internal.Logger
}

// NewRemoteReader creates a reader for the given CSV URL.
func NewRemoteReader(url string, timeout time.Duration) *RemoteReader {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &RemoteReader{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: internal.DefaultLogger,
	}
}

// Read fetches and parses the remote coverage CSV.
func (r *RemoteReader) Read(ctx context.Context) ([]school.School, error) {
	r.logger.Info("[RemoteReader] fetching coverage data from %s", r.url)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, errors.DatasetError("failed to build coverage request", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, errors.DatasetError("failed to fetch coverage data", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.DatasetError(
			fmt.Sprintf("coverage fetch returned status %d", resp.StatusCode), nil)
	}

	schools, err := parseCSV(resp.Body, r.logger)
	if err != nil {
		return nil, err
	}

	r.logger.Info("[RemoteReader] loaded %d schools in %.2fms",
		len(schools), float64(time.Since(start).Nanoseconds())/1e6)
	return schools, nil
}
