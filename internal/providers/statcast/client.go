package statcast

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/XavierBriggs/fortuna/services/pitch-stats-service/pkg/models"
	"github.com/cenkalti/backoff/v4"
)

const (
	BaseURL = "https://baseballsavant.mlb.com"

	// Season window used for a year's pitch data. Statcast coverage for a
	// season runs from spring games through the end of the postseason.
	seasonStart = "03-01"
	seasonEnd   = "11-30"
)

// Client fetches pitch-by-pitch data from the Baseball Savant CSV export.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	maxRetry   time.Duration
}

// New creates a new Statcast client
func New() *Client {
	return NewWithBaseURL(BaseURL)
}

// NewWithBaseURL creates a client against a specific endpoint, used by tests
func NewWithBaseURL(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
		baseURL:   baseURL,
		userAgent: "Mozilla/5.0 (compatible; FortunaBot/1.0)",
		maxRetry:  2 * time.Minute,
	}
}

// FetchSeason downloads and parses all pitch records for one season.
// Transient failures are retried with exponential backoff; 4xx responses
// abort immediately.
func (c *Client) FetchSeason(ctx context.Context, year int) ([]models.PitchRecord, error) {
	url := fmt.Sprintf(
		"%s/statcast_search/csv?all=true&type=details&game_date_gt=%d-%s&game_date_lt=%d-%s",
		c.baseURL, year, seasonStart, year, seasonEnd,
	)

	var records []models.PitchRecord

	op := func() error {
		body, err := c.fetch(ctx, url)
		if err != nil {
			return err
		}
		defer body.Close()

		records, err = ParsePitchCSV(body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("parsing statcast CSV: %w", err))
		}
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = c.maxRetry
	if err := backoff.Retry(op, backoff.WithContext(b, ctx)); err != nil {
		return nil, err
	}

	return records, nil
}

// fetch makes an HTTP GET request and returns the response body
func (c *Client) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("creating request: %w", err))
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/csv")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()

		err := fmt.Errorf("statcast API error: status=%d, body=%s", resp.StatusCode, string(body))
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}

	return resp.Body, nil
}
