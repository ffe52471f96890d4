package awair

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/olly/awair-monitor/internal/infrastructure/config"
)

// defaultBaseURL is the Awair developer API host.
const defaultBaseURL = "https://developer-apis.awair.is"

// maxErrorBodyBytes limits how much of a non-200 response body is
// captured for diagnostics.
const maxErrorBodyBytes = 4096

// Client fetches raw air-data from the Awair developer API.
//
// The client performs no retries; retry policy belongs to the external
// scheduler that invokes the process. No timeout is imposed beyond the
// http.Client default.
//
// Thread Safety:
//   - Safe for concurrent use (the pipeline only issues one fetch per run).
type Client struct {
	httpClient *http.Client
	baseURL    string

	apiKey     string
	deviceType string
	deviceID   string
}

// NewClient creates a Client for the configured device. An empty
// cfg.BaseURL selects the production API host.
func NewClient(cfg config.AwairConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		deviceType: cfg.DeviceType,
		deviceID:   cfg.DeviceID,
	}
}

// Fetch retrieves the air-data for the window [lower, upper).
//
// It issues a single authenticated GET to the raw air-data endpoint with
// the window boundaries as RFC3339 timestamps at second precision.
//
// Returns:
//   - *Response: The decoded payload, in source order
//   - error: ErrTransport (network failure), *InvalidResponseError
//     (non-200 status; body not parsed), or ErrDecode (malformed body
//     or unknown sensor kind)
func (c *Client) Fetch(ctx context.Context, lower, upper time.Time) (*Response, error) {
	endpoint := fmt.Sprintf("%s/v1/users/self/devices/%s/%s/air-data/raw",
		c.baseURL, c.deviceType, c.deviceID)

	params := url.Values{}
	params.Set("from", lower.UTC().Format(time.RFC3339))
	params.Set("to", upper.UTC().Format(time.RFC3339))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("awair: building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Never parse a non-200 body as a payload; capture it for
		// diagnostics only.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, &InvalidResponseError{
			StatusCode: resp.StatusCode,
			Body:       body,
		}
	}

	var payload Response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		// Unknown sensor kinds are already tagged by SensorKind.UnmarshalJSON.
		if errors.Is(err, ErrDecode) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return &payload, nil
}
