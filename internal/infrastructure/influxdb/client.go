package influxdb

import (
	"context"
	"fmt"
	"sync"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/olly/awair-monitor/internal/infrastructure/config"
)

// Default timeouts for InfluxDB operations.
const (
	defaultConnectTimeout = 10 * time.Second
	defaultPingTimeout    = 5 * time.Second
)

// pointWriter is the write surface used by PublishRecords. It matches
// api.WriteAPIBlocking so tests can substitute a fake.
type pointWriter interface {
	WritePoint(ctx context.Context, point ...*write.Point) error
}

// Client wraps the InfluxDB client for the publish step of the pipeline.
//
// One logical client is created per pipeline run. Writes use the blocking
// write API: the pipeline needs per-point success or failure, not
// fire-and-forget batching.
//
// Thread Safety:
//   - All methods are safe for concurrent use from multiple goroutines.
//     The blocking write API is shared by all in-flight writes.
type Client struct {
	client   influxdb2.Client
	writeAPI pointWriter

	connected bool
	mu        sync.RWMutex
}

// Connect establishes a connection to the InfluxDB server.
//
// The destination is an InfluxDB 1.x database, addressed through the
// client library's 1.8 compatibility mode: the token is
// "username:password" and the bucket is the database name. An empty
// username means unauthenticated access (empty token).
//
// Connectivity is verified with a ping before any write is attempted.
//
// Parameters:
//   - cfg: InfluxDB configuration
//
// Returns:
//   - *Client: Connected client ready for use
//   - error: ErrConnectionFailed if the server cannot be reached
func Connect(cfg config.InfluxDBConfig) (*Client, error) {
	token := ""
	if cfg.Username != "" {
		token = fmt.Sprintf("%s:%s", cfg.Username, cfg.Password)
	}

	client := influxdb2.NewClient(cfg.URL, token)

	ctx, cancel := context.WithTimeout(context.Background(), defaultConnectTimeout)
	defer cancel()

	healthy, err := client.Ping(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("%w: ping failed: %w", ErrConnectionFailed, err)
	}
	if !healthy {
		client.Close()
		return nil, fmt.Errorf("%w: server not healthy", ErrConnectionFailed)
	}

	// In 1.8 compatibility mode the org is unused and the bucket maps to
	// "database/retention-policy"; the default retention policy applies
	// when only the database is given.
	writeAPI := client.WriteAPIBlocking("", cfg.Database)

	return &Client{
		client:    client,
		writeAPI:  writeAPI,
		connected: true,
	}, nil
}

// Close shuts down the InfluxDB connection. The blocking write API has
// nothing to flush; any write that returned nil has already landed.
func (c *Client) Close() error {
	if c.client == nil {
		return nil
	}

	c.mu.Lock()
	c.connected = false
	c.mu.Unlock()

	c.client.Close()

	return nil
}

// HealthCheck verifies the InfluxDB connection is alive and functioning.
//
// Parameters:
//   - ctx: Context for timeout/cancellation
//
// Returns:
//   - error: nil if healthy, error describing the issue otherwise
func (c *Client) HealthCheck(ctx context.Context) error {
	if !c.IsConnected() {
		return ErrNotConnected
	}

	checkCtx, cancel := context.WithTimeout(ctx, defaultPingTimeout)
	defer cancel()

	healthy, err := c.client.Ping(checkCtx)
	if err != nil {
		return fmt.Errorf("influxdb health check failed: %w", err)
	}
	if !healthy {
		return fmt.Errorf("influxdb health check failed: server not healthy")
	}

	return nil
}

// IsConnected returns the current connection state.
func (c *Client) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

// Ensure the real write API satisfies the seam used by PublishRecords.
var _ pointWriter = (api.WriteAPIBlocking)(nil)
