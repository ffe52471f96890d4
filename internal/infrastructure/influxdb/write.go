package influxdb

import (
	"context"
	"fmt"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
	"golang.org/x/sync/errgroup"
)

// maxInflightWrites bounds concurrent writes against the database. The
// destination is a shared, rate-sensitive service; unbounded fan-out of a
// few hundred points could overwhelm it or exhaust local sockets.
const maxInflightWrites = 10

// Record is one destination-ready time-series point: a timestamp, a tag
// set and numeric fields. Records are immutable once built and
// independent of each other, so no locking is needed around them.
type Record struct {
	Timestamp time.Time
	Tags      map[string]string
	Fields    map[string]float64
}

// PublishRecords writes the records under the given measurement name,
// with at most maxInflightWrites writes in flight at any time.
//
// Records are dispatched in slice order; completion order is not
// guaranteed. On the first observed write failure no further records are
// dispatched, while already-dispatched writes run to completion. The
// call succeeds only if every record's write succeeded; otherwise it
// returns the first failure wrapped with ErrWriteFailed. Successful
// writes are not rolled back — re-running the same window overwrites
// points with identical timestamp and tag set.
//
// Parameters:
//   - ctx: Context threaded into each write
//   - measurement: The measurement name (e.g., "awair")
//   - records: The points to write
//
// Returns:
//   - error: nil if all writes succeeded, the first write error otherwise
func (c *Client) PublishRecords(ctx context.Context, measurement string, records []Record) error {
	if !c.IsConnected() {
		return ErrNotConnected
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxInflightWrites)

	for _, rec := range records {
		rec := rec

		// A failed write cancels gctx; stop dispatching but let
		// in-flight writes finish.
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			fields := make(map[string]interface{}, len(rec.Fields))
			for name, value := range rec.Fields {
				fields[name] = value
			}

			// Writes get the caller's context, not gctx: a failure
			// elsewhere gates new dispatches only, it must not abort
			// writes already in flight.
			point := write.NewPoint(measurement, rec.Tags, fields, rec.Timestamp)
			if err := c.writeAPI.WritePoint(ctx, point); err != nil {
				return fmt.Errorf("%w: point at %s: %w",
					ErrWriteFailed, rec.Timestamp.Format(time.RFC3339), err)
			}
			return nil
		})
	}

	return g.Wait()
}
