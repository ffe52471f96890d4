package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/olly/awair-monitor/internal/awair"
	"github.com/olly/awair-monitor/internal/infrastructure/config"
	"github.com/olly/awair-monitor/internal/infrastructure/influxdb"
	"github.com/olly/awair-monitor/internal/infrastructure/logging"
)

// measurementName is the InfluxDB measurement all records are written
// under.
const measurementName = "awair"

// Run executes one fetch-transform-publish cycle for the latest complete
// window and returns the first error encountered.
//
// The fetch must complete before transformation begins; transformation
// is synchronous and per-record; only the publish step is concurrent.
// No step retries — any failure aborts the run and surfaces unmodified
// to the caller. Writes that landed before a publish failure are not
// rolled back.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) error {
	lower, upper := LatestCompletePeriod(time.Now(), cfg.Awair.Period())
	log.Debug("fetching air data", "from", lower, "to", upper)

	client := awair.NewClient(cfg.Awair)
	resp, err := client.Fetch(ctx, lower, upper)
	if err != nil {
		return fmt.Errorf("fetching air data: %w", err)
	}
	log.Debug("fetched air data", "points", len(resp.Data))

	records := make([]influxdb.Record, 0, len(resp.Data))
	for _, dp := range resp.Data {
		records = append(records, Transform(dp, cfg.Awair.DeviceID))
	}

	db, err := influxdb.Connect(cfg.InfluxDB)
	if err != nil {
		return fmt.Errorf("connecting to influxdb: %w", err)
	}
	defer db.Close()

	if err := db.PublishRecords(ctx, measurementName, records); err != nil {
		return fmt.Errorf("publishing air data: %w", err)
	}

	log.Info("published air data",
		"points", len(records),
		"from", lower,
		"to", upper,
	)

	return nil
}
