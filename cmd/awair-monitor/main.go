// awair-monitor fetches air-quality telemetry from the Awair developer
// API and publishes it to InfluxDB.
//
// Each invocation covers exactly one fetch window: the most recent
// complete period aligned to the configured length (5 minutes by
// default). The process is meant to be run once per period by an
// external scheduler such as cron or a systemd timer; it keeps no state
// between runs.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/olly/awair-monitor/internal/infrastructure/config"
	"github.com/olly/awair-monitor/internal/infrastructure/logging"
	"github.com/olly/awair-monitor/internal/pipeline"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0"
var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for
// testability. Errors are logged here, where the configured logger is
// in scope; main only maps the result to an exit code: 0 on full
// success, non-zero on any unrecovered error.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		// Before configuration exists only the default logger is
		// available.
		logging.Default().Error("invalid configuration", "error", err)
		return err
	}

	log := logging.New(cfg.Logging, version)

	return runPipeline(ctx, cfg, log)
}

// runPipeline executes one pipeline cycle and reports its outcome
// through the supplied logger.
func runPipeline(ctx context.Context, cfg *config.Config, log *logging.Logger) error {
	log.Info("starting run",
		"device_type", cfg.Awair.DeviceType,
		"device_id", cfg.Awair.DeviceID,
		"period_seconds", cfg.Awair.PeriodSeconds,
	)

	if err := pipeline.Run(ctx, cfg, log); err != nil {
		log.Error("run failed", "error", err)
		return err
	}

	return nil
}
