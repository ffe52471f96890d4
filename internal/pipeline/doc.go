// Package pipeline implements the windowed fetch-transform-publish cycle.
//
// One run: compute the latest complete fetch window, retrieve the raw
// air-data for it, flatten each data point into a time-series record,
// and publish the records to InfluxDB. The process is short-lived and
// holds no cross-run state — the external scheduler drives the period.
//
// Window boundaries are aligned to multiples of the period since the
// Unix epoch, so repeated invocations inside one period recompute the
// same window instead of drifting.
package pipeline
