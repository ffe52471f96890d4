package pipeline

import (
	"github.com/olly/awair-monitor/internal/awair"
	"github.com/olly/awair-monitor/internal/infrastructure/influxdb"
)

// Transform flattens one data point into a destination-ready record.
//
// The record carries the data point's timestamp, a device_id tag, and
// one field per reading: "score" plus "<canonical>.sensor" for each
// sensor measurement and "<canonical>.index" for each index measurement.
// The two buckets share the kind vocabulary but stay distinguishable
// through the suffix.
//
// Pure function: no I/O and no failure modes. Values are passed through
// unchanged, including out-of-range ones.
func Transform(dp awair.DataPoint, deviceID string) influxdb.Record {
	fields := make(map[string]float64, 1+len(dp.Sensors)+len(dp.Indices))
	fields["score"] = dp.Score

	for _, m := range dp.Sensors {
		fields[m.Comp.Canonical()+".sensor"] = m.Value
	}
	for _, m := range dp.Indices {
		fields[m.Comp.Canonical()+".index"] = m.Value
	}

	return influxdb.Record{
		Timestamp: dp.Timestamp,
		Tags:      map[string]string{"device_id": deviceID},
		Fields:    fields,
	}
}
