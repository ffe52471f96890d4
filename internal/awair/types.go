package awair

import (
	"encoding/json"
	"fmt"
	"time"
)

// SensorKind identifies one of the measurement categories reported by an
// Awair device. The set is closed: the API reporting a kind not listed
// here is a schema change and fails the payload decode (see UnmarshalJSON).
//
// The string value is the wire name used in the "comp" field of the API
// payload. Documented ranges are informative; the pipeline performs no
// range validation.
type SensorKind string

const (
	// SensorTemperature is temperature in degrees Celsius (range -40 to 185).
	SensorTemperature SensorKind = "temp"

	// SensorHumidity is relative humidity in percent (range 0 to 100).
	SensorHumidity SensorKind = "humid"

	// SensorCO2 is carbon dioxide in parts per million (range 0 to 5000).
	SensorCO2 SensorKind = "co2"

	// SensorVOC is total volatile organic compounds in parts per billion
	// (range 20 to 60000).
	SensorVOC SensorKind = "voc"

	// SensorDust is aggregate particulate matter in micrograms per cubic
	// metre (range 0 to 250).
	SensorDust SensorKind = "dust"

	// SensorPM25 is fine particulate matter (PM2.5) in micrograms per
	// cubic metre (range 0 to 1000).
	SensorPM25 SensorKind = "pm25"
)

// canonicalNames maps each kind to the field name used when writing to
// the time-series database. Canonical names are distinct across kinds.
var canonicalNames = map[SensorKind]string{
	SensorTemperature: "temperature",
	SensorHumidity:    "humidity",
	SensorCO2:         "CO2",
	SensorVOC:         "VOC",
	SensorDust:        "dust",
	SensorPM25:        "PM25",
}

// Canonical returns the time-series field name for the kind.
func (k SensorKind) Canonical() string {
	return canonicalNames[k]
}

// Valid reports whether the kind is one of the known wire names.
func (k SensorKind) Valid() bool {
	_, ok := canonicalNames[k]
	return ok
}

// UnmarshalJSON decodes a wire name into a SensorKind. An unrecognised
// wire name is an error, failing the whole payload decode: a new unmapped
// sensor kind is a breaking schema change and must not be silently
// dropped from telemetry.
func (k *SensorKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("sensor kind: %w", err)
	}
	kind := SensorKind(s)
	if !kind.Valid() {
		return fmt.Errorf("%w: unknown sensor kind %q", ErrDecode, s)
	}
	*k = kind
	return nil
}

// Measurement is a single sensor or index reading.
type Measurement struct {
	Comp  SensorKind `json:"comp"`
	Value float64    `json:"value"`
}

// DataPoint is one timestamped bundle of score, sensor readings and index
// readings returned by the API. Sensors and indices are disjoint buckets;
// they are merged only at transformation time.
type DataPoint struct {
	Timestamp time.Time     `json:"timestamp"`
	Score     float64       `json:"score"`
	Sensors   []Measurement `json:"sensors"`
	Indices   []Measurement `json:"indices"`
}

// Response is the decoded air-data payload. Data preserves the order
// delivered by the API.
type Response struct {
	Data []DataPoint `json:"data"`
}
