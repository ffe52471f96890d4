// Package awair models the Awair developer API: the closed vocabulary of
// sensor and index measurement kinds, the typed air-data payload, and the
// HTTP client that fetches a time window of raw readings.
//
// # Measurement model
//
// SensorKind is a closed enumeration keyed by the API's wire names
// ("temp", "humid", "co2", "voc", "dust", "pm25"). Decoding is strict:
// a payload containing an unknown wire name fails as a whole rather than
// silently dropping the field, because an unmapped kind is a breaking
// schema change.
//
// # Fetching
//
//	client := awair.NewClient(cfg.Awair)
//	resp, err := client.Fetch(ctx, lower, upper)
//
// Fetch performs exactly one request and no retries. Errors are split
// into ErrTransport (network), *InvalidResponseError (non-200 status)
// and ErrDecode (malformed or unrecognised payload).
package awair
