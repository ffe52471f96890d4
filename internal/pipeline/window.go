package pipeline

import "time"

// LatestCompletePeriod returns the most recent complete interval of the
// given length whose upper boundary is aligned to a multiple of the
// period since the Unix epoch and is not after now.
//
// The computation is closed-form and stateless: any two calls within the
// same alignment bucket yield the same window. The process keeps no
// cursor between runs; it relies on the external scheduler invoking it
// once per bucket. A second invocation inside the same bucket produces a
// duplicate window, which is accepted — the destination overwrites
// points with identical timestamp and tag set.
//
// Both boundaries are UTC.
func LatestCompletePeriod(now time.Time, period time.Duration) (lower, upper time.Time) {
	seconds := int64(period / time.Second)
	ts := now.Unix()
	upper = time.Unix(ts-ts%seconds, 0).UTC()
	lower = upper.Add(-period)
	return lower, upper
}
