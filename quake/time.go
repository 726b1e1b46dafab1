package quake

import (
	"math"
	"time"
)

// rfc3339Micro is the timestamp layout QuakeML consumers expect: UTC with
// exactly six fractional digits.
const rfc3339Micro = "2006-01-02T15:04:05.000000Z"

// RFC3339 formats a time in UTC with microsecond precision.
func RFC3339(t time.Time) string {
	return t.UTC().Format(rfc3339Micro)
}

// EpochTime converts a Unix epoch timestamp given as float seconds to a UTC
// time. The fractional part is rounded to whole microseconds so
// representation wobble in the float does not leak through.
func EpochTime(ts float64) time.Time {
	sec := int64(math.Floor(ts))
	micro := int64(math.Round((ts - float64(sec)) * 1e6))
	if micro == 1000000 {
		sec++
		micro = 0
	}
	return time.Unix(sec, micro*1000).UTC()
}

// TimestampToISO formats a Unix epoch timestamp given as float seconds.
func TimestampToISO(ts float64) string {
	return RFC3339(EpochTime(ts))
}
