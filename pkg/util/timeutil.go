package util

import "time"

// NowUTC exposes time.Now for deterministic testing.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FromEpochMillis converts a Unix epoch in milliseconds to a UTC time.
func FromEpochMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// EpochMillis is the inverse of FromEpochMillis.
func EpochMillis(t time.Time) int64 {
	return t.UnixMilli()
}
