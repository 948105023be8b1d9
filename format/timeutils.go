package format

import "time"

// Iso8601FromUnixSeconds converts a Unix timestamp to ISO8601 UTC format.
func Iso8601FromUnixSeconds(sec int64) string {
	return time.Unix(sec, 0).UTC().Format(time.RFC3339)
}
