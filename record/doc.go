// Package record defines the event record consumed by the output adapters
// and the sources that produce record streams.
//
// A record is placemark-eligible when both Latitude and Longitude are set.
// Sources are forward-only: Next returns records in stream order and io.EOF
// when the stream is exhausted.
package record
