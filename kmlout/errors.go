package kmlout

import "github.com/zeebo/errs"

var (
	// ErrFraming reports WriteHeader or WriteFooter called out of order
	// or more than once. It is a caller bug and is never silently fixed.
	ErrFraming = errs.Class("kml framing")

	// ErrSerialize reports a record that could not be rendered, carrying
	// the record's position in the stream.
	ErrSerialize = errs.Class("kml serialize")

	// ErrSink wraps failures writing to the underlying destination.
	ErrSink = errs.Class("kml sink")
)
