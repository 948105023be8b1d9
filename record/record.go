package record

import "io"

// Event is a single event record as handed to an output adapter.
//
// ID is an opaque, string-convertible token assigned upstream. Latitude and
// Longitude are optional; a nil pointer means the value is absent from the
// source data, not zero. Description is the pre-formatted human-readable
// text for the event; when empty, a formatting helper can derive it from
// Timestamp and Fields.
type Event struct {
	ID          any
	Latitude    *float64
	Longitude   *float64
	Description string
	Timestamp   int64
	Fields      map[string]any
}

// HasCoordinates reports whether the event carries both a latitude and a
// longitude and is therefore placemark-eligible.
func (e *Event) HasCoordinates() bool {
	return e != nil && e.Latitude != nil && e.Longitude != nil
}

// Source is a lazy, finite, forward-only stream of event records.
// Next returns io.EOF after the last record.
type Source interface {
	Next() (*Event, error)
}

// SliceSource serves records from an in-memory slice.
type SliceSource struct {
	events []*Event
	next   int
}

// NewSliceSource creates a source over events.
func NewSliceSource(events []*Event) *SliceSource {
	return &SliceSource{events: events}
}

// Next implements Source.
func (s *SliceSource) Next() (*Event, error) {
	if s.next >= len(s.events) {
		return nil, io.EOF
	}
	ev := s.events[s.next]
	s.next++
	return ev, nil
}
