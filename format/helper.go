// Package format renders event records into the human-readable description
// text carried inside a placemark. The output adapters treat the result as
// an opaque, pre-formatted string.
package format

import (
	"fmt"
	"sort"
	"strings"

	"github.com/theoremus-urban-solutions/events-to-kml/record"
)

// Helper formats one event into its description text.
type Helper interface {
	FormatEvent(ev *record.Event) string
}

// NativeHelper is the default formatting helper: an ISO8601 timestamp line
// followed by the event's fields as "key: value" lines in key order. The
// output is deterministic for a given event.
type NativeHelper struct{}

// FormatEvent implements Helper.
func (NativeHelper) FormatEvent(ev *record.Event) string {
	var lines []string
	if ev.Timestamp != 0 {
		lines = append(lines, "datetime: "+Iso8601FromUnixSeconds(ev.Timestamp))
	}
	keys := make([]string, 0, len(ev.Fields))
	for k := range ev.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %v", k, ev.Fields[k]))
	}
	return strings.Join(lines, "\n")
}
