package kmlout

import (
	"encoding"
	"fmt"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/events-to-kml/record"
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&apos;",
)

func xmlEscape(s string) string {
	return xmlEscaper.Replace(s)
}

// formatCoordinate renders a coordinate with full source precision, no
// scientific notation and no locale dependence.
func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// identifierString converts an opaque event identifier to text.
func identifierString(id any) (string, error) {
	switch v := id.(type) {
	case nil:
		return "", fmt.Errorf("nil identifier")
	case string:
		return v, nil
	case encoding.TextMarshaler:
		b, err := v.MarshalText()
		if err != nil {
			return "", fmt.Errorf("identifier: %w", err)
		}
		return string(b), nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}

// RenderPlacemark serializes one placemark-eligible event to a
// self-contained XML fragment:
//
//	<Placemark>
//	  <name>        event identifier
//	  <description> description text plus a trailing newline
//	  <Point><coordinates> longitude,latitude (longitude first)
//
// Identifier and description text are escaped; coordinates keep the full
// precision of the source floats. pos is the record's 1-based position in
// the stream and is reported on serialization failure. The function is
// pure and safe to call concurrently for independent records.
func RenderPlacemark(ev *record.Event, pos int) (string, error) {
	if !ev.HasCoordinates() {
		return "", ErrSerialize.New("record %d: missing coordinates", pos)
	}
	id, err := identifierString(ev.ID)
	if err != nil {
		return "", ErrSerialize.New("record %d: %v", pos, err)
	}

	var b strings.Builder
	b.WriteString("<Placemark>")
	b.WriteString("<name>")
	b.WriteString(xmlEscape(id))
	b.WriteString("</name>")
	b.WriteString("<description>")
	b.WriteString(xmlEscape(ev.Description))
	b.WriteString("\n</description>")
	b.WriteString("<Point>")
	b.WriteString("<coordinates>")
	b.WriteString(formatCoordinate(*ev.Longitude))
	b.WriteString(",")
	b.WriteString(formatCoordinate(*ev.Latitude))
	b.WriteString("</coordinates>")
	b.WriteString("</Point>")
	b.WriteString("</Placemark>")
	return b.String(), nil
}
