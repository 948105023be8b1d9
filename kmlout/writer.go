package kmlout

import (
	"io"

	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/events-to-kml/record"
	"github.com/theoremus-urban-solutions/events-to-kml/textenc"
)

// kmlNamespace is the OGC KML 2.2 namespace declared on the document root.
const kmlNamespace = "http://www.opengis.net/kml/2.2"

// Options configures a Writer.
type Options struct {
	// Encoding is the character encoding declared in the XML header and
	// applied to the output bytes. Defaults to "utf-8".
	Encoding string

	// Strict aborts the stream on a record serialization failure instead
	// of logging and skipping the record.
	Strict bool

	// Logger receives skip warnings. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Stats reports what a Writer has processed so far.
type Stats struct {
	Records       int // records handed to WriteRecord
	Placemarks    int // placemark fragments emitted
	NoCoordinates int // records skipped for a missing coordinate
	Dropped       int // records dropped on serialization failure
}

// Writer streams event records to a sink as one KML document. The only
// mutable framing state is whether the header and footer have been
// written; each record's fragment is rendered and flushed independently.
type Writer struct {
	out      io.WriteCloser
	encoding string
	strict   bool
	log      *zap.Logger

	headerWritten bool
	footerWritten bool
	stats         Stats
}

// NewWriter configures a writer over sink. Nothing is written until
// WriteHeader. An unresolvable encoding name is a configuration error.
func NewWriter(sink io.Writer, opts Options) (*Writer, error) {
	if sink == nil {
		return nil, ErrSink.New("nil sink")
	}
	name := opts.Encoding
	if name == "" {
		name = "utf-8"
	}
	enc, err := textenc.NewEncoder(name)
	if err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Writer{
		out:      enc.NewWriter(sink),
		encoding: name,
		strict:   opts.Strict,
		log:      log,
	}, nil
}

// WriteHeader writes the XML declaration, the kml root element and the
// opening Document element as a single write. It must be called exactly
// once, before any record.
func (w *Writer) WriteHeader() error {
	if w.headerWritten {
		return ErrFraming.New("header already written")
	}
	hdr := `<?xml version="1.0" encoding="` + w.encoding + `"?>` +
		`<kml xmlns="` + kmlNamespace + `"><Document>`
	if err := w.writeText(hdr); err != nil {
		return err
	}
	w.headerWritten = true
	return nil
}

// WriteRecord emits one placemark fragment for ev. A record missing either
// coordinate produces no output and no error. A record that fails to
// serialize is logged and skipped, or returned when the writer is strict.
func (w *Writer) WriteRecord(ev *record.Event) error {
	if !w.headerWritten {
		return ErrFraming.New("record before header")
	}
	if w.footerWritten {
		return ErrFraming.New("record after footer")
	}
	w.stats.Records++
	if !ev.HasCoordinates() {
		w.stats.NoCoordinates++
		return nil
	}
	fragment, err := RenderPlacemark(ev, w.stats.Records)
	if err != nil {
		if w.strict {
			return err
		}
		w.stats.Dropped++
		w.log.Warn("skipping unserializable record",
			zap.Int("record", w.stats.Records), zap.Error(err))
		return nil
	}
	if err := w.writeText(fragment); err != nil {
		return err
	}
	w.stats.Placemarks++
	return nil
}

// WriteFooter writes the closing Document and kml elements as a single
// write. It must be called exactly once, after all records, to keep the
// document well-formed; that holds even when the caller stops early.
func (w *Writer) WriteFooter() error {
	if !w.headerWritten {
		return ErrFraming.New("footer before header")
	}
	if w.footerWritten {
		return ErrFraming.New("footer already written")
	}
	if err := w.writeText("</Document></kml>"); err != nil {
		return err
	}
	w.footerWritten = true
	return nil
}

// Close flushes the charset transformer. It does not write the footer; a
// document closed without WriteFooter stays incomplete and a warning is
// logged so the caller can flag the output.
func (w *Writer) Close() error {
	if w.headerWritten && !w.footerWritten {
		w.log.Warn("kml document closed without footer; output is incomplete")
	}
	if err := w.out.Close(); err != nil {
		return ErrSink.Wrap(err)
	}
	return nil
}

// Stats returns the writer's record counters.
func (w *Writer) Stats() Stats {
	return w.stats
}

func (w *Writer) writeText(s string) error {
	if _, err := io.WriteString(w.out, s); err != nil {
		return ErrSink.Wrap(err)
	}
	return nil
}
