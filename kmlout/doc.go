// Package kmlout writes event records with geography data as a Keyhole
// Markup Language (KML) document.
//
// The writer is streaming and single-pass: it never holds more than one
// record's XML in memory, so the input stream can be unbounded. The
// document is framed by an explicit header and footer so that a caller
// that stops consuming records early can still emit the footer and keep
// the (truncated) output well-formed.
//
// # Usage
//
//	w, err := kmlout.NewWriter(sink, kmlout.Options{Encoding: "utf-8"})
//	if err != nil {
//	    return err
//	}
//	if err := w.WriteHeader(); err != nil {
//	    return err
//	}
//	for {
//	    ev, err := src.Next()
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    if err := w.WriteRecord(ev); err != nil {
//	        return err
//	    }
//	}
//	if err := w.WriteFooter(); err != nil {
//	    return err
//	}
//	return w.Close()
//
// Records missing either coordinate produce no output and no error; they
// are expected, common input. A record whose identifier cannot be
// converted to text is logged and skipped unless Options.Strict is set.
//
// # Thread Safety
//
// A Writer serves exactly one record source and holds no internal lock.
// Callers feeding one writer from multiple goroutines must serialize the
// WriteRecord calls themselves.
package kmlout
