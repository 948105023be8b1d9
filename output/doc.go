// Package output maps adapter names to output writer factories so the
// surrounding pipeline can select an output format by name. The writer
// cores themselves have no knowledge of this registry; the kml adapter
// registers itself here.
package output
