package output

import (
	"io"

	"github.com/theoremus-urban-solutions/events-to-kml/kmlout"
)

func init() {
	Register("kml", func(sink io.Writer, opts Options) (Adapter, error) {
		return kmlout.NewWriter(sink, kmlout.Options{
			Encoding: opts.Encoding,
			Strict:   opts.Strict,
			Logger:   opts.Logger,
		})
	})
}
