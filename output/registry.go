package output

import (
	"io"
	"sort"
	"sync"

	"github.com/zeebo/errs"
	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/events-to-kml/record"
)

// Error is an error class for the package.
var Error = errs.Class("output")

// Adapter is the narrow surface the pipeline drives: framing plus
// per-record emission.
type Adapter interface {
	WriteHeader() error
	WriteRecord(ev *record.Event) error
	WriteFooter() error
	Close() error
}

// Options carries the adapter configuration injected by the pipeline.
type Options struct {
	Encoding string
	Strict   bool
	Logger   *zap.Logger
}

// Factory builds an adapter writing to sink.
type Factory func(sink io.Writer, opts Options) (Adapter, error)

var (
	mu        sync.RWMutex
	factories = map[string]Factory{}
)

// Register makes an adapter available under name. It panics when the name
// is empty, the factory is nil, or the name is already taken, since
// registration happens from package init.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	if name == "" || f == nil {
		panic("output: Register with empty name or nil factory")
	}
	if _, dup := factories[name]; dup {
		panic("output: Register called twice for adapter " + name)
	}
	factories[name] = f
}

// New builds the named adapter over sink.
func New(name string, sink io.Writer, opts Options) (Adapter, error) {
	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()
	if !ok {
		return nil, Error.New("unknown output adapter %q", name)
	}
	return f(sink, opts)
}

// Names lists the registered adapters in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
