// Package textenc resolves declared character-encoding names and encodes
// UTF-8 output text into the declared charset.
package textenc

import (
	"io"

	"github.com/zeebo/errs"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Error is an error class for the package.
var Error = errs.Class("textenc")

// Encoder converts UTF-8 text to a named output charset. UTF-8 itself is a
// pass-through.
type Encoder struct {
	name string
	enc  encoding.Encoding // nil means pass-through
}

// NewEncoder resolves name against the registered charset index. The name
// is kept verbatim for declaration purposes; resolution only decides how
// the bytes are transformed.
func NewEncoder(name string) (*Encoder, error) {
	if name == "" {
		return nil, Error.New("empty encoding name")
	}
	e, err := htmlindex.Get(name)
	if err != nil {
		return nil, Error.New("unknown encoding %q", name)
	}
	if e == unicode.UTF8 {
		e = nil
	}
	return &Encoder{name: name, enc: e}, nil
}

// Name returns the encoding name as configured.
func (e *Encoder) Name() string {
	return e.name
}

// NewWriter wraps w so UTF-8 input comes out in the configured charset.
// The returned writer must be closed to flush partial transforms.
func (e *Encoder) NewWriter(w io.Writer) io.WriteCloser {
	if e.enc == nil {
		return nopCloser{w}
	}
	return transform.NewWriter(w, e.enc.NewEncoder())
}

// IsUTF8 reports whether e writes bytes through unchanged.
func (e *Encoder) IsUTF8() bool {
	return e.enc == nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
