package record

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"

	"github.com/zeebo/errs"
	"go.uber.org/zap"
)

// Error is an error class for the package.
var Error = errs.Class("record")

// maxLineBytes bounds a single JSONL line; event descriptions can get long
// but a line is never a whole document.
const maxLineBytes = 1 << 20

// jsonEvent is the wire shape of one JSONL event line.
type jsonEvent struct {
	ID          any            `json:"id"`
	Latitude    *float64       `json:"latitude"`
	Longitude   *float64       `json:"longitude"`
	Description string         `json:"description"`
	Timestamp   int64          `json:"timestamp"`
	Fields      map[string]any `json:"fields"`
}

// JSONLSource reads one JSON-encoded event per line. Blank lines are
// ignored; malformed lines are skipped and counted rather than failing the
// stream, matching the pipeline's skip-malformed-records discipline.
type JSONLSource struct {
	scanner *bufio.Scanner
	log     *zap.Logger
	line    int
	skipped int
}

// NewJSONLSource creates a source reading JSONL events from r.
func NewJSONLSource(r io.Reader, log *zap.Logger) *JSONLSource {
	if log == nil {
		log = zap.NewNop()
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)
	return &JSONLSource{scanner: sc, log: log}
}

// Next implements Source. It returns io.EOF at end of input.
func (s *JSONLSource) Next() (*Event, error) {
	for s.scanner.Scan() {
		s.line++
		text := bytes.TrimSpace(s.scanner.Bytes())
		if len(text) == 0 {
			continue
		}
		var je jsonEvent
		if err := json.Unmarshal(text, &je); err != nil {
			s.skipped++
			s.log.Warn("skipping malformed event line",
				zap.Int("line", s.line), zap.Error(err))
			continue
		}
		return &Event{
			ID:          je.ID,
			Latitude:    je.Latitude,
			Longitude:   je.Longitude,
			Description: je.Description,
			Timestamp:   je.Timestamp,
			Fields:      je.Fields,
		}, nil
	}
	if err := s.scanner.Err(); err != nil {
		return nil, Error.Wrap(err)
	}
	return nil, io.EOF
}

// Skipped returns the number of malformed lines dropped so far.
func (s *JSONLSource) Skipped() int {
	return s.skipped
}
