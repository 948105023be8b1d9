package format

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/events-to-kml/record"
)

func TestNativeHelper_FormatEvent(t *testing.T) {
	h := NativeHelper{}

	ev := &record.Event{
		Timestamp: 1696320000, // 2023-10-03 08:00:00 UTC
		Fields: map[string]any{
			"source":   "syslog",
			"hostname": "db01",
			"pid":      412,
		},
	}
	want := "datetime: 2023-10-03T08:00:00Z\n" +
		"hostname: db01\n" +
		"pid: 412\n" +
		"source: syslog"
	require.Equal(t, want, h.FormatEvent(ev))
	require.Equal(t, want, h.FormatEvent(ev), "output must be deterministic")
}

func TestNativeHelper_EmptyEvent(t *testing.T) {
	h := NativeHelper{}
	require.Equal(t, "", h.FormatEvent(&record.Event{}))
}

func TestIso8601FromUnixSeconds(t *testing.T) {
	tests := []struct {
		name     string
		input    int64
		expected string
	}{
		{name: "epoch", input: 0, expected: "1970-01-01T00:00:00Z"},
		{name: "specific timestamp", input: 1696320000, expected: "2023-10-03T08:00:00Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Iso8601FromUnixSeconds(tt.input))
		})
	}
}
