package textenc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewEncoder_UTF8Passthrough(t *testing.T) {
	for _, name := range []string{"utf-8", "UTF-8", "utf8"} {
		t.Run(name, func(t *testing.T) {
			enc, err := NewEncoder(name)
			require.NoError(t, err)
			require.Equal(t, name, enc.Name())
			require.True(t, enc.IsUTF8())

			var buf bytes.Buffer
			w := enc.NewWriter(&buf)
			_, err = w.Write([]byte("héllo wörld"))
			require.NoError(t, err)
			require.NoError(t, w.Close())
			require.Equal(t, "héllo wörld", buf.String())
		})
	}
}

func TestNewEncoder_Latin1(t *testing.T) {
	enc, err := NewEncoder("iso-8859-1")
	require.NoError(t, err)
	require.False(t, enc.IsUTF8())

	var buf bytes.Buffer
	w := enc.NewWriter(&buf)
	_, err = w.Write([]byte("é"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.Equal(t, []byte{0xE9}, buf.Bytes())
}

func TestNewEncoder_Errors(t *testing.T) {
	_, err := NewEncoder("")
	require.Error(t, err)
	require.True(t, Error.Has(err))

	_, err = NewEncoder("no-such-charset")
	require.Error(t, err)
	require.True(t, Error.Has(err))
}
