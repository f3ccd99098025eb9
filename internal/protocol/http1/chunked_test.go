package http1

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vaibhavm18/http-tcp/http"
)

func TestParseChunkSize(t *testing.T) {
	for _, tc := range []struct {
		Line string
		Size uint64
	}{
		{"0", 0},
		{"a", 10},
		{"FF", 255},
		{"1f", 31},
		{"000d", 13},
		{"d;name=value", 13},
		{"d ; name=value;other", 13},
		{" 10 ", 16},
		{"7fffffffffffffff", 1<<63 - 1},
	} {
		size, err := parseChunkSize([]byte(tc.Line))
		require.NoError(t, err, tc.Line)
		require.Equal(t, tc.Size, size, tc.Line)
	}

	for _, tc := range []struct {
		Line, Detail string
	}{
		{"", ""},
		{";ext", ""},
		{"zz", "zz"},
		{"0x10", "0x10"},
		{"-1", "-1"},
		{"1 2", "1 2"},
		{"8000000000000000", "8000000000000000"},
	} {
		_, err := parseChunkSize([]byte(tc.Line))
		require.ErrorIs(t, err, http.ErrInvalidChunkSize, tc.Line)
		require.EqualError(t, err, "invalid chunk size: "+tc.Detail)
	}
}

func TestReadChunked(t *testing.T) {
	t.Run("wikipedia", func(t *testing.T) {
		body, err := readChunked(newTestLines("4\r\nWiki\r\n5\r\npedia\r\n0\r\n\r\n", 16, 0), 0)
		require.NoError(t, err)
		require.Equal(t, "Wikipedia", string(body))
	})

	t.Run("empty", func(t *testing.T) {
		body, err := readChunked(newTestLines("0\r\n\r\n", 16, 0), 0)
		require.NoError(t, err)
		require.NotNil(t, body)
		require.Empty(t, body)
	})

	t.Run("stops after the body", func(t *testing.T) {
		lines := newTestLines("1\nA\n0\nTrailer: yes\n\nGET / HTTP/1.1\n", 16, 0)
		body, err := readChunked(lines, 0)
		require.NoError(t, err)
		require.Equal(t, "A", string(body))

		line, err := lines.Line()
		require.NoError(t, err)
		require.Equal(t, "GET / HTTP/1.1", line)
	})

	t.Run("chunk data containing CRLF", func(t *testing.T) {
		body, err := readChunked(newTestLines("4\r\n\r\n\r\n\r\n0\r\n\r\n", 16, 0), 0)
		require.NoError(t, err)
		require.Equal(t, "\r\n\r\n", string(body))
	})

	t.Run("missing last chunk", func(t *testing.T) {
		_, err := readChunked(newTestLines("4\r\nWiki\r\n", 16, 0), 0)
		require.ErrorIs(t, err, http.ErrBodyRead)
	})

	t.Run("limit", func(t *testing.T) {
		_, err := readChunked(newTestLines("7fffffffffffffff\r\n", 16, 0), 1024)
		require.ErrorIs(t, err, http.ErrBodyTooLarge)
	})
}
