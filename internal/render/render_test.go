package render

import (
	"bufio"
	"bytes"
	"io"
	stdhttp "net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vaibhavm18/http-tcp/http/status"
)

func readResponse(t *testing.T, data []byte) (*stdhttp.Response, string) {
	stdreq, err := stdhttp.NewRequest(stdhttp.MethodGet, "/", nil)
	require.NoError(t, err)
	resp, err := stdhttp.ReadResponse(bufio.NewReader(bytes.NewReader(data)), stdreq)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, string(body)
}

func TestRender(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		data := Render(nil, OK("text/plain", "Hello from Go server!\n"))
		require.Equal(t,
			"HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\nContent-Length: 22\r\n"+
				"Connection: close\r\n\r\nHello from Go server!\n",
			string(data),
		)

		resp, body := readResponse(t, data)
		require.Equal(t, stdhttp.StatusOK, resp.StatusCode)
		require.True(t, resp.Close)
		require.Equal(t, "Hello from Go server!\n", body)
	})

	t.Run("bad request", func(t *testing.T) {
		resp, body := readResponse(t, Render(nil, BadRequest()))
		require.Equal(t, stdhttp.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "text/plain", resp.Header.Get("Content-Type"))
		require.Equal(t, int64(len("Bad Request")), resp.ContentLength)
		require.Equal(t, "Bad Request", body)
	})

	t.Run("no content type", func(t *testing.T) {
		resp, body := readResponse(t, Render(nil, Response{Code: status.OK}))
		require.Empty(t, resp.Header.Get("Content-Type"))
		require.Zero(t, resp.ContentLength)
		require.Empty(t, body)
	})

	t.Run("appends", func(t *testing.T) {
		buff := Render(make([]byte, 0, 128), OK("text/html", "<p>hi</p>"))
		buff = Render(buff[:0], BadRequest())
		_, body := readResponse(t, buff)
		require.Equal(t, "Bad Request", body)
	})
}

func BenchmarkRender(b *testing.B) {
	buff := make([]byte, 0, 1024)
	resp := OK("text/plain", "Hello from Go server!\n")
	b.ReportAllocs()

	for range b.N {
		buff = Render(buff[:0], resp)
	}
}
