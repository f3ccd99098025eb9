package server

import (
	"fmt"
	"io"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vaibhavm18/http-tcp/config"
)

type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (r *recordingLogger) Printf(format string, v ...any) {
	r.mu.Lock()
	r.lines = append(r.lines, fmt.Sprintf(format, v...))
	r.mu.Unlock()
}

func (r *recordingLogger) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}

// tcpPair returns both ends of a loopback TCP connection. Unlike net.Pipe, they
// support half-closing.
func tcpPair(t *testing.T) (server, client *net.TCPConn) {
	l, err := net.ListenTCP("tcp", &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1)})
	require.NoError(t, err)
	defer l.Close()

	accepted := make(chan *net.TCPConn)
	go func() {
		conn, err := l.AcceptTCP()
		if err != nil {
			close(accepted)
			return
		}

		accepted <- conn
	}()

	client, err = net.DialTCP("tcp", nil, l.Addr().(*net.TCPAddr))
	require.NoError(t, err)
	server = <-accepted
	require.NotNil(t, server)

	return server, client
}

type exchange struct {
	Response string
	Log      []string
}

func run(t *testing.T, cfg *config.Config, send func(conn *net.TCPConn)) exchange {
	serverConn, clientConn := tcpPair(t)
	defer clientConn.Close()

	logger := new(recordingLogger)
	srv := New(cfg, logger)
	done := make(chan struct{})
	go func() {
		srv.HandleConn(serverConn)
		close(done)
	}()

	send(clientConn)
	response, err := io.ReadAll(clientConn)
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(time.Second):
		require.Fail(t, "connection handler did not return")
	}

	return exchange{Response: string(response), Log: logger.Lines()}
}

func sendString(data string) func(conn *net.TCPConn) {
	return func(conn *net.TCPConn) {
		_, _ = conn.Write([]byte(data))
	}
}

const (
	okResponse = "HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\nContent-Length: 22\r\n" +
		"Connection: close\r\n\r\nHello from Go server!\n"
	badRequestResponse = "HTTP/1.1 400 Bad Request\r\nContent-Type: text/plain\r\nContent-Length: 11\r\n" +
		"Connection: close\r\n\r\nBad Request"
)

func TestServer(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		ex := run(t, config.Default(), sendString("GET /hello HTTP/1.1\r\nHost: localhost\r\n\r\n"))
		require.Equal(t, okResponse, ex.Response)
		require.Len(t, ex.Log, 1)
		require.Contains(t, ex.Log[0], "GET /hello HTTP/1.1")
	})

	t.Run("ok with body", func(t *testing.T) {
		ex := run(t, config.Default(), sendString(
			"POST /submit HTTP/1.1\r\nTransfer-Encoding: chunked\r\n\r\n4\r\nWiki\r\n5\r\npedia\r\n0\r\n\r\n",
		))
		require.Equal(t, okResponse, ex.Response)
	})

	t.Run("custom response", func(t *testing.T) {
		cfg := config.Default()
		cfg.Response.Body = "<h1>hi</h1>"
		cfg.Response.ContentType = "text/html"

		ex := run(t, cfg, sendString("PUT / HTTP/1.0\r\n\r\n"))
		require.Equal(t,
			"HTTP/1.1 200 OK\r\nContent-Type: text/html\r\nContent-Length: 11\r\n"+
				"Connection: close\r\n\r\n<h1>hi</h1>",
			ex.Response,
		)
	})

	t.Run("bad request", func(t *testing.T) {
		for _, raw := range []string{
			"PATCH / HTTP/1.1\r\n\r\n",
			"GET /a//b HTTP/1.1\r\n\r\n",
			"GET / FTP/1.1\r\n\r\n",
			"GET /\r\n\r\n",
			"GET / HTTP/1.1\r\nHost\r\n\r\n",
			"POST / HTTP/1.1\r\nContent-Length: many\r\n\r\n",
			"POST / HTTP/1.1\r\nTransfer-Encoding: chunked\r\n\r\nxyz\r\n",
		} {
			ex := run(t, config.Default(), sendString(raw))
			require.Equal(t, badRequestResponse, ex.Response, raw)
			require.Len(t, ex.Log, 1)
			require.Contains(t, ex.Log[0], "bad request: ")
		}
	})

	t.Run("incomplete request", func(t *testing.T) {
		ex := run(t, config.Default(), func(conn *net.TCPConn) {
			_, _ = conn.Write([]byte("POST / HTTP/1.1\r\nContent-Length: 10\r\n\r\nhello"))
			_ = conn.CloseWrite()
		})
		require.Equal(t, badRequestResponse, ex.Response)
		require.Contains(t, ex.Log[0], "failed to read body")
	})

	t.Run("idle close", func(t *testing.T) {
		ex := run(t, config.Default(), func(conn *net.TCPConn) {
			_ = conn.CloseWrite()
		})
		require.Empty(t, ex.Response)
		require.Len(t, ex.Log, 1)
		require.Contains(t, ex.Log[0], "closed without sending a request")
	})

	t.Run("read timeout", func(t *testing.T) {
		cfg := config.Default()
		cfg.NET.ReadTimeout = config.Duration(200 * time.Millisecond)

		ex := run(t, cfg, sendString("GET / HTTP/1.1\r\n"))
		require.Equal(t, badRequestResponse, ex.Response)
		require.Contains(t, ex.Log[0], "failed to read line")
		require.Contains(t, ex.Log[0], "timeout")
	})

	t.Run("escaped log", func(t *testing.T) {
		ex := run(t, config.Default(), sendString("GET / HTTP/1.1\r\nX-Bad\x1b[31m\r\n\r\n"))
		require.Equal(t, badRequestResponse, ex.Response)
		require.False(t, strings.ContainsRune(ex.Log[0], '\x1b'))
	})

	t.Run("limits", func(t *testing.T) {
		cfg := config.Default()
		cfg.Limits.MaxBodySize = 4

		ex := run(t, cfg, sendString("POST / HTTP/1.1\r\nContent-Length: 5\r\n\r\nhello"))
		require.Equal(t, badRequestResponse, ex.Response)
		require.Contains(t, ex.Log[0], "body is too large")
	})
}
