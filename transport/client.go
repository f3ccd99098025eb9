package transport

import (
	"net"
	"time"

	"github.com/vaibhavm18/http-tcp/internal/timer"
)

// Client is a connection whose every read is bounded by the timeout. A client that
// doesn't send anything for longer gets os.ErrDeadlineExceeded.
type Client struct {
	conn    net.Conn
	timeout time.Duration
}

func NewClient(conn net.Conn, timeout time.Duration) *Client {
	return &Client{
		conn:    conn,
		timeout: timeout,
	}
}

// Read refreshes the read deadline and reads from the underlying connection.
func (c *Client) Read(b []byte) (int, error) {
	if err := c.conn.SetReadDeadline(timer.Deadline(c.timeout)); err != nil {
		return 0, err
	}

	return c.conn.Read(b)
}

// Write writes data into the underlying connection. The write is bounded by the same
// timeout as reads.
func (c *Client) Write(b []byte) (int, error) {
	if err := c.conn.SetWriteDeadline(timer.Deadline(c.timeout)); err != nil {
		return 0, err
	}

	return c.conn.Write(b)
}

// Conn unwraps the underlying net.Conn.
func (c *Client) Conn() net.Conn {
	return c.conn
}

// Remote returns the remote address of the connection.
func (c *Client) Remote() net.Addr {
	return c.conn.RemoteAddr()
}

// Close closes the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
