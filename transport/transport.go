package transport

import (
	"net"

	"github.com/vaibhavm18/http-tcp/config"
)

// Transport accepts connections and passes each of them to the callback in a
// separate goroutine. The connection is closed after the callback returns.
type Transport interface {
	Bind(addr string) error
	Listen(cfg config.NET, cb func(conn net.Conn)) error
	// Addr is the bound address. Useful when binding to port 0.
	Addr() net.Addr
	Stop()
	Close()
	Wait()
}
