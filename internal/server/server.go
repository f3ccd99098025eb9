package server

import (
	"errors"
	"log"
	"net"

	"github.com/dchest/uniuri"
	"github.com/vaibhavm18/http-tcp/config"
	"github.com/vaibhavm18/http-tcp/http"
	"github.com/vaibhavm18/http-tcp/internal/protocol/http1"
	"github.com/vaibhavm18/http-tcp/internal/render"
	"github.com/vaibhavm18/http-tcp/transport"
)

type Logger interface {
	Printf(fmt string, v ...any)
}

// Server handles a single request per connection: it reads it, answers with one of
// the canned responses and lets the connection go.
type Server struct {
	cfg        *config.Config
	logger     Logger
	ok         []byte
	badRequest []byte
}

// New prepares responses in advance, as they never change. If no logger is passed,
// log.Default() is used.
func New(cfg *config.Config, logger Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}

	return &Server{
		cfg:        cfg,
		logger:     logger,
		ok:         render.Render(nil, render.OK(cfg.Response.ContentType, cfg.Response.Body)),
		badRequest: render.Render(nil, render.BadRequest()),
	}
}

// HandleConn serves the connection and closes it.
func (s *Server) HandleConn(conn net.Conn) {
	client := transport.NewClient(conn, s.cfg.NET.ReadTimeout.Std())
	defer func() {
		_ = client.Close()
	}()

	id := uniuri.NewLen(8)
	request, err := http1.NewReader(client, s.cfg).ReadRequest()
	switch {
	case err == nil:
		s.logger.Printf("[%s] %s: %s", id, client.Remote(), request)
		s.respond(id, client, s.ok)
	case errors.Is(err, http.ErrStreamEnded):
		s.logger.Printf("[%s] %s: closed without sending a request", id, client.Remote())
	default:
		s.logger.Printf("[%s] %s: bad request: %s", id, client.Remote(), http.Escape(err.Error()))
		s.respond(id, client, s.badRequest)
	}
}

func (s *Server) respond(id string, client *transport.Client, response []byte) {
	if _, err := client.Write(response); err != nil {
		s.logger.Printf("[%s] %s: failed to write the response: %s", id, client.Remote(), err)
	}
}
