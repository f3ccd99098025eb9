package httptcp

import (
	"fmt"
	"log"
	"net"

	"github.com/vaibhavm18/http-tcp/config"
	"github.com/vaibhavm18/http-tcp/internal/address"
	"github.com/vaibhavm18/http-tcp/internal/server"
	"github.com/vaibhavm18/http-tcp/transport"
)

type Logger = server.Logger

// App binds the configured address and answers every request with a canned response.
type App struct {
	cfg        *config.Config
	bindAddr   address.Address
	hooks      hooks
	logger     Logger
	supervisor transport.Supervisor
	addr       net.Addr
}

// New returns a new App instance. Nil config means config.Default(). Panics if the
// address is malformed.
func New(cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.Default()
	}

	bindAddr, err := address.Parse(cfg.NET.Addr)
	if err != nil {
		panic(fmt.Errorf("httptcp: bad addr: %v", err))
	}

	return &App{
		cfg:        cfg,
		bindAddr:   bindAddr,
		supervisor: transport.NewSupervisor(),
	}
}

// Logger replaces log.Default() as the destination for connection logs.
func (a *App) Logger(logger Logger) *App {
	a.logger = logger
	return a
}

// NotifyOnStart calls the callback at the moment, when the listener is bound. The
// server is able to accept connections from this moment on.
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback at the moment, when the server is down. It's
// guaranteed that by then no connections are accepted, and all the accepted ones
// are already served.
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Addr returns the bound address. It's available after the OnStart hook is called.
func (a *App) Addr() net.Addr {
	return a.addr
}

// Serve binds the address and blocks until Stop is called or the listener fails.
func (a *App) Serve() error {
	t, err := a.newTransport()
	if err != nil {
		return err
	}

	srv := server.New(a.cfg, a.logger)
	if err = a.supervisor.Add(a.bindAddr.String(), t, srv.HandleConn); err != nil {
		return err
	}

	a.addr = t.Addr()
	a.printf("listening on %s", a.addr)
	callIfNotNil(a.hooks.OnStart)
	err = a.supervisor.Run(a.cfg.NET)
	callIfNotNil(a.hooks.OnStop)

	return err
}

// Stop stops accepting new connections and waits until the accepted ones are served.
// Must be called only after the OnStart hook fired.
func (a *App) Stop() {
	a.supervisor.Stop()
}

func (a *App) newTransport() (transport.Transport, error) {
	tls := a.cfg.TLS

	switch {
	case !tls.Enabled:
		return transport.NewTCP(), nil
	case len(tls.AutoCertDomains) > 0:
		return transport.NewAutoTLS(tls.AutoCertDomains, tls.CacheDir), nil
	case len(tls.CertFile) > 0:
		return transport.NewTLSFromFiles(tls.CertFile, tls.KeyFile)
	default:
		if !a.bindAddr.IsLocal() {
			a.printf("WARNING: tls: no certificates configured, using a self-signed one on %s", a.bindAddr)
		}

		return transport.NewSelfSignedTLS(tls.CacheDir)
	}
}

func (a *App) printf(format string, v ...any) {
	if a.logger != nil {
		a.logger.Printf(format, v...)
		return
	}

	log.Printf(format, v...)
}

type hooks struct {
	OnStart, OnStop func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
