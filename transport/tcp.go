package transport

import (
	"errors"
	"net"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vaibhavm18/http-tcp/config"
	"github.com/vaibhavm18/http-tcp/internal/timer"
)

type listener interface {
	net.Listener
	SetDeadline(t time.Time) error
}

type TCP struct {
	l    listener
	wg   *sync.WaitGroup
	stop *atomic.Bool
}

func NewTCP() *TCP {
	tcp := newTCP(nil)
	return &tcp
}

func newTCP(l listener) TCP {
	return TCP{
		l:    l,
		wg:   new(sync.WaitGroup),
		stop: new(atomic.Bool),
	}
}

func bindTCP(addr string) (*net.TCPListener, error) {
	tcpaddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return nil, err
	}

	return net.ListenTCP("tcp", tcpaddr)
}

func (t *TCP) Bind(addr string) (err error) {
	t.l, err = bindTCP(addr)
	return err
}

func (t *TCP) Addr() net.Addr {
	return t.l.Addr()
}

// Listen runs the accept loop until Stop is called. The loop is interrupted every
// cfg.AcceptLoopInterruptPeriod in order to notice that. If cfg.MaxConnections is
// set, no new connection is accepted while that many are being served.
func (t *TCP) Listen(cfg config.NET, cb func(conn net.Conn)) error {
	seats := newSemaphore(cfg.MaxConnections)

	for !t.stop.Load() {
		if !seats.Acquire(cfg.AcceptLoopInterruptPeriod.Std()) {
			continue
		}

		err := t.l.SetDeadline(timer.Deadline(cfg.AcceptLoopInterruptPeriod.Std()))
		if err != nil {
			seats.Release()
			return err
		}

		conn, err := t.l.Accept()
		if err != nil {
			seats.Release()

			if errors.Is(err, os.ErrDeadlineExceeded) {
				continue
			}

			return err
		}

		t.wg.Add(1)
		go func(conn net.Conn) {
			defer t.wg.Done()
			defer seats.Release()

			cb(conn)
			_ = conn.Close()
		}(conn)
	}

	return nil
}

func (t *TCP) Stop() {
	t.stop.Store(true)
}

func (t *TCP) Close() {
	_ = t.l.Close()
}

func (t *TCP) Wait() {
	t.wg.Wait()
}

// semaphore is a counting semaphore limiting served connections. The zero limit
// means no limit, in which case all the operations are no-op.
type semaphore chan struct{}

func newSemaphore(limit int) semaphore {
	if limit <= 0 {
		return nil
	}

	return make(semaphore, limit)
}

// Acquire takes a seat, waiting at most timeout for it to free up.
func (s semaphore) Acquire(timeout time.Duration) bool {
	if s == nil {
		return true
	}

	select {
	case s <- struct{}{}:
		return true
	default:
	}

	t := time.NewTimer(timeout)
	defer t.Stop()

	select {
	case s <- struct{}{}:
		return true
	case <-t.C:
		return false
	}
}

func (s semaphore) Release() {
	if s != nil {
		<-s
	}
}
