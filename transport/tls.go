package transport

import (
	"crypto/tls"
	"errors"
	"net"
)

var ErrNoCertificates = errors.New("tls: no certificates were passed")

type TLS struct {
	config *tls.Config
	TCP
}

func NewTLS(config *tls.Config) *TLS {
	return &TLS{config: config}
}

// NewTLSFromFiles loads a PEM-encoded certificate and key pair.
func NewTLSFromFiles(certFile, keyFile string) (*TLS, error) {
	cert, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return nil, err
	}

	return NewTLS(&tls.Config{Certificates: []tls.Certificate{cert}}), nil
}

func (t *TLS) Bind(addr string) error {
	if t.config == nil || (len(t.config.Certificates) == 0 && t.config.GetCertificate == nil) {
		return ErrNoCertificates
	}

	tcp, err := bindTCP(addr)
	if err != nil {
		return err
	}

	t.TCP = newTCP(tlsAdapter{tcp, tls.NewListener(tcp, t.config)})

	return nil
}

// tlsAdapter keeps SetDeadline of the raw listener, so the accept loop can be
// interrupted the same way as the plain one. The handshake happens on the first
// read or write of the connection, bounded by the read deadline.
type tlsAdapter struct {
	*net.TCPListener
	tls net.Listener
}

func (t tlsAdapter) Accept() (net.Conn, error) {
	return t.tls.Accept()
}
