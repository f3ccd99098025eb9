package address

import (
	"errors"
	"net"
	"strconv"
	"strings"
)

// DefaultHost is used when the address consists of the port only.
const DefaultHost = "0.0.0.0"

type Address struct {
	Host string
	Port uint16
}

func Parse(addr string) (Address, error) {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		if strings.IndexByte(addr, ':') == -1 {
			return Address{}, errors.New("no port given")
		}

		return Address{}, err
	}

	portNum, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return Address{}, errors.New("invalid port: " + port)
	}

	if len(host) == 0 {
		host = DefaultHost
	}

	return Address{Host: host, Port: uint16(portNum)}, nil
}

// IsLocal reports whether the host is reachable from this machine only.
func (a Address) IsLocal() bool {
	if strings.EqualFold(a.Host, "localhost") {
		return true
	}

	ip := net.ParseIP(a.Host)
	return ip != nil && ip.IsLoopback()
}

func (a Address) String() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(int(a.Port)))
}
