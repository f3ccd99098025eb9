package config

import (
	"fmt"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
)

// Duration is a time.Duration that is written as a string ("30s", "500ms") in config files.
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Duration(d).String() + `"`), nil
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var str string
	if err := jsoniter.Unmarshal(b, &str); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}

	parsed, err := time.ParseDuration(str)
	if err != nil {
		return err
	}

	*d = Duration(parsed)
	return nil
}

// Std returns the value as time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

type (
	NET struct {
		// Addr is the address the server listens on.
		Addr string `json:"addr"`
		// ReadBufferSize is a size of the buffer used to read from the socket.
		ReadBufferSize int `json:"read_buffer_size"`
		// ReadTimeout bounds every single blocking read. A client that stays silent for
		// longer gets its connection closed.
		ReadTimeout Duration `json:"read_timeout"`
		// AcceptLoopInterruptPeriod controls how often will the Accept() call be interrupted
		// in order to check whether it's time to stop. Defaults to 5 seconds.
		AcceptLoopInterruptPeriod Duration `json:"accept_loop_interrupt_period"`
		// MaxConnections limits the number of connections served at once. Connections
		// above the limit wait in the accept loop until a seat frees up. 0 means no limit.
		MaxConnections int `json:"max_connections" test:"nullable"`
	}

	// Limits are optional hardening bounds. Zero disables a limit, which is the default.
	Limits struct {
		// MaxLineLength limits the length of a single line (request line, header line,
		// chunk size line or trailer line), excluding the line terminator.
		MaxLineLength int `json:"max_line_length" test:"nullable"`
		// MaxBodySize limits the size of a body, either declared by Content-Length or
		// accumulated from chunks.
		MaxBodySize int64 `json:"max_body_size" test:"nullable"`
	}

	// TLS serves the listener over TLS. Certificates are taken from AutoCertDomains via
	// ACME, then from CertFile and KeyFile. If neither is set, a self-signed certificate
	// for localhost is generated in CacheDir, which suits local development only.
	TLS struct {
		Enabled  bool   `json:"enabled" test:"nullable"`
		CertFile string `json:"cert_file" test:"nullable"`
		KeyFile  string `json:"key_file" test:"nullable"`
		// AutoCertDomains enables ACME certificates for the listed domains. Takes precedence
		// over CertFile and KeyFile.
		AutoCertDomains []string `json:"autocert_domains" test:"nullable"`
		// CacheDir stores ACME and self-signed certificates between restarts. Empty means
		// the user cache directory.
		CacheDir string `json:"cache_dir" test:"nullable"`
	}

	Response struct {
		// Body is sent with every successfully parsed request.
		Body        string `json:"body"`
		ContentType string `json:"content_type"`
	}
)

// Config holds everything the server needs to know in order to run.
//
// Always start from Default() and modify it, as zero values are not valid for most of
// the fields.
type Config struct {
	NET      NET      `json:"net"`
	Limits   Limits   `json:"limits"`
	TLS      TLS      `json:"tls"`
	Response Response `json:"response"`
}

// Default returns default config.
func Default() *Config {
	return &Config{
		NET: NET{
			Addr:                      "127.0.0.1:8080",
			ReadBufferSize:            4 * 1024,
			ReadTimeout:               Duration(30 * time.Second),
			AcceptLoopInterruptPeriod: Duration(5 * time.Second),
		},
		Response: Response{
			Body:        "Hello from Go server!\n",
			ContentType: "text/plain",
		},
	}
}

// Load reads a JSON file and overlays it on top of the defaults. Fields absent in the
// file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Parse does the same as Load, but takes the file contents directly.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.NET.ReadBufferSize <= 0:
		return fmt.Errorf("net.read_buffer_size must be positive, got %d", c.NET.ReadBufferSize)
	case c.NET.ReadTimeout <= 0:
		return fmt.Errorf("net.read_timeout must be positive")
	case c.NET.AcceptLoopInterruptPeriod <= 0:
		return fmt.Errorf("net.accept_loop_interrupt_period must be positive")
	case c.NET.MaxConnections < 0:
		return fmt.Errorf("net.max_connections must not be negative")
	case c.Limits.MaxLineLength < 0 || c.Limits.MaxBodySize < 0:
		return fmt.Errorf("limits must not be negative")
	case c.TLS.Enabled && (c.TLS.CertFile == "") != (c.TLS.KeyFile == ""):
		return fmt.Errorf("tls: cert_file and key_file must be set together")
	}

	return nil
}
