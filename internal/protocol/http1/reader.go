package http1

import (
	"bufio"
	"errors"
	"io"

	"github.com/vaibhavm18/http-tcp/config"
	"github.com/vaibhavm18/http-tcp/http"
)

// Reader reads a single request from a stream. The stream is consumed strictly in
// order: request line, headers, body. Reading stops at the first error, leaving the
// rest of the stream untouched.
type Reader struct {
	lines  lineReader
	limits config.Limits
}

func NewReader(r io.Reader, cfg *config.Config) *Reader {
	return &Reader{
		lines:  newLineReader(bufio.NewReaderSize(r, cfg.NET.ReadBufferSize), cfg.Limits.MaxLineLength),
		limits: cfg.Limits,
	}
}

// ReadRequest returns either a valid request or a *http.ParseError. If the stream was
// closed before a single byte was received, the error is http.ErrStreamEnded.
func (r *Reader) ReadRequest() (*http.Request, error) {
	line, err := r.lines.Line()
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		return nil, http.ErrStreamEnded
	default:
		return nil, http.WrapError(http.LineRead, err)
	}

	method, path, version, err := parseRequestLine(line)
	if err != nil {
		return nil, err
	}

	hdrs, err := readHeaders(&r.lines)
	if err != nil {
		return nil, err
	}

	builder := http.NewBuilder().
		Method(method).
		Path(path).
		Version(version).
		Headers(hdrs)

	body, present, err := readBody(&r.lines, hdrs, r.limits.MaxBodySize)
	if err != nil {
		return nil, err
	}

	if present {
		builder.Body(body)
	}

	return builder.Build()
}
