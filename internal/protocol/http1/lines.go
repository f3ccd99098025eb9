package http1

import (
	"bufio"
	"errors"
	"io"
	"slices"

	"github.com/vaibhavm18/http-tcp/http"
)

// growStep bounds how much memory is reserved ahead of actually received data, so a
// client declaring a huge length doesn't make us allocate it all at once.
const growStep = 64 * 1024

// lineReader is the only thing touching the stream. It reads either a whole line or an
// exact number of bytes.
type lineReader struct {
	r      *bufio.Reader
	line   []byte
	maxLen int
}

func newLineReader(r *bufio.Reader, maxLen int) lineReader {
	return lineReader{r: r, maxLen: maxLen}
}

// Bytes returns the next line without trailing CR and LF characters. The returned slice
// is valid only until the next call. A line terminated by the end of the stream is
// returned as is, and io.EOF is returned only if no single byte was read.
func (l *lineReader) Bytes() ([]byte, error) {
	l.line = l.line[:0]

	for {
		fragment, err := l.r.ReadSlice('\n')
		l.line = append(l.line, fragment...)

		// the terminator itself (at most CRLF) doesn't count towards the limit
		if l.maxLen > 0 && len(l.line) > l.maxLen+2 {
			return nil, http.ErrLineTooLong
		}

		switch {
		case err == nil:
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			if len(l.line) == 0 {
				return nil, io.EOF
			}
		default:
			return nil, err
		}

		line := trimEOL(l.line)
		if l.maxLen > 0 && len(line) > l.maxLen {
			return nil, http.ErrLineTooLong
		}

		return line, nil
	}
}

// Line does the same as Bytes, but the returned string is owned by the caller.
func (l *lineReader) Line() (string, error) {
	line, err := l.Bytes()
	return string(line), err
}

// ReadExact appends exactly n bytes from the stream to dst. If the stream ends earlier,
// io.ErrUnexpectedEOF is returned.
func (l *lineReader) ReadExact(dst []byte, n int64) ([]byte, error) {
	for n > 0 {
		step := int(min(n, growStep))
		offset := len(dst)
		dst = slices.Grow(dst, step)[:offset+step]

		if _, err := io.ReadFull(l.r, dst[offset:]); err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}

			return nil, err
		}

		n -= int64(step)
	}

	return dst, nil
}

func trimEOL(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}

	return b
}

// classify turns a raw line reading error into a *http.ParseError. io.EOF is treated
// as premature end of the stream, because at every place except the request line the
// message isn't complete yet.
func classify(kind http.Kind, err error) error {
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}

	return http.WrapError(kind, err)
}
