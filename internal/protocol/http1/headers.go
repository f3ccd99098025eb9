package http1

import (
	"strings"

	"github.com/vaibhavm18/http-tcp/http"
	"github.com/vaibhavm18/http-tcp/http/headers"
)

const headerSeparator = ": "

// readHeaders consumes field lines up to and including the empty line. Folded lines
// aren't supported, so they are reported as malformed.
func readHeaders(lines *lineReader) (headers.Headers, error) {
	hdrs := headers.New()

	for {
		line, err := lines.Line()
		if err != nil {
			return hdrs, classify(http.LineRead, err)
		}

		if len(line) == 0 {
			return hdrs, nil
		}

		key, value, found := strings.Cut(line, headerSeparator)
		if !found {
			return hdrs, http.NewError(http.InvalidHeaderFormat, line)
		}

		hdrs.Set(key, value)
	}
}
