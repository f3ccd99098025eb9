package http1

import (
	"strconv"

	"github.com/indigo-web/utils/strcomp"
	"github.com/vaibhavm18/http-tcp/http"
	"github.com/vaibhavm18/http-tcp/http/headers"
)

type bodyStrategy uint8

const (
	noBody bodyStrategy = iota
	fixedBody
	chunkedBody
)

func chooseStrategy(hdrs headers.Headers) bodyStrategy {
	if te, found := hdrs.Get("transfer-encoding"); found && strcomp.EqualFold(te, "chunked") {
		return chunkedBody
	}

	if hdrs.Has("content-length") {
		return fixedBody
	}

	return noBody
}

// readBody returns the body and whether it is presented. maxSize of 0 disables the
// limit.
func readBody(lines *lineReader, hdrs headers.Headers, maxSize int64) (body []byte, present bool, err error) {
	switch chooseStrategy(hdrs) {
	case chunkedBody:
		body, err = readChunked(lines, maxSize)
		return body, err == nil, err
	case fixedBody:
		length, err := parseContentLength(hdrs.Value("content-length"))
		if err != nil {
			return nil, false, err
		}

		if length == 0 {
			return nil, false, nil
		}

		if maxSize > 0 && length > maxSize {
			return nil, false, http.ErrBodyTooLarge
		}

		body, err = lines.ReadExact(nil, length)
		if err != nil {
			return nil, false, classify(http.BodyRead, err)
		}

		return body, true, nil
	default:
		return nil, false, nil
	}
}

func parseContentLength(value string) (int64, error) {
	length, err := strconv.ParseInt(value, 10, 64)
	if err != nil || length < 0 {
		return 0, http.ErrInvalidContentLength
	}

	return length, nil
}
