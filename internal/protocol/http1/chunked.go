package http1

import (
	"bytes"
	"strconv"

	"github.com/indigo-web/utils/uf"
	"github.com/vaibhavm18/http-tcp/http"
)

// readChunked decodes a chunked body. The returned body is never nil, even if no data
// chunks were sent. Trailer field lines are consumed but discarded.
func readChunked(lines *lineReader, maxSize int64) ([]byte, error) {
	body := make([]byte, 0, 512)

	for {
		line, err := lines.Bytes()
		if err != nil {
			return nil, classify(http.BodyRead, err)
		}

		size, err := parseChunkSize(line)
		if err != nil {
			return nil, err
		}

		if size == 0 {
			if err = skipTrailer(lines); err != nil {
				return nil, err
			}

			return body, nil
		}

		if maxSize > 0 && size > uint64(maxSize-int64(len(body))) {
			return nil, http.ErrBodyTooLarge
		}

		if body, err = lines.ReadExact(body, int64(size)); err != nil {
			return nil, classify(http.BodyRead, err)
		}

		// whatever follows the chunk data up to LF is the chunk's CRLF
		if _, err = lines.Bytes(); err != nil {
			return nil, classify(http.BodyRead, err)
		}
	}
}

// parseChunkSize parses the hex length, ignoring chunk extensions.
func parseChunkSize(line []byte) (uint64, error) {
	if semicolon := bytes.IndexByte(line, ';'); semicolon != -1 {
		line = line[:semicolon]
	}

	line = bytes.TrimSpace(line)
	// 63 bits are enough to fit into int64, which is what ReadExact accepts
	size, err := strconv.ParseUint(uf.B2S(line), 16, 63)
	if err != nil {
		return 0, http.NewError(http.InvalidChunkSize, string(line))
	}

	return size, nil
}

func skipTrailer(lines *lineReader) error {
	for {
		line, err := lines.Bytes()
		if err != nil {
			return classify(http.BodyRead, err)
		}

		if len(line) == 0 {
			return nil
		}
	}
}
