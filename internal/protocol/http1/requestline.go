package http1

import (
	"strings"

	"github.com/vaibhavm18/http-tcp/http"
)

// parseRequestLine splits the line by whitespaces. Tokens aren't validated here, this
// is up to http.Builder.
func parseRequestLine(line string) (method, path, version string, err error) {
	tokens := strings.Fields(line)
	if len(tokens) != 3 {
		return "", "", "", http.ErrInvalidRequestLine
	}

	return tokens[0], tokens[1], tokens[2], nil
}
