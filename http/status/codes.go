package status

import "strconv"

type Code uint16

// Only the codes the server is able to answer with.
const (
	OK         Code = 200 // RFC 9110, 15.3.1
	BadRequest Code = 400 // RFC 9110, 15.5.1
)

// KnownCodes lists every code Text knows about.
var KnownCodes = []Code{OK, BadRequest}

// Text returns a text for the HTTP status code. It returns the empty
// string if the code is unknown.
func Text(code Code) string {
	switch code {
	case OK:
		return "OK"
	case BadRequest:
		return "Bad Request"
	default:
		return ""
	}
}

// StringCode returns the decimal representation of the code.
func StringCode(code Code) string {
	switch code {
	case OK:
		return "200"
	case BadRequest:
		return "400"
	default:
		return strconv.Itoa(int(code))
	}
}
