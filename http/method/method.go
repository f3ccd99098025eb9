package method

import "github.com/indigo-web/utils/strcomp"

type Method uint8

const (
	Unknown Method = iota
	GET
	POST
	DELETE
	PUT

	// Count is the last one enum, so contains the greatest integer value of all the
	// methods. So real number of methods is lower by 1
	Count = iota - 1
)

// List contains all the supported HTTP methods, sorted by their integer value.
var List = []Method{GET, POST, DELETE, PUT}

func (m Method) String() string {
	switch m {
	case GET:
		return "GET"
	case POST:
		return "POST"
	case DELETE:
		return "DELETE"
	case PUT:
		return "PUT"
	default:
		return "Unknown"
	}
}

// Parse matches the token case-insensitively. Unknown is returned for anything else.
func Parse(str string) Method {
	switch len(str) {
	case 3:
		if strcomp.EqualFold(str, "GET") {
			return GET
		} else if strcomp.EqualFold(str, "PUT") {
			return PUT
		}
	case 4:
		if strcomp.EqualFold(str, "POST") {
			return POST
		}
	case 6:
		if strcomp.EqualFold(str, "DELETE") {
			return DELETE
		}
	}

	return Unknown
}
