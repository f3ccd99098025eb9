package http

import "github.com/indigo-web/utils/uf"

// ValidPath reports whether the path is either the root or a sequence of non-empty
// segments of [A-Za-z0-9_-], each preceded by a single slash. Query and fragment
// are not part of the grammar, so paths containing them are rejected.
func ValidPath(path string) bool {
	if len(path) == 0 || path[0] != '/' {
		return false
	}

	segment := 0

	for i := 1; i < len(path); i++ {
		switch char := path[i]; {
		case char == '/':
			if segment == 0 {
				return false
			}

			segment = 0
		case isSegmentChar(char):
			segment++
		default:
			return false
		}
	}

	return len(path) == 1 || segment > 0
}

func isSegmentChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	default:
		return c == '-' || c == '_'
	}
}

// Escape makes client-controlled text safe to be written into logs, replacing
// non-printable characters by backslash sequences. Strings consisting of printable
// characters only are returned as is, without allocations.
func Escape(str string) string {
	var (
		buff   []byte
		offset int
	)

	for i := range len(str) {
		if !isASCIIPrintable(str[i]) {
			if buff == nil {
				buff = allocBuff(len(str))
			}

			buff = append(buff, str[offset:i]...)
			buff = append(buff, '\\', escapeByte(str[i]))
			offset = i + 1
		}
	}

	if len(buff) == 0 {
		return str
	}

	return uf.B2S(append(buff, str[offset:]...))
}

func isASCIIPrintable(c byte) bool {
	return c >= 0x20 && c <= 0x7e
}

// escapeByte returns 0 for printable characters.
func escapeByte(b byte) byte {
	switch b {
	case 0x0:
		return '0'
	case '\a':
		return 'a'
	case '\b':
		return 'b'
	case '\t':
		return 't'
	case '\n':
		return 'n'
	case '\v':
		return 'v'
	case '\f':
		return 'f'
	case '\r':
		return 'r'
	}

	if isASCIIPrintable(b) {
		return 0
	}

	return '?'
}

func allocBuff(strsize int) []byte {
	if strsize <= 25 {
		return make([]byte, 0, 40)
	}

	return make([]byte, 0, strsize+strsize/2)
}
