package headers

import (
	"iter"
	"strings"
)

// Headers is an associative structure of header fields. Keys are lower-cased on the
// way in, so every lookup is case-insensitive. Setting an existing key overwrites its
// value: the last occurrence of a field wins, contrary to RFC 9110 list semantics.
type Headers struct {
	m map[string]string
}

func New() Headers {
	return NewPrealloc(0)
}

// NewPrealloc returns an instance of Headers with pre-allocated underlying storage.
func NewPrealloc(n int) Headers {
	return Headers{m: make(map[string]string, n)}
}

// NewFromMap returns a new instance with already inserted values from given map. Keys
// colliding after lower-casing are resolved in unspecified order.
func NewFromMap(m map[string]string) Headers {
	h := NewPrealloc(len(m))
	for key, value := range m {
		h.Set(key, value)
	}

	return h
}

// Set inserts the pair, overwriting any previous value of the key.
func (h Headers) Set(key, value string) Headers {
	h.m[strings.ToLower(key)] = value
	return h
}

// Get returns a value and a bool, indicating whether the value was found.
func (h Headers) Get(key string) (value string, found bool) {
	if h.m == nil {
		return "", false
	}

	value, found = h.m[strings.ToLower(key)]
	return value, found
}

// Value returns the value corresponding to the key. Otherwise, empty string is returned
func (h Headers) Value(key string) string {
	return h.ValueOr(key, "")
}

// ValueOr returns either the value corresponding to the key or custom value, defined
// via the second parameter.
func (h Headers) ValueOr(key, or string) string {
	value, found := h.Get(key)
	if !found {
		return or
	}

	return value
}

// Has indicates, whether there's an entry of the key.
func (h Headers) Has(key string) bool {
	_, found := h.Get(key)
	return found
}

// Len returns a number of stored pairs.
func (h Headers) Len() int {
	return len(h.m)
}

func (h Headers) Empty() bool {
	return h.Len() == 0
}

// Iter returns an iterator over the pairs. Keys are yielded lower-cased, in no particular
// order.
func (h Headers) Iter() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for key, value := range h.m {
			if !yield(key, value) {
				break
			}
		}
	}
}

// Clone creates a deep copy, which may be used later or stored somewhere safely.
func (h Headers) Clone() Headers {
	clone := NewPrealloc(len(h.m))
	for key, value := range h.m {
		clone.m[key] = value
	}

	return clone
}
