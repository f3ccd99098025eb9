package http

import (
	"strings"

	"github.com/vaibhavm18/http-tcp/http/headers"
	"github.com/vaibhavm18/http-tcp/http/method"
)

// Request represents a fully parsed and validated HTTP request. It can be obtained only
// via Builder.Build, therefore no partially initialized instance is ever visible, and
// nothing changes it afterward.
type Request struct {
	method  method.Method
	path    string
	version string
	headers headers.Headers
	body    []byte
	hasBody bool
}

// Method is always one of method.List.
func (r *Request) Method() method.Method {
	return r.method
}

// Path is guaranteed to satisfy ValidPath.
func (r *Request) Path() string {
	return r.path
}

// Version is the protocol token as received. It's only guaranteed to start with HTTP/.
func (r *Request) Version() string {
	return r.version
}

// Header returns the value of the header field. The lookup is case-insensitive.
func (r *Request) Header(key string) (string, bool) {
	return r.headers.Get(key)
}

// Headers returns a copy of the headers, so it is safe to modify it.
func (r *Request) Headers() headers.Headers {
	return r.headers.Clone()
}

// Body returns the message body and whether it was presented at all. Requests
// without body framing, as well as requests with Content-Length: 0, have no body.
// A chunked body made of the last-chunk only is presented, but empty.
func (r *Request) Body() ([]byte, bool) {
	return r.body, r.hasBody
}

func (r *Request) String() string {
	return r.method.String() + " " + Escape(r.path) + " " + Escape(r.version)
}

// Builder accumulates raw request parts. It must be used for a single request only,
// as Build consumes it.
type Builder struct {
	method, path, version *string
	headers               headers.Headers
	body                  []byte
	hasBody               bool
}

func NewBuilder() *Builder {
	return new(Builder)
}

func (b *Builder) Method(m string) *Builder {
	b.method = &m
	return b
}

func (b *Builder) Path(p string) *Builder {
	b.path = &p
	return b
}

func (b *Builder) Version(v string) *Builder {
	b.version = &v
	return b
}

func (b *Builder) Headers(h headers.Headers) *Builder {
	b.headers = h
	return b
}

// Body marks the body as presented, even if it's empty.
func (b *Builder) Body(body []byte) *Builder {
	if body == nil {
		body = []byte{}
	}

	b.body, b.hasBody = body, true
	return b
}

// Build validates accumulated parts in order method, path, version and returns the
// first failure. The builder is reset afterward, regardless of the outcome.
func (b *Builder) Build() (*Request, error) {
	defer b.reset()

	if b.method == nil {
		return nil, ErrMissingMethod
	}

	m := method.Parse(*b.method)
	if m == method.Unknown {
		return nil, NewError(InvalidMethod, *b.method)
	}

	if b.path == nil {
		return nil, ErrMissingPath
	}

	if !ValidPath(*b.path) {
		return nil, NewError(InvalidPath, *b.path)
	}

	if b.version == nil {
		return nil, ErrMissingVersion
	}

	if !strings.HasPrefix(*b.version, "HTTP/") {
		return nil, NewError(InvalidVersion, *b.version)
	}

	hdrs := b.headers
	if hdrs.Len() == 0 {
		hdrs = headers.New()
	}

	return &Request{
		method:  m,
		path:    *b.path,
		version: *b.version,
		headers: hdrs,
		body:    b.body,
		hasBody: b.hasBody,
	}, nil
}

func (b *Builder) reset() {
	*b = Builder{}
}
