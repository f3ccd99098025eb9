package http

import (
	"errors"
	"fmt"
)

// Kind classifies request parsing failures.
type Kind uint8

const (
	MissingMethod Kind = iota + 1
	MissingPath
	MissingVersion
	InvalidMethod
	InvalidPath
	InvalidVersion
	InvalidRequestLine
	InvalidHeaderFormat
	InvalidContentLength
	InvalidChunkSize
	BodyRead
	LineRead
	// StreamEnded means the peer closed the stream before sending a single byte of
	// the line. At the request line it's an idle disconnect rather than a malformed
	// request.
	StreamEnded
	LineTooLong
	BodyTooLarge
)

func (k Kind) String() string {
	switch k {
	case MissingMethod:
		return "MissingMethod"
	case MissingPath:
		return "MissingPath"
	case MissingVersion:
		return "MissingVersion"
	case InvalidMethod:
		return "InvalidMethod"
	case InvalidPath:
		return "InvalidPath"
	case InvalidVersion:
		return "InvalidVersion"
	case InvalidRequestLine:
		return "InvalidRequestLine"
	case InvalidHeaderFormat:
		return "InvalidHeaderFormat"
	case InvalidContentLength:
		return "InvalidContentLength"
	case InvalidChunkSize:
		return "InvalidChunkSize"
	case BodyRead:
		return "BodyRead"
	case LineRead:
		return "LineRead"
	case StreamEnded:
		return "StreamEnded"
	case LineTooLong:
		return "LineTooLong"
	case BodyTooLarge:
		return "BodyTooLarge"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseError is the only error type produced while reading a request.
type ParseError struct {
	Kind Kind
	// Detail is the offending text as received, if the kind carries any.
	Detail string
	// Err is the underlying I/O error, if any.
	Err error
}

func NewError(kind Kind, detail string) error {
	return &ParseError{Kind: kind, Detail: detail}
}

// WrapError attaches the kind to an I/O error. Errors that are already a *ParseError
// are returned unchanged, so the first classification wins.
func WrapError(kind Kind, err error) error {
	var perr *ParseError
	if errors.As(err, &perr) {
		return err
	}

	return &ParseError{Kind: kind, Err: err}
}

func (p *ParseError) Error() string {
	switch p.Kind {
	case MissingMethod:
		return "missing HTTP method"
	case MissingPath:
		return "missing HTTP path"
	case MissingVersion:
		return "missing HTTP version"
	case InvalidMethod:
		return "unsupported HTTP method: " + p.Detail
	case InvalidPath:
		return "unsupported HTTP path: " + p.Detail
	case InvalidVersion:
		return "unsupported HTTP version: " + p.Detail
	case InvalidRequestLine:
		return "invalid request line format"
	case InvalidHeaderFormat:
		return "invalid header format: " + p.Detail
	case InvalidContentLength:
		return "invalid Content-Length header"
	case InvalidChunkSize:
		return "invalid chunk size: " + p.Detail
	case BodyRead:
		return p.withCause("failed to read body")
	case LineRead:
		return p.withCause("failed to read line")
	case StreamEnded:
		return "stream ended with no data"
	case LineTooLong:
		return "line is too long"
	case BodyTooLarge:
		return "body is too large"
	default:
		return p.withCause("request parsing failed: " + p.Kind.String())
	}
}

func (p *ParseError) withCause(msg string) string {
	if p.Err == nil {
		return msg
	}

	return msg + ": " + p.Err.Error()
}

func (p *ParseError) Unwrap() error {
	return p.Err
}

// Is matches errors by kind, so any of the sentinels below matches every error of its
// kind regardless of the detail or the cause. A target carrying a detail additionally
// requires the details to be equal.
func (p *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok || t.Kind != p.Kind {
		return false
	}

	return t.Detail == "" || t.Detail == p.Detail
}

var (
	ErrMissingMethod        = NewError(MissingMethod, "")
	ErrMissingPath          = NewError(MissingPath, "")
	ErrMissingVersion       = NewError(MissingVersion, "")
	ErrInvalidMethod        = NewError(InvalidMethod, "")
	ErrInvalidPath          = NewError(InvalidPath, "")
	ErrInvalidVersion       = NewError(InvalidVersion, "")
	ErrInvalidRequestLine   = NewError(InvalidRequestLine, "")
	ErrInvalidHeaderFormat  = NewError(InvalidHeaderFormat, "")
	ErrInvalidContentLength = NewError(InvalidContentLength, "")
	ErrInvalidChunkSize     = NewError(InvalidChunkSize, "")
	ErrBodyRead             = NewError(BodyRead, "")
	ErrLineRead             = NewError(LineRead, "")
	ErrStreamEnded          = NewError(StreamEnded, "")
	ErrLineTooLong          = NewError(LineTooLong, "")
	ErrBodyTooLarge         = NewError(BodyTooLarge, "")
)

// KindOf returns the kind of the error, or 0 if it isn't a *ParseError.
func KindOf(err error) Kind {
	var perr *ParseError
	if errors.As(err, &perr) {
		return perr.Kind
	}

	return 0
}
