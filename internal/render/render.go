package render

import (
	"strconv"

	"github.com/vaibhavm18/http-tcp/http/status"
)

var (
	protocol      = []byte("HTTP/1.1 ")
	contentType   = []byte("Content-Type: ")
	contentLength = []byte("Content-Length: ")
	connClose     = []byte("Connection: close\r\n")
	crlf          = []byte("\r\n")
)

// Response is one of the canned responses the server answers with. The connection
// is always closed after it.
type Response struct {
	Code        status.Code
	ContentType string
	Body        string
}

// OK is sent for every successfully parsed request.
func OK(contentType, body string) Response {
	return Response{Code: status.OK, ContentType: contentType, Body: body}
}

// BadRequest is sent for every malformed request, regardless of the reason.
func BadRequest() Response {
	return Response{Code: status.BadRequest, ContentType: "text/plain", Body: status.Text(status.BadRequest)}
}

// Render appends the serialized response to buff and returns it.
func Render(buff []byte, resp Response) []byte {
	buff = append(buff, protocol...)
	buff = append(buff, status.StringCode(resp.Code)...)
	buff = append(buff, ' ')
	buff = append(buff, status.Text(resp.Code)...)
	buff = append(buff, crlf...)

	if len(resp.ContentType) > 0 {
		buff = append(buff, contentType...)
		buff = append(buff, resp.ContentType...)
		buff = append(buff, crlf...)
	}

	buff = append(buff, contentLength...)
	buff = strconv.AppendInt(buff, int64(len(resp.Body)), 10)
	buff = append(buff, crlf...)
	buff = append(buff, connClose...)
	buff = append(buff, crlf...)

	return append(buff, resp.Body...)
}
