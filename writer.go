package tinyhttp

import (
	"fmt"
	"io"
	"unicode"
)

var statusText = map[int]string{
	200: "OK",
	201: "Created",
	204: "No Content",
	301: "Moved Permanently",
	303: "See Other",
	307: "Temporary Redirect",
	400: "Bad Request",
	401: "Unauthorized",
	403: "Forbidden",
	404: "Not Found",
	405: "Method Not Allowed",
	500: "Internal Server Error",
	503: "Service Unavailable",
}

func capitalizeHeader(h string) string {
	ret := make([]rune, len(h))
	cap := true
	for i, c := range h {
		r := rune(c)
		if cap && unicode.IsLetter(r) {
			ret[i] = unicode.ToUpper(r)
			cap = false
		} else {
			ret[i] = r
		}
		if c == '-' {
			cap = true
		}
	}
	return string(ret)
}

// WriteResponse serializes res to w: status line, headers, then the
// body writer exactly once. Connections are closed after each
// response, so no Content-Length is emitted.
func WriteResponse(w io.Writer, res *Response) error {
	if _, err := fmt.Fprintf(w, "HTTP/1.1 %d %s\r\n", res.Status, statusText[res.Status]); err != nil {
		return err
	}
	if res.ContentType != "" {
		fmt.Fprintf(w, "Content-Type: %s\r\n", res.ContentType)
	}
	for k, v := range res.Header {
		fmt.Fprintf(w, "%s: %s\r\n", capitalizeHeader(k), v)
	}
	fmt.Fprintf(w, "Connection: close\r\n")
	if _, err := fmt.Fprintf(w, "\r\n"); err != nil {
		return err
	}
	if res.Body == nil {
		return nil
	}
	return res.Body(w)
}
