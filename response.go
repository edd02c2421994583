package tinyhttp

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
)

// BodyWriter streams the response body into the connection. It is
// invoked exactly once, by WriteResponse.
type BodyWriter func(w io.Writer) error

// Response is what a handler returns: status, content type, extra
// headers and an optional deferred body. Immutable after construction
// and consumed once by serialization. Header keys are lowercase; the
// writer canonicalizes them on the wire.
type Response struct {
	Status      int
	ContentType string
	Header      map[string]string
	Body        BodyWriter
}

func NewResponse() *Response {
	return &Response{Header: make(map[string]string)}
}

// Text builds a 200 text/plain response. An empty body sets no body
// writer at all.
func Text(body string) *Response {
	return TextAs(body, "text/plain", nil)
}

// TextAs is Text with an explicit content type and output encoding.
// A nil encoding writes the body bytes as UTF-8.
func TextAs(body, contentType string, enc encoding.Encoding) *Response {
	res := NewResponse()
	res.Status = 200
	res.ContentType = contentType
	if body != "" {
		res.Body = textBody(body, enc)
	}
	return res
}

// HTML is Text with a text/html default.
func HTML(body string) *Response {
	return TextAs(body, "text/html", nil)
}

func HTMLAs(body, contentType string, enc encoding.Encoding) *Response {
	return TextAs(body, contentType, enc)
}

func textBody(body string, enc encoding.Encoding) BodyWriter {
	return func(w io.Writer) error {
		out := body
		if enc != nil {
			encoded, err := enc.NewEncoder().String(body)
			if err != nil {
				return err
			}
			out = encoded
		}
		_, err := io.WriteString(w, out)
		return err
	}
}

// Redirect points the client at location with 303 See Other.
func Redirect(location string) *Response {
	return redirect(location, 303)
}

// RedirectPermanent is Redirect with 301.
func RedirectPermanent(location string) *Response {
	return redirect(location, 301)
}

// RedirectTemporary is Redirect with 307.
func RedirectTemporary(location string) *Response {
	return redirect(location, 307)
}

func redirect(location string, status int) *Response {
	res := NewResponse()
	res.Status = status
	res.ContentType = "text/html"
	res.Header["location"] = location
	return res
}

// NotFound is the terminal catch-all: 404, text/html, no body.
func NotFound() *Response {
	return NotFoundAs("text/html")
}

func NotFoundAs(contentType string) *Response {
	res := NewResponse()
	res.Status = 404
	res.ContentType = contentType
	return res
}

func badRequest() *Response {
	res := NewResponse()
	res.Status = 400
	res.ContentType = "text/html"
	return res
}

const rfc1123GMT = "Mon, 02 Jan 2006 15:04:05 GMT"

// ServeFile streams the file name from below baseDir. A path that
// escapes baseDir, has no extension, or names a missing file or a
// directory produces the 404 variant instead.
func ServeFile(baseDir, name string) *Response {
	return ServeFileAs(baseDir, name, "")
}

// ServeFileAs is ServeFile with an explicit content type instead of
// the MIME registry lookup.
func ServeFileAs(baseDir, name, contentType string) *Response {
	path, err := resolveFile(baseDir, name)
	if err != nil {
		return NotFound()
	}
	fi, err := os.Stat(path)
	if err != nil || fi.IsDir() {
		return NotFound()
	}
	if contentType == "" {
		contentType = ContentTypeByExtension(filepath.Ext(path))
	}
	res := NewResponse()
	res.Status = 200
	res.ContentType = contentType
	res.Header["etag"] = `"` + strconv.FormatInt(fi.ModTime().UnixNano(), 16) + `"`
	res.Header["last-modified"] = fi.ModTime().UTC().Format(rfc1123GMT)
	res.Body = fileBody(path)
	return res
}

// resolveFile anchors name below baseDir and rejects anything that
// would resolve outside it.
func resolveFile(baseDir, name string) (string, error) {
	if filepath.Ext(name) == "" {
		return "", fmt.Errorf("No file extension: %s", name)
	}
	base, err := filepath.Abs(baseDir)
	if err != nil {
		return "", err
	}
	path := filepath.Join(base, filepath.FromSlash(name))
	if path != base && !strings.HasPrefix(path, base+string(filepath.Separator)) {
		return "", fmt.Errorf("Outside base directory: %s", name)
	}
	return path, nil
}

func fileBody(path string) BodyWriter {
	return func(w io.Writer) error {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = io.Copy(w, f)
		return err
	}
}
