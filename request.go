package tinyhttp

import (
	"io"
	"net/url"
	"strconv"
	"strings"
)

// Header holds header fields keyed by lowercased name. Values keep
// their order of appearance.
type Header map[string][]string

func (h Header) Add(key, value string) {
	key = strings.ToLower(key)
	h[key] = append(h[key], value)
}

// Get returns the first value stored under key, or "".
func (h Header) Get(key string) string {
	vs := h[strings.ToLower(key)]
	if len(vs) == 0 {
		return ""
	}
	return vs[0]
}

// Request is one decoded inbound request. The dispatcher owns it for
// a single handler invocation and does not retain it afterward.
type Request struct {
	Method        string
	URL           *url.URL
	Version       string
	ContentLength int64
	Header        Header
	Body          io.Reader
}

// contentLength parses the declared body length. Missing or malformed
// values count as 0.
func contentLength(h Header) int64 {
	cls := h.Get("content-length")
	if cls == "" {
		return 0
	}
	cl, err := strconv.ParseInt(cls, 10, 64)
	if err != nil || cl < 0 {
		return 0
	}
	return cl
}
