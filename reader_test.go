package tinyhttp

import (
	"io"
	"strings"
	"testing"
)

func ExpectEqual(t *testing.T, expect, actual string) {
	t.Helper()
	if expect != actual {
		t.Errorf("Got %s, want %s", actual, expect)
	}
}

func readRequestSync(r io.Reader) (*Request, error) {
	reqReader := NewRequestReader(r)
	reqReader.Start()
	select {
	case req := <-reqReader.RequestReceived():
		return req, nil
	case err := <-reqReader.ErrorOccurred():
		return nil, err
	}
}

func TestRequestReader(t *testing.T) {
	r := strings.NewReader("GET /search?q=go HTTP/1.1\r\nHost: www.google.com\r\n\r\n")
	req, err := readRequestSync(r)
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	ExpectEqual(t, "GET", req.Method)
	ExpectEqual(t, "/search", req.URL.Path)
	ExpectEqual(t, "q=go", req.URL.RawQuery)
	ExpectEqual(t, "HTTP/1.1", req.Version)
	ExpectEqual(t, "www.google.com", req.Header.Get("Host"))
}

func TestRequestReaderBody(t *testing.T) {
	r := strings.NewReader("POST /echo HTTP/1.1\r\nContent-Length: 5\r\n\r\nhello")
	req, err := readRequestSync(r)
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	if req.ContentLength != 5 {
		t.Errorf("Got content length %d, want 5", req.ContentLength)
	}
	body, err := io.ReadAll(req.Body)
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	ExpectEqual(t, "hello", string(body))
}

func TestRequestReaderContentLengthDefaults(t *testing.T) {
	for _, raw := range []string{
		"GET / HTTP/1.1\r\nHost: localhost\r\n\r\n",
		"GET / HTTP/1.1\r\nContent-Length: abc\r\n\r\n",
		"GET / HTTP/1.1\r\nContent-Length: -3\r\n\r\n",
	} {
		req, err := readRequestSync(strings.NewReader(raw))
		if err != nil {
			t.Fatalf("error: %v", err)
		}
		if req.ContentLength != 0 {
			t.Errorf("Got content length %d, want 0", req.ContentLength)
		}
	}
}

func TestRequestReaderMultiValueHeader(t *testing.T) {
	r := strings.NewReader("GET / HTTP/1.1\r\nAccept: text/html\r\nAccept: text/plain\r\n\r\n")
	req, err := readRequestSync(r)
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	vs := req.Header["accept"]
	if len(vs) != 2 {
		t.Fatalf("Got %d values, want 2", len(vs))
	}
	ExpectEqual(t, "text/html", vs[0])
	ExpectEqual(t, "text/plain", vs[1])
	ExpectEqual(t, "text/html", req.Header.Get("Accept"))
}

func TestRequestReaderBadRequestLine(t *testing.T) {
	_, err := readRequestSync(strings.NewReader("GARBAGE\r\n\r\n"))
	if err == nil {
		t.Errorf("Expected an error for a bad request line")
	}
}
