package tinyhttp

import (
	"fmt"
	"io"
	"net"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestServerServeAndStop(t *testing.T) {
	s := NewServer("")
	s.Logger = zerolog.Nop()
	s.Get("/ping", func(p *Params) *Response {
		return Text("pong")
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	served := make(chan error, 1)
	go func() {
		served <- s.Serve(ln)
	}()

	conn, err := net.Dial("tcp", ln.Addr().String())
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	fmt.Fprintf(conn, "GET /ping HTTP/1.1\r\nHost: localhost\r\n\r\n")
	b, err := io.ReadAll(conn)
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	conn.Close()
	got := string(b)
	if !strings.HasPrefix(got, "HTTP/1.1 200 OK\r\n") || !strings.HasSuffix(got, "pong") {
		t.Errorf("Got %q", got)
	}

	// stopping while an accept is pending is benign
	if err := s.Stop(); err != nil {
		t.Errorf("Stop: %v", err)
	}
	if err := <-served; err != nil {
		t.Errorf("Serve returned %v after Stop", err)
	}
}

func TestServerConcurrentRequests(t *testing.T) {
	s := NewServer("")
	s.Logger = zerolog.Nop()
	s.Get("/n/{i}", func(p *Params) *Response {
		return Text(p.Get("i").String())
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("error: %v", err)
	}
	go s.Serve(ln)
	defer s.Stop()

	results := make(chan error, 10)
	for i := 0; i < 10; i++ {
		i := i
		go func() {
			conn, err := net.Dial("tcp", ln.Addr().String())
			if err != nil {
				results <- err
				return
			}
			defer conn.Close()
			fmt.Fprintf(conn, "GET /n/%d HTTP/1.1\r\nHost: localhost\r\n\r\n", i)
			b, err := io.ReadAll(conn)
			if err != nil {
				results <- err
				return
			}
			if !strings.HasSuffix(string(b), fmt.Sprintf("%d", i)) {
				results <- fmt.Errorf("response %d: got %q", i, string(b))
				return
			}
			results <- nil
		}()
	}
	for i := 0; i < 10; i++ {
		if err := <-results; err != nil {
			t.Errorf("%v", err)
		}
	}
}
