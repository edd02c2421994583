package tinyhttp

import (
	"errors"
	"fmt"
	"net"
	"os"

	"github.com/rs/zerolog"
)

// Server binds a listener and hands accepted connections to workers.
// Register all routes before calling Start; the route table is
// read-only once traffic flows.
type Server struct {
	Addr   string
	Logger zerolog.Logger

	router *Router
	ln     net.Listener
}

func NewServer(addr string) *Server {
	return &Server{
		Addr:   addr,
		Logger: zerolog.New(os.Stderr).With().Timestamp().Logger(),
		router: NewRouter(),
	}
}

func (s *Server) Get(pattern string, h Handler)     { s.router.Get(pattern, h) }
func (s *Server) Post(pattern string, h Handler)    { s.router.Post(pattern, h) }
func (s *Server) Put(pattern string, h Handler)     { s.router.Put(pattern, h) }
func (s *Server) Delete(pattern string, h Handler)  { s.router.Delete(pattern, h) }
func (s *Server) Options(pattern string, h Handler) { s.router.Options(pattern, h) }
func (s *Server) Patch(pattern string, h Handler)   { s.router.Patch(pattern, h) }

// Start binds Addr and serves until Stop is called.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return fmt.Errorf("Failed to bind %s: %w", s.Addr, err)
	}
	return s.Serve(ln)
}

// Serve runs the accept loop on ln. Each accepted connection gets its
// own worker; the loop re-arms immediately, so accept throughput does
// not depend on handler latency.
func (s *Server) Serve(ln net.Listener) error {
	s.ln = ln
	s.Logger.Info().Str("addr", ln.Addr().String()).Msg("listening")
	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				s.Logger.Info().Msg("listener closed")
				return nil
			}
			s.Logger.Warn().Err(err).Msg("accept failed")
			continue
		}
		go NewWorker(s.router, s.Logger).Start(conn)
	}
}

// Stop closes the listener. A pending accept returns cleanly.
func (s *Server) Stop() error {
	if s.ln == nil {
		return nil
	}
	return s.ln.Close()
}
