package tinyhttp

import (
	"bufio"
	"io"
	"net"

	"github.com/rs/zerolog"
)

// Worker owns one accepted connection: decode the request, dispatch
// it, serialize the response, close. Nothing that goes wrong in
// between escapes to the accept loop.
type Worker struct {
	conn   net.Conn
	reader *bufio.Reader
	router *Router
	log    zerolog.Logger
	req    *Request
	res    *Response
	done   chan struct{}
}

type stateFunc func(*Worker) stateFunc

func NewWorker(router *Router, log zerolog.Logger) *Worker {
	return &Worker{
		router: router,
		log:    log,
		done:   make(chan struct{}),
	}
}

func (w *Worker) Start(conn net.Conn) {
	defer func() {
		if v := recover(); v != nil {
			// whatever was already written is all the client gets
			w.log.Error().Interface("panic", v).Msg("request aborted")
			w.closeConn()
		}
	}()

	w.conn = conn
	w.reader = bufio.NewReader(conn)

	for state := waitForRequest; state != nil; {
		state = state(w)
	}
}

func (w *Worker) Cancel() {
	w.done <- struct{}{}
}

func (w *Worker) requestReceived(req *Request) stateFunc {
	w.req = req
	w.log.Info().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Str("remote", w.conn.RemoteAddr().String()).
		Msg("request")
	w.res = w.router.Dispatch(req)
	return sendResponse
}

// state funcs

func waitForRequest(w *Worker) stateFunc {
	r := NewRequestReader(w.reader)
	r.Start()
	for {
		select {
		case req := <-r.RequestReceived():
			return w.requestReceived(req)
		case err := <-r.ErrorOccurred():
			if err == io.EOF {
				return finishWorker
			}
			w.log.Warn().Err(err).Msg("bad request")
			w.res = badRequest()
			return sendResponse
		case <-w.done:
			return finishWorker
		}
	}
}

func sendResponse(w *Worker) stateFunc {
	if err := WriteResponse(w.conn, w.res); err != nil {
		w.log.Warn().Err(err).Msg("write failed")
	}
	return finishWorker
}

func finishWorker(w *Worker) stateFunc {
	w.closeConn()
	close(w.done)
	return nil
}

func (w *Worker) closeConn() {
	if w.conn != nil {
		w.conn.Close()
	}
}
