// Package worker implements the worker server (spec §4.8): bind a TCP
// port, accept one connection, read a continuation-framed byte stream
// into a word counter, then send back a single framed response.
//
// Grounded on original_source/cpp/src/wc/worker.cpp's run_worker
// contract, with the continuation-reader and framed-response plumbing
// from internal/adapters/framing and the counting loop from
// internal/adapters/wordcount.
package worker

import (
	"net"
	"strconv"

	"github.com/pkg/errors"

	"github.com/baditaflorin/go_topk_wordcount/internal/adapters/framing"
	"github.com/baditaflorin/go_topk_wordcount/internal/adapters/wordcount"
	"github.com/baditaflorin/go_topk_wordcount/internal/core/domain"
	"github.com/baditaflorin/go_topk_wordcount/internal/ports"
)

// Server runs one worker iteration: bind, accept, count, respond.
type Server struct {
	BufSize int
	Format  FormatFunc
	Logger  ports.Logger
}

// NewServer creates a worker server with the given response formatter
// (FormatGeneral or FormatFilter(k)).
func NewServer(format FormatFunc, logger ports.Logger) *Server {
	return &Server{
		BufSize: domain.DefaultStreamBufferSize,
		Format:  format,
		Logger:  logger,
	}
}

// Run binds port, accepts exactly one connection, and runs one
// read-count-respond iteration before returning. Any transport error ends
// the iteration and is returned, per spec §4.8's "fatal condition that
// ends this iteration."
func (s *Server) Run(port int) error {
	ln, err := net.Listen("tcp", addr(port))
	if err != nil {
		return errors.Wrap(domain.ErrTransport, err.Error())
	}
	defer ln.Close()

	if s.Logger != nil {
		s.Logger.Info("worker: listening", "port", port)
	}

	conn, err := ln.Accept()
	if err != nil {
		return errors.Wrap(domain.ErrTransport, err.Error())
	}
	defer conn.Close()

	return s.handle(conn)
}

func (s *Server) handle(conn net.Conn) error {
	link := framing.NewConn(conn)
	counter := wordcount.NewCounter()
	feeder := wordcount.NewChunkFeeder(s.BufSize, counter)

	if err := link.ReadAllContinuation(feeder.Feed); err != nil {
		if s.Logger != nil {
			s.Logger.Error("worker: continuation read failed", "error", err)
		}
		return err
	}
	if err := feeder.Finish(); err != nil {
		return err
	}

	body := s.Format(counter.Map)

	if err := framing.SetLinger(conn, 30); err != nil && s.Logger != nil {
		s.Logger.Warn("worker: could not set linger", "error", err)
	}

	if err := link.WriteMessage(body); err != nil {
		if s.Logger != nil {
			s.Logger.Error("worker: response write failed", "error", err)
		}
		return err
	}

	if s.Logger != nil {
		s.Logger.Info("worker: iteration complete", "words", len(counter.Map))
	}
	return nil
}

func addr(port int) string {
	return net.JoinHostPort("", strconv.Itoa(port))
}
