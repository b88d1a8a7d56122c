// Package server is the HTTP trigger shell: it receives a request naming an
// X server address, runs a draw session against it and maps the outcome to a
// plain-text response.
package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/makeafish/xfish/internal/client"
	"github.com/makeafish/xfish/internal/config"
)

// Server handles draw-trigger requests.
type Server struct {
	cfg      *config.Config
	httpSrv  *http.Server
	listener net.Listener

	// draw runs one full draw invocation; replaced in tests.
	draw func(address, mode string) error
}

// New creates a trigger server for the given config.
func New(cfg *config.Config) *Server {
	s := &Server{cfg: cfg}
	s.draw = func(address, mode string) error {
		return client.Run(cfg, address, mode)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/", s.handleDraw)
	s.httpSrv = &http.Server{Handler: mux}

	return s
}

// Start begins listening on the configured address and serves in the
// background.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.cfg.Listen)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Listen, err)
	}
	s.listener = listener

	log.Printf("trigger server listening on %s", listener.Addr())

	go func() {
		if err := s.httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Printf("http serve error: %v", err)
		}
	}()

	return nil
}

// Stop shuts the server down, waiting briefly for in-flight requests.
func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpSrv.Shutdown(ctx); err != nil {
		log.Printf("http shutdown error: %v", err)
	}
}

// Addr returns the bound listen address, for callers that configured port 0.
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.cfg.Listen
	}
	return s.listener.Addr().String()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	fmt.Fprintln(w, "ok")
}

// handleDraw extracts the target address and data mode from the query string,
// runs the draw session and answers with plain text: 200 on a clean window
// close, 400 with an "Error: " prefix on any failure. A draw session lasts
// until the remote window manager closes the window, so the request blocks
// for as long as the drawing is on screen.
func (s *Server) handleDraw(w http.ResponseWriter, r *http.Request) {
	id := uuid.NewString()

	address := r.URL.Query().Get("address")
	if address == "" {
		s.fail(w, id, "need address in query params")
		return
	}

	// The client-side page reports whether it is 11:11; anything but "bad"
	// (including a missing param, probably someone testing) gets a fish.
	mode := r.URL.Query().Get("time")

	log.Printf("[%s] draw request for %s (mode=%q)", id, address, mode)
	if err := s.draw(address, mode); err != nil {
		s.fail(w, id, err.Error())
		return
	}

	log.Printf("[%s] window closed cleanly", id)
	fmt.Fprint(w, client.SuccessMessage)
}

func (s *Server) fail(w http.ResponseWriter, id, msg string) {
	log.Printf("[%s] draw failed: %s", id, msg)
	w.WriteHeader(http.StatusBadRequest)
	fmt.Fprintf(w, "Error: %s", msg)
}
