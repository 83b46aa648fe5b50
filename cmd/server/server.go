package main

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// httpServer wraps http.Server with an explicit lifecycle so shutdown
// can drain in-flight requests before background work is awaited.
type httpServer struct {
	srv *http.Server
}

func newHTTPServer(handler http.Handler, port string) *httpServer {
	return &httpServer{
		srv: &http.Server{
			Addr:              ":" + port,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Start blocks until the server stops. A shutdown-initiated stop is
// not an error.
func (s *httpServer) Start() error {
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight
// requests up to the context deadline.
func (s *httpServer) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
