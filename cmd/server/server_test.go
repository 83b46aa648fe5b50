package main

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPServer_StartAndShutdown(t *testing.T) {
	srv := newHTTPServer(http.NewServeMux(), "0")

	done := make(chan error, 1)
	go func() { done <- srv.Start() }()

	// Give the listener a moment to bind before shutting down.
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	select {
	case err := <-done:
		assert.NoError(t, err, "a shutdown-initiated stop is not an error")
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop after shutdown")
	}
}

func TestHTTPServer_StartFailsOnBadPort(t *testing.T) {
	srv := newHTTPServer(http.NewServeMux(), "not-a-port")

	err := srv.Start()
	assert.Error(t, err)
}
