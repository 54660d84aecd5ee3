package server_test

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nephophile06/Bookstore-Data-Generator/bookgen/config"
	"github.com/Nephophile06/Bookstore-Data-Generator/bookgen/internal/server"
)

func freePort(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	_, port, err := net.SplitHostPort(l.Addr().String())
	require.NoError(t, err)
	return port
}

func TestServer_RunStop(t *testing.T) {
	port := freePort(t)
	srv := server.NewServer(config.HTTPServer{Host: "127.0.0.1", Port: port, ReadTimeout: time.Second, WriteTimeout: time.Second},
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}))

	done := make(chan error, 1)
	go func() { done <- srv.Run() }()

	url := "http://" + net.JoinHostPort("127.0.0.1", port)
	var resp *http.Response
	require.Eventually(t, func() bool {
		var err error
		resp, err = http.Get(url) //nolint:noctx
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)
	resp.Body.Close()
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Stop(ctx))
	assert.NoError(t, <-done)
}
