package metrics

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const testMethod = "/Calculator/Calculate"

func TestUnaryServerInterceptorCountsByCode(t *testing.T) {
	m := New("test")
	interceptor := m.UnaryServerInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: testMethod}

	ok := func(context.Context, any) (any, error) { return "ok", nil }
	bad := func(context.Context, any) (any, error) {
		return nil, status.Error(codes.InvalidArgument, "bad operation")
	}

	for range 3 {
		resp, err := interceptor(context.Background(), nil, info, ok)
		require.NoError(t, err)
		assert.Equal(t, "ok", resp)
	}
	_, err := interceptor(context.Background(), nil, info, bad)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	assert.Equal(t, 3.0, testutil.ToFloat64(m.requests.WithLabelValues(testMethod, codes.OK.String())))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(testMethod, codes.InvalidArgument.String())))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.inFlight))
	assert.Equal(t, 1, testutil.CollectAndCount(m.latency))
}

func TestUnaryServerInterceptorTracksInFlight(t *testing.T) {
	m := New("test")
	interceptor := m.UnaryServerInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: testMethod}

	var seen float64
	_, err := interceptor(context.Background(), nil, info, func(context.Context, any) (any, error) {
		seen = testutil.ToFloat64(m.inFlight)
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1.0, seen)
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New("test")
	_, err := m.UnaryServerInterceptor()(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: testMethod},
		func(context.Context, any) (any, error) { return nil, nil })
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `test_grpc_requests_total{code="OK",method="/Calculator/Calculate"} 1`)
	assert.Contains(t, body, "go_goroutines")
}

func TestServeListenerStopsOnCancel(t *testing.T) {
	m := New("test")
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- m.ServeListener(ctx, listener)
	}()

	resp, err := http.Get("http://" + listener.Addr().String() + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "test_grpc_requests_in_flight"))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for metrics server shutdown")
	}
}
