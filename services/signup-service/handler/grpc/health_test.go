package grpc

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

func check(t *testing.T, r *HealthReporter, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := r.server.Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestHealthReporter(t *testing.T) {
	s := grpc.NewServer()
	defer s.Stop()
	r := Register(s)

	r.Report(nil)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, r, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, r, ServiceName))

	r.Report(errors.New("ping failed"))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, r, ServiceName))

	r.Report(nil)
	r.Shutdown()
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, r, ""))
}

func TestHealthReporter_WatchFollowsPing(t *testing.T) {
	s := grpc.NewServer()
	defer s.Stop()
	r := Register(s)
	r.Report(errors.New("store unreachable at startup"))

	var reachable atomic.Bool
	ping := func(context.Context) error {
		if reachable.Load() {
			return nil
		}
		return errors.New("connection refused")
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Watch(ctx, 10*time.Millisecond, ping)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, r, ServiceName))

	reachable.Store(true)
	assert.Eventually(t, func() bool {
		return check(t, r, ServiceName) == healthpb.HealthCheckResponse_SERVING
	}, time.Second, 10*time.Millisecond)

	reachable.Store(false)
	assert.Eventually(t, func() bool {
		return check(t, r, "") == healthpb.HealthCheckResponse_NOT_SERVING
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}
