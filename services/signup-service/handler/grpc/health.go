package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the health-check name of the signup store.
const ServiceName = "arksignup.SignupService"

// HealthReporter publishes store reachability over grpc.health.v1.
type HealthReporter struct {
	server *health.Server
}

// Register installs the health and reflection services on s.
func Register(s *grpc.Server) *HealthReporter {
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	reflection.Register(s)
	return &HealthReporter{server: hs}
}

// Report sets SERVING when err is nil, NOT_SERVING otherwise, for both the
// overall server and the signup service.
func (r *HealthReporter) Report(err error) {
	status := healthpb.HealthCheckResponse_SERVING
	if err != nil {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	r.server.SetServingStatus("", status)
	r.server.SetServingStatus(ServiceName, status)
}

// Watch re-runs ping every interval and reports the result until ctx ends.
// Each ping gets at most one interval to finish.
func (r *HealthReporter) Watch(ctx context.Context, interval time.Duration, ping func(context.Context) error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, interval)
			err := ping(pingCtx)
			cancel()
			if ctx.Err() != nil {
				return
			}
			r.Report(err)
		}
	}
}

// Shutdown flips every service to NOT_SERVING ahead of GracefulStop.
func (r *HealthReporter) Shutdown() {
	r.server.Shutdown()
}
