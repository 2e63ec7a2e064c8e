package grpc

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/RigelNana/arksignup/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil is success", nil, "success"},
		{"status error keeps its code", status.Error(codes.NotFound, "unknown service"), "NotFound"},
		{"wrapped status error", fmt.Errorf("check: %w", status.Error(codes.Unavailable, "down")), "Unavailable"},
		{"plain error is unknown", errors.New("boom"), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, codeOf(tt.err))
		})
	}
}

func TestUnaryServerInterceptor_RecordsCode(t *testing.T) {
	const service = "interceptor-test"
	intercept := UnaryServerInterceptor(service)
	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}

	tests := []struct {
		name    string
		handler grpc.UnaryHandler
		code    string
	}{
		{"ok", func(context.Context, any) (any, error) { return "resp", nil }, "success"},
		{"not found", func(context.Context, any) (any, error) {
			return nil, status.Error(codes.NotFound, "unknown service")
		}, "NotFound"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := metrics.RequestsTotal.WithLabelValues(service, info.FullMethod, tt.code)
			before := testutil.ToFloat64(counter)

			_, _ = intercept(context.Background(), nil, info, tt.handler)
			assert.Equal(t, before+1, testutil.ToFloat64(counter))
		})
	}
}
