package grpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	gogrpc "google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	healthProbeTimeout = time.Second
	healthPollInterval = 200 * time.Millisecond
)

// WaitForHealth polls the standard health service until service reports
// SERVING or ctx ends. logf receives each non-serving probe when set.
func WaitForHealth(ctx context.Context, conn *gogrpc.ClientConn, service string, logf func(string, ...any)) error {
	if conn == nil {
		return errors.New("gRPC connection is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if logf == nil {
		logf = func(string, ...any) {}
	}

	client := healthpb.NewHealthClient(conn)
	ticker := time.NewTicker(healthPollInterval)
	defer ticker.Stop()
	for {
		status, err := probeHealth(ctx, client, service)
		if err == nil && status == healthpb.HealthCheckResponse_SERVING {
			return nil
		}
		if err != nil {
			logf("health probe %q: %v", service, err)
		} else {
			logf("health probe %q: %s", service, status)
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("wait for gRPC health: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}

func probeHealth(ctx context.Context, client healthpb.HealthClient, service string) (healthpb.HealthCheckResponse_ServingStatus, error) {
	probeCtx, cancel := context.WithTimeout(ctx, healthProbeTimeout)
	defer cancel()
	resp, err := client.Check(probeCtx, &healthpb.HealthCheckRequest{Service: service})
	if err != nil {
		return healthpb.HealthCheckResponse_UNKNOWN, err
	}
	return resp.GetStatus(), nil
}
