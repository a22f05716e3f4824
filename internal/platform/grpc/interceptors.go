package grpc

import (
	"context"
	"errors"
	"log"

	apperrors "github.com/louisbranch/npc-arena/internal/platform/errors"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// LocaleMetadataKey carries the caller's preferred locale for error messages.
const LocaleMetadataKey = "x-arena-locale"

// DomainErrorUnaryInterceptor converts domain errors returned by handlers
// into gRPC statuses with error details. Errors that already carry a status
// pass through untouched; anything else becomes Internal.
func DomainErrorUnaryInterceptor() gogrpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *gogrpc.UnaryServerInfo, handler gogrpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}
		return nil, toStatus(ctx, info.FullMethod, err)
	}
}

// DomainErrorUnaryClientInterceptor turns arena statuses back into domain errors.
func DomainErrorUnaryClientInterceptor() gogrpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *gogrpc.ClientConn, invoker gogrpc.UnaryInvoker, opts ...gogrpc.CallOption) error {
		if err := invoker(ctx, method, req, reply, cc, opts...); err != nil {
			return apperrors.FromGRPCStatus(err)
		}
		return nil
	}
}

func toStatus(ctx context.Context, method string, err error) error {
	var domainErr *apperrors.Error
	if errors.As(err, &domainErr) {
		return domainErr.ToGRPCStatus(localeFromContext(ctx))
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	log.Printf("grpc %s: %v", method, err)
	return apperrors.Wrap(apperrors.CodeUnknown, "internal error", err).ToGRPCStatus(localeFromContext(ctx))
}

func localeFromContext(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(LocaleMetadataKey); len(values) > 0 {
		return values[0]
	}
	return ""
}
