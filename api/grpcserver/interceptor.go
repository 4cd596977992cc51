package grpcserver

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const requestIDHeader = "x-request-id"

// UnaryLogger tags each call with a request id, taken from the caller's
// metadata when present, echoes it in the response header and logs the
// outcome.
func UnaryLogger(log *zap.Logger) grpc.UnaryServerInterceptor {
	log = log.Named("grpc")
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		id := ""
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if v := md.Get(requestIDHeader); len(v) > 0 {
				id = v[0]
			}
		}
		if id == "" {
			id = uuid.NewString()
		}
		_ = grpc.SetHeader(ctx, metadata.Pairs(requestIDHeader, id))

		start := time.Now()
		resp, err := handler(ctx, req)
		code := status.Code(err)

		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("request_id", id),
			zap.Duration("elapsed", time.Since(start)),
			zap.Stringer("code", code),
		}
		if err != nil {
			fields = append(fields, zap.Error(err))
			log.Warn("request failed", fields...)
		} else {
			log.Debug("request", fields...)
		}
		return resp, err
	}
}
