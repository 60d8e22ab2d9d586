package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"

	"github.com/camille-renard/nutrition-insights/internal/common"
)

// RequestIDInterceptor tags every unary call with a request ID and logs its
// outcome.
func RequestIDInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		requestID := uuid.NewString()
		ctx = common.WithRequestID(ctx, requestID)

		start := time.Now()
		resp, err := handler(ctx, req)
		if err != nil {
			logger.Warn("rpc failed", "method", info.FullMethod, "request_id", requestID, "took", time.Since(start), "error", err)
			return resp, err
		}
		logger.Info("rpc handled", "method", info.FullMethod, "request_id", requestID, "took", time.Since(start))
		return resp, nil
	}
}
