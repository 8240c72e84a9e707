package middleware

import (
	"context"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/tipcalc/internal/metrics"
)

type metricsInterceptor struct{}

// MetricsInterceptor records the latency of every RPC, unary and streaming,
// by procedure and result code. A stream is timed from open to close.
func MetricsInterceptor() connect.Interceptor {
	return metricsInterceptor{}
}

func (metricsInterceptor) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		start := time.Now()
		resp, err := next(ctx, req)
		observeRPC(req.Spec().Procedure, start, err)
		return resp, err
	}
}

func (metricsInterceptor) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return next
}

func (metricsInterceptor) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return func(ctx context.Context, conn connect.StreamingHandlerConn) error {
		start := time.Now()
		err := next(ctx, conn)
		observeRPC(conn.Spec().Procedure, start, err)
		return err
	}
}

func observeRPC(procedure string, start time.Time, err error) {
	metrics.RPCDuration.WithLabelValues(procedure, resultCode(err)).Observe(time.Since(start).Seconds())
}

// resultCode is "ok" for success, otherwise the Connect code name.
func resultCode(err error) string {
	if err == nil {
		return "ok"
	}
	return connect.CodeOf(err).String()
}
