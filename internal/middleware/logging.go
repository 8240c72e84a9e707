package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// sessionIdentified is implemented by messages that address a session.
type sessionIdentified interface {
	GetSessionID() string
}

// sessionID returns the session a request or response refers to, if any.
func sessionID(msgs ...any) string {
	for _, msg := range msgs {
		if m, ok := msg.(sessionIdentified); ok {
			if id := m.GetSessionID(); id != "" {
				return id
			}
		}
	}
	return ""
}

// recordingConn remembers the first message a streaming handler receives,
// so the request's session ID is known once the stream ends.
type recordingConn struct {
	connect.StreamingHandlerConn
	first any
}

func (c *recordingConn) Receive(msg any) error {
	err := c.StreamingHandlerConn.Receive(msg)
	if err == nil && c.first == nil {
		c.first = msg
	}
	return err
}

type loggingInterceptor struct{}

// LoggingInterceptor returns a Connect interceptor that logs every RPC call,
// unary and streaming. It logs the procedure name, session ID, duration, and
// any error codes/messages.
func LoggingInterceptor() connect.Interceptor {
	return loggingInterceptor{}
}

func (loggingInterceptor) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		start := time.Now()
		resp, err := next(ctx, req)

		session := sessionID(req.Any())
		if err == nil {
			session = sessionID(req.Any(), resp.Any())
		}
		logRPC("RPC ok", req.Spec().Procedure, session, start, err)
		return resp, err
	}
}

func (loggingInterceptor) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return next
}

func (loggingInterceptor) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return func(ctx context.Context, conn connect.StreamingHandlerConn) error {
		start := time.Now()
		rc := &recordingConn{StreamingHandlerConn: conn}
		err := next(ctx, rc)

		logRPC("RPC stream ended", conn.Spec().Procedure, sessionID(rc.first), start, err)
		return err
	}
}

// logRPC writes one line per finished call. Connect errors are client-facing
// and logged at Warn; anything else is an internal failure.
func logRPC(okMsg, procedure, session string, start time.Time, err error) {
	duration := time.Since(start).Milliseconds()
	if err == nil {
		slog.Debug(okMsg,
			"procedure", procedure,
			"session_id", session,
			"duration_ms", duration,
		)
		return
	}

	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		slog.Warn("RPC error",
			"procedure", procedure,
			"code", connectErr.Code(),
			"error", connectErr.Message(),
			"session_id", session,
			"duration_ms", duration,
		)
		return
	}
	slog.Error("RPC error",
		"procedure", procedure,
		"error", err,
		"session_id", session,
		"duration_ms", duration,
	)
}
