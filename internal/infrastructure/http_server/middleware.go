package http_server

import (
	"context"
	"net"
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/rs/xid"
	"github.com/urfave/negroni/v3"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-Id"

type loggerKey struct{}

// LoggerFrom returns the request-scoped logger, or fallback when the
// request did not pass through the request-id middleware.
func LoggerFrom(ctx context.Context, fallback *zap.Logger) *zap.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok {
		return l
	}
	return fallback
}

func requestIDMiddleware(log *zap.Logger) negroni.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
		id := xid.New().String()
		w.Header().Set(RequestIDHeader, id)

		l := log.With(zap.String("request_id", id))
		next(w, r.WithContext(context.WithValue(r.Context(), loggerKey{}, l)))
	}
}

func requestLoggerMiddleware(log *zap.Logger) negroni.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
		m := httpsnoop.CaptureMetrics(next, w, r)

		remoteIP, _, _ := net.SplitHostPort(r.RemoteAddr)
		fields := []zap.Field{
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote_addr", remoteIP),
			zap.String("user_agent", r.UserAgent()),
			zap.Int("status", m.Code),
			zap.Int64("body_size", m.Written),
			zap.Duration("elapsed", m.Duration),
		}

		l := LoggerFrom(r.Context(), log)
		switch {
		case m.Code >= 500:
			l.Error(http.StatusText(m.Code), fields...)
		case m.Code >= 400:
			l.Warn(http.StatusText(m.Code), fields...)
		default:
			l.Info(http.StatusText(m.Code), fields...)
		}
	}
}

func recoveryMiddleware(log *zap.Logger) *negroni.Recovery {
	rec := negroni.NewRecovery()
	rec.PrintStack = false
	rec.Logger = zap.NewStdLog(log)
	return rec
}
