package http_server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/davarch/coolify-badge/internal/application"
	"github.com/gorilla/mux"
	"github.com/urfave/negroni/v3"
	"go.uber.org/zap"
)

const (
	aliveMessage = "Badge service is alive!"

	contentTypeSVG = "image/svg+xml"
	noCache        = "no-cache, no-store, must-revalidate"
)

// NewHandler wires the routes and middleware chain.
func NewHandler(log *zap.Logger, badges *application.BadgeUseCase) http.Handler {
	router := mux.NewRouter()
	router.HandleFunc("/", rootHandler).Methods(http.MethodGet, http.MethodHead)
	router.HandleFunc("/health", healthHandler).Methods(http.MethodGet, http.MethodHead)
	router.Handle("/badge/{application_id}", &badgeHandler{log: log, badges: badges}).Methods(http.MethodGet, http.MethodHead)

	n := negroni.New(
		recoveryMiddleware(log),
		requestIDMiddleware(log),
		requestLoggerMiddleware(log),
	)
	n.UseHandler(router)

	return n
}

func rootHandler(w http.ResponseWriter, _ *http.Request) {
	writeText(w, aliveMessage)
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	writeText(w, "OK")
}

func writeText(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(msg))
}

type badgeHandler struct {
	log    *zap.Logger
	badges *application.BadgeUseCase
}

func (h *badgeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	appID := mux.Vars(r)["application_id"]

	w.Header().Set("Content-Type", contentTypeSVG)
	w.Header().Set("Cache-Control", noCache)

	status, err := h.badges.WriteBadge(r.Context(), w, appID)
	if err != nil {
		LoggerFrom(r.Context(), h.log).Error("write badge", zap.String("app", appID), zap.Error(err))
		return
	}

	LoggerFrom(r.Context(), h.log).Debug("badge", zap.String("app", appID), zap.String("status", status.String()))
}

type Server struct {
	log *zap.Logger
	srv *http.Server
}

func NewServer(log *zap.Logger, addr string, h http.Handler) *Server {
	return &Server{
		log: log,
		srv: &http.Server{
			Addr:              addr,
			Handler:           h,
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", s.srv.Addr))
		errCh <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.log.Info("shutting down")
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
