package httpapi

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/hamed0406/envprobe/internal/report"
)

// ReportBuilder produces a fresh report per call.
type ReportBuilder interface {
	Build(ctx context.Context, s report.Settings) *report.Report
}

// Server serves the report on every GET. It keeps no state between
// requests and does not log them.
type Server struct {
	Logger   *zap.Logger
	Builder  ReportBuilder
	Settings report.Settings
}

func NewServer(l *zap.Logger, b ReportBuilder, s report.Settings) *Server {
	return &Server{Logger: l, Builder: b, Settings: s}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	r.Get("/", s.handleReport)
	r.Get("/*", s.handleReport)

	return r
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	// a started report runs to completion even if the client goes away
	ctx := context.WithoutCancel(r.Context())
	rep := s.Builder.Build(ctx, s.Settings)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, rep.HTML())
}

// ListenAndServe serves on an IPv4 listener until ctx is done, then shuts
// down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp4", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          zap.NewStdLog(s.Logger),
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	s.Logger.Info("api_listen", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.Logger.Info("api_stopped")
	return nil
}
