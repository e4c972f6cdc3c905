// Package web hosts the browser-facing landing page service.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/developerdao/schoolofcode/internal/platform/timeouts"
	"github.com/developerdao/schoolofcode/internal/services/web/app"
	"github.com/developerdao/schoolofcode/internal/services/web/modules"
	apperrors "github.com/developerdao/schoolofcode/internal/services/web/platform/errors"
	"github.com/developerdao/schoolofcode/internal/services/web/platform/httpx"
	"github.com/developerdao/schoolofcode/internal/services/web/platform/observability"
	"github.com/developerdao/schoolofcode/internal/services/web/platform/pagerender"
	"github.com/developerdao/schoolofcode/internal/services/web/routepath"
	webstatic "github.com/developerdao/schoolofcode/internal/services/web/static"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr string
	Logger   *zap.Logger
	// Hero overrides the landing page Hero component.
	Hero templ.Component
	// TracerProvider overrides the global provider for request spans.
	TracerProvider trace.TracerProvider
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *zap.Logger
}

// NewHandler builds the root handler: static assets, the favicon, and the
// module registry behind the shared middleware chain.
func NewHandler(cfg Config) (http.Handler, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	h, err := app.Compose(app.ComposeInput{
		Modules: modules.DefaultModules(modules.Dependencies{
			Hero:   cfg.Hero,
			Logger: logger,
		}),
	})
	if err != nil {
		return nil, err
	}
	rootMux := http.NewServeMux()
	rootMux.Handle(http.MethodGet+" "+routepath.StaticPrefix, webstatic.Handler(routepath.StaticPrefix, assetNotFound(logger)))
	rootMux.HandleFunc(http.MethodGet+" "+routepath.Favicon, func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, webstatic.FS, webstatic.FaviconFile)
	})
	rootMux.Handle(routepath.Root, h)
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		observability.RequestLogger(logger, observability.WithTracerProvider(cfg.TracerProvider)),
	), nil
}

func assetNotFound(logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		err := pagerender.WriteError(w, r, apperrors.E(apperrors.KindNotFound, "no asset at "+r.URL.Path))
		if err != nil {
			logger.Error("render page",
				zap.String("path", r.URL.Path),
				zap.String("request_id", r.Header.Get(httpx.RequestIDHeader)),
				zap.Error(err),
			)
		}
	})
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		httpAddr: httpAddr,
		logger:   logger,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			ErrorLog:          zap.NewStdLog(logger),
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info("web server listening", zap.String("addr", s.httpAddr))
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		s.logger.Info("web server stopped", zap.String("addr", s.httpAddr))
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
