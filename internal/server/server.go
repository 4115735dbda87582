// Package server exposes XML to JSON conversion over HTTP.
package server

import (
	"context"
	stderrors "errors"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/jacoelho/xml2json"
	"github.com/jacoelho/xml2json/internal/config"
)

const (
	// ConvertPath accepts a multipart upload in the "file" field.
	ConvertPath = "/api/xmlToJson"
	// HealthPath reports liveness.
	HealthPath = "/healthz"

	uploadField     = "file"
	multipartMemory = 8 << 20
)

// Server serves the conversion API.
type Server struct {
	log  *zap.Logger
	opts xml2json.Options
	cfg  config.Server
}

// New validates cfg and returns a server. A nil logger discards logs.
func New(cfg config.Config, log *zap.Logger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "server config")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		log:  log,
		opts: cfg.ConvertOptions(),
		cfg:  cfg.Server,
	}, nil
}

// Handler returns the routed handler with CORS, access logging and panic
// recovery applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+ConvertPath, s.handleConvert)
	mux.HandleFunc("GET "+HealthPath, s.handleHealth)

	var h http.Handler = mux
	h = s.recoverPanics(h)
	h = cors(s.cfg.AllowedOrigins, h)
	h = s.accessLog(h)
	return h
}

// Serve accepts connections on ln until ctx is done, then shuts down,
// waiting up to the configured shutdown timeout for requests in flight.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		ErrorLog:     zap.NewStdLog(s.log.Named("http")),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.log.Info("listening", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "serve")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout())
	defer cancel()
	s.log.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	if err := <-errCh; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "serve")
	}
	return nil
}

// ListenAndServe listens on the configured address and calls Serve.
func (s *Server) ListenAndServe(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.cfg.Listen)
	if err != nil {
		return errors.Wrapf(err, "listen %s", s.cfg.Listen)
	}
	return s.Serve(ctx, ln)
}

func (s *Server) shutdownTimeout() time.Duration {
	if s.cfg.ShutdownTimeout > 0 {
		return s.cfg.ShutdownTimeout
	}
	return 10 * time.Second
}
