package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bagdasarian/team-tasks/internal/handler"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

type Server struct {
	server *http.Server
	logger zerolog.Logger
}

type Options struct {
	Addr        string
	FrontendURL string
}

func NewServer(h *handler.Handler, opts Options, logger zerolog.Logger) *Server {
	mux := http.NewServeMux()
	SetupRoutes(mux, h)

	return &Server{
		logger: logger,
		server: &http.Server{
			Addr:              opts.Addr,
			Handler:           NewHTTPHandler(mux, h, opts.FrontendURL, logger),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// NewHTTPHandler оборачивает маршруты в CORS, логирование запросов и восстановление после паники
func NewHTTPHandler(mux http.Handler, h *handler.Handler, frontendURL string, logger zerolog.Logger) http.Handler {
	var next http.Handler = h.Recover(mux)

	next = hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	})(next)
	next = hlog.RequestIDHandler("request_id", "X-Request-Id")(next)
	next = hlog.NewHandler(logger)(next)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	return c.Handler(next)
}

func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.server.Addr).Msg("server starting")
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.logger.Info().Msg("server stopped")
	return nil
}
