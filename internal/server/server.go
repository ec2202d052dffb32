package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/username/vacation-planner/internal/planner"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// Server exposes the planner over a JSON HTTP API
type Server struct {
	planner         *planner.Manager
	addr            string
	shutdownTimeout time.Duration
	logger          *zap.Logger
	router          chi.Router
}

// New creates a server and registers its routes
func New(p *planner.Manager, addr string, shutdownTimeout time.Duration, logger *zap.Logger) *Server {
	s := &Server{
		planner:         p,
		addr:            addr,
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
	}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(s.logger))
	r.Use(chimw.Recoverer)
	r.Use(bodyLimit(maxBodyBytes))

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/session/login", s.handleLogin)
		r.Post("/session/logout", s.handleLogout)
		r.Get("/session", s.handleSession)

		r.Get("/employees", s.handleEmployees)

		r.Route("/vacations", func(r chi.Router) {
			r.Get("/", s.handleListVacations)
			r.Post("/", s.handleAddVacation)
			r.Get("/{id}", s.handleGetVacation)
			r.Put("/{id}", s.handleEditVacation)
			r.Delete("/{id}", s.handleDeleteVacation)
		})

		r.Route("/ranges", func(r chi.Router) {
			r.Post("/submit", s.handleSubmitRange)
			r.Post("/delete", s.handleDeleteRange)
			r.Post("/summary", s.handleRangeSummary)
			r.Post("/select", s.handleRangeSelect)
		})

		r.Post("/days/{date}/click", s.handleDayClick)
		r.Get("/new-request", s.handleNewRequest)

		r.Get("/calendar/{year}/{month}", s.handleCalendar)
		r.Get("/matrix/{year}/{month}", s.handleMatrix)
		r.Get("/balance", s.handleBalance)
		r.Get("/holidays/{year}", s.handleHolidays)

		r.Route("/favorites", func(r chi.Router) {
			r.Get("/", s.handleFavorites)
			r.Post("/view/toggle", s.handleToggleFavoritesView)
			r.Post("/{id}/toggle", s.handleToggleFavorite)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.fail(w, r, http.StatusNotFound, "route_not_found", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		s.fail(w, r, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})

	return r
}

// Run serves until ctx is cancelled, then drains in-flight requests for
// at most the shutdown timeout
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", zap.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down HTTP server", zap.Duration("timeout", s.shutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	s.logger.Info("HTTP server stopped")
	return nil
}
