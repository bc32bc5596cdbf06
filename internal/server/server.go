package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/ozanc/mentorhub/internal/bootstrap"
	"github.com/ozanc/mentorhub/internal/config"
)

const (
	readTimeout     = 10 * time.Second
	writeTimeout    = 10 * time.Second
	idleTimeout     = 120 * time.Second
	shutdownTimeout = 10 * time.Second
)

// Server wires configuration, database pool and the gin router into one
// runnable HTTP server with graceful shutdown.
type Server struct {
	config *config.Config
	router *gin.Engine
	dbPool *pgxpool.Pool
	logger zerolog.Logger
	http   *http.Server
}

// NewServer builds a fully wired server via the bootstrap package.
func NewServer() (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	dbPool, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}

	deps, err := bootstrap.BuildDependencies(cfg, dbPool, lgr)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("build dependencies: %w", err)
	}

	return &Server{
		config: cfg,
		router: bootstrap.SetupRouter(cfg, deps, lgr),
		dbPool: dbPool,
		logger: lgr,
	}, nil
}

// Run serves HTTP until the listener fails or the process receives
// SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Run() error {
	s.http = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Msg("HTTP server listening")
		serveErr <- s.http.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
	case sig := <-stop:
		s.logger.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	return s.Shutdown(context.Background())
}

// Shutdown stops the HTTP server within a bounded window and closes the
// database pool. Safe to call when Run never started the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	var httpErr error
	if s.http != nil {
		if httpErr = s.http.Shutdown(ctx); httpErr != nil {
			s.logger.Error().Err(httpErr).Msg("HTTP server shutdown error")
		} else {
			s.logger.Info().Msg("HTTP server stopped")
		}
	}

	if s.dbPool != nil {
		s.dbPool.Close()
		s.logger.Info().Msg("Database pool closed")
	}

	if httpErr != nil {
		return errors.New("shutdown completed with errors")
	}
	return nil
}
