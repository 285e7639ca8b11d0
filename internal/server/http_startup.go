package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Shrinivas-go/ats-backend/internal/ai"
	"github.com/Shrinivas-go/ats-backend/internal/config"
	"github.com/Shrinivas-go/ats-backend/internal/observability"
)

// Start starts the HTTP server with all configured components
func (s *Server) Start() error {
	om, err := s.initializeObservability()
	if err != nil {
		return err
	}
	defer s.shutdownObservability(om)

	if err := s.initializeRules(); err != nil {
		return err
	}

	if err := s.initializeElaborator(om); err != nil {
		return err
	}

	httpServer, err := s.setupHTTPServer(om)
	if err != nil {
		return err
	}

	if err := s.configureTLS(httpServer); err != nil {
		return err
	}

	s.displayServerInfo()

	return s.startWithGracefulShutdown(httpServer)
}

// initializeObservability sets up observability components
func (s *Server) initializeObservability() (*observability.ObservabilityManager, error) {
	obsConfig := observability.GetObservabilityConfig(s.AppConfig, s.Version)

	om, err := observability.NewObservabilityManager(obsConfig, s.AppConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize observability: %w", err)
	}

	return om, nil
}

// shutdownObservability handles observability cleanup
func (s *Server) shutdownObservability(om *observability.ObservabilityManager) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := om.Shutdown(ctx); err != nil {
		s.Logger.LogError(err, "Failed to shutdown observability")
	}
}

// initializeRules loads the rule table override and starts the hot reload
// watcher when configured
func (s *Server) initializeRules() error {
	rulesFile := s.AppConfig.Analysis.RulesFile
	if rulesFile == "" {
		return nil
	}

	tables, err := config.LoadRuleTables(rulesFile)
	if err != nil {
		return fmt.Errorf("failed to load rule tables: %w", err)
	}
	s.rules.Store(tables)

	if !s.AppConfig.Analysis.HotReload {
		return nil
	}

	watcher, err := NewRulesWatcher(rulesFile, s.AppConfig.Analysis.ReloadDebounce, s.reloadRules, s.Logger)
	if err != nil {
		return fmt.Errorf("failed to create rules watcher: %w", err)
	}
	if err := watcher.Start(); err != nil {
		return fmt.Errorf("failed to start rules watcher: %w", err)
	}
	s.rulesWatcher = watcher

	return nil
}

// reloadRules re-reads the rules file and swaps the active tables. A file
// that fails to parse keeps the previous tables in place.
func (s *Server) reloadRules() {
	tables, err := config.LoadRuleTables(s.AppConfig.Analysis.RulesFile)
	if err != nil {
		s.Logger.LogError(err, "Failed to reload rule tables, keeping previous tables",
			"file", s.AppConfig.Analysis.RulesFile)
		return
	}

	s.rules.Store(tables)
	s.Logger.Info("Rule tables reloaded",
		"file", s.AppConfig.Analysis.RulesFile,
		"skills", len(tables.Skills),
		"aliases", len(tables.Aliases))
}

// initializeElaborator creates the optional answer elaboration service
func (s *Server) initializeElaborator(om *observability.ObservabilityManager) error {
	if !s.AppConfig.AI.Enabled {
		return nil
	}

	service, err := ai.NewService(&s.AppConfig.AI, s.Logger)
	if err != nil {
		return fmt.Errorf("failed to create elaboration service: %w", err)
	}
	s.elaborator = service.WithMetrics(om.GetMetrics())

	return nil
}

// setupHTTPServer creates and configures the HTTP server
func (s *Server) setupHTTPServer(om *observability.ObservabilityManager) (*http.Server, error) {
	mux := s.setupRoutes(om)
	handler := om.HTTPMiddleware()(mux)
	addr := fmt.Sprintf("%s:%s", s.Host, s.Port)

	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  s.ReadTimeout,
		WriteTimeout: s.WriteTimeout,
		IdleTimeout:  s.IdleTimeout,
	}, nil
}

// startWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func (s *Server) startWithGracefulShutdown(server *http.Server) error {
	// Channel to receive OS signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Channel to receive server errors
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		s.Logger.Info("Starting HTTP server",
			"address", server.Addr,
			"tls_enabled", server.TLSConfig != nil)

		var err error
		if server.TLSConfig != nil {
			// When using TLS with certificate content, we need to use ListenAndServeTLS with empty strings
			// because the certificates are already loaded in the TLS config
			if s.TLSConfig.CertContent != "" || s.TLSConfig.KeyContent != "" {
				err = server.ListenAndServeTLS("", "")
			} else {
				err = server.ListenAndServeTLS(s.TLSConfig.CertFile, s.TLSConfig.KeyFile)
			}
		} else {
			err = server.ListenAndServe()
		}

		if err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	// Wait for either a signal or server error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server failed to start: %w", err)
	case sig := <-quit:
		s.Logger.Info("Received shutdown signal, starting graceful shutdown",
			"signal", sig.String())

		return s.performGracefulShutdown(server)
	}
}

// performGracefulShutdown handles the graceful shutdown process
func (s *Server) performGracefulShutdown(server *http.Server) error {
	// Create a context with timeout for graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Stop rules watcher if running
	if err := s.stopRulesWatcher(); err != nil {
		s.Logger.LogError(err, "Failed to stop rules watcher")
	}

	// Clean up rate limiter if enabled
	s.cleanupRateLimiter()

	// Attempt graceful shutdown of HTTP server
	s.Logger.Info("Shutting down HTTP server...")
	if err := server.Shutdown(shutdownCtx); err != nil {
		s.Logger.LogError(err, "Failed to shutdown server gracefully, forcing close")
		return server.Close()
	}

	s.Logger.Info("Server shutdown completed successfully")
	return nil
}

// stopRulesWatcher stops the rules watcher if it's running
func (s *Server) stopRulesWatcher() error {
	if s.rulesWatcher != nil {
		return s.rulesWatcher.Stop()
	}
	return nil
}

// cleanupRateLimiter cleans up the rate limiter resources
func (s *Server) cleanupRateLimiter() {
	if s.RateLimiter != nil {
		s.RateLimiter.Close()
		s.Logger.Info("Rate limiter cleaned up")
	}
}
