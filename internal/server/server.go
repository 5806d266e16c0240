// Package server wires the patient data service together: storage,
// queue, services, handlers and the HTTP listener.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm/logger"

	"patient-data-service/internal/adapters"
	"patient-data-service/internal/api/handlers"
	"patient-data-service/internal/config"
	"patient-data-service/internal/domain/repositories"
	"patient-data-service/internal/services"
	"patient-data-service/internal/storage"
)

// maxRequestBody caps incoming request bodies, spreadsheet uploads
// included.
const maxRequestBody = 32 << 20

// readHeaderTimeout bounds slow-header attacks on the listener.
const readHeaderTimeout = 10 * time.Second

// Server is the assembled patient data service.
type Server struct {
	cfg    *config.Config
	store  *storage.Store
	queue  *adapters.InMemoryQueueAdapter
	screen services.ScreeningService
	router *chi.Mux
	http   *http.Server
}

// New builds a Server from configuration: opens storage, runs
// migrations, constructs repositories, services and routes.
func New(cfg *config.Config) (*Server, error) {
	if err := cfg.EnsureDirs(); err != nil {
		return nil, err
	}

	store, err := storage.NewStore(storage.Config{
		DSN:      cfg.DatabaseURL,
		MaxConns: cfg.MaxConns,
		LogLevel: logger.Silent,
	})
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	queue := adapters.NewInMemoryQueueAdapter(log.Logger)

	patientRepo := repositories.NewPatientRepository(store)
	screeningRepo := repositories.NewScreeningRepository(store)

	patientSvc := services.NewPatientService(patientRepo, log.Logger)
	screeningSvc := services.NewScreeningService(
		screeningRepo, queue, cfg.UploadDir(), cfg.ResultsDir(), log.Logger)

	s := &Server{
		cfg:    cfg,
		store:  store,
		queue:  queue,
		screen: screeningSvc,
		router: chi.NewRouter(),
	}
	s.setupRoutes(patientSvc, screeningSvc)

	s.http = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	return s, nil
}

func (s *Server) setupRoutes(patientSvc services.PatientService, screeningSvc services.ScreeningService) {
	s.router.Use(middleware.Recoverer)
	s.router.Use(RequestLogger(log.Logger))
	s.router.Use(MaxBodySize(maxRequestBody))

	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		handlers.NewPatientHandler(patientSvc, log.Logger).Routes(r)
		handlers.NewScreeningHandler(screeningSvc, log.Logger).Routes(r)
	})
}

// handleHealth reports service and storage health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	info := s.store.HealthCheck(ctx)
	status := http.StatusOK
	if info.Status == "unhealthy" {
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"status":%q}`, info.Status)
}

// Start begins consuming screening jobs and serving HTTP. It returns
// once the listener is running; ListenAndServe errors are reported on
// the returned channel.
func (s *Server) Start(ctx context.Context) (<-chan error, error) {
	if err := s.screen.Start(ctx); err != nil {
		return nil, err
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", s.cfg.HTTPPort).Msg("HTTP server listening")
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	return errCh, nil
}

// Shutdown stops the HTTP listener, the screening consumer, the queue
// and the storage layer, in that order.
func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("Shutting down")

	if err := s.http.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("HTTP shutdown error")
	}
	if err := s.screen.Stop(ctx); err != nil {
		log.Error().Err(err).Msg("Screening service stop error")
	}
	if err := s.queue.Close(); err != nil {
		log.Error().Err(err).Msg("Queue close error")
	}
	return s.store.Close()
}

// Router exposes the HTTP handler, used by tests.
func (s *Server) Router() http.Handler {
	return s.router
}
