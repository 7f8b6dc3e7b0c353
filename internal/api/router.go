package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vietts/insicuri/internal/api/handlers/http/admin"
	"github.com/vietts/insicuri/internal/api/handlers/http/public"
	"github.com/vietts/insicuri/internal/api/handlers/http/system"
	"github.com/vietts/insicuri/internal/auth"
	"github.com/vietts/insicuri/internal/config"
	"github.com/vietts/insicuri/internal/middleware"
	"github.com/vietts/insicuri/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service, photos public.PhotoStorage) *Server {
	publicHandler := public.NewHandler(logger, svc.Nearby, svc.Submissions, svc.Spots, photos)
	adminHandler := admin.NewHandler(logger, svc.Admin, svc.Stats)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(cfg, publicHandler, adminHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(cfg *config.Config, publicHandler *public.Handler, adminHandler *admin.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Route("/api/v1", func(api chi.Router) {
		// PUBLIC + AUTHENTICATED
		api.Group(func(pr chi.Router) {
			pr.Use(middleware.Limit(cfg.Limits.Public, logger))
			pr.Use(auth.Middleware(cfg.Auth.JWTSecret, logger))

			pr.Route("/spots", func(sr chi.Router) {
				sr.Get("/", publicHandler.SpotList)
				sr.Post("/", publicHandler.SpotCreate)
				sr.Post("/nearby", publicHandler.SpotNearby)

				sr.Route("/{id}", func(rr chi.Router) {
					rr.Get("/", publicHandler.SpotGet)
					rr.Post("/reports", publicHandler.SpotAddReport)
				})
			})

			pr.Post("/photos", publicHandler.PhotoUpload)
		})

		// ADMIN
		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.APIKeyMiddleware(cfg.Auth.APIKey))
			ar.Use(middleware.Limit(cfg.Limits.Admin, logger))

			ar.Get("/stats", adminHandler.AdminStats)

			ar.Route("/spots", func(ir chi.Router) {
				ir.Get("/", adminHandler.AdminSpotList)

				ir.Route("/{id}", func(rr chi.Router) {
					rr.Get("/", adminHandler.AdminSpotGet)
					rr.Put("/status", adminHandler.AdminSpotUpdateStatus)
					rr.Delete("/", adminHandler.AdminSpotRemove)
				})
			})
		})

		// SYSTEM
		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
