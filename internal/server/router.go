// Package server assembles the gin engine and the http.Server around it.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"patient-api/internal/auth"
	"patient-api/internal/config"
	"patient-api/internal/handlers"
	"patient-api/internal/logging"
	"patient-api/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const serviceName = "Patient Management System API"

// Deps are the collaborators the routes are wired to.
type Deps struct {
	Config   *config.Config
	Auth     *auth.Service
	Patients store.PatientStore
	Log      zerolog.Logger
}

// NewRouter registers every route on a fresh engine.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(logging.Middleware(d.Log), recoverJSON(d.Log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:  d.Config.HTTP.AllowOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", logging.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Type", logging.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	r.GET("/health", healthHandler(d.Config))

	authHandler := handlers.NewAuthHandler(d.Auth, d.Log)
	r.POST("/token", authHandler.Login)

	patientHandler := handlers.NewPatientHandler(d.Patients, d.Log)
	patients := r.Group("/patients", auth.RequireBearer(d.Auth))
	patients.POST("/", patientHandler.Create)
	patients.GET("/", patientHandler.List)
	patients.GET("/:id", patientHandler.Get)
	patients.PUT("/:id", patientHandler.Update)

	return r
}

// recoverJSON turns a handler panic into the same 500 body the handlers use.
// It sits inside logging.Middleware so the failed request still gets its log line.
func recoverJSON(log zerolog.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		log.Error().
			Interface("panic", recovered).
			Str("path", c.Request.URL.Path).
			Msg("handler panicked")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
	})
}

func healthHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": serviceName,
			"version": cfg.Version,
		})
	}
}

// Run serves handler until ctx is cancelled, then drains in-flight requests.
func Run(ctx context.Context, cfg *config.Config, handler http.Handler, log zerolog.Logger) error {
	srv := &http.Server{
		Addr:         ":" + cfg.ListenPort,
		Handler:      handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
