package server

import (
	"fmt"

	"patient-api/internal/auth"
	"patient-api/internal/config"
	"patient-api/internal/database"
	"patient-api/internal/logging"
	"patient-api/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// App owns the long-lived resources behind the HTTP surface.
type App struct {
	router *gin.Engine
	db     *gorm.DB
}

// New builds the auth service and the configured patient backend.
func New(cfg *config.Config, log zerolog.Logger) (*App, error) {
	users, err := auth.RegistryFromConfig(cfg.Auth)
	if err != nil {
		return nil, err
	}
	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, nil)
	authSvc := auth.NewService(users, tokens, log)

	a := &App{}
	var patients store.PatientStore
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		db, err := database.Open(cfg.PostgresURI, logging.Gorm(log))
		if err != nil {
			return nil, err
		}
		a.db = db
		patients = store.NewGorm(db, nil)
	case config.BackendMemory:
		patients = store.NewMemory(nil)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
	log.Info().Str("backend", cfg.StorageBackend).Msg("patient store ready")

	a.router = NewRouter(Deps{Config: cfg, Auth: authSvc, Patients: patients, Log: log})
	return a, nil
}

func (a *App) Router() *gin.Engine {
	return a.router
}

// Close releases the database connection, if any.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return database.Close(a.db)
}
