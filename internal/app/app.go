package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/budgetmaster/budgetmaster/internal/config"
	"github.com/budgetmaster/budgetmaster/internal/database"
	"github.com/budgetmaster/budgetmaster/internal/rest"
	"github.com/budgetmaster/budgetmaster/internal/storage"
	"github.com/budgetmaster/budgetmaster/pkg/sheet"
)

// Application wires configuration, storage, router, and server lifecycle.
type Application struct {
	cfg    config.Application
	router *mux.Router
	srv    *http.Server
}

// NewApplication constructs the full HTTP application, ready to Run().
func NewApplication() (*Application, error) {
	cfg, err := config.Load("./config/application.yaml")
	if err != nil {
		return nil, err
	}

	repo, err := buildRepository(cfg.Storage)
	if err != nil {
		return nil, err
	}

	r := mux.NewRouter()

	// Build dependencies (services, handlers...)
	deps := BuildDependencies(repo, cfg)

	// Middleware chain
	SetupMiddleware(r, deps, cfg)

	// Routes
	RegisterRoutes(r, deps, cfg)

	// Frontend
	if cfg.Frontend.Enabled {
		frontend := rest.NewFrontendHandler("frontend", "index.html")
		r.PathPrefix("/").Handler(frontend)
	}

	srv := &http.Server{
		Handler:      r,
		Addr:         cfg.Host,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Application{cfg: cfg, router: r, srv: srv}, nil
}

// buildRepository selects the persistence backend from configuration.
func buildRepository(cfg config.Storage) (sheet.Repository, error) {
	switch cfg.Type {
	case "file", "":
		store, err := storage.NewFileStore(cfg.Dir)
		if err != nil {
			return nil, err
		}
		log.Infof("Using file storage in %s", cfg.Dir)
		return store, nil
	case "sqlite":
		db, err := database.Open(cfg)
		if err != nil {
			return nil, err
		}
		// db stays open for the process lifetime.
		if err := database.Migrate(cfg); err != nil {
			return nil, err
		}
		log.Infof("Using sqlite storage at %s", cfg.Path)
		return storage.NewSQLiteStore(db), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %q", cfg.Type)
	}
}

// Run starts the HTTP server and blocks.
func (a *Application) Run() error {
	log.Infof("Starting server on %s", a.srv.Addr)
	return a.srv.ListenAndServe()
}
