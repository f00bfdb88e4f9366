package server

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"evalhub/internal/auth"
	"evalhub/internal/config"
	"evalhub/internal/db"
	"evalhub/internal/directory"
	"evalhub/internal/evaluation"
	"evalhub/internal/middleware"
	"evalhub/internal/record"
	"evalhub/internal/report"
)

type App struct {
	Config config.Config
	Pool   *pgxpool.Pool
	Router http.Handler
}

// New connects, migrates, seeds and wires the router. The caller owns the
// listen loop so tests can mount the router on httptest.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, migrationsDir()); err != nil {
			pool.Close()
			return nil, err
		}
	}

	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			pool.Close()
			return nil, err
		}
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	directoryStore := directory.NewStore(pool)
	evaluationStore := evaluation.NewStore(pool)
	recordStore := record.NewStore(pool)

	router.Route("/api", func(r chi.Router) {
		authHandler := auth.NewHandler(pool, cfg.JWTSecret, cfg.TokenTTL, cfg.AllowSelfSignup)
		r.Post("/auth/register", authHandler.HandleRegister)
		r.Post("/auth/login", authHandler.HandleLogin)
		r.Post("/auth/logout", authHandler.HandleLogout)

		directory.NewHandler(directoryStore).RegisterRoutes(r)
		evaluation.NewHandler(evaluationStore).RegisterRoutes(r)
		record.NewHandler(recordStore, evaluationStore, directoryStore).RegisterRoutes(r)
		report.NewHandler(recordStore, evaluationStore, directoryStore, cfg.ReportsDir).RegisterRoutes(r)
	})

	router.Mount("/", spaHandler{staticPath: cfg.FrontendDir, indexPath: "index.html"})

	return &App{Config: cfg, Pool: pool, Router: router}, nil
}

func (a *App) Close() {
	a.Pool.Close()
}

// migrationsDir resolves the migrations directory relative to the working
// directory, falling back upward so `go test ./...` finds it from package dirs.
func migrationsDir() string {
	dir := "migrations"
	for i := 0; i < 5; i++ {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
		dir = filepath.Join("..", dir)
	}
	return "migrations"
}

type spaHandler struct {
	staticPath string
	indexPath  string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(h.staticPath, r.URL.Path)
	_, err := os.Stat(path)
	if err == nil {
		http.FileServer(http.Dir(h.staticPath)).ServeHTTP(w, r)
		return
	}

	if os.IsNotExist(err) {
		http.ServeFile(w, r, filepath.Join(h.staticPath, h.indexPath))
		return
	}

	http.NotFound(w, r)
}
