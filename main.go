package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/k1ngs/portfolio-api/internal/api"
	"github.com/k1ngs/portfolio-api/internal/auth"
	"github.com/k1ngs/portfolio-api/internal/config"
	"github.com/k1ngs/portfolio-api/internal/handler"
	"github.com/k1ngs/portfolio-api/internal/logger"
	"github.com/k1ngs/portfolio-api/internal/middleware"
	"github.com/k1ngs/portfolio-api/internal/storage"

	_ "github.com/lib/pq"
)

// Database connection timeout.
const dbPingTimeout = 5 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	log, err := createLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	db, err := connectDatabase(cfg, log)
	if err != nil {
		log.Error("Failed to connect to database", logger.Error(err))
		return 1
	}
	defer func() { _ = db.Close() }()

	return runServer(cfg, log, db)
}

// loadConfig loads and validates configuration.
func loadConfig() (*config.Config, error) {
	configPath := config.GetConfigPath("config.yml")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if validationErr := cfg.Validate(); validationErr != nil {
		return nil, fmt.Errorf("validate config: %w", validationErr)
	}
	return cfg, nil
}

// createLogger creates a logger instance from configuration.
func createLogger(cfg *config.Config) (logger.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Service.Debug,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log.With(logger.String("service", cfg.Service.Name)), nil
}

// connectDatabase opens and verifies a database connection.
func connectDatabase(cfg *config.Config, log logger.Logger) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbPingTimeout)
	defer cancel()

	if pingErr := db.PingContext(ctx); pingErr != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", pingErr)
	}

	log.Info("Database connected",
		logger.String("host", cfg.Database.Host),
		logger.Int("port", cfg.Database.Port),
		logger.String("database", cfg.Database.Database),
	)

	return db, nil
}

// runServer creates all dependencies and starts the HTTP server.
func runServer(cfg *config.Config, log logger.Logger, db *sql.DB) int {
	contentStore := storage.NewContentStore(db, log)
	projectStore := storage.NewProjectStore(db, log)
	skillStore := storage.NewSkillStore(db, log)
	technologyStore := storage.NewTechnologyStore(db, log)
	contactStore := storage.NewContactStore(db, log)

	tokens := auth.NewManager(cfg.Auth.SessionSecret, cfg.Auth.TokenTTL, cfg.Service.Name)

	done := make(chan struct{})
	defer close(done)
	limiter := middleware.NewLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window, done)

	lang := cfg.Service.DefaultLanguage
	handlers := api.Handlers{
		Health:     handler.NewHealthHandler(db, cfg.Service.Name, cfg.Service.Version),
		Auth:       handler.NewAuthHandler(tokens, cfg.Auth, log),
		Content:    handler.NewContentHandler(contentStore, lang, log),
		Project:    handler.NewProjectHandler(projectStore, lang, log),
		Skill:      handler.NewSkillHandler(skillStore, lang, log),
		Technology: handler.NewTechnologyHandler(technologyStore, log),
		Contact:    handler.NewContactHandler(contactStore, log),
		Terminal:   handler.NewTerminalHandler(contentStore, projectStore, skillStore, lang, log),
		Tokens:     tokens,
		Limiter:    limiter,
		BodyLimit:  cfg.Service.BodyLimit,
	}

	server := api.NewServer(cfg, log, func(router *gin.Engine) {
		api.RegisterRoutes(router, handlers)
	})

	if err := server.Run(context.Background()); err != nil {
		log.Error("Server failed", logger.Error(err))
		return 1
	}
	return 0
}
