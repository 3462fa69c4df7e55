package main

import (
	"log"

	"edutech/internal/config"
	"edutech/internal/database"
	"edutech/internal/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	if cfg.Storage.Driver != "sqlite" {
		l.Fatal("Migrations only apply to sqlite storage", zap.String("driver", cfg.Storage.Driver))
	}

	db, err := database.NewSQLXSQLiteDB(cfg.Storage.Path)
	if err != nil {
		l.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err))
	}
	l.Info("Migrations applied", zap.String("path", cfg.Storage.Path))
}
