package main

import (
	"context"
	"fmt"
	"os"

	"edutech/internal/config"
	"edutech/internal/database"
	"edutech/internal/logger"
	"edutech/internal/repository"
	"edutech/internal/seed"

	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	if cfg.Storage.Driver != "sqlite" {
		log.Fatal("Standalone seeding only applies to sqlite storage; the memory driver seeds on boot",
			zap.String("driver", cfg.Storage.Driver))
	}

	db, err := database.NewSQLXSQLiteDB(cfg.Storage.Path)
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	courseRepo := repository.NewSQLXCourseRepository(db)
	achievementRepo := repository.NewSQLXAchievementRepository(db)
	if err := seed.Run(ctx, courseRepo, achievementRepo); err != nil {
		log.Fatal("Failed to seed sample data", zap.Error(err))
	}
	log.Info("Seeding complete")
}
