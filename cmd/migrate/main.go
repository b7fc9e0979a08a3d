package main

import (
	"context"
	"log"

	"bulletin-board-be/internal/config"
	"bulletin-board-be/internal/model"
	"bulletin-board-be/pkg/database"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	db, err := database.NewGormDB(ctx, database.GormConfig{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.Connection,
		LogLevel:        cfg.Database.LogLevel,
		ConnectAttempts: cfg.Database.ConnectAttempts,
	})
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}
	defer database.Close(db)

	log.Printf("Running AutoMigrate for %d tables on %s...", len(model.All()), cfg.Database.Driver)

	if err := database.Migrate(ctx, db, model.All()...); err != nil {
		log.Fatalf("Error: %v", err)
	}

	log.Println("Success: Database migration completed.")
}
