package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bulletin-board-be/internal/bootstrap"
	"bulletin-board-be/internal/config"
	"bulletin-board-be/internal/model"
	"bulletin-board-be/internal/server"
	"bulletin-board-be/internal/tracer"
	"bulletin-board-be/pkg/database"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("bulletin board exited: %v", err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Tracer
	shutdownTracer, err := tracer.InitTracer(ctx, cfg.Tracing)
	if err != nil {
		log.Printf("[WARN] %v (tracing disabled)", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = shutdownTracer(flushCtx)
	}()

	// 3. Initialize Database
	gormDB, err := database.NewGormDB(ctx, database.GormConfig{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.Connection,
		LogLevel:        cfg.Database.LogLevel,
		ConnectAttempts: cfg.Database.ConnectAttempts,
	})
	if err != nil {
		return err
	}
	defer database.Close(gormDB)

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, gormDB, model.All()...); err != nil {
			return err
		}
	}

	// 4. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(gormDB, cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	// 5. Start Background Services
	if err := container.ActivityService.Consume(ctx); err != nil {
		return err
	}

	// 6. Run Server until a signal arrives
	srv := server.New(cfg, container)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Run)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
