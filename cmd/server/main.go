package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gatorhire/internal/app"
	"gatorhire/internal/config"
	"gatorhire/internal/database/migration"

	"github.com/gofiber/fiber/v3"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	logger := log.New(os.Stdout, "", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	container, err := app.NewContainer(ctx, cfg, logger)
	cancel()
	if err != nil {
		logger.Fatalf("startup: %v", err)
	}
	defer container.Close()

	migCtx, migCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	err = migration.Runner{Dir: os.Getenv("MIGRATIONS_DIR")}.Run(migCtx, container.DB.SQLDB())
	migCancel()
	if err != nil {
		logger.Fatalf("migrations: %v", err)
	}

	go container.Hub.Run()

	fiberApp := app.NewFiberApp(container)

	errCh := make(chan error, 1)
	go func() {
		errCh <- fiberApp.Listen(":"+cfg.App.HTTPPort, fiber.ListenConfig{DisableStartupMessage: true})
	}()
	logger.Printf("listening on :%s", cfg.App.HTTPPort)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatalf("server: %v", err)
		}
	case sig := <-stop:
		logger.Printf("shutting down: %s", sig)
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := fiberApp.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Printf("shutdown: %v", err)
		}
	}
}
