package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/srimandev/taskmate/internal/api"
	"github.com/srimandev/taskmate/internal/cli"
	"github.com/srimandev/taskmate/internal/db"
)

func main() {
	secretKey, err := resolveSecretKey()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}
	dbPath := getEnv("DB_PATH", filepath.Join("data", "taskmate.db"))
	port := getEnv("PORT", "5000")
	pushGatewayURL := getEnv("PUSH_GATEWAY_URL", "")

	if len(os.Args) > 2 && os.Args[1] == "reset-password" {
		if err := cli.RunResetPasswordCommand(dbPath, os.Args[2]); err != nil {
			log.Fatalf("reset-password failed: %v", err)
		}
		return
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	handler := api.NewHandler(database, secretKey, pushGatewayURL)

	app := fiber.New(fiber.Config{
		AppName:               "Taskmate",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Taskmate listening on http://0.0.0.0:%s (db: %s)", port, dbPath)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func resolveSecretKey() (string, error) {
	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		return "", errors.New("SECRET_KEY is required")
	}
	if secret == "change_me_in_production" || secret == "replace_with_at_least_32_random_characters" {
		return "", errors.New("SECRET_KEY still uses a placeholder value")
	}
	if len(secret) < 32 {
		return "", errors.New("SECRET_KEY must be at least 32 characters")
	}
	return secret, nil
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
