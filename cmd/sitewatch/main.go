package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sitewatch-dev/sitewatch/db"
	"github.com/sitewatch-dev/sitewatch/internal/auth"
	"github.com/sitewatch-dev/sitewatch/internal/handlers"
	"github.com/sitewatch-dev/sitewatch/internal/router"
	"github.com/sitewatch-dev/sitewatch/internal/scheduler"
	"github.com/sitewatch-dev/sitewatch/internal/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	if err := auth.InitJWTSecret(); err != nil {
		log.Fatalf("Failed to initialize JWT secret: %v", err)
	}

	dsn := os.Getenv("DATABASE_URL")

	if dsn == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	if err := db.ConnectDatabase(dsn); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := scheduler.Initialize(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}

	// Collapse bursts of check results into a single refresh per site.
	scheduler.SetRefreshBroadcaster(utils.Debounce(handlers.BroadcastRefresh, 500*time.Millisecond))

	r := router.NewRouter()

	var port string

	if port = os.Getenv("PORT"); port == "" {
		port = "3000"
		log.Println("PORT not set, defaulting to 3000")
	}

	go func() {
		if err := r.Run(":" + port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down")
	scheduler.Shutdown()
}
