package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"doctors-portal-server/config"
	"doctors-portal-server/jobs"
	"doctors-portal-server/migrations"
	"doctors-portal-server/routes"
	"doctors-portal-server/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg := config.NewConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	client, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Println("Error disconnecting MongoDB client:", err)
		}
	}()
	db := client.Database(cfg.DBName)

	// Startup is all-or-nothing: a failed migration means no routes at all.
	if err := migrations.CreateBookingUniqueIndex(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	if err := migrations.BackfillOptionPrice(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	options := services.NewOptionService(db)
	jobs.SeedAppointmentOptions(options)
	scheduler := jobs.StartDailyScheduler(options)
	defer scheduler.Stop()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(config.CORSMiddleware(cfg))
	routes.Routes(r, db, cfg)

	log.Printf("Doctors Portal server is running on %s\n", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
