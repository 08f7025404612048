package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"sales-dashboard/config"
	"sales-dashboard/handlers"
	"sales-dashboard/ingest"
	"sales-dashboard/routes"
	"sales-dashboard/store"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	cfg := config.Load()

	// Load sales data once at startup. An ingestion failure leaves the
	// service running with an empty dataset rather than crashing.
	records, err := ingest.Load(cfg.CSVPath)
	if err != nil {
		log.Printf("Error loading sales data: %v", err)
		records = nil
	}
	dataStore := store.New(records)
	log.Printf("Sales data loaded: %d records", dataStore.Count())

	app := fiber.New()

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.FrontendURL,
	}))

	// Setup routes
	routes.SetupRoutes(app, handlers.New(dataStore))

	// Start server
	log.Fatal(app.Listen(":" + cfg.Port))
}
