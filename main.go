package main

import (
	"log"
	"sdf/config"
	"sdf/database"
	causeRoutes "sdf/routers/causeRoutes"
	donationRoutes "sdf/routers/donationRoutes"
	"sdf/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve receipts and uploaded documents
	app.Static("/uploads", "./uploads")

	donationRoutes.SetupDonationRoutes(app)
	causeRoutes.SetupCauseRoutes(app)

	utils.InitializeAggregateScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
