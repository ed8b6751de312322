package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"

	"wedding-marketplace-api/cron"
	"wedding-marketplace-api/db"
	"wedding-marketplace-api/logger"
	"wedding-marketplace-api/redis"
	"wedding-marketplace-api/routes"
)

func main() {
	app := fiber.New()
	if os.Getenv("AUTO_MIGRATE") == "true" {
		db.Migrate()
	} else {
		db.Init()
	}
	redis.InitRedis()

	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Wedding Marketplace API")
	})

	routes.SetupAuthRoutes(app)
	routes.SetupClientRoutes(app)
	routes.SetupVendorRoutes(app)
	routes.SetupAdminRoutes(app)

	cron.StartCronJobs()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	logger.Log.Info().Str("port", port).Msg("server starting")
	if err := app.Listen(":" + port); err != nil {
		logger.Log.Fatal().Err(err).Msg("server stopped")
	}
}
