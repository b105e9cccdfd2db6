package main

import (
	"log"

	"padho/config"
	"padho/database"
	aiRoutes "padho/routers/aiRoutes"
	authRoutes "padho/routers/authRoutes"
	blogRoutes "padho/routers/blogRoutes"
	courseRoutes "padho/routers/courseRoutes"
	dashboardRoutes "padho/routers/dashboardRoutes"
	paymentRoutes "padho/routers/paymentRoutes"
	quizRoutes "padho/routers/quizRoutes"
	reviewRoutes "padho/routers/reviewRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	// Credentials must be allowed for the session cookie to round-trip.
	// Fiber refuses credentials with a wildcard origin, so CORS_ORIGINS has
	// to name the frontend origins in production.
	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppConfig.CORSOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE",
		AllowHeaders:     "Content-Type,Authorization",
		AllowCredentials: config.AppConfig.CORSOrigins != "*",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	quizRoutes.SetupQuizRoutes(app)
	reviewRoutes.SetupReviewRoutes(app)
	blogRoutes.SetupBlogRoutes(app)
	dashboardRoutes.SetupDashboardRoutes(app)
	aiRoutes.SetupAiRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
