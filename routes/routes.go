package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	controller "leadgate/controllers"
	"leadgate/middleware"
)

func SetupRoutes(app *fiber.App, leadController *controller.LeadController) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("", logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	api.Post("/leads", middleware.SubmissionRateLimiter(), leadController.CreateLead)
	api.Get("/leads", leadController.GetLeads)
	api.Get("/download-brochure", leadController.DownloadBrochure)

	// Setup 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "Not Found",
			"message": "The requested resource was not found",
		})
	})
}
